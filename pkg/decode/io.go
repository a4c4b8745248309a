package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// fixedPortDescriptor handles IN/OUT with a fixed 8-bit port immediate
// (0xE4-0xE7). Bit 0 selects Word, bit 1 selects IN (clear) vs OUT (set).
func fixedPortDescriptor(out bool) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 2 {
				ins.Length = 0
				return
			}
			flags := inst.ParseFlags(b[0])
			op := inst.OpIn
			if out {
				op = inst.OpOut
			}
			ins.Op = op
			ins.Length = 2
			ins.Flags = flags
			ins.Register = inst.GeneralRegister(inst.RegAX)
			ins.Data = uint16(b[1])
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			if ins.Op == inst.OpIn {
				e.WriteRegister(ins.Register, ins.Flags.Word)
				e.WriteComma()
				e.WriteImmediateHex(ins.Data, false)
			} else {
				e.WriteImmediateHex(ins.Data, false)
				e.WriteComma()
				e.WriteRegister(ins.Register, ins.Flags.Word)
			}
			e.EndLine()
		},
	}
}

// variablePortDescriptor handles IN/OUT through DX (0xEC-0xEF).
func variablePortDescriptor(out bool) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 1 {
				ins.Length = 0
				return
			}
			flags := inst.ParseFlags(b[0])
			op := inst.OpIn
			if out {
				op = inst.OpOut
			}
			ins.Op = op
			ins.Length = 1
			ins.Flags = flags
			ins.Register = inst.GeneralRegister(inst.RegAX)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			if ins.Op == inst.OpIn {
				e.WriteRegister(ins.Register, ins.Flags.Word)
				e.WriteComma()
				e.WriteStr("dx")
			} else {
				e.WriteStr("dx")
				e.WriteComma()
				e.WriteRegister(ins.Register, ins.Flags.Word)
			}
			e.EndLine()
		},
	}
}

var inFixedDescriptor = fixedPortDescriptor(false)
var outFixedDescriptor = fixedPortDescriptor(true)
var inVarDescriptor = variablePortDescriptor(false)
var outVarDescriptor = variablePortDescriptor(true)
