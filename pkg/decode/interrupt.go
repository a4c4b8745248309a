package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

var int3Descriptor = bareDescriptor(inst.OpInt3)
var intoDescriptor = bareDescriptor(inst.OpInto)
var iretDescriptor = bareDescriptor(inst.OpIret)

// intDescriptor handles INT imm8 (0xCD).
var intDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpInt
		ins.Length = 2
		ins.Data = uint16(b[1])
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.StartInstruction(ins)
		e.WriteImmediateHex(ins.Data, false)
		e.EndLine()
	},
}
