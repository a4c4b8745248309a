package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// condJumpOps maps 0x70-0x7F to their conditional-jump opcodes.
var condJumpOps = [16]inst.Opcode{
	inst.OpJo, inst.OpJno, inst.OpJb, inst.OpJae,
	inst.OpJe, inst.OpJne, inst.OpJbe, inst.OpJa,
	inst.OpJs, inst.OpJns, inst.OpJp, inst.OpJnp,
	inst.OpJl, inst.OpJge, inst.OpJle, inst.OpJg,
}

// loopOps maps 0xE0-0xE3 to LOOPNZ/LOOPZ/LOOP/JCXZ.
var loopOps = [4]inst.Opcode{
	inst.OpLoopnz, inst.OpLoopz, inst.OpLoop, inst.OpJcxz,
}

// shortLabelDescriptor builds the shared shape for all 8-bit-relative
// branch forms (conditional jumps, LOOP family, short JMP): a single
// signed displacement byte, no other operand.
func shortLabelDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 2 {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 2
			ins.Disp = inst.ReadDisp(b, 1, 1)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteLabel(ins.Disp)
			e.EndLine()
		},
	}
}

func conditionalJumpDescriptor(op inst.Opcode) Descriptor { return shortLabelDescriptor(op) }

var jmpShortDescriptor = shortLabelDescriptor(inst.OpJmp)

// nearLabelDescriptor builds CALL/JMP direct within-segment (0xE8/0xE9):
// a 16-bit signed displacement, no other operand.
func nearLabelDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 3 {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 3
			ins.Disp = inst.ReadDisp(b, 2, 1)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteLabel(ins.Disp)
			e.EndLine()
		},
	}
}

var callNearDescriptor = nearLabelDescriptor(inst.OpCall)
var jmpNearDescriptor = nearLabelDescriptor(inst.OpJmp)

// farDirectDescriptor builds CALL/JMP direct intersegment (0x9A/0xEA):
// a 16-bit IP followed by a 16-bit CS, printed as "cs:ip". IP is stashed
// in Data, CS in Disp (reinterpreted as unsigned on emit).
func farDirectDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 5 {
				ins.Length = 0
				return
			}
			ip, _ := inst.ReadData(b, true, 1)
			cs, _ := inst.ReadData(b, true, 3)
			ins.Op = op
			ins.Length = 5
			ins.Data = ip
			ins.Disp = int16(cs)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteFarPointer(uint16(ins.Disp), ins.Data)
			e.EndLine()
		},
	}
}

var callFarDescriptor = farDirectDescriptor(inst.OpCallf)
var jmpFarDescriptor = farDirectDescriptor(inst.OpJmpf)
