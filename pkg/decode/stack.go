package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

func registerOpDescriptor(op inst.Opcode, word bool) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 1 {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 1
			ins.Flags = inst.Flags{Word: word}
			ins.Register = inst.GeneralRegister(b[0] & 0b111)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteRegister(ins.Register, word)
			e.EndLine()
		},
	}
}

func segmentRegisterOpDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 1 {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 1
			ins.Flags = inst.Flags{Word: true}
			ins.Register = inst.SegmentRegister(b[0] >> 3)
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteRegister(ins.Register, true)
			e.EndLine()
		},
	}
}

var pushRegDescriptor = registerOpDescriptor(inst.OpPush, true)
var popRegDescriptor = registerOpDescriptor(inst.OpPop, true)
var pushSegRegDescriptor = segmentRegisterOpDescriptor(inst.OpPush)
var popSegRegDescriptor = segmentRegisterOpDescriptor(inst.OpPop)

// incRegDescriptor/decRegDescriptor handle INC reg (0x40-0x47) and DEC
// reg (0x48-0x4F), the single-byte register-direct forms.
var incRegDescriptor = registerOpDescriptor(inst.OpInc, true)
var decRegDescriptor = registerOpDescriptor(inst.OpDec, true)

// xchgRegRMDescriptor handles XCHG register/memory with register
// (0x86/0x87). XCHG is symmetric; the register field is printed first
// by convention.
var xchgRegRMDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		flags := inst.ParseFlags(b[0])
		flags.Dir = true
		mode, regField, rm, dispLen, ok := decodeModRM(b, 1)
		if !ok {
			ins.Length = 0
			return
		}
		total := 2 + int(dispLen)
		if len(b) < total {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpXchg
		ins.Length = uint8(total)
		ins.Flags = flags
		ins.Register = inst.GeneralRegister(regField)
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: emitRegRM,
}

// xchgAccDescriptor handles XCHG AX, reg (0x91-0x97).
var xchgAccDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 1 {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpXchg
		ins.Length = 1
		ins.Flags = inst.Flags{Word: true, Dir: true}
		ins.Register = inst.GeneralRegister(inst.RegAX)
		ins.RM = inst.RegisterRM(inst.GeneralRegister(b[0] & 0b111))
		ins.Mode = inst.ModeRegister
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.StartInstruction(ins)
		e.WriteRegister(ins.Register, true)
		e.WriteComma()
		e.WriteRM(ins, true, false)
		e.EndLine()
	},
}

// nopDescriptor handles 0x90, the XCHG AX,AX encoding conventionally
// shown as NOP.
var nopDescriptor = bareDescriptor(inst.OpNop)

// popRMDescriptor handles POP r/m16 (0x8F). The ModR/M reg field must be
// 0 on real hardware; other values report length 0.
var popRMDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		mode, regField, rm, dispLen, ok := decodeModRM(b, 1)
		if !ok || regField != 0 {
			ins.Length = 0
			return
		}
		total := 2 + int(dispLen)
		if len(b) < total {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpPop
		ins.Length = uint8(total)
		ins.Flags = inst.Flags{Word: true}
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: emitUnary,
}
