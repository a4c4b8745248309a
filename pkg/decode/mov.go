package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// movImmToRMDescriptor handles MOV immediate to register/memory
// (0xC6/0xC7). The ModR/M reg field is present but ignored.
var movImmToRMDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		flags := inst.ParseFlags(b[0])
		mode, _, rm, dispLen, ok := decodeModRM(b, 1)
		if !ok {
			ins.Length = 0
			return
		}
		immLen := 1
		if flags.Word {
			immLen = 2
		}
		total := 2 + int(dispLen) + immLen
		if len(b) < total {
			ins.Length = 0
			return
		}
		data, ok := inst.ReadData(b, flags.Word, 2+int(dispLen))
		if !ok {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpMov
		ins.Length = uint8(total)
		ins.Flags = flags
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
		ins.Data = data
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.StartInstruction(ins)
		e.WriteRM(ins, ins.Flags.Word, true)
		e.WriteComma()
		e.WriteImmediateHex(ins.Data, ins.Flags.Word)
		e.EndLine()
	},
}

// movImmToRegDescriptor handles MOV immediate to register (0xB0-0xBF).
var movImmToRegDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 1 {
			ins.Length = 0
			return
		}
		word := b[0]&0b1000 != 0
		reg := b[0] & 0b111
		immLen := 1
		if word {
			immLen = 2
		}
		total := 1 + immLen
		if len(b) < total {
			ins.Length = 0
			return
		}
		data, ok := inst.ReadData(b, word, 1)
		if !ok {
			ins.Length = 0
			return
		}
		ins.Op = inst.OpMov
		ins.Length = uint8(total)
		ins.Flags = inst.Flags{Word: word}
		ins.Register = inst.GeneralRegister(reg)
		ins.Data = data
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.StartInstruction(ins)
		e.WriteRegister(ins.Register, ins.Flags.Word)
		e.WriteComma()
		e.WriteImmediateHex(ins.Data, ins.Flags.Word)
		e.EndLine()
	},
}

// movAccMemDescriptor handles MOV accumulator<->memory (0xA0-0xA3). The
// raw direction bit is inverted so the shared reg/rm ordering logic
// places AX/AL on the correct side.
var movAccMemDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 3 {
			ins.Length = 0
			return
		}
		flags := inst.ParseFlags(b[0])
		flags.Dir = !flags.Dir
		ins.Op = inst.OpMov
		ins.Length = 3
		ins.Flags = flags
		ins.Register = inst.GeneralRegister(inst.RegAX)
		ins.RM = inst.EffectiveRM(inst.EffBp)
		ins.Mode = inst.ModeMemory
		ins.Disp = inst.ReadDisp(b, 2, 1)
	},
	Emit: emitRegRM,
}

// movSegRegDescriptor handles MOV to/from segment register (0x8C/0x8E).
var movSegRegDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		flags := inst.ParseFlags(b[0])
		flags.Word = true
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
		ins.Op = inst.OpMov
		ins.Length = uint8(total)
		ins.Flags = flags
		ins.Register = inst.SegmentRegister(regField)
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: emitRegRM,
}

// loadEffectiveDescriptor builds LEA/LDS/LES (0x8D/0xC5/0xC4), which
// force Dir=1, Word=1: the register field is always the destination.
func loadEffectiveDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 2 {
				ins.Length = 0
				return
			}
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
			ins.Op = op
			ins.Length = uint8(total)
			ins.Flags = inst.Flags{Word: true, Dir: true}
			ins.Register = inst.GeneralRegister(regField)
			ins.RM = rm
			ins.Mode = mode
			ins.Disp = inst.ReadDisp(b, dispLen, 2)
		},
		Emit: emitRegRM,
	}
}

var leaDescriptor = loadEffectiveDescriptor(inst.OpLea)
var ldsDescriptor = loadEffectiveDescriptor(inst.OpLds)
var lesDescriptor = loadEffectiveDescriptor(inst.OpLes)
