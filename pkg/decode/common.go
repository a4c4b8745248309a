package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// decodeModRM reads the mode/reg/r-m fields from b[byteIdx] and returns
// false if b is too short to contain that byte.
func decodeModRM(b []byte, byteIdx int) (mode, regField uint8, rm inst.RM, dispLen uint8, ok bool) {
	if len(b) <= byteIdx {
		return 0, 0, inst.RM{}, 0, false
	}
	modrm := b[byteIdx]
	mode = inst.Mode(modrm)
	regField = inst.RegField(modrm)
	dispLen = inst.DisplacementLength(modrm)
	rmField := inst.RMField(modrm)
	if mode == inst.ModeRegister {
		rm = inst.RegisterRM(inst.GeneralRegister(rmField))
	} else {
		rm = inst.EffectiveRM(rmField)
	}
	return mode, regField, rm, dispLen, true
}

// signedDisplay reinterprets a decoded immediate for decimal display.
// wide must reflect the immediate's actual captured width, not the
// instruction's operand width: an arithmetic imm-to-RM instruction with
// S=1,W=1 captures an 8-bit immediate into a word-width destination, so
// callers pass wide=false there to sign-extend the byte rather than
// displaying its raw unsigned value.
func signedDisplay(data uint16, wide bool) int16 {
	if wide {
		return int16(data)
	}
	return int16(int8(data))
}

// regRMDescriptor builds the descriptor for the common "register/memory
// to/from register" shape shared by MOV (0x88-0x8B) and the arithmetic
// to-register families: byte 0 supplies W (bit 0) and Dir (bit 1), byte
// 1 is a ModR/M byte, and an optional displacement follows.
func regRMDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) { parseRegRM(op, b, ins) },
		Emit:  emitRegRM,
	}
}

func parseRegRM(op inst.Opcode, b []byte, ins *inst.Instruction) {
	if len(b) < 2 {
		ins.Length = 0
		return
	}
	flags := inst.ParseFlags(b[0])
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
	ins.Flags = flags
	ins.Register = inst.GeneralRegister(regField)
	ins.RM = rm
	ins.Mode = mode
	ins.Disp = inst.ReadDisp(b, dispLen, 2)
}

func emitRegRM(e *emit.Emitter, ins *inst.Instruction) {
	e.StartInstruction(ins)
	if ins.Flags.Dir {
		e.WriteRegister(ins.Register, ins.Flags.Word)
		e.WriteComma()
		e.WriteRM(ins, ins.Flags.Word, false)
	} else {
		e.WriteRM(ins, ins.Flags.Word, false)
		e.WriteComma()
		e.WriteRegister(ins.Register, ins.Flags.Word)
	}
	e.EndLine()
}

// bareDescriptor builds a single-byte instruction with no operands.
func bareDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 1 {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 1
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins).EndLine()
		},
	}
}
