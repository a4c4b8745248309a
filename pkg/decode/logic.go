package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// shiftRegFieldOps maps a ModR/M reg field (0xD0-0xD3's secondary
// dispatch) to a shift/rotate opcode. Index 6 has no standard mnemonic
// on real hardware; it is treated as an SHL alias, matching common
// disassembler practice for this undocumented encoding.
var shiftRegFieldOps = [8]inst.Opcode{
	inst.OpRol, inst.OpRor, inst.OpRcl, inst.OpRcr,
	inst.OpShl, inst.OpShr, inst.OpShl, inst.OpSar,
}

// shiftDescriptor handles the 0xD0-0xD3 shift/rotate group: Word is bit
// 0 of the opcode byte, ShiftByCL is bit 1 (count from CL vs literal 1),
// and the sub-mnemonic comes from the ModR/M reg field.
var shiftDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
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
		ins.Op = shiftRegFieldOps[regField]
		ins.Length = uint8(total)
		ins.Flags = flags
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.StartInstruction(ins)
		e.WriteRM(ins, ins.Flags.Word, true)
		e.WriteComma()
		if ins.Flags.ShiftByCL {
			e.WriteStr("cl")
		} else {
			e.WriteStr("1")
		}
		e.EndLine()
	},
}

func emitUnary(e *emit.Emitter, ins *inst.Instruction) {
	e.StartInstruction(ins)
	e.WriteRM(ins, ins.Flags.Word, true)
	e.EndLine()
}

func emitTestImm(e *emit.Emitter, ins *inst.Instruction) {
	e.StartInstruction(ins)
	e.WriteRM(ins, ins.Flags.Word, true)
	e.WriteComma()
	e.WriteSignedDecimal(signedDisplay(ins.Data, ins.Flags.Word))
	e.EndLine()
}

// unaryGroupDescriptor handles the 0xF6/0xF7 group: TEST imm-to-r/m
// (reg field 000 or the undocumented alias 001), NOT (010), NEG (011),
// MUL/IMUL (100/101), DIV/IDIV (110/111).
var unaryGroupDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
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
		if regField <= 1 {
			flags.Dir = false
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
			ins.Op = inst.OpTest
			ins.Length = uint8(total)
			ins.Flags = flags
			ins.RM = rm
			ins.Mode = mode
			ins.Disp = inst.ReadDisp(b, dispLen, 2)
			ins.Data = data
			return
		}

		total := 2 + int(dispLen)
		if len(b) < total {
			ins.Length = 0
			return
		}
		var op inst.Opcode
		switch regField {
		case 2:
			op = inst.OpNot
		case 3:
			op = inst.OpNeg
		case 4:
			op = inst.OpMul
		case 5:
			op = inst.OpImul
		case 6:
			op = inst.OpDiv
		case 7:
			op = inst.OpIdiv
		}
		ins.Op = op
		ins.Length = uint8(total)
		ins.Flags = flags
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		if ins.Op == inst.OpTest {
			emitTestImm(e, ins)
			return
		}
		emitUnary(e, ins)
	},
}

// incDecByteDescriptor handles 0xFE: INC/DEC r/m8 (reg field 0/1 only;
// other values are unused on real hardware and report length 0).
var incDecByteDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		if len(b) < 2 {
			ins.Length = 0
			return
		}
		mode, regField, rm, dispLen, ok := decodeModRM(b, 1)
		if !ok || regField > 1 {
			ins.Length = 0
			return
		}
		total := 2 + int(dispLen)
		if len(b) < total {
			ins.Length = 0
			return
		}
		op := inst.OpInc
		if regField == 1 {
			op = inst.OpDec
		}
		ins.Op = op
		ins.Length = uint8(total)
		ins.Flags = inst.Flags{Word: false}
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
	},
	Emit: emitUnary,
}

// group0xFFDescriptor handles 0xFF: INC/DEC r/m16 (000/001), CALL/JMP
// indirect within-segment (010/100), CALL/JMP indirect intersegment
// (011/101), PUSH r/m (110). Reg field 111 is unused and reports
// length 0.
var group0xFFDescriptor = Descriptor{
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
		ins.Flags = inst.Flags{Word: true}
		ins.RM = rm
		ins.Mode = mode
		ins.Disp = inst.ReadDisp(b, dispLen, 2)
		ins.Length = uint8(total)

		switch regField {
		case 0:
			ins.Op = inst.OpInc
		case 1:
			ins.Op = inst.OpDec
		case 2:
			ins.Op = inst.OpCall
		case 4:
			ins.Op = inst.OpJmp
		case 3:
			ins.Op = inst.OpCallf
		case 5:
			ins.Op = inst.OpJmpf
		case 6:
			ins.Op = inst.OpPush
		default:
			ins.Length = 0
		}
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		switch ins.Op {
		case inst.OpCallf, inst.OpJmpf:
			e.StartInstruction(ins)
			e.WriteStr("far ")
			e.WriteRM(ins, true, true)
			e.EndLine()
		default:
			emitUnary(e, ins)
		}
	},
}
