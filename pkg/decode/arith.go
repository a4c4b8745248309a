package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// arithGroupOpcode reports whether b0 falls in one of the eight
// arithmetic opcode groups (ADD OR ADC SBB AND SUB XOR CMP), each
// spanning six bytes: four register/memory forms and two
// immediate-to-accumulator forms.
func arithGroupOpcode(b0 byte) (inst.Opcode, bool) {
	bases := [8]struct {
		base byte
		op   inst.Opcode
	}{
		{0x00, inst.OpAdd}, {0x08, inst.OpOr}, {0x10, inst.OpAdc}, {0x18, inst.OpSbb},
		{0x20, inst.OpAnd}, {0x28, inst.OpSub}, {0x30, inst.OpXor}, {0x38, inst.OpCmp},
	}
	for _, g := range bases {
		if b0 >= g.base && b0 <= g.base+5 {
			return g.op, true
		}
	}
	return inst.OpUnknown, false
}

func immToAccDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) { parseImmToAcc(op, b, ins) },
		Emit:  emitImmToAcc,
	}
}

func parseImmToAcc(op inst.Opcode, b []byte, ins *inst.Instruction) {
	if len(b) < 1 {
		ins.Length = 0
		return
	}
	flags := inst.ParseFlags(b[0])
	length := 2
	if flags.Word {
		length = 3
	}
	if len(b) < length {
		ins.Length = 0
		return
	}
	data, ok := inst.ReadData(b, flags.Word, 1)
	if !ok {
		ins.Length = 0
		return
	}
	ins.Op = op
	ins.Length = uint8(length)
	ins.Flags = flags
	ins.Register = inst.GeneralRegister(inst.RegAX)
	ins.Data = data
}

func emitImmToAcc(e *emit.Emitter, ins *inst.Instruction) {
	e.StartInstruction(ins)
	e.WriteRegister(ins.Register, ins.Flags.Word)
	e.WriteComma()
	// The immediate-to-accumulator forms have no S flag: the immediate's
	// captured width always matches the operand width.
	e.WriteSignedDecimal(signedDisplay(ins.Data, ins.Flags.Word))
	e.EndLine()
}

var arithmeticRegFieldOps = [8]inst.Opcode{
	inst.OpAdd, inst.OpOr, inst.OpAdc, inst.OpSbb,
	inst.OpAnd, inst.OpSub, inst.OpXor, inst.OpCmp,
}

// arithImmToRMDescriptor handles arithmetic immediate-to-register/memory
// (0x80-0x83). Immediate width is 16-bit only when Word=1 and Sign=0;
// otherwise it is a single byte, sign-extended into the full operand
// width when Sign=1 and Word=1.
var arithImmToRMDescriptor = Descriptor{
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
		wideImm := flags.Word && !flags.Sign
		immLen := 1
		if wideImm {
			immLen = 2
		}
		total := 2 + int(dispLen) + immLen
		if len(b) < total {
			ins.Length = 0
			return
		}
		data, ok := inst.ReadData(b, wideImm, 2+int(dispLen))
		if !ok {
			ins.Length = 0
			return
		}
		ins.Op = arithmeticRegFieldOps[regField]
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
		wideImm := ins.Flags.Word && !ins.Flags.Sign
		e.WriteSignedDecimal(signedDisplay(ins.Data, wideImm))
		e.EndLine()
	},
}
