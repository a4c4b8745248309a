package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// aadAamDescriptor builds AAD/AAM (0xD4/0xD5): the manual requires the
// second byte to be 0x0A; a missing second byte or any other value
// reports length 0, the same as an unrecognized encoding.
func aadAamDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 2 || b[1] != 0x0A {
				ins.Length = 0
				return
			}
			ins.Op = op
			ins.Length = 2
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins).EndLine()
		},
	}
}

var aamDescriptor = aadAamDescriptor(inst.OpAam)
var aadDescriptor = aadAamDescriptor(inst.OpAad)

// Flag and accumulator control, all single-byte, no operands.
var lahfDescriptor = bareDescriptor(inst.OpLahf)
var sahfDescriptor = bareDescriptor(inst.OpSahf)
var pushfDescriptor = bareDescriptor(inst.OpPushf)
var popfDescriptor = bareDescriptor(inst.OpPopf)

var aaaDescriptor = bareDescriptor(inst.OpAaa)
var aasDescriptor = bareDescriptor(inst.OpAas)
var daaDescriptor = bareDescriptor(inst.OpDaa)
var dasDescriptor = bareDescriptor(inst.OpDas)
var cbwDescriptor = bareDescriptor(inst.OpCbw)
var cwdDescriptor = bareDescriptor(inst.OpCwd)

var xlatDescriptor = bareDescriptor(inst.OpXlat)

var clcDescriptor = bareDescriptor(inst.OpClc)
var cmcDescriptor = bareDescriptor(inst.OpCmc)
var stcDescriptor = bareDescriptor(inst.OpStc)
var cldDescriptor = bareDescriptor(inst.OpCld)
var stdDescriptor = bareDescriptor(inst.OpStd)
var cliDescriptor = bareDescriptor(inst.OpCli)
var stiDescriptor = bareDescriptor(inst.OpSti)
var hltDescriptor = bareDescriptor(inst.OpHlt)
var waitDescriptor = bareDescriptor(inst.OpWait)
