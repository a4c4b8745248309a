package decode

import (
	"strconv"

	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

func retBareDescriptor(op inst.Opcode) Descriptor { return bareDescriptor(op) }

// retImmDescriptor builds RET/RETF with an immediate stack-adjustment
// pop count (0xC2/0xCA).
func retImmDescriptor(op inst.Opcode) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			if len(b) < 3 {
				ins.Length = 0
				return
			}
			data, _ := inst.ReadData(b, true, 1)
			ins.Op = op
			ins.Length = 3
			ins.Data = data
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.StartInstruction(ins)
			e.WriteStr(strconv.Itoa(int(ins.Data)))
			e.EndLine()
		},
	}
}

var retDescriptor = retBareDescriptor(inst.OpRet)
var retfDescriptor = retBareDescriptor(inst.OpRetf)
var retImmNearDescriptor = retImmDescriptor(inst.OpRet)
var retfImmDescriptor = retImmDescriptor(inst.OpRetf)
