package decode

import "de8086/pkg/inst"

// stringOpsA4 maps 0xA4-0xA7 to MOVSB/MOVSW/CMPSB/CMPSW.
var stringOpsA4 = [4]inst.Opcode{inst.OpMovsb, inst.OpMovsw, inst.OpCmpsb, inst.OpCmpsw}

// stringOpsAA maps 0xAA-0xAF to STOSB/STOSW/LODSB/LODSW/SCASB/SCASW.
var stringOpsAA = [6]inst.Opcode{
	inst.OpStosb, inst.OpStosw, inst.OpLodsb, inst.OpLodsw, inst.OpScasb, inst.OpScasw,
}

func stringOpDescriptor(op inst.Opcode) Descriptor { return bareDescriptor(op) }
