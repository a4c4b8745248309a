package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// lockDescriptor handles the LOCK prefix (0xF0): it occupies one byte,
// never emits text of its own, and mutates emitter state for the next
// real instruction.
var lockDescriptor = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) {
		ins.Op = inst.OpLock
		ins.Length = 1
	},
	Emit: func(e *emit.Emitter, ins *inst.Instruction) {
		e.SetLock(ins.Input[0])
	},
}

// repDescriptor handles REP/REPE/REPNE (0xF2/0xF3).
func repDescriptor(raw byte) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			ins.Op = inst.OpRep
			ins.Length = 1
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.SetRepeat(raw)
		},
	}
}

var repneDescriptor = repDescriptor(0xF2)
var repeDescriptor = repDescriptor(0xF3)

// segmentOverrideDescriptor handles the ES/CS/SS/DS override prefixes
// (0x26/0x2E/0x36/0x3E).
func segmentOverrideDescriptor(index uint8) Descriptor {
	return Descriptor{
		Parse: func(b []byte, ins *inst.Instruction) {
			ins.Op = inst.OpSegment
			ins.Length = 1
		},
		Emit: func(e *emit.Emitter, ins *inst.Instruction) {
			e.SetSegmentOverride(index, ins.Input[0])
		},
	}
}

var segESDescriptor = segmentOverrideDescriptor(inst.SegES)
var segCSDescriptor = segmentOverrideDescriptor(inst.SegCS)
var segSSDescriptor = segmentOverrideDescriptor(inst.SegSS)
var segDSDescriptor = segmentOverrideDescriptor(inst.SegDS)
