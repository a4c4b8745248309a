// Package decode implements the 8086 opcode resolver and the per-variant
// decoders: each variant is a parse/emit function pair dispatched by the
// resolver from the leading bytes of the remaining input.
package decode

import (
	"errors"

	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// ErrEmptyInput is returned by NewParser when given a zero-length input.
var ErrEmptyInput = errors.New("decode: empty input")

// ParseFunc fills ins from the start of b, setting ins.Length to the
// number of bytes consumed, or 0 if b does not hold a recognized
// encoding for this variant (including a too-short b).
type ParseFunc func(b []byte, ins *inst.Instruction)

// EmitFunc renders a decoded instruction's text. Prefix descriptors use
// it only to mutate e's carry-over state; they write no text.
type EmitFunc func(e *emit.Emitter, ins *inst.Instruction)

// Descriptor pairs a variant's decode and emit functions. Descriptors
// are immutable package-level values; the resolver picks exactly one
// per instruction.
type Descriptor struct {
	Parse ParseFunc
	Emit  EmitFunc
}

// Unknown is returned by Resolve for any byte the dispatch table does
// not recognize. Its decoder reports Length = 0, which the parser
// iterator treats as end-of-stream.
var Unknown = Descriptor{
	Parse: func(b []byte, ins *inst.Instruction) { ins.Length = 0 },
	Emit:  func(e *emit.Emitter, ins *inst.Instruction) {},
}
