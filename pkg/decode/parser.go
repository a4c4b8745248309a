package decode

import (
	"de8086/pkg/emit"
	"de8086/pkg/inst"
)

// Parser walks a flat byte stream one instruction at a time, handing
// each decoded Instruction to the caller and tracking how much of the
// input has been consumed so far.
type Parser struct {
	input  []byte
	cursor int
	last   Descriptor
}

// NewParser returns a Parser over input, or ErrEmptyInput if input is
// empty.
func NewParser(input []byte) (*Parser, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	return &Parser{input: input}, nil
}

// Next decodes the instruction at the current cursor and advances past
// it, returning false once the remaining bytes don't form a recognized
// instruction (including a fully-consumed stream).
func (p *Parser) Next() (inst.Instruction, bool) {
	rest := p.input[p.cursor:]
	if len(rest) == 0 {
		return inst.Instruction{}, false
	}

	descriptor := Resolve(rest)
	var ins inst.Instruction
	descriptor.Parse(rest, &ins)
	if ins.Length == 0 {
		return inst.Instruction{}, false
	}

	copy(ins.Input[:ins.Length], rest[:ins.Length])
	p.cursor += int(ins.Length)
	p.last = descriptor
	return ins, true
}

// Emit renders ins using the descriptor that decoded it. It must be
// called with the Instruction most recently returned by Next.
func (p *Parser) Emit(e *emit.Emitter, ins *inst.Instruction) { p.last.Emit(e, ins) }

// Consumed returns how many bytes of the input have been parsed so far.
func (p *Parser) Consumed() int { return p.cursor }

// Remaining returns the unparsed tail of the input.
func (p *Parser) Remaining() []byte { return p.input[p.cursor:] }
