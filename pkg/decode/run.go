package decode

import (
	"fmt"

	"de8086/pkg/emit"
)

// Result holds the outcome of disassembling one flat byte stream.
type Result struct {
	Text          []byte
	Instructions  int
	Labels        int
	ConsumedBytes int
	UnparsedBytes int
}

// Banner renders the NASM source header a reassemblable .asm file needs:
// a comment naming the source file followed by the bits-16 directive
// this instruction set assumes throughout.
func Banner(filename string) string {
	return fmt.Sprintf("; %s\n\nbits 16\n\n", filename)
}

// UnparsedWarning renders the verbose-mode trailing-bytes notice: a NASM
// comment naming how many bytes were left over and dumping each in
// 8-bit binary. Returns "" when consumed reached the end of input.
func UnparsedWarning(input []byte, consumed int) string {
	if consumed >= len(input) {
		return ""
	}
	tail := input[consumed:]
	s := fmt.Sprintf("; Warning: %d bytes were not parsed. Bytes:", len(tail))
	for _, b := range tail {
		s += fmt.Sprintf(" %08b", b)
	}
	return s + "\n"
}

// Run decodes input end to end, producing NASM-compatible text and a
// summary of how much of the input was recognized. It never returns an
// error for a truncated or unrecognized tail: that condition is
// reported through Result.UnparsedBytes instead, matching a
// disassembler's job of doing the best it can with what it's given.
func Run(input []byte, verbose bool) (Result, error) {
	parser, err := NewParser(input)
	if err != nil {
		return Result{}, err
	}

	e := emit.New(verbose)
	count := 0
	for {
		ins, ok := parser.Next()
		if !ok {
			break
		}
		parser.Emit(e, &ins)
		count++
	}

	consumed := parser.Consumed()
	return Result{
		Text:          e.Bytes(),
		Instructions:  count,
		Labels:        e.LabelCount(),
		ConsumedBytes: consumed,
		UnparsedBytes: emit.UnparsedTail(len(input), consumed),
	}, nil
}
