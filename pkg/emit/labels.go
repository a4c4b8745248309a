package emit

import "fmt"

// WriteLabel writes a jump operand's synthesized label text and, for a
// backward reference to an instruction already emitted, retroactively
// splices the label's header into the output buffer. disp is the raw
// signed displacement read from the instruction; the target is resolved
// relative to NextByteIndex, which StartInstruction has already advanced
// past the full jump instruction by the time this is called.
func (e *Emitter) WriteLabel(disp int16) *Emitter {
	target := e.nextByteIndex + int(disp)

	lbl, ok := e.labels[target]
	if !ok {
		lbl = &label{number: len(e.labels)}
		e.labels[target] = lbl
	}
	e.writeStr(fmt.Sprintf("loc_%d", lbl.number))

	if disp >= 0 || lbl.inserted {
		return e
	}
	e.spliceLabelHeader(target, lbl)
	return e
}

// spliceLabelHeader inserts "loc_<N>:\n" into buf at the start of the
// most recently emitted instruction whose input offset equals target,
// then shifts every later record's output offset by the inserted
// length. If no record aligns exactly with target (a malformed,
// unaligned backward displacement), it falls back to inserting before
// the current instruction per spec's documented best-effort behavior.
func (e *Emitter) spliceLabelHeader(target int, lbl *label) {
	idx := -1
	for i := len(e.instrs) - 1; i >= 0; i-- {
		if e.instrs[i].startIn == target {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = len(e.instrs) - 1
	}
	if idx < 0 {
		return
	}

	header := fmt.Sprintf("loc_%d:\n", lbl.number)
	pos := e.instrs[idx].startOut

	spliced := make([]byte, 0, len(e.buf)+len(header))
	spliced = append(spliced, e.buf[:pos]...)
	spliced = append(spliced, header...)
	spliced = append(spliced, e.buf[pos:]...)
	e.buf = spliced

	for j := idx; j < len(e.instrs); j++ {
		e.instrs[j].startOut += len(header)
	}
	lbl.inserted = true
}
