// Package emit renders decoded instruction records into NASM-compatible
// text, carrying prefix state (LOCK/REP/segment override) across records
// and synthesizing jump labels, including retroactive insertion of a
// label header into output already written when a backward jump targets
// it.
package emit

import (
	"fmt"
	"strconv"

	"de8086/pkg/inst"
)

const segmentNone = -1

type instrRecord struct {
	startIn  int // byte offset in the input this record begins at
	startOut int // byte offset in buf where this record's text begins
	length   int // input bytes this record consumed
}

type label struct {
	number   int
	inserted bool
}

// Emitter accumulates NASM text for a sequence of decoded instructions.
type Emitter struct {
	buf []byte

	nextByteIndex    int
	currentByteIndex int

	instrs []instrRecord
	labels map[int]*label

	lock         bool
	repeatPrefix byte
	segment      int

	pending []byte // raw bytes of prefixes not yet attached to a real instruction
	verbose bool
}

// New creates an Emitter. When verbose is true, each instruction is
// preceded by a comment line dumping its raw bytes in binary.
func New(verbose bool) *Emitter {
	return &Emitter{
		labels:  make(map[int]*label),
		segment: segmentNone,
		verbose: verbose,
	}
}

// Bytes returns the accumulated output text.
func (e *Emitter) Bytes() []byte { return e.buf }

// NextByteIndex returns the running count of input bytes consumed so
// far, including the instruction currently being emitted.
func (e *Emitter) NextByteIndex() int { return e.nextByteIndex }

// LabelCount returns how many distinct jump-target labels were
// synthesized during emission.
func (e *Emitter) LabelCount() int { return len(e.labels) }

func (e *Emitter) writeStr(s string) { e.buf = append(e.buf, s...) }

// StartInstruction begins a new instruction line: it writes a pending
// forward-jump label header if one targets this offset, the verbose
// raw-byte comment if enabled, any carried LOCK/REP prefix text, and the
// mnemonic, then registers the instruction in the backward-label scan
// table and advances the byte cursor.
func (e *Emitter) StartInstruction(ins *inst.Instruction) *Emitter {
	startIn := e.currentByteIndex
	startOut := len(e.buf)

	if lbl, ok := e.labels[startIn]; ok && !lbl.inserted {
		e.writeStr(fmt.Sprintf("loc_%d:\n", lbl.number))
		lbl.inserted = true
	}

	if e.verbose {
		e.writeVerboseComment(ins)
	}

	if e.lock {
		e.writeStr("lock ")
		e.lock = false
	}
	if e.repeatPrefix != 0 {
		e.writeStr("rep ")
		e.repeatPrefix = 0
	}

	e.writeStr(inst.Mnemonic(ins.Op))
	e.writeStr(" ")

	e.instrs = append(e.instrs, instrRecord{
		startIn:  startIn,
		startOut: startOut,
		length:   int(ins.Length),
	})
	e.nextByteIndex = startIn + int(ins.Length)
	e.pending = e.pending[:0]

	return e
}

func (e *Emitter) writeVerboseComment(ins *inst.Instruction) {
	e.writeStr("; ")
	first := true
	for _, b := range e.pending {
		if !first {
			e.writeStr(" ")
		}
		e.writeStr(fmt.Sprintf("%08b", b))
		first = false
	}
	for i := 0; i < int(ins.Length); i++ {
		if !first {
			e.writeStr(" ")
		}
		e.writeStr(fmt.Sprintf("%08b", ins.Input[i]))
		first = false
	}
	e.writeStr("\n")
}

// EndLine terminates the current instruction's line and promotes the
// running byte cursor so the next StartInstruction sees the correct
// offset. A segment override attaches only to the instruction that just
// finished; if its body never wrote a memory operand to consume it, it
// expires here rather than leaking into a later, unrelated instruction.
func (e *Emitter) EndLine() *Emitter {
	e.writeStr("\n")
	e.currentByteIndex = e.nextByteIndex
	e.segment = segmentNone
	return e
}

// emitPrefix records a one-byte prefix instruction: it never writes text
// of its own, only mutates carry-over state and advances the cursor
// immediately (prefixes have no EndLine of their own).
func (e *Emitter) emitPrefix(raw byte, apply func(*Emitter)) {
	startIn := e.currentByteIndex
	startOut := len(e.buf)
	apply(e)
	e.instrs = append(e.instrs, instrRecord{startIn: startIn, startOut: startOut, length: 1})
	e.nextByteIndex = startIn + 1
	e.currentByteIndex = e.nextByteIndex
	e.pending = append(e.pending, raw)
}

// SetLock carries a LOCK prefix forward onto the next real instruction.
func (e *Emitter) SetLock(raw byte) {
	e.emitPrefix(raw, func(e *Emitter) { e.lock = true })
}

// SetRepeat carries a REP/REPNE prefix forward onto the next real
// instruction. Both render as "rep " regardless of the raw byte.
func (e *Emitter) SetRepeat(raw byte) {
	e.emitPrefix(raw, func(e *Emitter) { e.repeatPrefix = raw })
}

// SetSegmentOverride carries a segment-register override forward; it is
// consumed the next time a memory operand is actually written, and
// silently expires if none is.
func (e *Emitter) SetSegmentOverride(index uint8, raw byte) {
	e.emitPrefix(raw, func(e *Emitter) { e.segment = int(index) })
}

// WriteStr appends a raw literal (a register name, "cl", a comma
// separator, etc).
func (e *Emitter) WriteStr(s string) *Emitter {
	e.writeStr(s)
	return e
}

// WriteComma writes the standard NASM operand separator.
func (e *Emitter) WriteComma() *Emitter {
	e.writeStr(", ")
	return e
}

// WriteRegister writes a register operand's name.
func (e *Emitter) WriteRegister(r inst.Register, word bool) *Emitter {
	e.writeStr(r.Name(word))
	return e
}

// WriteRM writes the r/m operand: a register name, or a bracketed
// effective-address / direct-address memory operand. sizeQualifier
// requests a leading "word "/"byte " when the operand is memory and its
// width would otherwise be ambiguous (immediate-to-memory forms, unary
// ops, shifts, PUSH/POP r/m).
func (e *Emitter) WriteRM(ins *inst.Instruction, word bool, sizeQualifier bool) *Emitter {
	if ins.RM.IsRegister {
		return e.WriteRegister(ins.RM.Register, word)
	}

	if sizeQualifier {
		if word {
			e.writeStr("word ")
		} else {
			e.writeStr("byte ")
		}
	}

	if e.segment != segmentNone {
		e.writeStr(segmentPrefixText[e.segment])
		e.segment = segmentNone
	}

	e.writeStr("[")
	if ins.RM.IsDirectAddress(ins.Mode) {
		e.writeStr(strconv.Itoa(int(uint16(ins.Disp))))
	} else {
		e.writeStr(inst.EffectiveAddressBase(ins.RM.Effective))
		if ins.Disp > 0 {
			e.writeStr("+")
			e.writeStr(strconv.Itoa(int(ins.Disp)))
		} else if ins.Disp < 0 {
			e.writeStr("-")
			e.writeStr(strconv.Itoa(int(-ins.Disp)))
		}
	}
	e.writeStr("]")
	return e
}

var segmentPrefixText = [4]string{"es:", "cs:", "ss:", "ds:"}

// WriteImmediateHex writes data as a hex literal, zero-padded to 4 hex
// digits (width 6 including "0x") when word is set, 2 hex digits
// (width 4 including "0x") otherwise.
func (e *Emitter) WriteImmediateHex(data uint16, word bool) *Emitter {
	if word {
		e.writeStr(fmt.Sprintf("0x%04x", data))
	} else {
		e.writeStr(fmt.Sprintf("0x%02x", uint8(data)))
	}
	return e
}

// WriteSignedDecimal writes v as a signed decimal literal.
func (e *Emitter) WriteSignedDecimal(v int16) *Emitter {
	e.writeStr(strconv.Itoa(int(v)))
	return e
}

// WriteFarPointer writes an intersegment direct target as "cs:ip"
// decimal.
func (e *Emitter) WriteFarPointer(cs, ip uint16) *Emitter {
	e.writeStr(fmt.Sprintf("%d:%d", cs, ip))
	return e
}

// UnparsedTail reports how many trailing input bytes the parser left
// unconsumed, given the input length and what the parser's cursor
// reached.
func UnparsedTail(inputLen, consumed int) int {
	if inputLen <= consumed {
		return 0
	}
	return inputLen - consumed
}
