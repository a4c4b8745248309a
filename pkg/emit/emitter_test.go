package emit

import (
	"strings"
	"testing"

	"de8086/pkg/inst"
)

func simpleBareInstruction(op inst.Opcode, raw ...byte) *inst.Instruction {
	ins := &inst.Instruction{Op: op, Length: uint8(len(raw))}
	copy(ins.Input[:], raw)
	return ins
}

func TestWriteImmediateHexWidth(t *testing.T) {
	e := New(false)
	e.WriteImmediateHex(0x0A, false)
	e.WriteImmediateHex(0x1234, true)
	got := string(e.Bytes())
	want := "0x0a0x1234"
	if got != want {
		t.Errorf("WriteImmediateHex = %q, want %q", got, want)
	}
}

func TestWriteFarPointer(t *testing.T) {
	e := New(false)
	e.WriteFarPointer(0x1234, 0x0010)
	if got := string(e.Bytes()); got != "4660:16" {
		t.Errorf("WriteFarPointer = %q, want %q", got, "4660:16")
	}
}

func TestLockPrefixCarriesIntoNextInstruction(t *testing.T) {
	e := New(false)
	e.SetLock(0xF0)
	ins := simpleBareInstruction(inst.OpNop, 0x90)
	e.StartInstruction(ins).EndLine()
	got := string(e.Bytes())
	if got != "lock nop \n" {
		t.Errorf("got %q, want %q", got, "lock nop \n")
	}
}

func TestSegmentOverrideExpiresWithoutMemoryOperand(t *testing.T) {
	e := New(false)
	e.SetSegmentOverride(inst.SegES, 0x26)
	ins := simpleBareInstruction(inst.OpNop, 0x90)
	e.StartInstruction(ins).EndLine()
	got := string(e.Bytes())
	if got != "nop \n" {
		t.Errorf("segment override leaked into bare instruction: got %q", got)
	}
	if e.segment != segmentNone {
		t.Error("segment override was not cleared after expiring unused")
	}
}

func TestVerboseCommentDumpsRawBytes(t *testing.T) {
	e := New(true)
	ins := &inst.Instruction{Op: inst.OpNop, Length: 1}
	ins.Input[0] = 0x90
	e.StartInstruction(ins).EndLine()
	got := string(e.Bytes())
	if !strings.HasPrefix(got, "; 10010000\n") {
		t.Errorf("verbose comment = %q, want prefix %q", got, "; 10010000\n")
	}
}

func TestTwoJumpsToSameTargetShareOneLabel(t *testing.T) {
	e := New(false)

	// First jump: an 8-bit forward-ish reference to a target two bytes
	// ahead of where this instruction ends (handled lazily).
	first := &inst.Instruction{Op: inst.OpJmp, Length: 2}
	e.StartInstruction(first)
	e.WriteLabel(2)
	e.EndLine()

	// Second jump, starting where the first ends (offset 2), referencing
	// the same target (offset 4) with a zero displacement.
	second := &inst.Instruction{Op: inst.OpJmp, Length: 2}
	e.StartInstruction(second)
	e.WriteLabel(0)
	e.EndLine()

	out := string(e.Bytes())
	if strings.Count(out, "loc_0") != 2 {
		t.Errorf("expected both jumps to reference loc_0, got %q", out)
	}
	if strings.Count(out, "loc_1") != 0 {
		t.Errorf("expected only one label to be synthesized, got %q", out)
	}
}
