package decode

import "testing"

func disassemble(t *testing.T, input []byte, verbose bool) string {
	t.Helper()
	result, err := Run(input, verbose)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return string(result.Text)
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"mov sp bx", []byte{0x89, 0xDC}, "mov sp, bx\n"},
		{"mov bx direct", []byte{0x8B, 0x1E, 0x12, 0x34}, "mov bx, [13330]\n"},
		{"mov mem negative disp", []byte{0x89, 0x9A, 0xAB, 0xCD}, "mov [bp+si-12885], bx\n"},
		{"mov imm to reg", []byte{0xBC, 0x12, 0x34}, "mov sp, 0x3412\n"},
		{"mov acc direct", []byte{0xA1, 0x12, 0x34}, "mov ax, [13330]\n"},
		{"rep cmpsb", []byte{0xF3, 0xA6}, "rep cmpsb \n"},
		{"segment override", []byte{0x26, 0x8B, 0x1E, 0x12, 0x34}, "mov bx, es:[13330]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := disassemble(t, c.input, false); got != c.want {
				t.Errorf("disassemble(% X) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestSelfLoopLabel(t *testing.T) {
	got := disassemble(t, []byte{0x74, 0xFE}, false)
	want := "loc_0:\nje loc_0\n"
	if got != want {
		t.Errorf("disassemble(74 FE) = %q, want %q", got, want)
	}
}

// TestBackwardLabelSplicesBeforeTargetInstruction exercises an
// arithmetic-then-loop sequence: the label backpatch must land
// immediately before the instruction the jump actually targets, not
// before the first instruction of the run.
func TestBackwardLabelSplicesBeforeTargetInstruction(t *testing.T) {
	got := disassemble(t, []byte{0x01, 0xD8, 0x29, 0xD8, 0x74, 0xFC}, false)
	want := "add ax, bx\nloc_0:\nsub ax, bx\nje loc_0\n"
	if got != want {
		t.Errorf("disassemble(01 D8 29 D8 74 FC) = %q, want %q", got, want)
	}
}

func TestIncDecRegDoNotTruncateParsing(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"inc cx", []byte{0x41}, "inc cx\n"},
		{"dec cx", []byte{0x49}, "dec cx\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := Run(c.input, false)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got := string(result.Text); got != c.want {
				t.Errorf("disassemble(% X) = %q, want %q", c.input, got, c.want)
			}
			if result.UnparsedBytes != 0 {
				t.Errorf("UnparsedBytes = %d, want 0", result.UnparsedBytes)
			}
		})
	}
}

func TestUnknownOpcodeStopsParsing(t *testing.T) {
	result, err := Run([]byte{0x89, 0xDC, 0x0F}, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Instructions != 1 {
		t.Errorf("Instructions = %d, want 1", result.Instructions)
	}
	if result.UnparsedBytes != 1 {
		t.Errorf("UnparsedBytes = %d, want 1", result.UnparsedBytes)
	}
}

func TestEmptyInputFails(t *testing.T) {
	if _, err := Run(nil, false); err != ErrEmptyInput {
		t.Errorf("Run(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestTruncatedInstructionTreatedAsUnknown(t *testing.T) {
	// 0x89 (MOV reg/rm) with no following ModR/M byte.
	result, err := Run([]byte{0x89}, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Instructions != 0 || result.UnparsedBytes != 1 {
		t.Errorf("Result = %+v, want 0 instructions, 1 unparsed byte", result)
	}
}

func TestDirectAddressNotConfusedWithBP(t *testing.T) {
	// mod=00, rm=110 must decode as a direct address, not [bp].
	got := disassemble(t, []byte{0x8B, 0x06, 0x00, 0x01}, false)
	want := "mov ax, [256]\n"
	if got != want {
		t.Errorf("disassemble(8B 06 00 01) = %q, want %q", got, want)
	}
}

func TestArithImmSignExtendTreatsDestAsWord(t *testing.T) {
	// 0x83 /0 ax, -1 (S=1, W=1): 8-bit immediate sign-extended, operand
	// still printed as word-width.
	got := disassemble(t, []byte{0x83, 0xC0, 0xFF}, false)
	want := "add ax, -1\n"
	if got != want {
		t.Errorf("disassemble(83 C0 FF) = %q, want %q", got, want)
	}
}

func TestBanner(t *testing.T) {
	got := Banner("boot.bin")
	want := "; boot.bin\n\nbits 16\n\n"
	if got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}

func TestUnparsedWarningFormatsEachByteInBinary(t *testing.T) {
	input := []byte{0x89, 0xDC, 0x0F, 0xFF}
	got := UnparsedWarning(input, 2)
	want := "; Warning: 2 bytes were not parsed. Bytes: 00001111 11111111\n"
	if got != want {
		t.Errorf("UnparsedWarning = %q, want %q", got, want)
	}
}

func TestUnparsedWarningEmptyWhenFullyConsumed(t *testing.T) {
	input := []byte{0x89, 0xDC}
	if got := UnparsedWarning(input, 2); got != "" {
		t.Errorf("UnparsedWarning = %q, want empty", got)
	}
}
