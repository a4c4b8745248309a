package inst

import "testing"

func TestMode(t *testing.T) {
	cases := []struct {
		b    byte
		want uint8
	}{
		{0b00000000, ModeMemory},
		{0b01000000, ModeByteDisp},
		{0b10000000, ModeWordDisp},
		{0b11000000, ModeRegister},
	}
	for _, c := range cases {
		if got := Mode(c.b); got != c.want {
			t.Errorf("Mode(%08b) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestDisplacementLength(t *testing.T) {
	cases := []struct {
		b    byte
		want uint8
	}{
		{0b00000000, 0},
		{0b00000110, 2}, // mod=00, rm=110 -> direct address
		{0b01000000, 1},
		{0b10000000, 2},
		{0b11000000, 0},
	}
	for _, c := range cases {
		if got := DisplacementLength(c.b); got != c.want {
			t.Errorf("DisplacementLength(%08b) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestReadDispSignExtends(t *testing.T) {
	b := []byte{0xFE} // -2 as int8
	if got := ReadDisp(b, 1, 0); got != -2 {
		t.Errorf("ReadDisp(byte) = %d, want -2", got)
	}
}

func TestReadDispWordLittleEndian(t *testing.T) {
	b := []byte{0x34, 0x12}
	if got := ReadDisp(b, 2, 0); got != 0x1234 {
		t.Errorf("ReadDisp(word) = %#x, want 0x1234", got)
	}
}

func TestReadDataTruncated(t *testing.T) {
	b := []byte{0x01}
	if _, ok := ReadData(b, true, 0); ok {
		t.Error("ReadData should report failure on truncated word data")
	}
}

func TestParseFlags(t *testing.T) {
	f := ParseFlags(0b00000001)
	if !f.Word || f.Sign || f.Dir || f.ShiftByCL || !f.RepWhileSet {
		t.Errorf("ParseFlags(0b00000001) = %+v", f)
	}
	f = ParseFlags(0b00000010)
	if f.Word || !f.Sign || !f.Dir || !f.ShiftByCL || f.RepWhileSet {
		t.Errorf("ParseFlags(0b00000010) = %+v", f)
	}
}
