package inst

import "testing"

func TestRegisterNameWordVsByte(t *testing.T) {
	r := GeneralRegister(RegBX)
	if got := r.Name(true); got != "bx" {
		t.Errorf("word name = %q, want bx", got)
	}
	if got := r.Name(false); got != "bl" {
		t.Errorf("byte name = %q, want bl", got)
	}
}

func TestSegmentRegisterOrder(t *testing.T) {
	want := []string{"es", "cs", "ss", "ds"}
	for i, w := range want {
		r := SegmentRegister(uint8(i))
		if got := r.Name(true); got != w {
			t.Errorf("segment %d name = %q, want %q", i, got, w)
		}
	}
}

func TestIsDirectAddress(t *testing.T) {
	rm := EffectiveRM(EffBp)
	if !rm.IsDirectAddress(ModeMemory) {
		t.Error("mod=00, rm=110 should be a direct address")
	}
	if rm.IsDirectAddress(ModeByteDisp) {
		t.Error("mod=01, rm=110 is [bp]+disp8, not a direct address")
	}
}
