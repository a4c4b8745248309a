package inst

// Register is a tagged register identity: either a general-purpose index
// 0..7 (interpreted as word or byte form by the instruction's W flag) or a
// segment-register index 0..3.
type Register struct {
	Index   uint8
	Segment bool
}

// Canonical 8086 general-register indices (ModR/M reg/rm field values).
const (
	RegAX = 0
	RegCX = 1
	RegDX = 2
	RegBX = 3
	RegSP = 4
	RegBP = 5
	RegSI = 6
	RegDI = 7
)

// Canonical segment-register indices; es/cs/ss/ds per the 8086 manual
// (spec.md's §9 resolves the ambiguous ordering seen across source
// versions in favor of this one).
const (
	SegES = 0
	SegCS = 1
	SegSS = 2
	SegDS = 3
)

var wordRegisterNames = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
var byteRegisterNames = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}
var segmentRegisterNames = [4]string{"es", "cs", "ss", "ds"}

// Name returns the register's NASM-compatible name. word selects the
// word-form general-register table over the byte-form one; it is ignored
// for segment registers, which have a single name each.
func (r Register) Name(word bool) string {
	if r.Segment {
		return segmentRegisterNames[r.Index&3]
	}
	if word {
		return wordRegisterNames[r.Index&7]
	}
	return byteRegisterNames[r.Index&7]
}

// GeneralRegister returns the tagged general-purpose register for a
// 3-bit ModR/M field value.
func GeneralRegister(index uint8) Register {
	return Register{Index: index & 7}
}

// SegmentRegister returns the tagged segment register for a 2-bit
// ModR/M field value.
func SegmentRegister(index uint8) Register {
	return Register{Index: index & 3, Segment: true}
}

// Effective-address form indices for ModR/M r/m in memory modes.
const (
	EffBxSi = 0
	EffBxDi = 1
	EffBpSi = 2
	EffBpDi = 3
	EffSi   = 4
	EffDi   = 5
	EffBp   = 6 // also DIRECT_ADDRESS when mode == 00
	EffBx   = 7
)

var effectiveAddressText = [8]string{
	"bx+si", "bx+di", "bp+si", "bp+di", "si", "di", "bp", "bx",
}

// EffectiveAddressBase returns the register-expression text for an
// effective-address form index 0..7, e.g. "bx+si" or "bp" (without
// brackets).
func EffectiveAddressBase(index uint8) string {
	return effectiveAddressText[index&7]
}

// RM is the tagged r/m operand: either a register (mode == 11) or an
// effective-address form index 0..7 (any other mode).
type RM struct {
	IsRegister bool
	Register   Register
	Effective  uint8
}

// RegisterRM tags a register as the r/m operand.
func RegisterRM(r Register) RM { return RM{IsRegister: true, Register: r} }

// EffectiveRM tags an effective-address form as the r/m operand.
func EffectiveRM(index uint8) RM { return RM{Effective: index & 7} }

// IsDirectAddress reports whether this r/m, combined with mod == 00,
// denotes a 16-bit direct address rather than [bp].
func (rm RM) IsDirectAddress(mode uint8) bool {
	return !rm.IsRegister && mode == ModeMemory && rm.Effective == EffBp
}
