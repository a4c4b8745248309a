package inst

// MaxLength is the longest an 8086 instruction encoding can be in this
// instruction set (mod=10 memory operand plus a 16-bit immediate).
const MaxLength = 6

// Instruction is the fixed-size record a decoder fills in. It never
// allocates: Input retains the raw bytes the decoder consumed, which the
// emitter needs for intersegment operands and verbose raw-byte dumps.
type Instruction struct {
	Op       Opcode
	Length   uint8 // 1..6; 0 means the decoder could not recognize the bytes
	Flags    Flags
	Register Register
	RM       RM
	Mode     uint8
	Disp     int16
	Data     uint16 // immediate, fixed port number, or RET pop-count
	Input    [MaxLength]byte
}

// Valid reports whether the decoder recognized the encoding.
func (ins Instruction) Valid() bool { return ins.Length > 0 }
