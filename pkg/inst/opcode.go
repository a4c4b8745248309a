// Package inst holds the closed identity of an 8086 instruction: its
// opcode enumeration, register/effective-address tagging, the flags
// bitfield, and the fixed instruction record the decoders fill in.
package inst

// Opcode is a compact identifier for an 8086 instruction, independent of
// the raw byte encoding that produced it (several byte sequences can
// decode to the same Opcode, e.g. the 8-bit and 16-bit MOV-immediate
// forms both produce OpMov).
type Opcode uint8

const (
	OpUnknown Opcode = iota

	OpMov
	OpPush
	OpPop
	OpXchg
	OpIn
	OpOut
	OpXlat
	OpLea
	OpLds
	OpLes
	OpLahf
	OpSahf
	OpPushf
	OpPopf

	OpAdd
	OpAdc
	OpSub
	OpSbb
	OpCmp
	OpAnd
	OpOr
	OpXor
	OpTest
	OpNot
	OpNeg
	OpInc
	OpDec
	OpMul
	OpImul
	OpDiv
	OpIdiv
	OpAaa
	OpAas
	OpAad
	OpAam
	OpDaa
	OpDas
	OpCbw
	OpCwd

	OpShl
	OpShr
	OpSar
	OpRol
	OpRor
	OpRcl
	OpRcr

	OpCall
	OpCallf
	OpJmp
	OpJmpf
	OpRet
	OpRetf
	OpInt
	OpInt3
	OpInto
	OpIret

	OpJe
	OpJl
	OpJle
	OpJb
	OpJbe
	OpJp
	OpJo
	OpJs
	OpJne
	OpJge
	OpJg
	OpJae
	OpJa
	OpJnp
	OpJno
	OpJns
	OpLoop
	OpLoopz
	OpLoopnz
	OpJcxz

	OpMovsb
	OpMovsw
	OpCmpsb
	OpCmpsw
	OpScasb
	OpScasw
	OpLodsb
	OpLodsw
	OpStosb
	OpStosw

	OpClc
	OpCmc
	OpStc
	OpCld
	OpStd
	OpCli
	OpSti
	OpHlt
	OpWait
	OpNop

	OpLock
	OpRep
	OpSegment

	opcodeCount
)

var mnemonics = [opcodeCount]string{
	OpUnknown: "???",

	OpMov: "mov", OpPush: "push", OpPop: "pop", OpXchg: "xchg",
	OpIn: "in", OpOut: "out", OpXlat: "xlat", OpLea: "lea",
	OpLds: "lds", OpLes: "les", OpLahf: "lahf", OpSahf: "sahf",
	OpPushf: "pushf", OpPopf: "popf",

	OpAdd: "add", OpAdc: "adc", OpSub: "sub", OpSbb: "sbb", OpCmp: "cmp",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpTest: "test",
	OpNot: "not", OpNeg: "neg", OpInc: "inc", OpDec: "dec",
	OpMul: "mul", OpImul: "imul", OpDiv: "div", OpIdiv: "idiv",
	OpAaa: "aaa", OpAas: "aas", OpAad: "aad", OpAam: "aam",
	OpDaa: "daa", OpDas: "das", OpCbw: "cbw", OpCwd: "cwd",

	OpShl: "shl", OpShr: "shr", OpSar: "sar",
	OpRol: "rol", OpRor: "ror", OpRcl: "rcl", OpRcr: "rcr",

	OpCall: "call", OpCallf: "call", OpJmp: "jmp", OpJmpf: "jmp",
	OpRet: "ret", OpRetf: "retf", OpInt: "int", OpInt3: "int3",
	OpInto: "into", OpIret: "iret",

	OpJe: "je", OpJl: "jl", OpJle: "jle", OpJb: "jb", OpJbe: "jbe",
	OpJp: "jp", OpJo: "jo", OpJs: "js", OpJne: "jne", OpJge: "jge",
	OpJg: "jg", OpJae: "jae", OpJa: "ja", OpJnp: "jnp", OpJno: "jno",
	OpJns: "jns", OpLoop: "loop", OpLoopz: "loopz", OpLoopnz: "loopnz",
	OpJcxz: "jcxz",

	OpMovsb: "movsb", OpMovsw: "movsw", OpCmpsb: "cmpsb", OpCmpsw: "cmpsw",
	OpScasb: "scasb", OpScasw: "scasw", OpLodsb: "lodsb", OpLodsw: "lodsw",
	OpStosb: "stosb", OpStosw: "stosw",

	OpClc: "clc", OpCmc: "cmc", OpStc: "stc", OpCld: "cld", OpStd: "std",
	OpCli: "cli", OpSti: "sti", OpHlt: "hlt", OpWait: "wait", OpNop: "nop",

	OpLock: "lock", OpRep: "rep", OpSegment: "",
}

// Mnemonic returns the lowercase NASM mnemonic for op.
func Mnemonic(op Opcode) string {
	if int(op) >= len(mnemonics) {
		return mnemonics[OpUnknown]
	}
	return mnemonics[op]
}

// IsPrefix reports whether op is a carry-over prefix (LOCK, REP/REPNE, or
// a segment override) rather than a real instruction: its decoder never
// emits a text line on its own.
func IsPrefix(op Opcode) bool {
	return op == OpLock || op == OpRep || op == OpSegment
}
