package asm

// Opcode identifies an eon CPU mnemonic.
type Opcode int

const (
	OP_ADD     = Opcode(0)
	OP_AND     = Opcode(1)
	OP_BEQ     = Opcode(2)
	OP_BLE     = Opcode(3)
	OP_BLEI    = Opcode(4)
	OP_BLT     = Opcode(5)
	OP_BLTI    = Opcode(6)
	OP_BNE     = Opcode(7)
	OP_BNZ     = Opcode(8)
	OP_BRA     = Opcode(9)
	OP_BSWAP   = Opcode(10)
	OP_BZ      = Opcode(11)
	OP_CSETN   = Opcode(12)
	OP_CSETNN  = Opcode(13)
	OP_CSETNP  = Opcode(14)
	OP_CSETNZ  = Opcode(15)
	OP_CSETP   = Opcode(16)
	OP_CSETZ   = Opcode(17)
	OP_ENTER   = Opcode(18)
	OP_ERET    = Opcode(19)
	OP_GET     = Opcode(20)
	OP_ILLEGAL = Opcode(21)
	OP_IN      = Opcode(22)
	OP_IRET    = Opcode(23)
	OP_ISTAT   = Opcode(24)
	OP_JAL     = Opcode(25)
	OP_JMP     = Opcode(26)
	OP_LD1     = Opcode(27)
	OP_LD1I    = Opcode(28)
	OP_LD2     = Opcode(29)
	OP_LD2I    = Opcode(30)
	OP_LD4     = Opcode(31)
	OP_LD4I    = Opcode(32)
	OP_LD8     = Opcode(33)
	OP_LEA     = Opcode(34)
	OP_LI      = Opcode(35)
	OP_MV      = Opcode(36)
	OP_NOP     = Opcode(37)
	OP_OR      = Opcode(38)
	OP_OUT     = Opcode(39)
	OP_RET     = Opcode(40)
	OP_SET     = Opcode(41)
	OP_SEXT1   = Opcode(42)
	OP_SEXT2   = Opcode(43)
	OP_SEXT4   = Opcode(44)
	OP_SHL     = Opcode(45)
	OP_SHR     = Opcode(46)
	OP_SHRI    = Opcode(47)
	OP_SIGNAL  = Opcode(48)
	OP_SRET    = Opcode(49)
	OP_ST1     = Opcode(50)
	OP_ST2     = Opcode(51)
	OP_ST4     = Opcode(52)
	OP_ST8     = Opcode(53)
	OP_SUB     = Opcode(54)
	OP_SYSCALL = Opcode(55)
	OP_WAIT    = Opcode(56)
	OP_XOR     = Opcode(57)
	OP_ZEXT1   = Opcode(58)
	OP_ZEXT2   = Opcode(59)
	OP_ZEXT4   = Opcode(60)
)

// opcodeMap maps upper-case mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"ADD":     OP_ADD,
	"AND":     OP_AND,
	"BEQ":     OP_BEQ,
	"BLE":     OP_BLE,
	"BLEI":    OP_BLEI,
	"BLT":     OP_BLT,
	"BLTI":    OP_BLTI,
	"BNE":     OP_BNE,
	"BNZ":     OP_BNZ,
	"BRA":     OP_BRA,
	"BSWAP":   OP_BSWAP,
	"BZ":      OP_BZ,
	"CSETN":   OP_CSETN,
	"CSETNN":  OP_CSETNN,
	"CSETNP":  OP_CSETNP,
	"CSETNZ":  OP_CSETNZ,
	"CSETP":   OP_CSETP,
	"CSETZ":   OP_CSETZ,
	"ENTER":   OP_ENTER,
	"ERET":    OP_ERET,
	"GET":     OP_GET,
	"ILLEGAL": OP_ILLEGAL,
	"IN":      OP_IN,
	"IRET":    OP_IRET,
	"ISTAT":   OP_ISTAT,
	"JAL":     OP_JAL,
	"JMP":     OP_JMP,
	"LD1":     OP_LD1,
	"LD1I":    OP_LD1I,
	"LD2":     OP_LD2,
	"LD2I":    OP_LD2I,
	"LD4":     OP_LD4,
	"LD4I":    OP_LD4I,
	"LD8":     OP_LD8,
	"LEA":     OP_LEA,
	"LI":      OP_LI,
	"MV":      OP_MV,
	"NOP":     OP_NOP,
	"OR":      OP_OR,
	"OUT":     OP_OUT,
	"RET":     OP_RET,
	"SET":     OP_SET,
	"SEXT1":   OP_SEXT1,
	"SEXT2":   OP_SEXT2,
	"SEXT4":   OP_SEXT4,
	"SHL":     OP_SHL,
	"SHR":     OP_SHR,
	"SHRI":    OP_SHRI,
	"SIGNAL":  OP_SIGNAL,
	"SRET":    OP_SRET,
	"ST1":     OP_ST1,
	"ST2":     OP_ST2,
	"ST4":     OP_ST4,
	"ST8":     OP_ST8,
	"SUB":     OP_SUB,
	"SYSCALL": OP_SYSCALL,
	"WAIT":    OP_WAIT,
	"XOR":     OP_XOR,
	"ZEXT1":   OP_ZEXT1,
	"ZEXT2":   OP_ZEXT2,
	"ZEXT4":   OP_ZEXT4,
}

// REG_SP is the stack pointer register.
const REG_SP = 15

// registerMap maps upper-case register names to register numbers.
var registerMap = map[string]int{
	"R0":  0,
	"R1":  1,
	"R2":  2,
	"R3":  3,
	"R4":  4,
	"R5":  5,
	"R6":  6,
	"R7":  7,
	"R8":  8,
	"R9":  9,
	"R10": 10,
	"R11": 11,
	"R12": 12,
	"R13": 13,
	"R14": 14,
	"SP":  REG_SP,
}

// ArgKind is the kind of an instruction operand.
type ArgKind int

//go:generate go tool stringer -linecomment -type=ArgKind
const (
	ARG_NONE = ArgKind(0) // _
	ARG_REG  = ArgKind(1) // reg
	ARG_IMM  = ArgKind(2) // imm
	ARG_MEM  = ArgKind(3) // mem
)

// Encoding selects how a template is turned into bytes.
type Encoding int

//go:generate go tool stringer -linecomment -type=Encoding
const (
	ENC_FIXED          = Encoding(0)  // fixed
	ENC_REG3           = Encoding(1)  // reg3
	ENC_REG3_SUGAR     = Encoding(2)  // reg3s
	ENC_REG2_IMM       = Encoding(3)  // reg2imm
	ENC_REG2_IMM_SUGAR = Encoding(4)  // reg2imms
	ENC_UNARY          = Encoding(5)  // unary
	ENC_UNARY_SUGAR    = Encoding(6)  // unarys
	ENC_IMM            = Encoding(7)  // imm
	ENC_BRANCH         = Encoding(8)  // branch
	ENC_BRANCH_COND    = Encoding(9)  // bcond
	ENC_BRANCH_ZERO    = Encoding(10) // bzero
	ENC_MEM            = Encoding(11) // mem
	ENC_STORE          = Encoding(12) // store
	ENC_JUMP           = Encoding(13) // jump
	ENC_LEA            = Encoding(14) // lea
	ENC_LEA_MEM        = Encoding(15) // leamem
	ENC_LI             = Encoding(16) // li
	ENC_REG1           = Encoding(17) // reg1
	ENC_MOVE           = Encoding(18) // move
	ENC_GET            = Encoding(19) // get
	ENC_SET            = Encoding(20) // set
)

// Template is one accepted operand shape of an opcode.
type Template struct {
	Op   Opcode
	Args []ArgKind
	Kind Encoding
	Word uint16 // Base instruction word.
}

// Operand shapes of the template table.
var (
	argsNone = []ArgKind{}
	argsN    = []ArgKind{ARG_IMM}
	argsR    = []ArgKind{ARG_REG}
	argsRR   = []ArgKind{ARG_REG, ARG_REG}
	argsRN   = []ArgKind{ARG_REG, ARG_IMM}
	argsNR   = []ArgKind{ARG_IMM, ARG_REG}
	argsRM   = []ArgKind{ARG_REG, ARG_MEM}
	argsMR   = []ArgKind{ARG_MEM, ARG_REG}
	argsRRR  = []ArgKind{ARG_REG, ARG_REG, ARG_REG}
	argsRRN  = []ArgKind{ARG_REG, ARG_REG, ARG_IMM}
)

var templates = []Template{
	{OP_ADD, argsRRR, ENC_REG3, 0x4000},
	{OP_ADD, argsRRN, ENC_REG2_IMM, 0x3004},
	{OP_ADD, argsRN, ENC_REG2_IMM_SUGAR, 0x3004},
	{OP_ADD, argsRR, ENC_REG3_SUGAR, 0x4000},
	{OP_AND, argsRRR, ENC_REG3, 0x8000},
	{OP_AND, argsRRN, ENC_REG2_IMM, 0x3008},
	{OP_AND, argsRN, ENC_REG2_IMM_SUGAR, 0x3008},
	{OP_AND, argsRR, ENC_REG3_SUGAR, 0x8000},
	{OP_BEQ, argsRRN, ENC_BRANCH_COND, 0x2000},
	{OP_BLE, argsRRN, ENC_BRANCH_COND, 0x2004},
	{OP_BLEI, argsRRN, ENC_BRANCH_COND, 0x2005},
	{OP_BLT, argsRRN, ENC_BRANCH_COND, 0x2002},
	{OP_BLTI, argsRRN, ENC_BRANCH_COND, 0x2003},
	{OP_BNE, argsRRN, ENC_BRANCH_COND, 0x2001},
	{OP_BNZ, argsRN, ENC_BRANCH_ZERO, 0x20f1},
	{OP_BRA, argsN, ENC_BRANCH, 0x2ff0},
	{OP_BSWAP, argsRR, ENC_UNARY, 0x0004},
	{OP_BSWAP, argsR, ENC_UNARY_SUGAR, 0x0004},
	{OP_BZ, argsRN, ENC_BRANCH_ZERO, 0x20f0},
	{OP_CSETN, argsRR, ENC_UNARY, 0x000a},
	{OP_CSETN, argsR, ENC_UNARY_SUGAR, 0x000a},
	{OP_CSETNN, argsRR, ENC_UNARY, 0x000b},
	{OP_CSETNN, argsR, ENC_UNARY_SUGAR, 0x000b},
	{OP_CSETNP, argsRR, ENC_UNARY, 0x000d},
	{OP_CSETNP, argsR, ENC_UNARY_SUGAR, 0x000d},
	{OP_CSETNZ, argsRR, ENC_UNARY, 0x0009},
	{OP_CSETNZ, argsR, ENC_UNARY_SUGAR, 0x0009},
	{OP_CSETP, argsRR, ENC_UNARY, 0x000c},
	{OP_CSETP, argsR, ENC_UNARY_SUGAR, 0x000c},
	{OP_CSETZ, argsRR, ENC_UNARY, 0x0008},
	{OP_CSETZ, argsR, ENC_UNARY_SUGAR, 0x0008},
	{OP_ENTER, argsN, ENC_IMM, 0x0ff8},
	{OP_ERET, argsNone, ENC_FIXED, 0x0ff6},
	{OP_GET, argsRN, ENC_GET, 0x0f08},
	{OP_ILLEGAL, argsNone, ENC_FIXED, 0x0ff0},
	{OP_IN, argsRR, ENC_UNARY, 0x000e},
	{OP_IRET, argsNone, ENC_FIXED, 0x0ff4},
	{OP_ISTAT, argsR, ENC_REG1, 0x0f04},
	{OP_JAL, argsN, ENC_JUMP, 0x0ffd},
	{OP_JAL, argsR, ENC_REG1, 0x0f01},
	{OP_JMP, argsN, ENC_JUMP, 0x0ffc},
	{OP_JMP, argsR, ENC_REG1, 0x0f00},
	{OP_LD1, argsRM, ENC_MEM, 0x1000},
	{OP_LD1I, argsRM, ENC_MEM, 0x1001},
	{OP_LD2, argsRM, ENC_MEM, 0x1002},
	{OP_LD2I, argsRM, ENC_MEM, 0x1003},
	{OP_LD4, argsRM, ENC_MEM, 0x1004},
	{OP_LD4I, argsRM, ENC_MEM, 0x1005},
	{OP_LD8, argsRM, ENC_MEM, 0x1006},
	{OP_LEA, argsRN, ENC_LEA, 0x0f0d},
	{OP_LEA, argsRM, ENC_LEA_MEM, 0x0f0a},
	{OP_LI, argsRN, ENC_LI, 0x0f0c},
	{OP_MV, argsRR, ENC_MOVE, 0x90f0},
	{OP_NOP, argsNone, ENC_FIXED, 0x0ff1},
	{OP_OR, argsRRR, ENC_REG3, 0x9000},
	{OP_OR, argsRRN, ENC_REG2_IMM, 0x3009},
	{OP_OR, argsRN, ENC_REG2_IMM_SUGAR, 0x3009},
	{OP_OR, argsRR, ENC_REG3_SUGAR, 0x9000},
	{OP_OUT, argsRR, ENC_UNARY, 0x000f},
	{OP_RET, argsNone, ENC_FIXED, 0x0fe0},
	{OP_SET, argsNR, ENC_SET, 0x0f09},
	{OP_SEXT1, argsRR, ENC_UNARY, 0x0005},
	{OP_SEXT1, argsR, ENC_UNARY_SUGAR, 0x0005},
	{OP_SEXT2, argsRR, ENC_UNARY, 0x0006},
	{OP_SEXT2, argsR, ENC_UNARY_SUGAR, 0x0006},
	{OP_SEXT4, argsRR, ENC_UNARY, 0x0007},
	{OP_SEXT4, argsR, ENC_UNARY_SUGAR, 0x0007},
	{OP_SHL, argsRRR, ENC_REG3, 0xb000},
	{OP_SHL, argsRRN, ENC_REG2_IMM, 0x300b},
	{OP_SHL, argsRN, ENC_REG2_IMM_SUGAR, 0x300b},
	{OP_SHL, argsRR, ENC_REG3_SUGAR, 0xb000},
	{OP_SHR, argsRRR, ENC_REG3, 0xc000},
	{OP_SHR, argsRRN, ENC_REG2_IMM, 0x300c},
	{OP_SHR, argsRN, ENC_REG2_IMM_SUGAR, 0x300c},
	{OP_SHR, argsRR, ENC_REG3_SUGAR, 0xc000},
	{OP_SHRI, argsRRR, ENC_REG3, 0xd000},
	{OP_SHRI, argsRRN, ENC_REG2_IMM, 0x300d},
	{OP_SHRI, argsRN, ENC_REG2_IMM_SUGAR, 0x300d},
	{OP_SHRI, argsRR, ENC_REG3_SUGAR, 0xd000},
	{OP_SIGNAL, argsN, ENC_IMM, 0x0ff9},
	{OP_SRET, argsNone, ENC_FIXED, 0x0ff5},
	{OP_ST1, argsMR, ENC_STORE, 0x1008},
	{OP_ST2, argsMR, ENC_STORE, 0x1009},
	{OP_ST4, argsMR, ENC_STORE, 0x100a},
	{OP_ST8, argsMR, ENC_STORE, 0x100b},
	{OP_SUB, argsRRR, ENC_REG3, 0x5000},
	{OP_SUB, argsRRN, ENC_REG2_IMM, 0x3005},
	{OP_SUB, argsRN, ENC_REG2_IMM_SUGAR, 0x3005},
	{OP_SUB, argsRR, ENC_REG3_SUGAR, 0x5000},
	{OP_SYSCALL, argsNone, ENC_FIXED, 0x0ff2},
	{OP_WAIT, argsNone, ENC_FIXED, 0x0ff3},
	{OP_XOR, argsRRR, ENC_REG3, 0xa000},
	{OP_XOR, argsRRN, ENC_REG2_IMM, 0x300a},
	{OP_XOR, argsRN, ENC_REG2_IMM_SUGAR, 0x300a},
	{OP_XOR, argsRR, ENC_REG3_SUGAR, 0xa000},
	{OP_ZEXT1, argsRR, ENC_UNARY, 0x0001},
	{OP_ZEXT1, argsR, ENC_UNARY_SUGAR, 0x0001},
	{OP_ZEXT2, argsRR, ENC_UNARY, 0x0002},
	{OP_ZEXT2, argsR, ENC_UNARY_SUGAR, 0x0002},
	{OP_ZEXT4, argsRR, ENC_UNARY, 0x0003},
	{OP_ZEXT4, argsR, ENC_UNARY_SUGAR, 0x0003},
}

// Operand is a parsed instruction operand.
type Operand struct {
	Kind    ArgKind
	Reg     int   // Register number of ARG_REG and ARG_MEM.
	Value   int32 // Value of ARG_IMM, offset of ARG_MEM.
	Forward bool  // Value depends on a label not yet defined.
}

// Match returns the template of op accepting exactly the kinds of args.
func Match(op Opcode, args []Operand) *Template {
	for n := range templates {
		tmpl := &templates[n]
		if tmpl.Op != op || len(tmpl.Args) != len(args) {
			continue
		}
		ok := true
		for i, kind := range tmpl.Args {
			if args[i].Kind != kind {
				ok = false
				break
			}
		}
		if ok {
			return tmpl
		}
	}
	return nil
}
