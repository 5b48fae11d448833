package insts

import "fmt"

// Op identifies a decoded V850 mnemonic. The zero value, OpUnknown, never
// appears in a successfully decoded Instruction.
type Op uint16

// The exhaustive V850 mnemonic enumeration.
const (
	OpUnknown Op = iota
	OpMOV
	OpNOT
	OpDIVH
	OpJMP
	OpSATSUBR
	OpSATSUB
	OpSATADD
	OpMULH
	OpOR
	OpXOR
	OpAND
	OpTST
	OpSUBR
	OpSUB
	OpADD
	OpCMP
	OpSLDB
	OpSSTB
	OpSLDH
	OpSSTH
	OpSLDW
	OpSSTW
	OpBCOND
	OpADDI
	OpMOVEA
	OpMOVHI
	OpSATSUBI
	OpORI
	OpXORI
	OpANDI
	OpMULHI
	OpLDB
	OpLDH
	OpLDW
	OpSTB
	OpSTH
	OpSTW
	OpLDBU
	OpLDHU
	OpLDDW
	OpSLDBU
	OpSLDHU
	OpSTDW
	OpMULU
	OpMAC
	OpMACU
	OpADF
	OpSBF
	OpBINS
	OpBSH
	OpBSW
	OpCMOV
	OpHSH
	OpHSW
	OpROTL
	OpSAR
	OpSASF
	OpSETF
	OpSHL
	OpSHR
	OpSXB
	OpSXH
	OpZXB
	OpZXH
	OpSCH0L
	OpSCH0R
	OpSCH1L
	OpSCH1R
	OpDIVHU
	OpDIVU
	OpDIVQ
	OpDIVQU
	OpDIV
	OpMUL
	OpLOOP
	OpSET1
	OpNOT1
	OpCLR1
	OpTST1
	OpJARL
	OpJR
	OpCALLT
	OpCAXI
	OpCLL
	OpCTRET
	OpDI
	OpDISPOSE
	OpEI
	OpEIRET
	OpFERET
	OpFETRAP
	OpHALT
	OpLDSR
	OpLDLW
	OpNOP
	OpPOPSP
	OpPREPARE
	OpPUSHSP
	OpRIE
	OpSNOOZE
	OpSTSR
	OpSTCW
	OpSWITCH
	OpSYNCE
	OpSYNCI
	OpSYNCM
	OpSYNCP
	OpSYSCALL
	OpTRAP
	OpCACHE
	OpPREF
	opCount
)

// mnemonicTable maps each Op to its printable mnemonic text. Most entries
// are plain lowercase; the 16/32-bit load/store family uses the
// conventional dotted V850 spelling (ld.b, st.dw, sld.hu, ldl.w, stc.w...).
var mnemonicTable = [opCount]string{
	OpMOV:     "mov",
	OpNOT:     "not",
	OpDIVH:    "divh",
	OpJMP:     "jmp",
	OpSATSUBR: "satsubr",
	OpSATSUB:  "satsub",
	OpSATADD:  "satadd",
	OpMULH:    "mulh",
	OpOR:      "or",
	OpXOR:     "xor",
	OpAND:     "and",
	OpTST:     "tst",
	OpSUBR:    "subr",
	OpSUB:     "sub",
	OpADD:     "add",
	OpCMP:     "cmp",
	OpSLDB:    "sld.b",
	OpSSTB:    "sst.b",
	OpSLDH:    "sld.h",
	OpSSTH:    "sst.h",
	OpSLDW:    "sld.w",
	OpSSTW:    "sst.w",
	OpBCOND:   "b", // unused directly; BCOND mnemonic is built as "b"+conds[cond]
	OpADDI:    "addi",
	OpMOVEA:   "movea",
	OpMOVHI:   "movhi",
	OpSATSUBI: "satsubi",
	OpORI:     "ori",
	OpXORI:    "xori",
	OpANDI:    "andi",
	OpMULHI:   "mulhi",
	OpLDB:     "ld.b",
	OpLDH:     "ld.h",
	OpLDW:     "ld.w",
	OpSTB:     "st.b",
	OpSTH:     "st.h",
	OpSTW:     "st.w",
	OpLDBU:    "ld.bu",
	OpLDHU:    "ld.hu",
	OpLDDW:    "ld.dw",
	OpSLDBU:   "sld.bu",
	OpSLDHU:   "sld.hu",
	OpSTDW:    "st.dw",
	OpMULU:    "mulu",
	OpMAC:     "mac",
	OpMACU:    "macu",
	OpADF:     "adf",
	OpSBF:     "sbf",
	OpBINS:    "bins",
	OpBSH:     "bsh",
	OpBSW:     "bsw",
	OpCMOV:    "cmov",
	OpHSH:     "hsh",
	OpHSW:     "hsw",
	OpROTL:    "rotl",
	OpSAR:     "sar",
	OpSASF:    "sasf",
	OpSETF:    "setf",
	OpSHL:     "shl",
	OpSHR:     "shr",
	OpSXB:     "sxb",
	OpSXH:     "sxh",
	OpZXB:     "zxb",
	OpZXH:     "zxh",
	OpSCH0L:   "sch0l",
	OpSCH0R:   "sch0r",
	OpSCH1L:   "sch1l",
	OpSCH1R:   "sch1r",
	OpDIVHU:   "divhu",
	OpDIVU:    "divu",
	OpDIVQ:    "divq",
	OpDIVQU:   "divqu",
	OpDIV:     "div",
	OpMUL:     "mul",
	OpLOOP:    "loop",
	OpSET1:    "set1",
	OpNOT1:    "not1",
	OpCLR1:    "clr1",
	OpTST1:    "tst1",
	OpJARL:    "jarl",
	OpJR:      "jr",
	OpCALLT:   "callt",
	OpCAXI:    "caxi",
	OpCLL:     "cll",
	OpCTRET:   "ctret",
	OpDI:      "di",
	OpDISPOSE: "dispose",
	OpEI:      "ei",
	OpEIRET:   "eiret",
	OpFERET:   "feret",
	OpFETRAP:  "fetrap",
	OpHALT:    "halt",
	OpLDSR:    "ldsr",
	OpLDLW:    "ldl.w",
	OpNOP:     "nop",
	OpPOPSP:   "popsp",
	OpPREPARE: "prepare",
	OpPUSHSP:  "pushsp",
	OpRIE:     "rie",
	OpSNOOZE:  "snooze",
	OpSTSR:    "stsr",
	OpSTCW:    "stc.w",
	OpSWITCH:  "switch",
	OpSYNCE:   "synce",
	OpSYNCI:   "synci",
	OpSYNCM:   "syncm",
	OpSYNCP:   "syncp",
	OpSYSCALL: "syscall",
	OpTRAP:    "trap",
	OpCACHE:   "cache",
	OpPREF:    "pref",
}

// String renders the printable mnemonic for op, or "???" for an out-of-range
// or unknown value.
func (op Op) String() string {
	if op == OpUnknown || int(op) >= len(mnemonicTable) {
		return "???"
	}
	return mnemonicTable[op]
}

// Format identifies which of the fourteen V850 encoding families produced
// an Instruction.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatIRegReg
	FormatIIImmReg
	FormatIIIConditionalBranch
	FormatIVLoadStore16
	FormatVJump
	FormatVI3Operand
	FormatVIILoadStore32
	FormatVIIIBit
	FormatIXExtended1
	FormatXExtended2
	FormatXIExtended3
	FormatXIIExtended4
	FormatXIIIStack
	FormatXIVLoadStore48
)

func (f Format) String() string {
	switch f {
	case FormatIRegReg:
		return "I_reg_reg"
	case FormatIIImmReg:
		return "II_imm_reg"
	case FormatIIIConditionalBranch:
		return "III_conditional_branch"
	case FormatIVLoadStore16:
		return "IV_load_store16"
	case FormatVJump:
		return "V_jump"
	case FormatVI3Operand:
		return "VI_3operand"
	case FormatVIILoadStore32:
		return "VII_load_store32"
	case FormatVIIIBit:
		return "VIII_bit"
	case FormatIXExtended1:
		return "IX_extended1"
	case FormatXExtended2:
		return "X_extended2"
	case FormatXIExtended3:
		return "XI_extended3"
	case FormatXIIExtended4:
		return "XII_extended4"
	case FormatXIIIStack:
		return "XIII_stack"
	case FormatXIVLoadStore48:
		return "XIV_load_store48"
	default:
		return "unknown"
	}
}

// condSuffixes is the 16-entry condition-code suffix table; a conditional
// branch's mnemonic text is always "b" + condSuffixes[cond].
var condSuffixes = [16]string{
	"v", "l", "e", "nh", "n", "r", "lt", "le",
	"nv", "nl", "ne", "h", "p", "sa", "ge", "gt",
}

// generalRegisterNames is the 32-entry general-register name table.
var generalRegisterNames = [32]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"r16", "r17", "r18", "r19", "r20", "r21", "r22", "r23",
	"r24", "r25", "r26", "r27", "r28", "r29", "r30", "r31",
}

// gpr renders a 5-bit register field as its conventional name.
func gpr(n uint8) string {
	if int(n) >= len(generalRegisterNames) {
		return fmt.Sprintf("r%d", n)
	}
	return generalRegisterNames[n]
}

// systemRegisterNames maps the base (regID) system register index, used
// when selID is 0 — the common case exercised by LDSR/STSR.
var systemRegisterNames = [32]string{
	0:  "eipc",
	1:  "eipsw",
	2:  "fepc",
	3:  "fepsw",
	4:  "ecr",
	5:  "psw",
	6:  "ctpc",
	7:  "ctpsw",
	8:  "dbpc",
	9:  "dbpsw",
	10: "ctbp",
	16: "dir",
	28: "eiic",
	29: "feic",
	31: "dbic",
}

// systemRegisterName renders a system register referenced by (regID, selID).
// Extended register groups (selID != 0) are named numerically, matching
// the original implementation's fallback for selector groups it does not
// have a dedicated mnemonic for.
func systemRegisterName(regID, selID uint8) string {
	if selID == 0 {
		if name, ok := func() (string, bool) {
			if int(regID) >= len(systemRegisterNames) {
				return "", false
			}
			name := systemRegisterNames[regID]
			return name, name != ""
		}(); ok {
			return name
		}
	}
	return fmt.Sprintf("sr%d.%d", regID, selID)
}

// registerListBits maps format XIII register-list bit position to general
// register index. The mapping is ascending (bit i -> r(20+i)).
// formatRegisterList walks the bits in order and does not sort, so this
// ascending table is what makes the printed list come out in ascending
// register order.
var registerListBits = [12]uint8{
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
}

// Format VI's reg2-nonzero opcode group. Word1's 6-bit opcode field (bits
// [10:5]) is unconditionally claimed by format III (0x2C-0x2F) or format
// IV_1 (0x18-0x2B) during the 2-byte dispatch pass, regardless of register
// values, so no 4-byte-or-longer format may use a value in [0x18,0x2F].
// These eight mnemonics occupy the free 0x30-0x37 cluster instead; exact
// historical opcode values for this group are not pinned down by the
// retrieved specification or source. See DESIGN.md.
const (
	opcodeADDI    uint32 = 0x30
	opcodeMOVEA   uint32 = 0x31 // shares 0x31 with MOV (reg2==0 lane)
	opcodeSATSUBI uint32 = 0x32
	opcodeANDI    uint32 = 0x33
	opcodeMULHI   uint32 = 0x34
	opcodeMOVHI   uint32 = 0x35
	opcodeORI     uint32 = 0x36
	opcodeXORI    uint32 = 0x37 // reg2!=0 lane; shares 0x37 with JMP/LOOP (reg2==0 lane)
)

// Format VI's reg2-zero opcode group.
const (
	opcodeJRJARL uint32 = 0x17
	opcodeJMP    uint32 = 0x37 // requires word2 bit 0 == 0; bit 0 == 1 selects LOOP (format VII)
	opcodeMOV32  uint32 = 0x31
)
