package insts

// This file implements formats V (jump), VI (3-operand immediate/register),
// and VII (32-bit load/store), the first three members of the 4-byte
// dispatch cascade.

// isFormatV recognizes JR/JARL's 4-byte encoding: word1 bits [10:6] equal
// 0x1E, with reg2==0 selecting JR and reg2!=0 selecting JARL. Word2's low
// bit must be 0; when it is 1 the same word1 bit pattern instead belongs to
// format VII's LDBU (0x3D) or format XIV's 48-bit load/store family, both
// of which require it set.
func (d *Decoder) isFormatV(word1, word2 uint32) bool {
	return opcodeField(word1, 6, 10) == 0x1E && word2&1 == 0
}

func (d *Decoder) decodeFormatV(word1, word2 uint32, inst *Instruction) bool {
	inst.Format = FormatVJump
	inst.ByteSize = 4

	r2 := reg2(word1)
	inst.Reg2 = r2
	disp := sext(disp22(word1, word2), 22)
	inst.Disp = disp
	target := uint32(int64(inst.Addr) + int64(disp))

	if r2 == 0 {
		inst.Op = OpJR
		inst.Mnemonic = OpJR.String()
		inst.Operands = hexAddr(target)
	} else {
		inst.Op = OpJARL
		inst.Mnemonic = OpJARL.String()
		inst.Operands = hexAddr(target) + ", " + gpr(r2)
	}
	return true
}

// isFormatVI recognizes the 3-operand immediate/register family: word1's
// opcode field (bits [10:5]) matches one of the reg2-nonzero 3-operand
// opcodes, or (when reg2==0) one of the reg2-zero opcodes (JR/JARL/JMP/MOV32).
// JMP additionally requires word2's low bit clear; when it is set the same
// opcode/reg2==0 pattern belongs to format VII's LOOP instead.
func (d *Decoder) isFormatVI(word1, word2 uint32) bool {
	opcode := opcodeField(word1, 5, 10)
	if reg2(word1) != 0 {
		switch opcode {
		case opcodeADDI, opcodeMOVEA, opcodeSATSUBI, opcodeANDI, opcodeMULHI, opcodeMOVHI, opcodeORI, opcodeXORI:
			return true
		}
		return false
	}
	switch opcode {
	case opcodeJRJARL, opcodeMOV32:
		return true
	case opcodeJMP:
		return word2&1 == 0
	}
	return false
}

// decodeFormatVI decodes the 3-operand immediate/register family. The
// reg2!=0 forms are 4 bytes; the reg2==0 forms (JR/JARL, JMP, MOV) pull a
// third halfword through p for a 32-bit value and are 6 bytes.
func (d *Decoder) decodeFormatVI(word1, word2 uint32, inst *Instruction, p *puller) bool {
	inst.Format = FormatVI3Operand
	inst.ByteSize = 4

	opcode := opcodeField(word1, 5, 10)
	r1, r2v := reg1(word1), reg2(word1)
	inst.Reg1, inst.Reg2 = r1, r2v

	if r2v != 0 {
		switch opcode {
		case opcodeADDI:
			inst.Op = OpADDI
			inst.Imm = sext(imm16(word2), 16)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeMOVEA:
			inst.Op = OpMOVEA
			inst.Imm = sext(imm16(word2), 16)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeSATSUBI:
			inst.Op = OpSATSUBI
			inst.Imm = sext(imm16(word2), 16)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeANDI:
			inst.Op = OpANDI
			inst.Imm = int32(imm16(word2))
			inst.Operands = hex32(imm16(word2)) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeMULHI:
			inst.Op = OpMULHI
			inst.Imm = sext(imm16(word2), 16)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeMOVHI:
			inst.Op = OpMOVHI
			inst.Imm = int32(imm16(word2))
			inst.Operands = hex32(imm16(word2)) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeORI:
			inst.Op = OpORI
			inst.Imm = int32(imm16(word2))
			inst.Operands = hex32(imm16(word2)) + ", " + gpr(r1) + ", " + gpr(r2v)
		case opcodeXORI:
			inst.Op = OpXORI
			inst.Imm = int32(imm16(word2))
			inst.Operands = hex32(imm16(word2)) + ", " + gpr(r1) + ", " + gpr(r2v)
		default:
			return false
		}
		inst.Mnemonic = inst.Op.String()
		return true
	}

	switch opcode {
	case opcodeJRJARL:
		word3, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		imm32 := imm16(word2) | word3<<16
		inst.Imm = int32(imm32)
		if r1 == 0 {
			inst.Op = OpJR
			inst.Operands = hex32(imm32)
		} else {
			inst.Op = OpJARL
			inst.Operands = hex32(imm32) + ", " + gpr(r1)
		}
	case opcodeJMP:
		if word2&1 != 0 {
			return false
		}
		word3, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		inst.Op = OpJMP
		imm32 := imm16(word2) | word3<<16
		inst.Imm = int32(imm32)
		inst.Operands = hex32(imm32)
	case opcodeMOV32:
		word3, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		inst.Op = OpMOV
		imm32 := imm16(word2) | word3<<16
		inst.Imm = int32(imm32)
		inst.Operands = hex32(imm32) + ", " + gpr(r1)
	default:
		return false
	}
	inst.Mnemonic = inst.Op.String()
	return true
}

// Format VII's opcode field values (word1 bits [10:5]). All live in the
// 0x30-0x3F cluster left free once formats III/IV_1 claim [0x18,0x2F]
// unconditionally; several are shared with other formats and with format
// VI, disambiguated by reg2's zero-ness and word2's low bit ("sub1").
const (
	opcodeLOOP     uint32 = 0x37 // reg2==0, sub1==1 (sub1==0 at this opcode/reg2 is VI's JMP)
	opcodeLDB      uint32 = 0x38
	opcodeLDHorLDW uint32 = 0x39 // sub1 selects LDH (0) or LDW (1)
	opcodeSTB      uint32 = 0x3A
	opcodeSTHorSTW uint32 = 0x3B // sub1 selects STH (0) or STW (1)
	opcodeLDBUorV  uint32 = 0x3D // reg2!=0 && sub1==1 -> LDBU; reg2==0 && word2&1==0 is format V
	opcodeLDBU2    uint32 = 0x3E // sub1==1 -> LDBU; also shared with format VIII/IX at sub1==0
	opcodeVIIMux   uint32 = 0x3F // reg2==0,sub1==1 -> BCOND; sub1==1 -> LDHU; ROTL/LDLW/STCW otherwise; shared with VIII-XII
)

func (d *Decoder) isFormatVII(word1, word2 uint32) bool {
	opcode := opcodeField(word1, 5, 10)
	sub1 := word2 & 1
	r2 := reg2(word1)
	switch opcode {
	case opcodeLOOP:
		return r2 == 0 && sub1 == 1
	case opcodeLDB, opcodeSTB, opcodeLDHorLDW, opcodeSTHorSTW:
		return true
	case opcodeLDBUorV:
		return r2 != 0 && sub1 == 1
	case opcodeLDBU2:
		return sub1 == 1
	case opcodeVIIMux:
		if sub1 == 1 {
			return true
		}
		sub2 := extract(word2, 0, 11)
		if r2 == 0 {
			return sub2 == 0x378 || sub2 == 0x37A
		}
		return sub2 == 0xC4 || sub2 == 0xC6
	}
	return false
}

func (d *Decoder) decodeFormatVII(word1, word2 uint32, inst *Instruction) bool {
	inst.Format = FormatVIILoadStore32
	inst.ByteSize = 4

	opcode := opcodeField(word1, 5, 10)
	r1, r2v := reg1(word1), reg2(word1)
	inst.Reg1, inst.Reg2 = r1, r2v

	disp16 := sext(imm16(word2), 16)

	switch opcode {
	case opcodeLOOP:
		inst.Op = OpLOOP
		inst.Imm = int32(imm16(word2) &^ 1)
		inst.Operands = gpr(r1) + ", " + itoa32(inst.Imm)
		inst.Mnemonic = inst.Op.String()
		return true
	case opcodeLDB:
		inst.Op = OpLDB
		inst.Disp = disp16
	case opcodeSTB:
		inst.Op = OpSTB
		inst.Disp = disp16
	case opcodeLDHorLDW:
		masked := uint32(disp16) &^ 1
		if disp16&1 == 0 {
			inst.Op = OpLDH
		} else {
			inst.Op = OpLDW
		}
		inst.Disp = sext(masked, 16)
	case opcodeSTHorSTW:
		masked := uint32(disp16) &^ 1
		if disp16&1 == 0 {
			inst.Op = OpSTH
		} else {
			inst.Op = OpSTW
		}
		inst.Disp = sext(masked, 16)
	case opcodeLDBUorV:
		inst.Op = OpLDBU
		inst.Disp = disp16 &^ 1
	case opcodeLDBU2:
		inst.Op = OpLDBU
		inst.Disp = disp16 &^ 1
	case opcodeVIIMux:
		sub1 := word2 & 1
		if r2v == 0 && sub1 == 1 {
			cond := cond3(word1)
			if int(cond) >= len(condSuffixes) {
				return false
			}
			disp := sext(((imm16(word2)>>1)|(extract(word1, 4, 1)<<15))<<1, 17)
			inst.Disp = disp
			inst.Cond = cond
			target := uint32(int64(inst.Addr) + int64(disp))
			inst.Op = OpBCOND
			inst.Mnemonic = "b" + condSuffixes[cond]
			inst.Operands = hexAddr(target)
			return true
		}
		if sub1 == 1 {
			inst.Op = OpLDHU
			inst.Disp = disp16 &^ 1
			inst.Mnemonic = inst.Op.String()
			inst.Operands = itoa32(inst.Disp) + "[" + gpr(r1) + "], " + gpr(r2v)
			return true
		}
		if r2v == 0 {
			sub2 := extract(word2, 0, 11)
			r3 := reg3(word2)
			inst.Reg3 = r3
			if sub2 == 0x378 {
				inst.Op = OpLDLW
				inst.Mnemonic = inst.Op.String()
				inst.Operands = "[" + gpr(r1) + "], " + gpr(r3)
			} else {
				inst.Op = OpSTCW
				inst.Mnemonic = inst.Op.String()
				inst.Operands = gpr(r3) + ", [" + gpr(r1) + "]"
			}
			return true
		}
		inst.Op = OpROTL
		sub2 := extract(word2, 0, 11)
		r3 := reg3(word2)
		inst.Reg3 = r3
		inst.Mnemonic = inst.Op.String()
		if sub2 == 0xC4 {
			inst.Imm = int32(r1)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r2v) + ", " + gpr(r3)
		} else {
			inst.Operands = gpr(r1) + ", " + gpr(r2v) + ", " + gpr(r3)
		}
		return true
	default:
		return false
	}

	inst.Mnemonic = inst.Op.String()
	inst.Operands = itoa32(inst.Disp) + "[" + gpr(r1) + "], " + gpr(r2v)
	return true
}
