package insts

// This file implements formats VIII (bit manipulation) and IX/X (the two
// "extended" groups), the second group of the 4-byte dispatch cascade.

// Format VIII: opcode(word1,5,10) in {0x38,0x3E}. The 2-bit sub-opcode
// reuses reg2's own top two bits (word1 bits [15:14]), not a register
// value; bit position is reg2's low 3 bits (word1 bits [13:11]);
// displacement is word2 in full. Format VII's LDB claims every 0x38
// encoding and its LDBU every 0x3E encoding with word2 bit 0 set; VII is
// tried first in the cascade and wins those encodings, so CLR1 at 0x38 is
// never reached here — the same ambiguity present in the reference decoder.
func (d *Decoder) isFormatVIII(word1, word2 uint32) bool {
	opcode := opcodeField(word1, 5, 10)
	sub := extract(word1, 14, 2)
	switch {
	case opcode == 0x38 && sub == 2: // CLR1
		return true
	case opcode == 0x3E && (sub == 0 || sub == 1 || sub == 3): // SET1, NOT1, TST1
		return true
	}
	return false
}

func (d *Decoder) decodeFormatVIII(word1, word2 uint32, inst *Instruction) bool {
	inst.Format = FormatVIIIBit
	inst.ByteSize = 4

	opcode := opcodeField(word1, 5, 10)
	sub := extract(word1, 14, 2)
	r1 := reg1(word1)
	inst.Reg1 = r1
	bit := extract(word1, 11, 3)
	disp := sext(imm16(word2), 16)
	inst.Disp = disp

	switch {
	case opcode == 0x38 && sub == 2:
		inst.Op = OpCLR1
	case opcode == 0x3E && sub == 0:
		inst.Op = OpSET1
	case opcode == 0x3E && sub == 1:
		inst.Op = OpNOT1
	case opcode == 0x3E && sub == 3:
		inst.Op = OpTST1
	default:
		return false
	}
	inst.Mnemonic = inst.Op.String()
	inst.Operands = itoa32(int32(bit)) + ", " + itoa32(disp) + "[" + gpr(r1) + "]"
	return true
}

// Format IX: opcode(word1,5,10) in {0x3E,0x3F}. Requires word2's low bit 0.
// When reg1==0, a handful of 11-bit literals select the SCH0L/SCH0R/
// SCH1L/SCH1R string-search family regardless of opcode. Otherwise opcode
//0x3F selects the bit/shift/system-register group by exact word2 value or
// sub-field, and opcode 0x3E selects SASF/SETF by exact word2 value.
func (d *Decoder) isFormatIX(word1, word2 uint32) bool {
	opcode := opcodeField(word1, 5, 10)
	if opcode != 0x3E && opcode != 0x3F {
		return false
	}
	if word2&1 != 0 {
		return false
	}
	if reg1(word1) == 0 {
		switch extract(word2, 0, 11) &^ 1 {
		case 0x364, 0x360, 0x366, 0x362:
			return true
		}
		return false
	}
	if opcode == 0x3F {
		switch word2 {
		case 0xE4, 0xE2, 0xE6, 0xE0, 0xA0, 0xC0, 0x80:
			return true
		}
		subOpcode := extract(word2, 0, 11) &^ 1
		if subOpcode == 0x020 || subOpcode == 0x040 {
			return true
		}
		switch extract(word2, 4, 7) {
		case 0x09, 0x0B, 0x0D:
			return true
		}
		return false
	}
	return word2 == 0x200 || word2 == 0
}

func (d *Decoder) decodeFormatIX(word1, word2 uint32, inst *Instruction) bool {
	inst.Format = FormatIXExtended1
	inst.ByteSize = 4

	opcode := opcodeField(word1, 5, 10)
	r1, r2 := reg1(word1), reg2(word1)

	if r1 == 0 {
		r3 := reg3(word2)
		inst.Reg2, inst.Reg3 = r2, r3
		switch extract(word2, 0, 11) &^ 1 {
		case 0x364:
			inst.Op = OpSCH0L
		case 0x360:
			inst.Op = OpSCH0R
		case 0x366:
			inst.Op = OpSCH1L
		case 0x362:
			inst.Op = OpSCH1R
		default:
			return false
		}
		inst.Mnemonic = inst.Op.String()
		inst.Operands = gpr(r2) + ", " + gpr(r3)
		return true
	}

	if opcode == 0x3F {
		switch word2 {
		case 0xE4:
			inst.Op, inst.Reg1, inst.Reg2 = OpCLR1, r1, r2
			inst.Operands = gpr(r2) + "[" + gpr(r1) + "]"
		case 0xE2:
			inst.Op, inst.Reg1, inst.Reg2 = OpNOT1, r1, r2
			inst.Operands = gpr(r2) + "[" + gpr(r1) + "]"
		case 0xE6:
			inst.Op, inst.Reg1, inst.Reg2 = OpTST1, r1, r2
			inst.Operands = gpr(r2) + "[" + gpr(r1) + "]"
		case 0xE0:
			inst.Op, inst.Reg1, inst.Reg2 = OpSET1, r1, r2
			inst.Operands = gpr(r2) + "[" + gpr(r1) + "]"
		case 0xA0:
			inst.Op, inst.Reg1, inst.Reg2 = OpSAR, r1, r2
			inst.Operands = gpr(r1) + ", " + gpr(r2)
		case 0xC0:
			inst.Op, inst.Reg1, inst.Reg2 = OpSHL, r1, r2
			inst.Operands = gpr(r1) + ", " + gpr(r2)
		case 0x80:
			inst.Op, inst.Reg1, inst.Reg2 = OpSHR, r1, r2
			inst.Operands = gpr(r1) + ", " + gpr(r2)
		default:
			subOpcode := extract(word2, 0, 11) &^ 1
			r3 := reg3(word2)
			switch {
			case subOpcode == 0x020:
				inst.Op, inst.Reg1, inst.Reg2, inst.Reg3 = OpLDSR, r1, r2, r3
				inst.Operands = gpr(r1) + ", " + systemRegisterName(r2, selID(word2)) + ", " + itoa32(int32(r3))
			case subOpcode == 0x040:
				inst.Op, inst.Reg1, inst.Reg2, inst.Reg3 = OpSTSR, r1, r2, r3
				inst.Operands = systemRegisterName(r1, selID(word2)) + ", " + gpr(r2) + ", " + itoa32(int32(r3))
			case extract(word2, 4, 7) == 0x09 || extract(word2, 4, 7) == 0x0B || extract(word2, 4, 7) == 0x0D:
				inst.Op, inst.Reg2 = OpBINS, r2
				pos, width := binsPos(word2), binsWidth(word2)
				inst.Operands = gpr(r1) + ", " + itoa32(int32(pos)) + ", " + itoa32(int32(width)) + ", " + gpr(r2)
			default:
				return false
			}
		}
		inst.Mnemonic = inst.Op.String()
		return true
	}

	// opcode == 0x3E
	cond := xiCond(word1)
	inst.Reg2 = r2
	inst.Cond = cond
	switch word2 {
	case 0x200:
		inst.Op = OpSASF
	case 0:
		inst.Op = OpSETF
	default:
		return false
	}
	inst.Mnemonic = inst.Op.String()
	inst.Operands = condSuffixes[cond] + ", " + gpr(r2)
	return true
}

// Format X: a closed set of zero-operand and near-zero-operand
// system/status instructions, identified by exact full-instruction literal
// match rather than by a shared opcode field.
const (
	formatXCLL    uint32 = 0xF160FFFF
	formatXCTRET  uint32 = 0x01440000 | 0x07E0
	formatXDI     uint32 = 0x01600000 | 0x07E0
	formatXEI     uint32 = 0x01608000 | 0x07E0
	formatXEIRET  uint32 = 0x01480000 | 0x07E0
	formatXFERET  uint32 = 0x014A0000 | 0x07E0
	formatXHALT   uint32 = 0x01200000 | 0x07E0
	formatXSNOOZE uint32 = 0x01200000 | 0x0FE0
)

func (d *Decoder) dwordX(word1, word2 uint32) uint32 {
	return word1 | (word2 << 16)
}

func (d *Decoder) isFormatX(word1, word2 uint32) bool {
	dword := d.dwordX(word1, word2)
	switch dword {
	case formatXCLL, formatXCTRET, formatXDI, formatXEI, formatXEIRET, formatXFERET, formatXHALT, formatXSNOOZE:
		return true
	}
	if word2 == 0 && extract(word1, 4, 7) == 0x7F {
		return true
	}
	if (word2&0xC7FF) == 0x0160 && (word1>>5) == 0b11010111111 {
		return true
	}
	if word2 == 0x0100 && (word1>>5) == 0b00000111111 {
		return true
	}
	if extract(word2, 0, 11) == 0b00101100000 {
		if (extract(word1, 5, 6) | extract(word1, 13, 3)<<6) == 0x1FF {
			return true
		}
		if extract(word1, 5, 11) == 0b11011111111 {
			return true
		}
	}
	return false
}

func (d *Decoder) decodeFormatX(word1, word2 uint32, inst *Instruction) bool {
	inst.Format = FormatXExtended2
	inst.ByteSize = 4

	dword := d.dwordX(word1, word2)
	switch dword {
	case formatXCLL:
		inst.Op = OpCLL
	case formatXCTRET:
		inst.Op = OpCTRET
	case formatXDI:
		inst.Op = OpDI
	case formatXEI:
		inst.Op = OpEI
	case formatXEIRET:
		inst.Op = OpEIRET
	case formatXFERET:
		inst.Op = OpFERET
	case formatXHALT:
		inst.Op = OpHALT
	case formatXSNOOZE:
		inst.Op = OpSNOOZE
	default:
		switch {
		case word2 == 0 && extract(word1, 4, 7) == 0x7F:
			inst.Op = OpRIE
			inst.Operands = itoa32(int32(extract(word1, 11, 5))) + ", " + itoa32(int32(extract(word1, 0, 4)))
			inst.Mnemonic = inst.Op.String()
			return true
		case (word2&0xC7FF) == 0x0160 && (word1>>5) == 0b11010111111:
			inst.Op = OpSYSCALL
			inst.Imm = int32(extract(word2, 11, 3)<<2 | extract(word1, 0, 2))
			inst.Operands = itoa32(inst.Imm)
			inst.Mnemonic = inst.Op.String()
			return true
		case word2 == 0x0100 && (word1>>5) == 0b00000111111:
			inst.Op = OpTRAP
			inst.Imm = int32(word1 & 0x1F)
			inst.Operands = itoa32(inst.Imm)
			inst.Mnemonic = inst.Op.String()
			return true
		case extract(word2, 0, 11) == 0b00101100000 && (extract(word1, 5, 6)|extract(word1, 13, 3)<<6) == 0x1FF:
			inst.Op = OpCACHE
			inst.Reg1 = reg1(word1)
			cacheop := extract(word2, 11, 5) | extract(word1, 11, 2)<<5
			inst.Imm = int32(cacheop)
			inst.Operands = hex32(cacheop) + " [" + gpr(inst.Reg1) + "]"
			inst.Mnemonic = inst.Op.String()
			return true
		case extract(word2, 0, 11) == 0b00101100000 && extract(word1, 5, 11) == 0b11011111111:
			inst.Op = OpPREF
			inst.Reg1 = reg1(word1)
			prefop := extract(word2, 11, 5)
			inst.Imm = int32(prefop)
			inst.Operands = hex32(prefop) + " [" + gpr(inst.Reg1) + "]"
			inst.Mnemonic = inst.Op.String()
			return true
		default:
			return false
		}
	}
	inst.Mnemonic = inst.Op.String()
	inst.Operands = ""
	return true
}
