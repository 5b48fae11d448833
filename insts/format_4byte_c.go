package insts

// This file implements formats XI (extended group 3: multiply/divide,
// MAC/MACU, conditional move, CAXI, register-range push/pop, extended
// JARL), XII (extended group 4: byte/halfword shuffle, CMOV, MULU), and
// XIII (the stack-frame DISPOSE/PREPARE pair).

// Format XI shares word1's opcode field value (0x3F) with IX, X, and XII;
// it is tried after IX and X, before XII, and distinguished by its own closed set of
// 10-bit sub_opcode literals (word2 bits [10:1]), requiring word2 bit 0
// clear.
func (d *Decoder) isFormatXI(word1, word2 uint32) bool {
	if opcodeField(word1, 5, 10) != 0x3F || word2&1 != 0 {
		return false
	}
	sub := extract(word2, 1, 10)
	switch sub {
	case 0b0001110111, 0b0101100000, 0b0101000000, 0b0101000001,
		0b0101111110, 0b0101111111, 0b0101100001, 0b0100010000,
		0b0100010001, 0b0001010001, 0b0111011101, 0b0111001101,
		0b0001100001, 0b0001000001, 0b0010110000:
		return true
	}
	switch sub >> 4 {
	case 0b011101, 0b011100, 0b011001:
		return true
	}
	switch extract(word2, 5, 7) {
	case 0b0011110, 0b0011111:
		return true
	}
	return false
}

func (d *Decoder) decodeFormatXI(word1, word2 uint32, inst *Instruction) bool {
	r1, r2 := reg1(word1), reg2(word1)
	r3 := reg3(word2)
	sub := extract(word2, 1, 10)
	cond := xiCond(word1)

	inst.Format = FormatXIExtended3
	inst.ByteSize = 4

	switch sub {
	case 0b0001110111:
		inst.Op = OpCAXI
	case 0b0101100000:
		inst.Op = OpDIV
	case 0b0101000000:
		inst.Op = OpDIVH
	case 0b0101000001:
		inst.Op = OpDIVHU
	case 0b0101111110:
		inst.Op = OpDIVQ
	case 0b0101111111:
		inst.Op = OpDIVQU
	case 0b0101100001:
		inst.Op = OpDIVU
	case 0b0100010000:
		inst.Op = OpMUL
	case 0b0100010001:
		inst.Op = OpMULU
	case 0b0001010001:
		inst.Op = OpSAR
	case 0b0111011101:
		inst.Op = OpSATADD
	case 0b0111001101:
		inst.Op = OpSATSUB
	case 0b0001100001:
		inst.Op = OpSHL
	case 0b0001000001:
		inst.Op = OpSHR
	case 0b0010110000:
		switch r2 {
		case 0x18:
			inst.Op = OpJARL
		case 0x0C:
			inst.Op = OpPOPSP
		case 0x08:
			inst.Op = OpPUSHSP
		default:
			return false
		}
	default:
		switch sub >> 4 {
		case 0b011101:
			inst.Op = OpADF
		case 0b011100:
			inst.Op = OpSBF
		case 0b011001:
			inst.Op = OpCMOV
		default:
			switch extract(word2, 5, 7) {
			case 0b0011110:
				inst.Op = OpMAC
			case 0b0011111:
				inst.Op = OpMACU
			default:
				return false
			}
		}
	}

	inst.Reg1, inst.Reg2, inst.Reg3 = r1, r2, r3
	switch inst.Op {
	case OpMAC, OpMACU:
		r4 := xiReg4(word2)
		inst.Reg4 = r4
		inst.Operands = "[" + gpr(r1) + "], " + gpr(r2) + ", " + gpr(r3) + ", " + gpr(r4)
	case OpCMOV, OpSBF, OpADF:
		inst.Cond = cond
		inst.Operands = condSuffixes[cond] + ", " + gpr(r1) + ", " + gpr(r2) + ", " + gpr(r3)
	case OpCAXI:
		inst.Operands = "[" + gpr(r1) + "], " + gpr(r2) + ", " + gpr(r3)
	case OpJARL:
		inst.Operands = "[" + gpr(r1) + "], " + gpr(r3)
	case OpPUSHSP, OpPOPSP:
		rh, rt := xiRhRt(word1)
		inst.Operands = itoa32(int32(rh)) + "-" + itoa32(int32(rt))
	case OpSAR, OpSHL:
		inst.Operands = gpr(r1) + ", " + gpr(r2)
	default:
		inst.Operands = "[" + gpr(r1) + "], " + gpr(r2) + ", " + gpr(r3)
	}
	inst.Mnemonic = inst.Op.String()
	return true
}

// Format XII shares opcode 0x3F with IX, X, and XI; it is tried last among
// them and is distinguished by its own sub_opcode, which folds reg1 into
// the high bits of the same 10-bit word2 sub-field XI uses.
func (d *Decoder) isFormatXII(word1, word2 uint32) bool {
	if opcodeField(word1, 5, 10) != 0x3F {
		return false
	}
	sub := extract(word2, 1, 10) | uint32(reg1(word1))<<10
	switch sub {
	case 0b0110100001, 0b0110100000, 0b0110100011, 0b0110100010:
		return true
	}
	if (sub>>4)&0x3F == 0b011000 {
		return true
	}
	if sub&0x3E1 == 0b0100100000 || sub&0x3E1 == 0b0100100001 {
		return true
	}
	return false
}

func (d *Decoder) decodeFormatXII(word1, word2 uint32, inst *Instruction) bool {
	r2 := reg2(word1)
	r3 := reg3(word2)
	sub := extract(word2, 1, 10) | uint32(reg1(word1))<<10

	inst.Format = FormatXIIExtended4
	inst.ByteSize = 4
	inst.Reg2, inst.Reg3 = r2, r3

	switch sub {
	case 0b0110100001:
		inst.Op = OpBSH
		inst.Operands = gpr(r2) + ", " + gpr(r3)
	case 0b0110100000:
		inst.Op = OpBSW
		inst.Operands = gpr(r2) + ", " + gpr(r3)
	case 0b0110100011:
		inst.Op = OpHSH
		inst.Operands = gpr(r2) + ", " + gpr(r3)
	case 0b0110100010:
		inst.Op = OpHSW
		inst.Operands = gpr(r2) + ", " + gpr(r3)
	default:
		switch {
		case (sub>>4)&0x3F == 0b011000:
			imm := xiiImm5(word1)
			cond := xiiCond(word2)
			inst.Op = OpCMOV
			inst.Cond = cond
			inst.Imm = sext(uint32(imm), 5)
			inst.Operands = condSuffixes[cond] + ", " + itoa32(inst.Imm) + ", " + gpr(r2) + ", " + gpr(r3)
		case sub&0x3E1 == 0b0100100000:
			inst.Op = OpMUL
			inst.Operands = gpr(r2) + ", " + gpr(r3)
		case sub&0x3E1 == 0b0100100001:
			inst.Op = OpMULU
			inst.Operands = gpr(r2) + ", " + gpr(r3)
		default:
			return false
		}
	}
	inst.Mnemonic = inst.Op.String()
	return true
}

// Format XIII: DISPOSE/PREPARE, the stack-frame helpers. Recognized
// directly on word1 (the 5-bit selector occupies bits [15:11], the same
// position as reg2 in the shorter formats). May extend to 6 bytes for
// PREPARE's ff==0b01 and ff==0b10 variants, which read one extra halfword
// through p, and ff==0b11, which reads two and still reports 6 bytes.
const (
	xiiiSelectorDISPOSE uint32 = 0x19
	xiiiSelectorPREPARE uint32 = 0x1E
)

func (d *Decoder) isFormatXIII(word1 uint32) bool {
	sel := xiiiOpcode5(word1)
	return sel == xiiiSelectorDISPOSE || sel == xiiiSelectorPREPARE
}

func (d *Decoder) decodeFormatXIII(word1, word2 uint32, inst *Instruction, p *puller) bool {
	sel := xiiiOpcode5(word1)
	imm := xiiiImm5(word1)
	list := xiiiList(word2)

	inst.Format = FormatXIIIStack
	inst.ByteSize = 4
	inst.Imm = int32(imm)
	listText := formatRegisterList(list)

	if sel == xiiiSelectorDISPOSE {
		inst.Op = OpDISPOSE
		r1 := xiiiSubR1(word1)
		inst.Reg1 = r1
		if r1 == 0 {
			inst.Operands = itoa32(inst.Imm) + ", " + listText
		} else {
			inst.Operands = itoa32(inst.Imm) + ", " + listText + ", " + gpr(r1)
		}
		inst.Mnemonic = inst.Op.String()
		return true
	}

	inst.Op = OpPREPARE
	inst.Mnemonic = inst.Op.String()
	sub := xiiiSubR1(word1)
	if sub == 1 {
		inst.Operands = listText + ", " + itoa32(inst.Imm)
		return true
	}
	if sub&0x7 != 0x3 {
		return false
	}
	ff := xiiiFF(word2)
	switch ff {
	case 0b00:
		inst.Operands = listText + ", " + itoa32(inst.Imm) + ", sp"
	case 0b01:
		word3, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		inst.Imm = sext(word3, 16)
		inst.Operands = listText + ", " + itoa32(int32(imm)) + ", " + itoa32(inst.Imm)
	case 0b10:
		word3, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		inst.Imm = int32(word3 << 16)
		inst.Operands = listText + ", " + itoa32(int32(imm)) + ", " + itoa32(inst.Imm)
	case 0b11:
		lo, ok := p.pull()
		if !ok {
			return false
		}
		hi, ok := p.pull()
		if !ok {
			return false
		}
		inst.ByteSize = 6
		inst.Imm = int32(lo | hi<<16)
		inst.Operands = listText + ", " + itoa32(int32(imm)) + ", " + itoa32(inst.Imm)
	}
	return true
}
