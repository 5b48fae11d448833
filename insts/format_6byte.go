package insts

// This file implements format XIV, the 48-bit load/store family (LDB,
// LDBU, LDH, LDHU, LDW, LDDW, STB, STH, STW, STDW). It shares word1's
// opcode field with format V (0x3C/0x3D) and is tried only after both the
// 2-byte and 4-byte cascades fail; format V's word2-bit-0-clear gate keeps
// it from intercepting XIV's encodings, which always carry that bit set.
func (d *Decoder) decodeFormatXIV(word1, word2, word3 uint32, inst *Instruction) bool {
	opcode := opcodeField(word1, 5, 10)
	if opcode != 0x3C && opcode != 0x3D {
		return false
	}

	reg2Field := extract(word1, 11, 5)
	sub4 := (word2 & 0xF) | reg2Field<<4
	sub5 := (word2 & 0x1F) | reg2Field<<5

	switch {
	case opcode == 0x3C && sub4 == 0b0101:
		inst.Op = OpLDB
	case opcode == 0x3D && sub4 == 0b0101:
		inst.Op = OpLDBU
	case opcode == 0x3C && sub4 == 0b1101:
		inst.Op = OpSTB
	case opcode == 0x3D && sub5 == 0b01001:
		inst.Op = OpLDDW
	case opcode == 0x3C && sub5 == 0b00111:
		inst.Op = OpLDH
	case opcode == 0x3D && sub5 == 0b00111:
		inst.Op = OpLDHU
	case opcode == 0x3C && sub5 == 0b01001:
		inst.Op = OpLDW
	case opcode == 0x3D && sub5 == 0b01111:
		inst.Op = OpSTDW
	case opcode == 0x3D && sub5 == 0b01101:
		inst.Op = OpSTH
	case opcode == 0x3C && sub5 == 0b01111:
		inst.Op = OpSTW
	default:
		return false
	}

	r1, r3 := reg1(word1), reg3(word2)
	inst.Format = FormatXIVLoadStore48
	inst.ByteSize = 6
	inst.Reg1, inst.Reg3 = r1, r3

	raw := extract(word2, 4, 7) | word3<<7
	inst.Disp = sext(raw, 23)

	inst.Mnemonic = inst.Op.String()
	inst.Operands = itoa32(inst.Disp) + "[" + gpr(r1) + "], " + gpr(r3)
	return true
}
