package insts

// This file implements the four 2-byte V850 formats: I (register-register),
// II (short immediate), III (conditional branch), and IV (16-bit load/store,
// in its two sub-variants IV_1 and IV_2).

// formatIOpcodes maps format I's reg1!=0, reg2!=0 opcode field (word1 bits
// [10:5]) to its mnemonic.
var formatIOpcodes = map[uint32]Op{
	0x00: OpMOV,
	0x01: OpNOT,
	0x02: OpDIVH,
	0x03: OpJMP,
	0x04: OpSATSUBR,
	0x05: OpSATSUB,
	0x06: OpSATADD,
	0x07: OpMULH,
	0x08: OpOR,
	0x09: OpXOR,
	0x0A: OpAND,
	0x0B: OpTST,
	0x0C: OpSUBR,
	0x0D: OpSUB,
	0x0E: OpADD,
	0x0F: OpCMP,
}

// formatIReg2ZeroOpcodes maps format I's reg2==0 opcode field to its
// mnemonic (JMP [reg1] indirect jump, and the register-unary forms).
var formatIReg2ZeroOpcodes = map[uint32]Op{
	0x00: OpSWITCH,
	0x03: OpJMP,
	0x0A: OpSXB,
	0x0E: OpSXH,
	0x10: OpZXB,
	0x16: OpZXH,
}

// isFormatI reports whether word1 is one of format I's encodings: NOP
// (word1==0), the reg1!=0, reg2!=0 table, the exact-bit-pattern forms
// (FETRAP, RIE, SYNC*), or the reg2==0 table. Any other word1 is rejected
// here so the cascade moves on to format II.
func (d *Decoder) isFormatI(word1 uint32) bool {
	if word1 == 0 {
		return true
	}
	r1, r2 := reg1(word1), reg2(word1)
	opcode := opcodeField(word1, 5, 10)
	if r1 != 0 && r2 != 0 {
		_, ok := formatIOpcodes[opcode]
		return ok
	}
	// exact-bit-pattern defensive matches: RIE, SYNCE, SYNCI, SYNCM, SYNCP, FETRAP
	if word1&^uint32(0xF<<11) == 0x40 {
		return true
	}
	switch word1 {
	case 0x8007: // RIE, reserved-instruction exception marker
		return true
	case 0x0144: // SYNCE
		return true
	case 0x0184: // SYNCI
		return true
	case 0x01C4: // SYNCM
		return true
	case 0x0104: // SYNCP
		return true
	}
	if r2 == 0 {
		_, ok := formatIReg2ZeroOpcodes[opcode]
		return ok
	}
	return false
}

// decodeFormatI decodes NOP, the general register-register table, the
// defensive exact-bit-pattern forms, and the reg2==0 unary forms.
func (d *Decoder) decodeFormatI(word1 uint32, inst *Instruction) bool {
	inst.Format = FormatIRegReg
	inst.ByteSize = 2

	if word1 == 0 {
		inst.Op = OpNOP
		inst.Mnemonic = OpNOP.String()
		inst.Operands = ""
		return true
	}

	r1, r2 := reg1(word1), reg2(word1)
	opcode := opcodeField(word1, 5, 10)
	inst.Reg1, inst.Reg2 = r1, r2

	if r1 != 0 && r2 != 0 {
		op, ok := formatIOpcodes[opcode]
		if !ok {
			return false
		}
		inst.Op = op
		inst.Mnemonic = op.String()
		inst.Operands = gpr(r1) + ", " + gpr(r2)
		return true
	}

	if word1&^uint32(0xF<<11) == 0x40 {
		inst.Op = OpFETRAP
		inst.Mnemonic = OpFETRAP.String()
		v := vec4(word1)
		inst.Imm = int32(v)
		inst.Operands = hex32(uint32(v))
		return true
	}

	switch word1 {
	case 0x8007:
		inst.Op = OpRIE
	case 0x0144:
		inst.Op = OpSYNCE
	case 0x0184:
		inst.Op = OpSYNCI
	case 0x01C4:
		inst.Op = OpSYNCM
	case 0x0104:
		inst.Op = OpSYNCP
	}
	if inst.Op != OpUnknown {
		inst.Mnemonic = inst.Op.String()
		inst.Operands = ""
		return true
	}

	if r2 == 0 {
		op, ok := formatIReg2ZeroOpcodes[opcode]
		if !ok {
			return false
		}
		inst.Op = op
		inst.Mnemonic = op.String()
		if op == OpJMP {
			inst.Operands = "[" + gpr(r1) + "]"
		} else {
			inst.Operands = gpr(r1)
		}
		return true
	}

	return false
}

// formatIIOpcodes maps format II's reg2!=0 opcode field (0x10..0x17) to its
// mnemonic, in the exact order given: MOV, SATADD, ADD, CMP, SHR, SAR, SHL, MULH.
var formatIIOpcodes = [8]Op{OpMOV, OpSATADD, OpADD, OpCMP, OpSHR, OpSAR, OpSHL, OpMULH}

// formatIISignExtends records which of the above mnemonics sign-extend
// their 5-bit immediate field (the shift amounts do not).
var formatIISignExtends = map[Op]bool{
	OpMOV: true, OpSATADD: true, OpADD: true, OpCMP: true, OpMULH: true,
}

// isFormatII recognizes format II: either the reg2!=0 imm5/reg2 group
// (opcode 0x10..0x17) or, when reg2==0, CALLT (word1>>6 == 0x8).
func (d *Decoder) isFormatII(word1 uint32) bool {
	opcode := opcodeField(word1, 5, 10)
	if reg2(word1) != 0 {
		return opcode >= 0x10 && opcode <= 0x17
	}
	return word1>>6 == 0x8
}

func (d *Decoder) decodeFormatII(word1 uint32, inst *Instruction) bool {
	inst.Format = FormatIIImmReg
	inst.ByteSize = 2

	r2 := reg2(word1)
	inst.Reg2 = r2

	if r2 != 0 {
		opcode := opcodeField(word1, 5, 10)
		op := formatIIOpcodes[opcode-0x10]
		inst.Op = op
		inst.Mnemonic = op.String()
		raw5 := extract(word1, 0, 5)
		if formatIISignExtends[op] {
			inst.Imm = sext(raw5, 5)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r2)
		} else {
			inst.Imm = int32(raw5)
			inst.Operands = itoa32(inst.Imm) + ", " + gpr(r2)
		}
		return true
	}

	inst.Op = OpCALLT
	inst.Mnemonic = OpCALLT.String()
	inst.Imm = int32((word1 & 0x3F) << 1)
	inst.Operands = itoa32(inst.Imm)
	return true
}

// isFormatIII recognizes format III, the conditional branch: word1 bits
// [10:7] must equal 0xB.
func (d *Decoder) isFormatIII(word1 uint32) bool {
	return opcodeField(word1, 7, 10) == 0xB
}

func (d *Decoder) decodeFormatIII(word1 uint32, inst *Instruction) bool {
	c := cond3(word1)
	if int(c) >= len(condSuffixes) {
		return false
	}
	inst.Format = FormatIIIConditionalBranch
	inst.ByteSize = 2
	inst.Op = OpBCOND
	inst.Cond = c
	disp := sext(disp9(word1), 9)
	inst.Disp = disp
	target := uint32(int64(inst.Addr) + int64(disp))
	inst.Mnemonic = "b" + condSuffixes[c]
	inst.Operands = hexAddr(target)
	return true
}

// isFormatIV1 recognizes SLDB/SSTB/SLDH/SSTH/SLDW/SSTW, opcode bits [10:7] in {6,7,8,9,0xA}.
func (d *Decoder) isFormatIV1(word1 uint32) bool {
	op := opcodeField(word1, 7, 10)
	return op >= 6 && op <= 0xA
}

func (d *Decoder) decodeFormatIV1(word1 uint32, inst *Instruction) bool {
	inst.Format = FormatIVLoadStore16
	inst.ByteSize = 2

	op := opcodeField(word1, 7, 10)
	r2 := reg2(word1)
	inst.Reg2 = r2
	raw := extract(word1, 0, 7)

	switch op {
	case 6:
		inst.Op = OpSLDB
		inst.Disp = int32(raw)
	case 7:
		inst.Op = OpSSTB
		inst.Disp = int32(raw)
	case 8:
		inst.Op = OpSLDH
		inst.Disp = int32(raw) << 1
	case 9:
		inst.Op = OpSSTH
		inst.Disp = int32(raw) << 1
	case 0xA:
		masked := raw &^ 1
		d := int32(masked) << 1
		if raw&1 == 0 {
			inst.Op = OpSLDW
		} else {
			inst.Op = OpSSTW
		}
		inst.Disp = d
	default:
		return false
	}
	inst.Mnemonic = inst.Op.String()
	inst.Operands = itoa32(inst.Disp) + "[ep] " + gpr(r2)
	return true
}

// isFormatIV2 recognizes SLDBU/SLDHU, a 7-bit opcode field (word1 bits
// [10:4]) of 6 or 7.
func (d *Decoder) isFormatIV2(word1 uint32) bool {
	op := opcodeField(word1, 4, 10)
	return op == 6 || op == 7
}

func (d *Decoder) decodeFormatIV2(word1 uint32, inst *Instruction) bool {
	inst.Format = FormatIVLoadStore16
	inst.ByteSize = 2

	op := opcodeField(word1, 4, 10)
	r2 := reg2(word1)
	inst.Reg2 = r2
	raw := extract(word1, 0, 4)

	if op == 6 {
		inst.Op = OpSLDBU
		inst.Disp = int32(raw)
	} else {
		inst.Op = OpSLDHU
		inst.Disp = int32(raw) << 1
	}
	inst.Mnemonic = inst.Op.String()
	inst.Operands = itoa32(inst.Disp) + "[ep] " + gpr(r2)
	return true
}
