package insts

// halfword returns the k-th little-endian 16-bit chunk of raw (k is 1-based;
// k=1 is the lowest-addressed halfword).
func halfword(raw uint64, k int) uint32 {
	return uint32((raw >> uint((k-1)*16)) & 0xFFFF)
}

// extract returns (w >> lo) & ((1<<length)-1).
func extract(w uint32, lo, length uint) uint32 {
	return (w >> lo) & ((uint32(1) << length) - 1)
}

// opcodeField extracts the inclusive bit range [lo..hi] of a word.
func opcodeField(w uint32, lo, hi uint) uint32 {
	return extract(w, lo, hi-lo+1)
}

// sext sign-extends the low n bits of value to a full int32.
func sext(value uint32, n uint) int32 {
	shift := 32 - n
	return int32(value<<shift) >> shift
}

// reg1 extracts the reg1 field (word1 bits [4:0]).
func reg1(word1 uint32) uint8 { return uint8(extract(word1, 0, 5)) }

// reg2 extracts the reg2 field (word1 bits [15:11]).
func reg2(word1 uint32) uint8 { return uint8(extract(word1, 11, 5)) }

// reg3 extracts the reg3 field (word2 bits [15:11]).
func reg3(word2 uint32) uint8 { return uint8(extract(word2, 11, 5)) }

// cond3 extracts the 4-bit condition field of a format III branch (word1 bits [3:0]).
func cond3(word1 uint32) uint8 { return uint8(extract(word1, 0, 4)) }

// vec4 extracts the 4-bit vector field used by format I's FETRAP (word1 bits [14:11]).
func vec4(word1 uint32) uint8 { return uint8(extract(word1, 11, 4)) }

// disp9 assembles and returns the raw (pre-sign-extend) 9-bit format III
// displacement. The low 3 bits come from word1[6:4], the high 5 bits from
// word1[15:11]; the assembled 8-bit value is shifted left 1 (the encoded
// branch target is always halfword aligned, so bit 0 is never stored).
func disp9(word1 uint32) uint32 {
	low := extract(word1, 4, 3)
	high := extract(word1, 11, 5)
	return (high<<3 | low) << 1
}

// disp22 assembles the format V 22-bit jump displacement: the high 6 bits
// from word1[5:0], the low 16 bits from word2 in full.
func disp22(word1, word2 uint32) uint32 {
	return (extract(word1, 0, 6) << 16) | word2
}

// imm16 returns the format VI/VII/VIII 16-bit immediate: word2 in full.
func imm16(word2 uint32) uint32 { return word2 }

// selID extracts the format IX system-register selector group (word2 bits [3:1]).
func selID(word2 uint32) uint8 { return uint8(extract(word2, 1, 3)) }

// binsPos and binsWidth extract the format IX BINS bit-field position and
// width, packed into the portion of word2 left unused once bits [10:4]
// carry the BINS sub-opcode literal and bit 0 is forced to 0.
func binsPos(word2 uint32) uint8   { return uint8(extract(word2, 11, 5)) }
func binsWidth(word2 uint32) uint8 { return uint8(extract(word2, 1, 3)) + 1 }

// xiReg4 extracts format XI's fourth MAC/MACU register operand (word2 bits [4:1]).
func xiReg4(word2 uint32) uint8 { return uint8(extract(word2, 1, 4)) }

// xiCond extracts format XI's CMOV/ADF/SBF condition field, packed into the
// reg1 slot (word1 bits [3:0]), mirroring format II's reg1-as-immediate reuse.
func xiCond(word1 uint32) uint8 { return uint8(extract(word1, 0, 4)) }

// pushspRange describes one of the five legal PUSHSP/POPSP register ranges.
type pushspRange struct{ rh, rt uint8 }

var pushspRanges = [5]pushspRange{
	{rh: 20, rt: 21},
	{rh: 22, rt: 23},
	{rh: 24, rt: 27},
	{rh: 28, rt: 29},
	{rh: 30, rt: 31},
}

// xiRhRt looks up the PUSHSP/POPSP register range selected by reg1 (word1
// bits [4:0], restricted to 0..4).
func xiRhRt(word1 uint32) (rh, rt uint8) {
	idx := extract(word1, 0, 5)
	if int(idx) >= len(pushspRanges) {
		idx = 0
	}
	r := pushspRanges[idx]
	return r.rh, r.rt
}

// xiiImm5 extracts format XII CMOV's 5-bit immediate, reusing the reg2 slot
// (word1 bits [15:11]) as an immediate, mirroring format II's reg1-as-immediate reuse.
func xiiImm5(word1 uint32) uint8 { return uint8(extract(word1, 11, 5)) }

// xiiCond extracts format XII CMOV's condition field (word2 bits [9:6]).
func xiiCond(word2 uint32) uint8 { return uint8(extract(word2, 6, 4)) }

// xiiiOpcode5 extracts the format XIII 5-bit DISPOSE/PREPARE selector
// (word1 bits [15:11]).
func xiiiOpcode5(word1 uint32) uint32 { return extract(word1, 11, 5) }

// xiiiImm5 extracts format XIII's 5-bit immediate (word1 bits [10:6]).
func xiiiImm5(word1 uint32) uint8 { return uint8(extract(word1, 6, 5)) }

// xiiiSubR1 extracts DISPOSE's optional target register (word1 bits [4:0]).
func xiiiSubR1(word1 uint32) uint8 { return uint8(extract(word1, 0, 5)) }

// xiiiList extracts the 12-bit register-list bitmask (word2 bits [11:0]).
func xiiiList(word2 uint32) uint16 { return uint16(extract(word2, 0, 12)) }

// xiiiFF extracts the PREPARE variant selector (word2 bits [13:12]).
func xiiiFF(word2 uint32) uint8 { return uint8(extract(word2, 12, 2)) }
