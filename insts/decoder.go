package insts

// Decoder decodes V850 machine code into Instruction records. It holds no
// state between calls; a single Decoder may be shared across goroutines.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// puller incrementally exposes additional little-endian halfwords from data
// beyond the bytes already consumed, for the formats (VI, XIII) that may
// extend their own length mid-decode.
type puller struct {
	data []byte
	next int
}

// pull returns the next little-endian halfword, or false if data is
// exhausted.
func (p *puller) pull() (uint32, bool) {
	if p.next+2 > len(p.data) {
		return 0, false
	}
	w := uint32(p.data[p.next]) | uint32(p.data[p.next+1])<<8
	p.next += 2
	return w, true
}

// Decode consumes bytes starting at addr and returns the single decoded
// instruction at that position. Bytes are interpreted little-endian, two
// per halfword. On success inst.ByteSize is 2, 4, or 6 and equals the
// number of bytes consumed from data, except for PREPARE's ff==0b11 form,
// which reads 8 bytes and reports 6. On failure — insufficient bytes, or
// no format decoder recognizes the encoding — Decode returns a nil
// instruction and ErrUnrecognized.
func (d *Decoder) Decode(data []byte, addr uint32) (*Instruction, error) {
	if len(data) < 2 {
		return nil, ErrUnrecognized
	}

	p := &puller{data: data, next: 0}
	word1, _ := p.pull()

	inst := &Instruction{Addr: addr, Raw: uint64(word1)}

	if d.decode2Byte(word1, inst) {
		return inst, nil
	}

	word2, ok := p.pull()
	if !ok {
		return nil, ErrUnrecognized
	}
	raw4 := uint64(word1) | uint64(word2)<<16
	inst.Raw = raw4

	if d.decode4Byte(word1, word2, inst, p) {
		return inst, nil
	}

	word3, ok := p.pull()
	if !ok {
		return nil, ErrUnrecognized
	}
	inst.Raw = raw4 | uint64(word3)<<32

	if d.decodeFormatXIV(word1, word2, word3, inst) {
		return inst, nil
	}

	return nil, ErrUnrecognized
}

// decode2Byte tries formats I, II, III, IV_1, IV_2 in that order, the
// cascade order mandated because later, broader formats would otherwise
// falsely match narrower 2-byte encodings.
func (d *Decoder) decode2Byte(word1 uint32, inst *Instruction) bool {
	switch {
	case d.isFormatI(word1):
		return d.decodeFormatI(word1, inst)
	case d.isFormatII(word1):
		return d.decodeFormatII(word1, inst)
	case d.isFormatIII(word1):
		return d.decodeFormatIII(word1, inst)
	case d.isFormatIV1(word1):
		return d.decodeFormatIV1(word1, inst)
	case d.isFormatIV2(word1):
		return d.decodeFormatIV2(word1, inst)
	default:
		return false
	}
}

// decode4Byte tries formats V through XIII in that order. VI and XIII may
// pull additional halfwords through p, extending the instruction to 6 bytes.
func (d *Decoder) decode4Byte(word1, word2 uint32, inst *Instruction, p *puller) bool {
	switch {
	case d.isFormatV(word1, word2):
		return d.decodeFormatV(word1, word2, inst)
	case d.isFormatVI(word1, word2):
		return d.decodeFormatVI(word1, word2, inst, p)
	case d.isFormatVII(word1, word2):
		return d.decodeFormatVII(word1, word2, inst)
	case d.isFormatVIII(word1, word2):
		return d.decodeFormatVIII(word1, word2, inst)
	case d.isFormatIX(word1, word2):
		return d.decodeFormatIX(word1, word2, inst)
	case d.isFormatX(word1, word2):
		return d.decodeFormatX(word1, word2, inst)
	case d.isFormatXI(word1, word2):
		return d.decodeFormatXI(word1, word2, inst)
	case d.isFormatXII(word1, word2):
		return d.decodeFormatXII(word1, word2, inst)
	case d.isFormatXIII(word1):
		return d.decodeFormatXIII(word1, word2, inst, p)
	default:
		return false
	}
}
