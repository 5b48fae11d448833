// Package insts implements decoding of V850 machine code into structured
// instruction representations. It supports the full fourteen-format V850
// encoding space (2, 4, and 6-byte instructions) via a length-ordered
// cascade of format decoders.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.Decode([]byte{0x00, 0x00}, 0x1000) // NOP
//	fmt.Printf("%s %s (%d bytes)\n", inst.Mnemonic, inst.Operands, inst.ByteSize)
package insts

import "errors"

// ErrUnrecognized is returned by Decode when no format decoder recognizes
// the input, or when the input does not contain enough bytes for the
// format that would otherwise match. It carries no further classification,
// matching the single -1 byte_size sentinel of the originating design.
var ErrUnrecognized = errors.New("insts: unrecognized or truncated instruction")

// Instruction is a fully classified, decoded V850 instruction record.
type Instruction struct {
	// Raw holds up to 48 bits: up to three little-endian 16-bit halfwords
	// packed low-first.
	Raw uint64
	// Addr is the instruction's load address, used to resolve PC-relative
	// displacements into absolute targets.
	Addr uint32

	Op     Op
	Format Format

	// Disp is the signed displacement, sign-extended from its encoded width.
	Disp int32
	// Imm is the signed immediate, sign-extended from its encoded width
	// where the mnemonic treats its immediate as signed.
	Imm int32

	// ByteSize is 2, 4, or 6 on success.
	ByteSize int8

	Mnemonic string
	Operands string

	// Reg1-Reg4 and Cond are the raw decoded register/condition fields,
	// exposed for introspection and testing; the operand formatter is
	// what ultimately turns them into Operands.
	Reg1 uint8
	Reg2 uint8
	Reg3 uint8
	Reg4 uint8
	Cond uint8
}

// legalFormats maps each Op to the set of formats under which it may
// legally appear, cross-checked by the test suite against every format
// decoder's actual assignments.
var legalFormats = map[Op][]Format{
	OpMOV:     {FormatIRegReg, FormatIIImmReg, FormatVI3Operand},
	OpNOT:     {FormatIRegReg},
	OpDIVH:    {FormatIRegReg, FormatXIExtended3},
	OpJMP:     {FormatIRegReg, FormatVI3Operand},
	OpSATSUBR: {FormatIRegReg},
	OpSATSUB:  {FormatIRegReg, FormatXIExtended3},
	OpSATADD:  {FormatIRegReg, FormatIIImmReg, FormatXIExtended3},
	OpMULH:    {FormatIRegReg, FormatIIImmReg},
	OpOR:      {FormatIRegReg},
	OpXOR:     {FormatIRegReg},
	OpAND:     {FormatIRegReg},
	OpTST:     {FormatIRegReg},
	OpSUBR:    {FormatIRegReg},
	OpSUB:     {FormatIRegReg},
	OpADD:     {FormatIRegReg, FormatIIImmReg},
	OpCMP:     {FormatIRegReg, FormatIIImmReg},
	OpSLDB:    {FormatIVLoadStore16},
	OpSSTB:    {FormatIVLoadStore16},
	OpSLDH:    {FormatIVLoadStore16},
	OpSSTH:    {FormatIVLoadStore16},
	OpSLDW:    {FormatIVLoadStore16},
	OpSSTW:    {FormatIVLoadStore16},
	OpBCOND:   {FormatIIIConditionalBranch, FormatVIILoadStore32},
	OpADDI:    {FormatVI3Operand},
	OpMOVEA:   {FormatVI3Operand},
	OpMOVHI:   {FormatVI3Operand},
	OpSATSUBI: {FormatVI3Operand},
	OpORI:     {FormatVI3Operand},
	OpXORI:    {FormatVI3Operand},
	OpANDI:    {FormatVI3Operand},
	OpMULHI:   {FormatVI3Operand},
	OpLDB:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpLDH:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpLDW:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpSTB:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpSTH:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpSTW:     {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpLDBU:    {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpLDHU:    {FormatVIILoadStore32, FormatXIVLoadStore48},
	OpLDDW:    {FormatXIVLoadStore48},
	OpSLDBU:   {FormatIVLoadStore16},
	OpSLDHU:   {FormatIVLoadStore16},
	OpSTDW:    {FormatXIVLoadStore48},
	OpMULU:    {FormatXIExtended3, FormatXIIExtended4},
	OpMAC:     {FormatXIExtended3},
	OpMACU:    {FormatXIExtended3},
	OpADF:     {FormatXIExtended3},
	OpSBF:     {FormatXIExtended3},
	OpBINS:    {FormatIXExtended1},
	OpBSH:     {FormatXIIExtended4},
	OpBSW:     {FormatXIIExtended4},
	OpCMOV:    {FormatXIExtended3, FormatXIIExtended4},
	OpHSH:     {FormatXIIExtended4},
	OpHSW:     {FormatXIIExtended4},
	OpROTL:    {FormatVIILoadStore32},
	OpSAR:     {FormatIIImmReg, FormatIXExtended1, FormatXIExtended3},
	OpSASF:    {FormatIXExtended1},
	OpSETF:    {FormatIXExtended1},
	OpSHL:     {FormatIIImmReg, FormatIXExtended1, FormatXIExtended3},
	OpSHR:     {FormatIIImmReg, FormatIXExtended1, FormatXIExtended3},
	OpSXB:     {FormatIRegReg},
	OpSXH:     {FormatIRegReg},
	OpZXB:     {FormatIRegReg},
	OpZXH:     {FormatIRegReg},
	OpSCH0L:   {FormatIXExtended1},
	OpSCH0R:   {FormatIXExtended1},
	OpSCH1L:   {FormatIXExtended1},
	OpSCH1R:   {FormatIXExtended1},
	OpDIVHU:   {FormatXIExtended3},
	OpDIVU:    {FormatXIExtended3},
	OpDIVQ:    {FormatXIExtended3},
	OpDIVQU:   {FormatXIExtended3},
	OpDIV:     {FormatXIExtended3},
	OpMUL:     {FormatXIExtended3, FormatXIIExtended4},
	OpLOOP:    {FormatVIILoadStore32},
	OpSET1:    {FormatVIIIBit, FormatIXExtended1},
	OpNOT1:    {FormatVIIIBit, FormatIXExtended1},
	OpCLR1:    {FormatVIIIBit, FormatIXExtended1},
	OpTST1:    {FormatVIIIBit, FormatIXExtended1},
	OpJARL:    {FormatVJump, FormatVI3Operand, FormatXIExtended3},
	OpJR:      {FormatVJump, FormatVI3Operand},
	OpCALLT:   {FormatIIImmReg},
	OpCAXI:    {FormatXIExtended3},
	OpCLL:     {FormatXExtended2},
	OpCTRET:   {FormatXExtended2},
	OpDI:      {FormatXExtended2},
	OpDISPOSE: {FormatXIIIStack},
	OpEI:      {FormatXExtended2},
	OpEIRET:   {FormatXExtended2},
	OpFERET:   {FormatXExtended2},
	OpFETRAP:  {FormatIRegReg},
	OpHALT:    {FormatXExtended2},
	OpLDSR:    {FormatIXExtended1},
	OpLDLW:    {FormatVIILoadStore32},
	OpNOP:     {FormatIRegReg},
	OpPOPSP:   {FormatXIExtended3},
	OpPREPARE: {FormatXIIIStack},
	OpPUSHSP:  {FormatXIExtended3},
	OpRIE:     {FormatIRegReg, FormatXExtended2},
	OpSNOOZE:  {FormatXExtended2},
	OpSTSR:    {FormatIXExtended1},
	OpSTCW:    {FormatVIILoadStore32},
	OpSWITCH:  {FormatIRegReg},
	OpSYNCE:   {FormatIRegReg},
	OpSYNCI:   {FormatIRegReg},
	OpSYNCM:   {FormatIRegReg},
	OpSYNCP:   {FormatIRegReg},
	OpSYSCALL: {FormatXExtended2},
	OpTRAP:    {FormatXExtended2},
	OpCACHE:   {FormatXExtended2},
	OpPREF:    {FormatXExtended2},
}

// LegalFormats returns the set of formats under which op may legally be
// decoded, for test cross-checking.
func LegalFormats(op Op) []Format {
	return legalFormats[op]
}
