// Package main provides a golden-vector accuracy check for the V850
// decoder: known byte sequences are decoded and compared field-by-field
// against their expected mnemonic and operands.
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/v850dis/insts"
)

type goldenCase struct {
	name      string
	data      []byte
	wantOp    insts.Op
	wantSize  int8
	wantMnem  string
	wantOprnd string
}

func goldenCases() []goldenCase {
	return []goldenCase{
		{"NOP", []byte{0x00, 0x00}, insts.OpNOP, 2, "nop", ""},
		{"MOV reg-reg", []byte{0x01, 0x08}, insts.OpMOV, 2, "mov", "r1, r1"},
		{"ADD imm5", []byte{0x45, 0x22}, insts.OpADD, 2, "add", "5, r4"},
		{"BR disp9=0", []byte{0x85, 0x05}, insts.OpBCOND, 2, "br", "0x000100"},
		{"SLD.B", []byte{0x0A, 0x13}, insts.OpSLDB, 2, "sld.b", "10[ep] r2"},
		{"JARL", []byte{0x80, 0x2F, 0x10, 0x00}, insts.OpJARL, 4, "jarl", "0x000110, r5"},
		{"ADDI", []byte{0x02, 0x1E, 0x2A, 0x00}, insts.OpADDI, 4, "addi", "42, r2, r3"},
		{"LD.B (32-bit)", []byte{0x09, 0x17, 0x07, 0x00}, insts.OpLDB, 4, "ld.b", "7[r9], r2"},
		{"SET1", []byte{0xC3, 0x2F, 0x10, 0x00}, insts.OpSET1, 4, "set1", "5, 16[r3]"},
		{"HALT", []byte{0xE0, 0x07, 0x20, 0x01}, insts.OpHALT, 4, "halt", ""},
		{"MUL", []byte{0xE1, 0x17, 0x20, 0x22}, insts.OpMUL, 4, "mul", "[r1], r2, r4"},
		{"BSW", []byte{0xE0, 0x1F, 0x40, 0x3B}, insts.OpBSW, 4, "bsw", "r3, r7"},
		{"DISPOSE", []byte{0xC0, 0xC8, 0x01, 0x00}, insts.OpDISPOSE, 4, "dispose", "3, {r20}"},
		{"LD.B (48-bit)", []byte{0x85, 0x07, 0x05, 0x00, 0x00, 0x00}, insts.OpLDB, 6, "ld.b", "0[r5], r0"},
	}
}

// testInstructionDecoding validates that each golden byte sequence decodes
// to the expected opcode, size, mnemonic, and operand text.
func testInstructionDecoding() bool {
	decoder := insts.NewDecoder()
	ok := true

	fmt.Println("Testing instruction decoder accuracy...")

	for _, tc := range goldenCases() {
		inst, err := decoder.Decode(tc.data, 0x100)
		if err != nil {
			fmt.Printf("FAIL %s: unexpected error %v\n", tc.name, err)
			ok = false
			continue
		}

		if inst.Op != tc.wantOp || inst.ByteSize != tc.wantSize ||
			inst.Mnemonic != tc.wantMnem || inst.Operands != tc.wantOprnd {
			fmt.Printf("FAIL %s:\n  got  op=%v size=%d mnemonic=%q operands=%q\n  want op=%v size=%d mnemonic=%q operands=%q\n",
				tc.name, inst.Op, inst.ByteSize, inst.Mnemonic, inst.Operands,
				tc.wantOp, tc.wantSize, tc.wantMnem, tc.wantOprnd)
			ok = false
			continue
		}

		fmt.Printf("PASS %s: %q %q\n", tc.name, inst.Mnemonic, inst.Operands)
	}

	return ok
}

// testUnrecognizedEncodings validates that encodings with no matching
// format decoder are rejected rather than silently misdecoded.
func testUnrecognizedEncodings() bool {
	fmt.Println("\nTesting unrecognized-encoding rejection...")

	decoder := insts.NewDecoder()
	ok := true

	cases := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0xE0, 0x1F},
	}
	for _, data := range cases {
		if inst, err := decoder.Decode(data, 0x1000); err != insts.ErrUnrecognized || inst != nil {
			fmt.Printf("FAIL: expected ErrUnrecognized for % x, got inst=%+v err=%v\n", data, inst, err)
			ok = false
			continue
		}
		fmt.Printf("PASS: % x correctly rejected\n", data)
	}

	return ok
}

func main() {
	fmt.Println("v850dis Accuracy Validation")
	fmt.Println("=======================================================")

	allPassed := true

	if !testInstructionDecoding() {
		allPassed = false
	}
	if !testUnrecognizedEncodings() {
		allPassed = false
	}

	fmt.Println("\n=======================================================")
	if allPassed {
		fmt.Println("ALL ACCURACY TESTS PASSED")
		os.Exit(0)
	} else {
		fmt.Println("ACCURACY TESTS FAILED")
		os.Exit(1)
	}
}
