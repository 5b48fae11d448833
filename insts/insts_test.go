package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/v850dis/insts"
)

var _ = Describe("Insts Package", func() {
	It("should have an Instruction type", func() {
		var i insts.Instruction
		Expect(i).To(BeZero())
	})

	It("should have a Decoder type", func() {
		decoder := insts.NewDecoder()
		Expect(decoder).ToNot(BeNil())
	})

	Describe("Op.String", func() {
		It("renders known mnemonics", func() {
			Expect(insts.OpADD.String()).To(Equal("add"))
			Expect(insts.OpDISPOSE.String()).To(Equal("dispose"))
			Expect(insts.OpPREF.String()).To(Equal("pref"))
		})

		It("uses the corrected satsub spelling, not the source typo", func() {
			Expect(insts.OpSATSUB.String()).To(Equal("satsub"))
		})
	})

	Describe("Format.String", func() {
		It("renders every format name", func() {
			Expect(insts.FormatIRegReg.String()).To(Equal("I_reg_reg"))
			Expect(insts.FormatXIVLoadStore48.String()).To(Equal("XIV_load_store48"))
		})
	})

	Describe("LegalFormats", func() {
		It("cross-checks every decoded Op against its static legal-format set", func() {
			decoder := insts.NewDecoder()

			cases := []struct {
				bytes []byte
				op    insts.Op
			}{
				{[]byte{0x00, 0x00}, insts.OpNOP},
				{[]byte{0x01, 0x10}, insts.OpMOV},
				{[]byte{0x85, 0x05}, insts.OpBCOND},
			}

			for _, c := range cases {
				inst, err := decoder.Decode(c.bytes, 0x100)
				Expect(err).NotTo(HaveOccurred())
				Expect(inst.Op).To(Equal(c.op))

				legal := insts.LegalFormats(inst.Op)
				Expect(legal).NotTo(BeEmpty())
				Expect(legal).To(ContainElement(inst.Format))
			}
		})

		It("returns an empty set for OpUnknown", func() {
			Expect(insts.LegalFormats(insts.OpUnknown)).To(BeEmpty())
		})
	})
})
