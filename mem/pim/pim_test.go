package pim

import (
	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Register", func() {
	DescribeTable("should map rows to registers and back",
		func(row uint64, reg Register, name string) {
			r, ok := RegisterOf(row)

			Expect(ok).To(BeTrue())
			Expect(r).To(Equal(reg))
			Expect(r.Row()).To(Equal(row))
			Expect(r.String()).To(Equal(name))
		},
		Entry("SBMR", uint64(0x3fff), RegisterSBMR, "SBMR"),
		Entry("ABMR", uint64(0x3ffe), RegisterABMR, "ABMR"),
		Entry("PIM_OP_MODE", uint64(0x3ffd), RegisterPIMOpMode, "PIM_OP_MODE"),
		Entry("CRF", uint64(0x3ffc), RegisterCRF, "CRF"),
		Entry("GRF", uint64(0x3ffb), RegisterGRF, "GRF"),
		Entry("SRF", uint64(0x3ffa), RegisterSRF, "SRF"),
	)

	It("should not treat ordinary rows as registers", func() {
		_, ok := RegisterOf(0x100)

		Expect(ok).To(BeFalse())
	})

	It("should tell mode registers apart", func() {
		Expect(RegisterABMR.IsModeRegister()).To(BeTrue())
		Expect(RegisterGRF.IsModeRegister()).To(BeFalse())
	})

	It("should address registers through bank 0", func() {
		addr := ControlAddress(RegisterGRF, GRFOutputBase+3)

		Expect(addr).To(Equal(addressmapping.Address{
			Row:    RowGRF,
			Column: 11,
		}))
	})
})
