package sweep

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/LeeHayun/PIM-Code-Test/txgen"
)

var _ = Describe("Enumerate", func() {
	var p Params

	BeforeEach(func() {
		p = Params{
			X: 32, Y: 2,
			IsInputVector: true,
			RI:            1, RO: 1,
			Channels: 1, YP: 1,
		}
	})

	It("should split the tiles between the outer and inner loops", func() {
		configs := Enumerate(p)

		type split struct{ xoo, yoo, xoi, yoi uint64 }
		var splits []split
		for _, c := range configs {
			splits = append(splits, split{c.XOO, c.YOO, c.XOI, c.YOI})
		}

		Expect(splits).To(Equal([]split{
			{1, 1, 2, 2},
			{1, 2, 2, 1},
			{2, 1, 1, 2},
			{2, 2, 1, 1},
		}))
	})

	It("should cover the whole matrix with every tiling", func() {
		p = DefaultParams()
		p.X, p.Y = 1024, 2048

		configs := Enumerate(p)

		Expect(configs).NotTo(BeEmpty())
		for _, c := range configs {
			Expect(c.XCh * c.YCh).To(Equal(p.Channels))
			Expect(c.XCh * c.XOO * c.XOI * c.KI * c.FanIn()).To(Equal(p.X))
			Expect(c.YCh * c.YOO * c.YOI * c.KO * c.FanOut() * p.YP).
				To(Equal(p.Y))
			Expect(c.KI).To(BeNumerically("<=", p.RI))
			Expect(c.KO).To(BeNumerically("<=", p.RO))
			Expect(c.IsDataflowOpt).To(BeFalse())
			Expect(c.Validate()).To(Succeed())
		}
	})

	It("should use the output fan-out for a matrix input", func() {
		p.IsInputVector = false
		p.X, p.Y = 2, 32

		configs := Enumerate(p)

		Expect(configs).To(HaveLen(4))
		for _, c := range configs {
			Expect(c.IsInputVector).To(BeFalse())
			Expect(c.XOO * c.XOI).To(Equal(uint64(2)))
			Expect(c.YOO * c.YOI).To(Equal(uint64(2)))
		}
	})

	It("should skip tilings that leave no tile", func() {
		p.X = 8

		Expect(Enumerate(p)).To(BeEmpty())
	})

	It("should keep only input-stationary shapes with the optimization", func() {
		p.RI, p.RO = 2, 2
		p.X, p.Y = 64, 64
		p.IsDataflowOpt = true

		configs := Enumerate(p)

		Expect(configs).NotTo(BeEmpty())
		for _, c := range configs {
			Expect(c.KI).To(Equal(uint64(1)))
			Expect(c.KO).To(Equal(uint64(2)))

			c.IsDataflowOpt = true
			Expect(c.IsOutputStationary()).To(BeFalse())
		}
	})

	It("should carry register reuse into the tilings", func() {
		p.IsRegisterReuse = true

		for _, c := range Enumerate(p) {
			Expect(c).To(HaveField("IsRegisterReuse", true))
		}
	})

	It("should reject parameters that divide by zero", func() {
		p.YP = 0
		Expect(p.Validate()).To(MatchError(ContainSubstring("yp")))
		Expect(DefaultParams().Validate()).To(Succeed())
	})

	It("should produce tilings in a stable order", func() {
		p = DefaultParams()
		Expect(Enumerate(p)).To(Equal(Enumerate(p)))
		Expect(Enumerate(p)[0]).To(Equal(txgen.TilingConfig{
			X: 4096, Y: 4096,
			XCh: 1, YCh: 16,
			XOO: 1, YOO: 1, XOI: 256, YOI: 16,
			RI: 8, RO: 8, KI: 1, KO: 1,
			IsInputVector: true,
		}))
	})
})
