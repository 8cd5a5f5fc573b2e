package config

import (
	"os"
	"path/filepath"

	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = Describe("Device", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeFile := func(content string) string {
		path := filepath.Join(dir, "device.yaml")
		gomega.Expect(os.WriteFile(path, []byte(content), 0644)).To(gomega.Succeed())

		return path
	}

	It("should provide a valid default", func() {
		d := Default()

		gomega.Expect(d.Validate()).To(gomega.Succeed())
		gomega.Expect(d.BurstCycle()).To(gomega.Equal(2))
		gomega.Expect(d.NumBanksPerChannel()).To(gomega.Equal(16))
	})

	It("should address one 32-byte word per access", func() {
		m := Default().AddressMapper()

		gomega.Expect(m.ShiftBits).To(gomega.Equal(uint64(5)))
		gomega.Expect(m.RowMask).To(gomega.Equal(uint64(0x3fff)))
	})

	It("should keep defaults for omitted fields", func() {
		path := writeFile(`
channels: 8
timing:
  tCL: 20
`)

		d, err := Load(path)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(d.NumChannel).To(gomega.Equal(8))
		gomega.Expect(d.Timing.CL).To(gomega.Equal(20))
		gomega.Expect(d.Timing.RCD).To(gomega.Equal(14))
		gomega.Expect(d.NumRow).To(gomega.Equal(16384))
	})

	It("should reject organizations that are not powers of 2", func() {
		path := writeFile("banks_per_group: 3\n")

		_, err := Load(path)

		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("banks_per_group")))
	})

	It("should reject negative timing parameters", func() {
		path := writeFile(`
timing:
  tCL: -20
  tMRD: -1
`)

		_, err := Load(path)

		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("tCL")))
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("tMRD")))
		gomega.Expect(err.Error()).NotTo(gomega.ContainSubstring("tRCD"))
	})

	It("should report a missing file", func() {
		_, err := Load(filepath.Join(dir, "missing.yaml"))

		gomega.Expect(err).To(gomega.MatchError(os.ErrNotExist))
	})

	It("should report malformed YAML", func() {
		path := writeFile("channels: [\n")

		_, err := Load(path)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	It("should build a mapper that decodes what it maps", func() {
		m := Default().AddressMapper()
		addr := addressmapping.Address{Channel: 3, BankGroup: 2, Bank: 1,
			Row: 0x3ffa, Column: 7}

		gomega.Expect(m.Decode(m.Map(addr))).To(gomega.Equal(addr))
	})
})
