package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	for _, c := range cmds {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

var singleTile = []string{
	"--x", "16", "--y", "16",
	"--xch", "1", "--ych", "1",
	"--ri", "1", "--ro", "1", "--ki", "1", "--ko", "1",
}

var _ = Describe("Command", func() {
	BeforeEach(func() {
		resetFlags(rootCmd, runCmd, sweepCmd, reportCmd)
	})

	AfterEach(func() {
		rootCmd.SetArgs(nil)
	})

	Context("run", func() {
		It("should print the transactions and cycles", func() {
			out, _, err := execute(append([]string{"run"}, singleTile...)...)

			Expect(err).NotTo(HaveOccurred())

			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(Equal(
				"num_trans cycles num_barriers barrier_cycles"))

			fields := strings.Fields(lines[1])
			Expect(fields).To(HaveLen(4))
			Expect(fields[0]).To(Equal("7"))
			Expect(fields[2]).To(Equal("2"))
		})

		It("should log transactions when verbose", func() {
			args := append([]string{"run", "--verbose"}, singleTile...)
			_, errOut, err := execute(args...)

			Expect(err).NotTo(HaveOccurred())
			Expect(errOut).NotTo(BeEmpty())
		})

		It("should write the stats file", func() {
			dir := GinkgoT().TempDir()
			args := append([]string{"run", "--stats", "-o", dir}, singleTile...)

			_, _, err := execute(args...)

			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Join(dir, "HBM2.stats.txt")).To(BeAnExistingFile())
		})

		It("should take the output directory from the environment", func() {
			dir := GinkgoT().TempDir()
			GinkgoT().Setenv("PIMSIM_OUTPUT_DIR", dir)

			args := append([]string{"run", "--stats"}, singleTile...)
			_, _, err := execute(args...)

			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Join(dir, "HBM2.stats.txt")).To(BeAnExistingFile())
		})

		It("should reject an unknown input type", func() {
			args := append([]string{"run", "--input-type", "tensor"},
				singleTile...)
			_, _, err := execute(args...)

			Expect(err).To(MatchError(ContainSubstring("input-type")))
		})

		It("should reject a zero tile count", func() {
			args := append([]string{"run"}, singleTile...)
			args = append(args, "--xoo", "0")

			_, _, err := execute(args...)

			Expect(err).To(MatchError(ContainSubstring("invalid tiling")))
		})

		It("should fail on a missing device config", func() {
			args := append([]string{"run", "--config", "no-such-file.yaml"},
				singleTile...)
			_, _, err := execute(args...)

			Expect(err).To(HaveOccurred())
		})
	})

	Context("sweep", func() {
		It("should print a row per tiling", func() {
			out, _, err := execute("sweep",
				"--x", "16", "--y", "16",
				"--ri", "1", "--ro", "1", "--ch", "1", "--yp", "1")

			Expect(err).NotTo(HaveOccurred())

			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines[0]).To(Equal(
				"xch ych xoo yoo xoi yoi ki ko " +
					"num_trans cycles num_trans_opt cycles_opt"))
			Expect(len(lines)).To(BeNumerically(">", 1))
		})

		It("should report the fastest recorded tilings", func() {
			db := filepath.Join(GinkgoT().TempDir(), "sweep")

			_, _, err := execute("sweep",
				"--x", "16", "--y", "16",
				"--ri", "1", "--ro", "1", "--ch", "1", "--yp", "1",
				"--record", "--record-path", db)
			Expect(err).NotTo(HaveOccurred())

			out, errOut, err := execute("report", db+".sqlite3", "--top", "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(errOut).To(ContainSubstring("2 of 5 tilings shown"))

			lines := strings.Split(strings.TrimSpace(out), "\n")
			Expect(lines).To(HaveLen(3))
			Expect(lines[0]).To(HavePrefix("xch ych"))

			cyclesOpt := func(line string) uint64 {
				fields := strings.Fields(line)
				Expect(fields).To(HaveLen(12))

				v, err := strconv.ParseUint(fields[11], 10, 64)
				Expect(err).NotTo(HaveOccurred())

				return v
			}
			Expect(cyclesOpt(lines[1])).
				To(BeNumerically("<=", cyclesOpt(lines[2])))
		})

		It("should fail to report a missing database", func() {
			_, _, err := execute("report",
				filepath.Join(GinkgoT().TempDir(), "none.sqlite3"))

			Expect(err).To(HaveOccurred())
		})

		It("should reject zero channels", func() {
			_, _, err := execute("sweep", "--ch", "0")

			Expect(err).To(MatchError(ContainSubstring("invalid sweep")))
		})
	})
})

var _ = Describe("loadDotEnv", func() {
	It("should ignore a missing file", func() {
		Expect(loadDotEnv(filepath.Join(GinkgoT().TempDir(), ".env"))).
			To(Succeed())
	})

	It("should export the variables in the file", func() {
		path := filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(path, []byte("PIMSIM_TEST_VALUE=42\n"), 0o644)).
			To(Succeed())
		GinkgoT().Setenv("PIMSIM_TEST_VALUE", "")
		Expect(os.Unsetenv("PIMSIM_TEST_VALUE")).To(Succeed())

		Expect(loadDotEnv(path)).To(Succeed())
		Expect(os.Getenv("PIMSIM_TEST_VALUE")).To(Equal("42"))
	})
})
