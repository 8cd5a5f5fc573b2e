package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeeHayun/PIM-Code-Test/mem/pimdram"
	"github.com/LeeHayun/PIM-Code-Test/txgen"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single GEMV tiling.",
	Long: "`run` executes one tiling and prints the number of transactions " +
		"and cycles.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		device, err := loadDevice(cmd)
		if err != nil {
			return err
		}

		tiling, err := readTiling(cmd)
		if err != nil {
			return err
		}

		if err := tiling.Validate(); err != nil {
			return fmt.Errorf("invalid tiling: %w", err)
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")

		barriers := txgen.NewBarrierTracer()

		b := txgen.MakeGemvBuilder().
			WithDeviceConfig(device).
			WithOutputDir(outputDir).
			WithTilingConfig(tiling).
			WithModelFactory(pimdram.Factory).
			WithHook(barriers)

		for _, h := range verboseHooks(cmd) {
			b = b.WithHook(h)
		}

		var g txgen.Generator = b.Build("GEMV")

		g.Initialize()
		g.SetData()
		g.Execute()
		g.GetResult()
		g.CheckResult()

		fmt.Fprintln(cmd.OutOrStdout(),
			"num_trans cycles num_barriers barrier_cycles")
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d %d\n",
			g.GetTransactionCount(), g.GetCycleCount(),
			barriers.Count(), barriers.TotalCycles())

		if stats, _ := cmd.Flags().GetBool("stats"); stats {
			g.PrintStats()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	addGemvFlags(flags)
	flags.Uint64("xch", 1, "Channels that split the rows")
	flags.Uint64("ych", 16, "Channels that split the columns")
	flags.Uint64("xoo", 1, "Outer tiles along the rows")
	flags.Uint64("yoo", 1, "Outer tiles along the columns")
	flags.Uint64("xoi", 1, "Inner tiles along the rows")
	flags.Uint64("yoi", 1, "Inner tiles along the columns")
	flags.Uint64("ki", 8, "Input register rows per tile")
	flags.Uint64("ko", 8, "Output register rows per tile")
	flags.Bool("stats", false, "Write the statistics of the timing model")
}

func readTiling(cmd *cobra.Command) (txgen.TilingConfig, error) {
	g, err := readGemvFlags(cmd)
	if err != nil {
		return txgen.TilingConfig{}, err
	}

	f := cmd.Flags()
	c := txgen.TilingConfig{
		X:               g.x,
		Y:               g.y,
		RI:              g.ri,
		RO:              g.ro,
		IsInputVector:   g.isInputVector(),
		IsRegisterReuse: g.registerReuse,
		IsDataflowOpt:   g.dataflowOpt,
	}

	c.XCh, _ = f.GetUint64("xch")
	c.YCh, _ = f.GetUint64("ych")
	c.XOO, _ = f.GetUint64("xoo")
	c.YOO, _ = f.GetUint64("yoo")
	c.XOI, _ = f.GetUint64("xoi")
	c.YOI, _ = f.GetUint64("yoi")
	c.KI, _ = f.GetUint64("ki")
	c.KO, _ = f.GetUint64("ko")

	return c, nil
}
