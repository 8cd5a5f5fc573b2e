package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/LeeHayun/PIM-Code-Test/datarecording"
	"github.com/LeeHayun/PIM-Code-Test/mem/pimdram"
	"github.com/LeeHayun/PIM-Code-Test/monitoring"
	"github.com/LeeHayun/PIM-Code-Test/sweep"
)

const sweepTable = "gemv_sweep"

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Measure every tiling of a GEMV.",
	Long: "`sweep` enumerates the power-of-two tilings of a GEMV and runs " +
		"each of them with and without the dataflow optimization.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		device, err := loadDevice(cmd)
		if err != nil {
			return err
		}

		params, err := readSweepParams(cmd)
		if err != nil {
			return err
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")

		b := sweep.MakeRunnerBuilder().
			WithDeviceConfig(device).
			WithOutputDir(outputDir).
			WithModelFactory(pimdram.Factory).
			WithSink(sweep.NewTableSink(cmd.OutOrStdout()))

		for _, h := range verboseHooks(cmd) {
			b = b.WithHook(h)
		}

		if record, _ := cmd.Flags().GetBool("record"); record {
			path, _ := cmd.Flags().GetString("record-path")
			recorder := datarecording.New(path)
			defer recorder.Close()

			execRecorder := datarecording.NewExecRecorder(recorder)
			execRecorder.Start()
			execRecorder.AddProperty("Device", device.Protocol)
			defer execRecorder.End()

			b = b.WithSink(sweep.NewRecorderSink(recorder, sweepTable))
		}

		if useMonitor, _ := cmd.Flags().GetBool("monitor"); useMonitor {
			port, _ := cmd.Flags().GetInt("monitor-port")
			openBrowser, _ := cmd.Flags().GetBool("open-browser")

			monitor := monitoring.NewMonitor().
				WithPortNumber(port).
				WithBrowser(openBrowser)
			monitor.StartServer()

			b = b.WithObserver(monitor)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return b.Build().Run(ctx, params)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	flags := sweepCmd.Flags()
	addGemvFlags(flags)
	flags.Uint64("ch", 16, "Number of channels")
	flags.Uint64("yp", 16, "Output elements that a channel computes in parallel")
	flags.Bool("record", false, "Record the rows in a SQLite database")
	flags.String("record-path", "",
		"Database path without the .sqlite3 suffix. Defaults to a unique name.")
	flags.Bool("monitor", false, "Serve the progress of the sweep over HTTP")
	flags.Int("monitor-port", 0, "Port of the monitoring server")
	flags.Bool("open-browser", false, "Open the monitoring page in a browser")
}

func readSweepParams(cmd *cobra.Command) (sweep.Params, error) {
	g, err := readGemvFlags(cmd)
	if err != nil {
		return sweep.Params{}, err
	}

	p := sweep.Params{
		X:               g.x,
		Y:               g.y,
		IsInputVector:   g.isInputVector(),
		IsRegisterReuse: g.registerReuse,
		IsDataflowOpt:   g.dataflowOpt,
		RI:              g.ri,
		RO:              g.ro,
	}

	p.Channels, _ = cmd.Flags().GetUint64("ch")
	p.YP, _ = cmd.Flags().GetUint64("yp")

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid sweep parameters: %w", err)
	}

	return p, nil
}

