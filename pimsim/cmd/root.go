// Package cmd provides the command-line interface of pimsim.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// Environment variables that provide flag defaults. They can also be set in
// a .env file in the working directory.
var envDefaults = map[string]string{
	"config":     "PIMSIM_CONFIG",
	"output-dir": "PIMSIM_OUTPUT_DIR",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pimsim",
	Short: "pimsim simulates GEMV workloads on a PIM-enabled HBM device.",
	Long: `pimsim drives a cycle-level timing model of a PIM-enabled HBM ` +
		`device with the memory transactions of a tiled GEMV and reports ` +
		`the number of cycles it takes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnvDefaults(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Device configuration file (YAML). Defaults to an HBM2 PIM device.")
	rootCmd.PersistentFlags().StringP("output-dir", "o", ".",
		"Output directory for stats files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Log every transaction and barrier to stderr")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func applyEnvDefaults(cmd *cobra.Command) error {
	for flagName, envName := range envDefaults {
		f := cmd.Flags().Lookup(flagName)
		if f == nil || f.Changed {
			continue
		}

		value, ok := os.LookupEnv(envName)
		if !ok {
			continue
		}

		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", envName, err)
		}
	}

	return nil
}

func loadDevice(cmd *cobra.Command) (*config.Device, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func verboseHooks(cmd *cobra.Command) []hooking.Hook {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return nil
	}

	logger := log.New(cmd.ErrOrStderr(), "", 0)

	return []hooking.Hook{hooking.NewLogHook(logger)}
}
