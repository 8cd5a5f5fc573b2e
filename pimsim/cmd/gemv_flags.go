package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type gemvFlags struct {
	x, y          uint64
	inputType     string
	registerReuse bool
	ri, ro        uint64
	dataflowOpt   bool
}

func addGemvFlags(flags *pflag.FlagSet) {
	flags.Uint64("x", 4096, "Number of rows of the matrix")
	flags.Uint64("y", 4096, "Number of columns of the matrix")
	flags.String("input-type", "vector", "Input type, vector or matrix")
	flags.Bool("register-reuse", false,
		"Skip register loads that the previous tile already made")
	flags.Uint64("ri", 8, "Input register rows")
	flags.Uint64("ro", 8, "Output register rows")
	flags.Bool("dataflow-opt", false,
		"Use the input-stationary order where it reloads fewer accumulators")
}

func readGemvFlags(cmd *cobra.Command) (gemvFlags, error) {
	f := cmd.Flags()
	g := gemvFlags{}

	g.x, _ = f.GetUint64("x")
	g.y, _ = f.GetUint64("y")
	g.inputType, _ = f.GetString("input-type")
	g.registerReuse, _ = f.GetBool("register-reuse")
	g.ri, _ = f.GetUint64("ri")
	g.ro, _ = f.GetUint64("ro")
	g.dataflowOpt, _ = f.GetBool("dataflow-opt")

	if g.inputType != "vector" && g.inputType != "matrix" {
		return g, fmt.Errorf(
			"input-type must be vector or matrix, got %q", g.inputType)
	}

	return g, nil
}

func (g gemvFlags) isInputVector() bool {
	return g.inputType == "vector"
}
