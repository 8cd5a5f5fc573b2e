package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeeHayun/PIM-Code-Test/datarecording"
	"github.com/LeeHayun/PIM-Code-Test/sweep"
)

var reportCmd = &cobra.Command{
	Use:   "report <database>",
	Short: "Print the fastest tilings of a recorded sweep.",
	Long: "`report` reads the rows that `sweep --record` stored and prints " +
		"them ordered by their cycles with the dataflow optimization.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")
		where, _ := cmd.Flags().GetString("where")

		reader, err := datarecording.NewReader(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		reader.MapTable(sweepTable, sweep.Row{})

		results, total, err := reader.Query(cmd.Context(), sweepTable,
			datarecording.QueryParams{
				Where:   where,
				OrderBy: "CyclesOpt ASC, Cycles ASC",
				Limit:   top,
			})
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		sink := sweep.NewTableSink(cmd.OutOrStdout())
		for _, r := range results {
			if err := sink.Write(*r.(*sweep.Row)); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d tilings shown\n",
			len(results), total)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Int("top", 10, "Number of tilings to print, 0 for all")
	reportCmd.Flags().String("where", "",
		"SQL condition on the columns of the table, e.g. \"KI = 8\"")
}
