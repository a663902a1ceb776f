package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats [RUN_ID]",
		Short: "Show summary statistics for a recorded run",
		Long: "Show summary statistics for a recorded run. Without an argument the most " +
			"recent run is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			table, run, err := resolveRunTable(cmd.Context(), ctx, id)
			if err != nil {
				return err
			}

			summary := table.Stats()
			summary.FileCount = run.FileCount

			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.SourceDir)
			fmt.Fprintf(out, "Created:          %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
			writeSummary(out, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit statistics as JSON")
	return cmd
}

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "lookup WORD",
		Short: "Look up the frequency of a single word in a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, run, err := resolveRunTable(cmd.Context(), ctx, runID)
			if err != nil {
				return err
			}
			count := table.Lookup(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t(run %s)\n", args[0], count, run.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&runID, "run", "r", "", "Run to query (defaults to the most recent)")
	return cmd
}
