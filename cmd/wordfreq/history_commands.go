package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/export"
	"wordfreq/internal/freq"
	"wordfreq/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage recorded analysis runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryMergeCommand(ctx))
	historyCmd.AddCommand(newHistoryDeleteCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, runs)
				}

				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						run.CreatedAt.Format("2006-01-02 15:04:05"),
						run.SourceDir,
						strconv.Itoa(run.FileCount),
						strconv.Itoa(run.TotalWords),
						strconv.Itoa(run.UniqueWords),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Created", "Source", "Files", "Total", "Unique"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit runs as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var topN int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show the most frequent words of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, run, err := resolveRunTable(cmd.Context(), ctx, args[0])
			if err != nil {
				return err
			}

			top := table.MostCommon(topN)
			if jsonOutput {
				return writeJSON(cmd, struct {
					Run *history.Run `json:"run"`
					Top []freq.Entry `json:"top"`
				}{Run: run, Top: top})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.SourceDir)
			writeEntries(cmd, top)
			return nil
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "t", 20, "Number of words to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run and words as JSON")
	return cmd
}

func newHistoryMergeCommand(ctx *commandContext) *cobra.Command {
	var topN int
	var csvPath string

	cmd := &cobra.Command{
		Use:   "merge RUN_ID RUN_ID...",
		Short: "Combine the word counts of several runs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				merged, err := store.MergeRuns(cmd.Context(), args...)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Merged %d runs\n", len(args))
				writeEntries(cmd, merged.MostCommon(topN))
				writeSummary(out, merged.Stats())

				if csvPath != "" {
					path, err := config.ExpandPath(csvPath)
					if err != nil {
						return err
					}
					exporter := export.NewExporter(ctx.ensureLogger())
					if err := exporter.WriteFrequency(path, merged, export.SortByCount); err != nil {
						return fmt.Errorf("export merged table: %w", err)
					}
					fmt.Fprintf(out, "Exported merged table to %s\n", path)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "t", 20, "Number of merged words to show (0 for all)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also export the merged table to a CSV file")
	return cmd
}

func newHistoryDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Delete a recorded run and its word counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				if err := store.DeleteRun(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
				return nil
			})
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to clear history without --force")
			}
			return ctx.withStore(func(store *history.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm clearing all recorded runs")
	return cmd
}
