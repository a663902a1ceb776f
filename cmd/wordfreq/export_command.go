package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var topN int
	var withStats bool
	var minCount int
	var minLength int
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "export CSV_PATH",
		Short: "Export a recorded run to a CSV file",
		Long: "Export a recorded run to a CSV file. The default layout is word,count rows; " +
			"--top limits to the most frequent words, --with-stats prepends a summary " +
			"block, and --min-count/--min-length export a filtered subset.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := export.SortOrder(sortOrder)
			switch order {
			case export.SortByCount, export.SortByWord:
			default:
				return fmt.Errorf("unknown sort order %q (expected %q or %q)", sortOrder, export.SortByCount, export.SortByWord)
			}

			table, run, err := resolveRunTable(cmd.Context(), ctx, runID)
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			exporter := export.NewExporter(ctx.ensureLogger())
			switch {
			case withStats:
				summary := table.Stats()
				summary.FileCount = run.FileCount
				err = exporter.WriteWithStats(path, table, summary)
			case minCount > 0 || minLength > 0:
				err = exporter.WriteFiltered(path, table, minCount, minLength)
			case topN > 0:
				err = exporter.WriteTop(path, table, topN)
			default:
				err = exporter.WriteFrequency(path, table, order)
			}
			if err != nil {
				return fmt.Errorf("export run %s: %w", run.ID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported run %s to %s\n", run.ID, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&runID, "run", "r", "", "Run to export (defaults to the most recent)")
	cmd.Flags().IntVarP(&topN, "top", "t", 0, "Export only the N most frequent words")
	cmd.Flags().BoolVar(&withStats, "with-stats", false, "Include a summary block and percentage column")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "Export only words occurring at least this often")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Export only words at least this long")
	cmd.Flags().StringVar(&sortOrder, "sort", string(export.SortByCount), "Row order: count or word")
	return cmd
}
