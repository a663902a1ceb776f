package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/visualize"
)

func newChartCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var topN int
	var horizontal bool
	var widthPx int
	var heightPx int
	var palette string
	var title string

	cmd := &cobra.Command{
		Use:   "chart PNG_PATH",
		Short: "Render a bar chart of the most frequent words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			table, run, err := resolveRunTable(cmd.Context(), ctx, runID)
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			opts := visualize.BarOptions{
				Title:    title,
				TopN:     topN,
				WidthPx:  widthPx,
				HeightPx: heightPx,
				Palette:  palette,
			}
			if opts.WidthPx <= 0 {
				opts.WidthPx = cfg.Chart.WidthPx
			}
			if opts.HeightPx <= 0 {
				opts.HeightPx = cfg.Chart.HeightPx
			}
			if opts.Palette == "" {
				opts.Palette = cfg.Chart.Palette
			}
			if opts.Title == "" {
				opts.Title = fmt.Sprintf("Word frequencies: %s", run.SourceDir)
			}

			renderer := visualize.NewRenderer(ctx.ensureLogger())
			if horizontal {
				if opts.TopN <= 0 {
					opts.TopN = cfg.Chart.HorizontalTopWords
				}
				err = renderer.HorizontalBarChart(path, table, opts)
			} else {
				if opts.TopN <= 0 {
					opts.TopN = cfg.Chart.TopWords
				}
				err = renderer.BarChart(path, table, opts)
			}
			if err != nil {
				return fmt.Errorf("render chart for run %s: %w", run.ID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote chart for run %s to %s\n", run.ID, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&runID, "run", "r", "", "Run to chart (defaults to the most recent)")
	cmd.Flags().IntVarP(&topN, "top", "t", 0, "Number of words to chart (0 uses the configured default)")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "Draw horizontal bars with the most frequent word on top")
	cmd.Flags().IntVar(&widthPx, "width", 0, "Image width in pixels (0 uses the configured default)")
	cmd.Flags().IntVar(&heightPx, "height", 0, "Image height in pixels (0 uses the configured default)")
	cmd.Flags().StringVar(&palette, "palette", "", "Color palette (see `wordfreq cloud --help` for names)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	return cmd
}
