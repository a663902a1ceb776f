package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/visualize"
)

func newCloudCommand(ctx *commandContext) *cobra.Command {
	var runID string
	var maxWords int
	var widthPx int
	var heightPx int
	var background string
	var palette string

	cmd := &cobra.Command{
		Use:   "cloud PNG_PATH",
		Short: "Render a word cloud of the most frequent words",
		Long: "Render a word cloud of the most frequent words. Available palettes: " +
			strings.Join(visualize.PaletteNames(), ", ") + ".",
		Args: cobra.ExactArgs(1),
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

			opts := visualize.CloudOptions{
				MaxWords:   maxWords,
				WidthPx:    widthPx,
				HeightPx:   heightPx,
				Background: background,
				Palette:    palette,
			}
			if opts.MaxWords <= 0 {
				opts.MaxWords = cfg.WordCloud.MaxWords
			}
			if opts.WidthPx <= 0 {
				opts.WidthPx = cfg.WordCloud.WidthPx
			}
			if opts.HeightPx <= 0 {
				opts.HeightPx = cfg.WordCloud.HeightPx
			}
			if opts.Background == "" {
				opts.Background = cfg.WordCloud.Background
			}
			if opts.Palette == "" {
				opts.Palette = cfg.WordCloud.Palette
			}

			renderer := visualize.NewRenderer(ctx.ensureLogger())
			if err := renderer.WordCloud(path, table, opts); err != nil {
				return fmt.Errorf("render word cloud for run %s: %w", run.ID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote word cloud for run %s to %s\n", run.ID, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&runID, "run", "r", "", "Run to render (defaults to the most recent)")
	cmd.Flags().IntVar(&maxWords, "max-words", 0, "Maximum number of words to place (0 uses the configured default)")
	cmd.Flags().IntVar(&widthPx, "width", 0, "Image width in pixels (0 uses the configured default)")
	cmd.Flags().IntVar(&heightPx, "height", 0, "Image height in pixels (0 uses the configured default)")
	cmd.Flags().StringVar(&background, "background", "", "Background: white, black, or a palette name")
	cmd.Flags().StringVar(&palette, "palette", "", "Color palette for the words")
	return cmd
}
