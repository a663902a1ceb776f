package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wordfreq/internal/analysis"
	"wordfreq/internal/corpus"
	"wordfreq/internal/freq"
	"wordfreq/internal/history"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var stopwordsPath string
	var topN int
	var save bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze DIR",
		Short: "Analyze word frequencies across the .txt files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			processor, err := ctx.newProcessor(stopwordsPath)
			if err != nil {
				return err
			}
			runner := analysis.NewRunner(corpus.NewLoader(logger), processor, logger)

			out := cmd.OutOrStdout()
			req := analysis.Request{Dir: args[0]}
			if !jsonOutput {
				req.Progress = func(percent int, message string) {
					fmt.Fprintf(out, "%3d%% %s\n", percent, message)
				}
			}

			result, err := runner.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			var run *history.Run
			if save {
				err := ctx.withStore(func(store *history.Store) error {
					saved, err := store.SaveRun(cmd.Context(), args[0], result.FileCount, result.Table)
					if err != nil {
						return err
					}
					run = saved
					return nil
				})
				if err != nil {
					return fmt.Errorf("save run: %w", err)
				}
			}

			n := topN
			if n <= 0 {
				n = cfg.Analysis.TopWords
			}
			top := result.Table.MostCommon(n)

			if jsonOutput {
				return writeJSON(cmd, struct {
					Run     *history.Run `json:"run,omitempty"`
					Summary freq.Summary `json:"summary"`
					Top     []freq.Entry `json:"top"`
				}{Run: run, Summary: result.Summary, Top: top})
			}

			fmt.Fprintln(out)
			writeEntries(cmd, top)
			fmt.Fprintln(out)
			writeSummary(out, result.Summary)
			fmt.Fprintf(out, "Elapsed:          %s\n", result.Elapsed.Round(time.Millisecond))
			if run != nil {
				fmt.Fprintf(out, "Saved run %s\n", run.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stopwordsPath, "stopwords", "", "Path to an additional stopword file (one word per line)")
	cmd.Flags().IntVarP(&topN, "top", "t", 0, "Number of top words to display (0 uses the configured default)")
	cmd.Flags().BoolVar(&save, "save", true, "Record the run in the history database")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}
