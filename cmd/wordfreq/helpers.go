package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"wordfreq/internal/freq"
	"wordfreq/internal/history"
)

// resolveRunTable loads the frequency table for the given run, or for the most
// recent run when id is empty.
func resolveRunTable(ctx context.Context, cctx *commandContext, id string) (*freq.Table, *history.Run, error) {
	var table *freq.Table
	var run *history.Run

	err := cctx.withStore(func(store *history.Store) error {
		id = strings.TrimSpace(id)
		if id == "" {
			latest, err := store.LatestRun(ctx)
			if err != nil {
				if errors.Is(err, history.ErrRunNotFound) {
					return errors.New("no analysis runs recorded yet; run `wordfreq analyze` first")
				}
				return err
			}
			run = latest
		} else {
			found, err := store.GetRun(ctx, id)
			if err != nil {
				return err
			}
			run = found
		}

		t, err := store.Table(ctx, run.ID)
		if err != nil {
			return err
		}
		table = t
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return table, run, nil
}

// writeEntries prints ranked entries, using the bordered table layout on a
// terminal and tab-separated rows when output is piped.
func writeEntries(cmd *cobra.Command, entries []freq.Entry) {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, renderFrequencyTable(entries))
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s\t%d\n", entry.Word, entry.Count)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeSummary(out io.Writer, summary freq.Summary) {
	fmt.Fprintf(out, "Total words:      %d\n", summary.TotalWords)
	fmt.Fprintf(out, "Unique words:     %d\n", summary.UniqueWords)
	fmt.Fprintf(out, "Average frequency: %.2f\n", summary.AvgFrequency)
	fmt.Fprintf(out, "Max frequency:    %d\n", summary.MaxFrequency)
	fmt.Fprintf(out, "Min frequency:    %d\n", summary.MinFrequency)
	if summary.MostCommon != nil {
		fmt.Fprintf(out, "Most common:      %s (%d)\n", summary.MostCommon.Word, summary.MostCommon.Count)
	}
	if summary.FileCount > 0 {
		fmt.Fprintf(out, "Files analyzed:   %d\n", summary.FileCount)
	}
}
