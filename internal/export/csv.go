package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"wordfreq/internal/freq"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("no data to export")

// SortOrder selects row ordering for frequency exports.
type SortOrder string

const (
	SortByCount SortOrder = "count"
	SortByWord  SortOrder = "word"
)

// Exporter writes frequency tables as CSV files.
type Exporter struct {
	logger *slog.Logger
}

// NewExporter constructs an exporter. A nil logger disables logging.
func NewExporter(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{logger: logger.With("component", "export")}
}

// WriteFrequency writes a two-column word,count file. Rows are ordered by
// count descending or word ascending depending on order.
func (e *Exporter) WriteFrequency(path string, table *freq.Table, order SortOrder) error {
	entries := table.Entries()
	if len(entries) == 0 {
		return ErrNoData
	}
	if order == SortByWord {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	}

	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"word", "count"})
	for _, entry := range entries {
		rows = append(rows, []string{entry.Word, strconv.Itoa(entry.Count)})
	}

	if err := e.writeRows(path, rows); err != nil {
		return err
	}
	e.logger.Info("frequency data exported", "path", path, "words", len(entries))
	return nil
}

// WriteTop writes the n highest-count rows.
func (e *Exporter) WriteTop(path string, table *freq.Table, n int) error {
	if table.Len() == 0 {
		return ErrNoData
	}
	return e.WriteFrequency(path, freq.FromCounts(entryCounts(table.MostCommon(n))), SortByCount)
}

// WriteWithStats writes a summary block followed by word,count,percent rows.
// Percentages are of the total token count, to two decimals.
func (e *Exporter) WriteWithStats(path string, table *freq.Table, summary freq.Summary) error {
	entries := table.Entries()
	if len(entries) == 0 {
		return ErrNoData
	}

	total := summary.TotalWords
	if total == 0 {
		total = table.Total()
	}
	unique := summary.UniqueWords
	if unique == 0 {
		unique = table.Len()
	}

	rows := [][]string{
		{"statistic", "value"},
		{"total words", strconv.Itoa(total)},
		{"unique words", strconv.Itoa(unique)},
		{},
		{"word", "count", "percent"},
	}
	for _, entry := range entries {
		percent := 0.0
		if total > 0 {
			percent = float64(entry.Count) / float64(total) * 100
		}
		rows = append(rows, []string{
			entry.Word,
			strconv.Itoa(entry.Count),
			strconv.FormatFloat(percent, 'f', 2, 64),
		})
	}

	if err := e.writeRows(path, rows); err != nil {
		return err
	}
	e.logger.Info("frequency data with statistics exported", "path", path, "words", len(entries))
	return nil
}

// WriteFiltered writes the rows with count >= minCount and word length >=
// minLength. An empty result after filtering is an error so callers can warn.
func (e *Exporter) WriteFiltered(path string, table *freq.Table, minCount, minLength int) error {
	if table.Len() == 0 {
		return ErrNoData
	}
	filtered := make(map[string]int)
	for _, entry := range table.FilterByCount(minCount, 0) {
		if len(entry.Word) >= minLength {
			filtered[entry.Word] = entry.Count
		}
	}
	if len(filtered) == 0 {
		return fmt.Errorf("%w: no words with count >= %d and length >= %d", ErrNoData, minCount, minLength)
	}
	return e.WriteFrequency(path, freq.FromCounts(filtered), SortByCount)
}

func (e *Exporter) writeRows(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		// encoding/csv writes nothing for a zero-length record; emit a
		// single empty field so the blank separator row survives.
		if len(row) == 0 {
			row = []string{""}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return file.Close()
}

func entryCounts(entries []freq.Entry) map[string]int {
	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Word] = entry.Count
	}
	return counts
}
