package export_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wordfreq/internal/export"
	"wordfreq/internal/freq"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return records
}

func sampleTable() *freq.Table {
	return freq.FromCounts(map[string]int{
		"python":   4,
		"data":     3,
		"analysis": 2,
		"ml":       1,
	})
}

func TestWriteFrequencySortedByCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "freq.csv")
	if err := export.NewExporter(nil).WriteFrequency(path, sampleTable(), export.SortByCount); err != nil {
		t.Fatalf("WriteFrequency failed: %v", err)
	}

	records := readCSV(t, path)
	want := [][]string{
		{"word", "count"},
		{"python", "4"},
		{"data", "3"},
		{"analysis", "2"},
		{"ml", "1"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("unexpected csv: %v", records)
	}
}

func TestWriteFrequencySortedByWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.csv")
	if err := export.NewExporter(nil).WriteFrequency(path, sampleTable(), export.SortByWord); err != nil {
		t.Fatalf("WriteFrequency failed: %v", err)
	}

	records := readCSV(t, path)
	words := make([]string, 0, len(records)-1)
	for _, row := range records[1:] {
		words = append(words, row[0])
	}
	if !reflect.DeepEqual(words, []string{"analysis", "data", "ml", "python"}) {
		t.Fatalf("rows not alphabetical: %v", words)
	}
}

func TestWriteTopLimitsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.csv")
	if err := export.NewExporter(nil).WriteTop(path, sampleTable(), 2); err != nil {
		t.Fatalf("WriteTop failed: %v", err)
	}
	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %v", records)
	}
	if records[1][0] != "python" || records[2][0] != "data" {
		t.Fatalf("unexpected top rows: %v", records)
	}
}

func TestWriteWithStatsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	table := sampleTable()
	if err := export.NewExporter(nil).WriteWithStats(path, table, table.Stats()); err != nil {
		t.Fatalf("WriteWithStats failed: %v", err)
	}

	records := readCSV(t, path)
	if !reflect.DeepEqual(records[0], []string{"statistic", "value"}) {
		t.Fatalf("missing statistics header: %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"total words", "10"}) {
		t.Fatalf("unexpected total row: %v", records[1])
	}
	if !reflect.DeepEqual(records[2], []string{"unique words", "4"}) {
		t.Fatalf("unexpected unique row: %v", records[2])
	}
	if !reflect.DeepEqual(records[4], []string{"word", "count", "percent"}) {
		t.Fatalf("unexpected data header: %v", records[4])
	}
	if !reflect.DeepEqual(records[5], []string{"python", "4", "40.00"}) {
		t.Fatalf("unexpected first data row: %v", records[5])
	}
}

func TestWriteFilteredThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filtered.csv")
	if err := export.NewExporter(nil).WriteFiltered(path, sampleTable(), 2, 5); err != nil {
		t.Fatalf("WriteFiltered failed: %v", err)
	}
	records := readCSV(t, path)
	// count >= 2 and len >= 5 leaves python and analysis; data is too short.
	if len(records) != 3 || records[1][0] != "python" || records[2][0] != "analysis" {
		t.Fatalf("unexpected filtered rows: %v", records)
	}
}

func TestWriteFilteredEmptyResultFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filtered.csv")
	err := export.NewExporter(nil).WriteFiltered(path, sampleTable(), 100, 1)
	if !errors.Is(err, export.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestEmptyTableFails(t *testing.T) {
	exporter := export.NewExporter(nil)
	path := filepath.Join(t.TempDir(), "empty.csv")
	for name, fn := range map[string]func() error{
		"frequency": func() error { return exporter.WriteFrequency(path, freq.New(), export.SortByCount) },
		"top":       func() error { return exporter.WriteTop(path, freq.New(), 5) },
		"stats":     func() error { return exporter.WriteWithStats(path, freq.New(), freq.Summary{}) },
		"filtered":  func() error { return exporter.WriteFiltered(path, freq.New(), 1, 1) },
	} {
		if err := fn(); !errors.Is(err, export.ErrNoData) {
			t.Fatalf("%s: expected ErrNoData, got %v", name, err)
		}
	}
}
