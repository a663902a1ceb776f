package main

import (
	"strings"
	"testing"

	"wordfreq/internal/freq"
)

func TestRenderFrequencyTableRanksEntries(t *testing.T) {
	out := renderFrequencyTable([]freq.Entry{
		{Word: "python", Count: 4},
		{Word: "data", Count: 3},
	})

	requireContains(t, out, "Rank")
	requireContains(t, out, "python")
	requireContains(t, out, "data")

	pythonLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "python") {
			pythonLine = line
		}
	}
	if !strings.Contains(pythonLine, "1") || !strings.Contains(pythonLine, "4") {
		t.Fatalf("expected rank 1 count 4 on python row, got %q", pythonLine)
	}
}

func TestRenderTableHandlesShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"only"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	requireContains(t, out, "only")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}
