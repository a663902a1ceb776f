package freq_test

import (
	"math"
	"reflect"
	"testing"

	"wordfreq/internal/freq"
)

var sampleTokens = []string{
	"python", "data", "analysis", "python", "machine", "learning",
	"data", "science", "python", "programming", "data", "analysis",
	"visualization", "statistics", "python", "data",
}

func TestBuildCountSumEqualsInputLength(t *testing.T) {
	table := freq.Build(sampleTokens)
	if table.Total() != len(sampleTokens) {
		t.Fatalf("Total = %d, want %d", table.Total(), len(sampleTokens))
	}
	sum := 0
	for _, count := range table.Counts() {
		sum += count
	}
	if sum != len(sampleTokens) {
		t.Fatalf("count sum = %d, want %d", sum, len(sampleTokens))
	}
}

func TestBuildNormalizesCase(t *testing.T) {
	table := freq.Build([]string{"Go", "go", "GO"})
	if table.Len() != 1 {
		t.Fatalf("expected case variants to collapse, got %d keys", table.Len())
	}
	if table.Lookup("gO") != 3 {
		t.Fatalf("Lookup = %d, want 3", table.Lookup("gO"))
	}
}

func TestBuildReplacesPriorState(t *testing.T) {
	table := freq.Build([]string{"a", "b"})
	table = freq.Build([]string{"c"})
	if table.Len() != 1 || table.Lookup("a") != 0 {
		t.Fatalf("Build did not replace state: %v", table.Counts())
	}
}

func TestMostCommonSortedNonIncreasing(t *testing.T) {
	table := freq.Build(sampleTokens)
	entries := table.MostCommon(0)
	if len(entries) != table.Len() {
		t.Fatalf("MostCommon(0) returned %d entries, want %d", len(entries), table.Len())
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Count > entries[i-1].Count {
			t.Fatalf("entries not non-increasing at %d: %v", i, entries)
		}
		if entries[i].Count == entries[i-1].Count && entries[i].Word < entries[i-1].Word {
			t.Fatalf("tie not broken alphabetically at %d: %v", i, entries)
		}
	}

	// python and data tie at 4: alphabetical order puts data first.
	top2 := table.MostCommon(2)
	want := []freq.Entry{{Word: "data", Count: 4}, {Word: "python", Count: 4}}
	if !reflect.DeepEqual(top2, want) {
		t.Fatalf("MostCommon(2) = %v, want %v", top2, want)
	}
}

func TestMostCommonNBeyondLenReturnsAll(t *testing.T) {
	table := freq.Build([]string{"a", "b", "a"})
	if got := table.MostCommon(50); len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
}

func TestLookupAbsentWordIsZero(t *testing.T) {
	table := freq.Build(sampleTokens)
	if table.Lookup("absent") != 0 {
		t.Fatal("expected 0 for absent word")
	}
}

func TestFilterByCountIsExactSubset(t *testing.T) {
	table := freq.Build(sampleTokens)
	const k = 2
	filtered := table.FilterByCount(k, 0)

	seen := make(map[string]bool)
	for _, e := range filtered {
		if e.Count < k {
			t.Fatalf("entry %v below threshold %d", e, k)
		}
		seen[e.Word] = true
	}
	for word, count := range table.Counts() {
		if count >= k && !seen[word] {
			t.Fatalf("word %q (count %d) missing from filter result", word, count)
		}
	}
}

func TestFilterByCountRange(t *testing.T) {
	table := freq.Build(sampleTokens)
	got := table.FilterByCount(2, 3)
	want := []freq.Entry{{Word: "analysis", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterByCount(2,3) = %v, want %v", got, want)
	}
}

func TestFilterByLength(t *testing.T) {
	table := freq.Build([]string{"go", "gopher", "concurrency", "go"})
	got := table.FilterByLength(3, 8)
	want := []freq.Entry{{Word: "gopher", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterByLength(3,8) = %v, want %v", got, want)
	}
	if all := table.FilterByLength(1, 0); len(all) != 3 {
		t.Fatalf("FilterByLength(1,0) = %v, want all 3", all)
	}
}

func TestMergeDisjointIsUnion(t *testing.T) {
	left := freq.Build([]string{"alpha", "beta", "alpha"})
	right := freq.Build([]string{"gamma", "delta"})

	leftCounts := left.Counts()
	rightCounts := right.Counts()

	left.Merge(right)

	if left.Total() != 3+2 {
		t.Fatalf("merged total = %d, want 5", left.Total())
	}
	for word, count := range leftCounts {
		if left.Lookup(word) != count {
			t.Fatalf("left count for %q changed: %d", word, left.Lookup(word))
		}
	}
	for word, count := range rightCounts {
		if left.Lookup(word) != count {
			t.Fatalf("right count for %q not merged: %d", word, left.Lookup(word))
		}
	}
	if left.Len() != len(leftCounts)+len(rightCounts) {
		t.Fatalf("merged key count = %d", left.Len())
	}
}

func TestMergeOverlappingSumsCounts(t *testing.T) {
	left := freq.Build([]string{"word", "word"})
	right := freq.Build([]string{"word"})
	left.Merge(right)
	if left.Lookup("word") != 3 {
		t.Fatalf("merged count = %d, want 3", left.Lookup("word"))
	}
}

func TestStatsSummary(t *testing.T) {
	table := freq.Build(sampleTokens)
	summary := table.Stats()

	if summary.TotalWords != len(sampleTokens) {
		t.Fatalf("TotalWords = %d, want %d", summary.TotalWords, len(sampleTokens))
	}
	if summary.UniqueWords != table.Len() {
		t.Fatalf("UniqueWords = %d, want %d", summary.UniqueWords, table.Len())
	}
	wantAvg := float64(len(sampleTokens)) / float64(table.Len())
	if math.Abs(summary.AvgFrequency-wantAvg) > 1e-9 {
		t.Fatalf("AvgFrequency = %f, want %f", summary.AvgFrequency, wantAvg)
	}
	if summary.MaxFrequency != 4 || summary.MinFrequency != 1 {
		t.Fatalf("max/min = %d/%d, want 4/1", summary.MaxFrequency, summary.MinFrequency)
	}
	if summary.MostCommon == nil || summary.MostCommon.Count != 4 {
		t.Fatalf("unexpected most common: %+v", summary.MostCommon)
	}
}

func TestStatsEmptyTable(t *testing.T) {
	summary := freq.New().Stats()
	if summary.TotalWords != 0 || summary.UniqueWords != 0 || summary.MostCommon != nil {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestEmptyInputYieldsEmptyTable(t *testing.T) {
	table := freq.Build(nil)
	if table.Len() != 0 || table.Total() != 0 {
		t.Fatalf("expected empty table, got len=%d total=%d", table.Len(), table.Total())
	}
	if entries := table.MostCommon(10); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestFromCountsDropsNonPositive(t *testing.T) {
	table := freq.FromCounts(map[string]int{"keep": 2, "drop": 0, "negative": -1, "": 5})
	if table.Len() != 1 || table.Lookup("keep") != 2 || table.Total() != 2 {
		t.Fatalf("unexpected table: %v total=%d", table.Counts(), table.Total())
	}
}

func TestReset(t *testing.T) {
	table := freq.Build(sampleTokens)
	table.Reset()
	if table.Len() != 0 || table.Total() != 0 {
		t.Fatalf("Reset left data: len=%d total=%d", table.Len(), table.Total())
	}
}
