package freq

import (
	"sort"
	"strings"
)

// Entry is one word with its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Table maps normalized words to occurrence counts. The zero value is ready
// to use. Tables are rebuilt wholesale by Build; they are not incrementally
// maintained across runs.
type Table struct {
	counts map[string]int
	total  int
}

// New returns an empty table.
func New() *Table {
	return &Table{counts: make(map[string]int)}
}

// Build replaces the table contents with the frequencies of the given tokens.
// Tokens are normalized to lowercase so case variants collapse to one key.
func Build(tokens []string) *Table {
	t := &Table{counts: make(map[string]int, len(tokens))}
	for _, token := range tokens {
		word := strings.ToLower(strings.TrimSpace(token))
		if word == "" {
			continue
		}
		t.counts[word]++
		t.total++
	}
	return t
}

// FromCounts builds a table from an existing word→count mapping. Non-positive
// counts are dropped.
func FromCounts(counts map[string]int) *Table {
	t := &Table{counts: make(map[string]int, len(counts))}
	for word, count := range counts {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" || count <= 0 {
			continue
		}
		t.counts[word] += count
		t.total += count
	}
	return t
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Total returns the number of tokens counted, including repeats.
func (t *Table) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Lookup returns the count for a word, 0 when absent. The word is normalized
// the same way Build normalizes tokens.
func (t *Table) Lookup(word string) int {
	if t == nil {
		return 0
	}
	return t.counts[strings.ToLower(strings.TrimSpace(word))]
}

// Entries returns all entries sorted by count descending, ties by word
// ascending.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.counts))
	for word, count := range t.counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sortEntries(entries)
	return entries
}

// MostCommon returns the n highest-count entries. n <= 0 or n larger than the
// table returns everything. Ordering is deterministic: count descending, then
// word ascending.
func (t *Table) MostCommon(n int) []Entry {
	entries := t.Entries()
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// FilterByCount returns the entries with min <= count, and count <= max when
// max is positive.
func (t *Table) FilterByCount(min, max int) []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0)
	for word, count := range t.counts {
		if count < min {
			continue
		}
		if max > 0 && count > max {
			continue
		}
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sortEntries(entries)
	return entries
}

// FilterByLength returns the entries whose word length is at least min, and
// at most max when max is positive.
func (t *Table) FilterByLength(min, max int) []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0)
	for word, count := range t.counts {
		length := len(word)
		if length < min {
			continue
		}
		if max > 0 && length > max {
			continue
		}
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sortEntries(entries)
	return entries
}

// Merge adds the counts of other into t; totals add as well.
func (t *Table) Merge(other *Table) {
	if t == nil || other == nil {
		return
	}
	if t.counts == nil {
		t.counts = make(map[string]int, other.Len())
	}
	for word, count := range other.counts {
		t.counts[word] += count
	}
	t.total += other.total
}

// Counts returns a copy of the underlying word→count map.
func (t *Table) Counts() map[string]int {
	if t == nil {
		return nil
	}
	counts := make(map[string]int, len(t.counts))
	for word, count := range t.counts {
		counts[word] = count
	}
	return counts
}

// Reset empties the table.
func (t *Table) Reset() {
	if t == nil {
		return
	}
	t.counts = make(map[string]int)
	t.total = 0
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
}
