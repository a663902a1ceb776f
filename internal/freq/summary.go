package freq

import (
	"github.com/montanaflynn/stats"
)

// Summary is the on-demand statistics view of a table. It is computed, never
// persisted alongside the counts.
type Summary struct {
	TotalWords   int     `json:"total_words"`
	UniqueWords  int     `json:"unique_words"`
	AvgFrequency float64 `json:"avg_frequency"`
	MaxFrequency int     `json:"max_frequency"`
	MinFrequency int     `json:"min_frequency"`
	MostCommon   *Entry  `json:"most_common,omitempty"`
	FileCount    int     `json:"file_count,omitempty"`
}

// Stats computes the summary for the table. An empty table yields a zeroed
// summary with a nil MostCommon.
func (t *Table) Stats() Summary {
	if t.Len() == 0 {
		return Summary{}
	}

	frequencies := make([]float64, 0, t.Len())
	for _, count := range t.counts {
		frequencies = append(frequencies, float64(count))
	}

	// The stats calls cannot fail here: the slice is non-empty by the guard
	// above.
	avg, _ := stats.Mean(frequencies)
	max, _ := stats.Max(frequencies)
	min, _ := stats.Min(frequencies)

	top := t.MostCommon(1)
	most := top[0]

	return Summary{
		TotalWords:   t.total,
		UniqueWords:  len(t.counts),
		AvgFrequency: avg,
		MaxFrequency: int(max),
		MinFrequency: int(min),
		MostCommon:   &most,
	}
}
