// Package freq implements the word frequency table and its derived summary.
//
// A Table is rebuilt wholesale from a token list on each analysis run. Keys
// are normalized lowercase words, counts are positive, and retrieval order is
// deterministic: count descending with ties broken alphabetically. Merge sums
// the counts of two tables, which is how stored runs are combined.
package freq
