// Package textproc turns raw document text into countable word tokens.
//
// The pipeline is clean (lowercase, strip non-letters), tokenize (prose, with
// a whitespace fallback), filter stopwords and short tokens, and optionally
// filter by part-of-speech tag. The default stopword set is the standard
// English list embedded in the package; callers can extend it from a file or
// directly.
package textproc
