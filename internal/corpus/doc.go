// Package corpus loads text documents from a directory for analysis.
//
// Only .txt files are considered and the scan is non-recursive. Each file is
// decoded as UTF-8 with a GBK fallback; files that cannot be decoded either
// way are skipped with a warning so one bad file never sinks a run.
package corpus
