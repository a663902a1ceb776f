// Package export serializes frequency tables to CSV.
//
// Four layouts match what users of the tool expect to hand to a spreadsheet:
// the plain word,count listing, a top-N variant, an extended layout with a
// statistics header and per-word percentages, and a filtered listing by
// minimum count and word length. Parent directories are created as needed.
package export
