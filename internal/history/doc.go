// Package history persists completed analysis runs in SQLite.
//
// Each run stores its summary counts and the full word table so later
// commands (stats, export, chart, cloud, merge) can operate on past results
// without rescanning the source directory. A flock file next to the database
// serializes writers across processes. Runs are only written after a
// successful analysis, so a failed run never disturbs stored results.
package history
