// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the full workflow: analyze a folder of
// text documents, inspect and replay recorded runs from the history database,
// export CSV files, and render bar charts and word clouds. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
