// Package logging builds slog loggers for the CLI.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for scripting. Pipeline packages tag their records with a
// component attribute which the console handler lifts into the line prefix.
package logging
