// Package analysis runs the linear load → process → count pipeline.
//
// The Runner enforces the one-task-at-a-time model: a run can execute on a
// background goroutine so an interactive caller stays responsive, but a
// second Start while one is in flight fails with ErrBusy. Results are
// immutable values; a failed run therefore never disturbs previously
// delivered results.
package analysis
