package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"wordfreq/internal/corpus"
	"wordfreq/internal/freq"
	"wordfreq/internal/textproc"
)

// ErrBusy is returned by Start while a previous run is still in flight.
var ErrBusy = errors.New("an analysis is already running")

// ErrNoDocuments is returned when the scanned directory holds no .txt files.
var ErrNoDocuments = errors.New("no .txt files found")

// Progress checkpoints mirror the stages of the pipeline.
const (
	progressLoading   = 10
	progressLoaded    = 30
	progressProcessed = 60
	progressCounted   = 80
	progressDone      = 100
)

// Request describes one analysis run.
type Request struct {
	Dir string
	// Progress, when set, receives checkpoint percentages with a stage message.
	Progress func(percent int, message string)
}

// Result is the immutable outcome of a successful run.
type Result struct {
	Table     *freq.Table
	Summary   freq.Summary
	FileCount int
	Elapsed   time.Duration
}

// Runner drives the load → process → count pipeline. One run at a time; the
// interactive caller stays responsive by starting runs in the background.
type Runner struct {
	loader    *corpus.Loader
	processor *textproc.Processor
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewRunner constructs a runner around a loader and processor.
func NewRunner(loader *corpus.Loader, processor *textproc.Processor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		loader:    loader,
		processor: processor,
		logger:    logger.With("component", "analysis"),
	}
}

// Run executes the pipeline synchronously.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if err := r.acquire(); err != nil {
		return nil, err
	}
	defer r.release()
	return r.run(ctx, req)
}

// Start executes the pipeline on a background goroutine and delivers the
// outcome to done. It returns ErrBusy when a run is already in flight.
func (r *Runner) Start(ctx context.Context, req Request, done func(*Result, error)) error {
	if err := r.acquire(); err != nil {
		return err
	}
	go func() {
		defer r.release()
		result, err := r.run(ctx, req)
		if done != nil {
			done(result, err)
		}
	}()
	return nil
}

// Running reports whether a run is in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) acquire() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return ErrBusy
	}
	r.running = true
	return nil
}

func (r *Runner) release() {
	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
}

func (r *Runner) run(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()
	report := req.Progress
	if report == nil {
		report = func(int, string) {}
	}

	report(progressLoading, "loading files")
	c, err := r.loader.Load(ctx, req.Dir)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if c.FileCount() == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDocuments, req.Dir)
	}
	report(progressLoaded, "files loaded")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens := r.processor.Process(c.MergedContent())
	report(progressProcessed, "text processed")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table := freq.Build(tokens)
	report(progressCounted, "words counted")

	summary := table.Stats()
	summary.FileCount = c.FileCount()
	report(progressDone, "analysis complete")

	elapsed := time.Since(started)
	r.logger.Info("analysis complete",
		"dir", req.Dir,
		"files", c.FileCount(),
		"total", summary.TotalWords,
		"unique", summary.UniqueWords,
		"elapsed", elapsed,
	)

	return &Result{
		Table:     table,
		Summary:   summary,
		FileCount: c.FileCount(),
		Elapsed:   elapsed,
	}, nil
}
