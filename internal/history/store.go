package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"

	"wordfreq/internal/freq"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one stored analysis result.
type Run struct {
	ID          string    `json:"id"`
	SourceDir   string    `json:"source_dir"`
	FileCount   int       `json:"file_count"`
	TotalWords  int       `json:"total_words"`
	UniqueWords int       `json:"unique_words"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists analysis runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database and applies the schema.
// A file lock next to the database serializes writers across processes.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(dbPath + ".lock"),
	}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	var version int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_info LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("history database schema version %d is not supported (want %d); clear history to continue", version, schemaVersion)
	}
	return nil
}

// SaveRun stores a completed analysis. The run id is generated here and
// returned for later retrieval.
func (s *Store) SaveRun(ctx context.Context, sourceDir string, fileCount int, table *freq.Table) (*Run, error) {
	if table.Len() == 0 {
		return nil, errors.New("refusing to save empty run")
	}
	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	run := &Run{
		ID:          uuid.NewString(),
		SourceDir:   sourceDir,
		FileCount:   fileCount,
		TotalWords:  table.Total(),
		UniqueWords: table.Len(),
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source_dir, file_count, total_words, unique_words, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourceDir, run.FileCount, run.TotalWords, run.UniqueWords,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `INSERT INTO run_words (run_id, word, count) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare word insert: %w", err)
	}
	defer insert.Close()
	for word, count := range table.Counts() {
		if _, err := insert.ExecContext(ctx, run.ID, word, count); err != nil {
			return nil, fmt.Errorf("insert word %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit save: %w", err)
	}
	return run, nil
}

// ListRuns returns runs newest first. limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, source_dir, file_count, total_words, unique_words, created_at
              FROM runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recent run, or ErrRunNotFound when history is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	runs, err := s.ListRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrRunNotFound
	}
	return &runs[0], nil
}

// GetRun returns the run metadata for an id.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_dir, file_count, total_words, unique_words, created_at
         FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Table rehydrates the frequency table for a run.
func (s *Store) Table(ctx context.Context, id string) (*freq.Table, error) {
	if _, err := s.GetRun(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT word, count FROM run_words WHERE run_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load run words: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("scan run word: %w", err)
		}
		counts[word] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return freq.FromCounts(counts), nil
}

// MergeRuns unions the tables of the given runs by summing counts.
func (s *Store) MergeRuns(ctx context.Context, ids ...string) (*freq.Table, error) {
	if len(ids) == 0 {
		return nil, errors.New("no runs to merge")
	}
	merged := freq.New()
	for _, id := range ids {
		table, err := s.Table(ctx, id)
		if err != nil {
			return nil, err
		}
		merged.Merge(table)
	}
	return merged, nil
}

// DeleteRun removes a run and its words.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

// Clear removes all stored runs.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var createdAt string
	if err := row.Scan(&run.ID, &run.SourceDir, &run.FileCount, &run.TotalWords, &run.UniqueWords, &createdAt); err != nil {
		return Run{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse run timestamp: %w", err)
	}
	run.CreatedAt = parsed
	return run, nil
}
