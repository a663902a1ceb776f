package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wordfreq/internal/freq"
	"wordfreq/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndGetRun(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	table := freq.Build([]string{"go", "rust", "go", "zig", "go"})
	run, err := store.SaveRun(ctx, "/corpus", 2, table)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected generated run id")
	}
	if run.TotalWords != 5 || run.UniqueWords != 3 || run.FileCount != 2 {
		t.Fatalf("unexpected run metadata: %+v", run)
	}

	got, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.SourceDir != "/corpus" || got.TotalWords != 5 {
		t.Fatalf("unexpected stored run: %+v", got)
	}

	restored, err := store.Table(ctx, run.ID)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if restored.Lookup("go") != 3 || restored.Lookup("rust") != 1 || restored.Total() != 5 {
		t.Fatalf("table not rehydrated: %v", restored.Counts())
	}
}

func TestSaveEmptyRunRefused(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(context.Background(), "/corpus", 0, freq.New()); err == nil {
		t.Fatal("expected error saving empty run")
	}
}

func TestListRunsNewestFirstAndLatest(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first, err := store.SaveRun(ctx, "/a", 1, freq.Build([]string{"one"}))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	second, err := store.SaveRun(ctx, "/b", 1, freq.Build([]string{"two"}))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Fatalf("runs not newest first: %v", runs)
	}

	latest, err := store.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("unexpected latest run: %+v", latest)
	}

	limited, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit not applied: %v", limited)
	}
}

func TestLatestRunEmptyHistory(t *testing.T) {
	store := openStore(t)
	if _, err := store.LatestRun(context.Background()); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestMergeRunsSumsDisjointTables(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	a, err := store.SaveRun(ctx, "/a", 1, freq.Build([]string{"alpha", "alpha", "beta"}))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	b, err := store.SaveRun(ctx, "/b", 1, freq.Build([]string{"gamma"}))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	merged, err := store.MergeRuns(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("MergeRuns failed: %v", err)
	}
	if merged.Total() != 4 || merged.Len() != 3 {
		t.Fatalf("unexpected merged table: total=%d len=%d", merged.Total(), merged.Len())
	}
	if merged.Lookup("alpha") != 2 || merged.Lookup("gamma") != 1 {
		t.Fatalf("unexpected merged counts: %v", merged.Counts())
	}
}

func TestDeleteRunAndClear(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run, err := store.SaveRun(ctx, "/a", 1, freq.Build([]string{"word"}))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.DeleteRun(ctx, run.ID); err != nil {
		t.Fatalf("DeleteRun failed: %v", err)
	}
	if _, err := store.GetRun(ctx, run.ID); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound after delete, got %v", err)
	}
	if err := store.DeleteRun(ctx, run.ID); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound for second delete, got %v", err)
	}

	if _, err := store.SaveRun(ctx, "/b", 1, freq.Build([]string{"other"})); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty history, got %v", runs)
	}
}

func TestGetUnknownRun(t *testing.T) {
	store := openStore(t)
	if _, err := store.GetRun(context.Background(), "no-such-id"); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := store.Table(context.Background(), "no-such-id"); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}
