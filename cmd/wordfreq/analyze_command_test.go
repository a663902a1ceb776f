package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wordfreq/internal/freq"
	"wordfreq/internal/history"
)

type analyzeOutput struct {
	Run     *history.Run `json:"run"`
	Summary freq.Summary `json:"summary"`
	Top     []freq.Entry `json:"top"`
}

func TestAnalyzeReportsCountsAndSavesRun(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"analyze", env.docsDir, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var result analyzeOutput
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decode analyze output: %v\n%s", err, stdout)
	}

	if result.Run == nil || result.Run.ID == "" {
		t.Fatal("expected analyze to record a run")
	}
	if result.Run.FileCount != 2 {
		t.Fatalf("FileCount = %d, want 2", result.Run.FileCount)
	}
	if result.Summary.TotalWords != 12 {
		t.Fatalf("TotalWords = %d, want 12", result.Summary.TotalWords)
	}
	if result.Summary.UniqueWords != 10 {
		t.Fatalf("UniqueWords = %d, want 10", result.Summary.UniqueWords)
	}

	counts := make(map[string]int, len(result.Top))
	for _, entry := range result.Top {
		counts[entry.Word] = entry.Count
	}
	if counts["dog"] != 2 || counts["fox"] != 2 {
		t.Fatalf("expected dog and fox twice each, got %v", counts)
	}
	if _, ok := counts["the"]; ok {
		t.Fatal("stopword leaked into results")
	}
}

func TestAnalyzeNoSaveLeavesHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"analyze", env.docsDir, "--save=false", "--json"}, env.configPath); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"history", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var runs []history.Run
	if err := json.Unmarshal([]byte(stdout), &runs); err != nil {
		t.Fatalf("decode runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestAnalyzeMissingDirectoryFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"analyze", filepath.Join(env.baseDir, "missing")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestAnalyzeProgressCheckpoints(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, []string{"analyze", env.docsDir}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	for _, marker := range []string{" 10%", " 30%", " 60%", " 80%", "100%"} {
		requireContains(t, stdout, marker)
	}
	requireContains(t, stdout, "Saved run ")
}

func TestChartAndCloudWritePNGFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"analyze", env.docsDir, "--json"}, env.configPath); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	chartPath := filepath.Join(env.baseDir, "chart.png")
	if _, _, err := runCLI(t, []string{"chart", chartPath, "--horizontal"}, env.configPath); err != nil {
		t.Fatalf("chart: %v", err)
	}
	if info, err := os.Stat(chartPath); err != nil || info.Size() == 0 {
		t.Fatalf("expected chart PNG at %s: %v", chartPath, err)
	}

	cloudPath := filepath.Join(env.baseDir, "cloud.png")
	if _, _, err := runCLI(t, []string{"cloud", cloudPath, "--width", "400", "--height", "300"}, env.configPath); err != nil {
		t.Fatalf("cloud: %v", err)
	}
	if info, err := os.Stat(cloudPath); err != nil || info.Size() == 0 {
		t.Fatalf("expected cloud PNG at %s: %v", cloudPath, err)
	}
}
