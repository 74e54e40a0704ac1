package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(jobPath, dir string) config.Config {
	cfg := config.Config{Job: jobPath, ResumesDir: dir}
	return cfg.MergeWithDefaults(config.Defaults())
}

func TestExecuteRank_DefaultTextOutput(t *testing.T) {
	jobPath, dir := newTestData(t)
	var out, errOut bytes.Buffer

	require.NoError(t, executeRank(context.Background(), testConfig(jobPath, dir), &out, &errOut))

	text := out.String()
	assert.Empty(t, errOut.String())

	// Job description block, then the self-match line, then one block per candidate.
	jd := strings.Index(text, "JOB DESCRIPTION")
	self := strings.Index(text, "Self-match score for job_description.txt: 100.00")
	block := strings.Index(text, "SCORE: strong.txt")
	table := strings.Index(text, "--- Ranked Resumes ---")
	require.True(t, jd >= 0 && self >= 0 && block >= 0 && table >= 0, text)
	assert.Less(t, jd, self)
	assert.Less(t, self, block)
	assert.Less(t, block, table)
	assert.Contains(t, text, "SCORE: weak.txt")
	assert.Contains(t, text, "Skill coverage:")
	assert.Contains(t, text, "SKIPPED FILES")

	ranking := text[table:]
	strong := strings.Index(ranking, "strong.txt: ")
	weak := strings.Index(ranking, "weak.txt: ")
	require.GreaterOrEqual(t, strong, 0)
	require.GreaterOrEqual(t, weak, 0)
	assert.Less(t, strong, weak)
	assert.NotContains(t, ranking, "readme.md")
}

func TestExecuteRank_Quiet(t *testing.T) {
	jobPath, dir := newTestData(t)
	cfg := testConfig(jobPath, dir)
	cfg.Quiet = true
	var out, errOut bytes.Buffer

	require.NoError(t, executeRank(context.Background(), cfg, &out, &errOut))

	assert.True(t, strings.HasPrefix(out.String(), "Self-match score for job_description.txt: 100.00\n--- Ranked Resumes ---\n"), out.String())
	assert.NotContains(t, out.String(), "SCORE:")
	assert.NotContains(t, out.String(), "SKIPPED FILES")
}

func TestExecuteRank_QuietWithoutSelfCheck(t *testing.T) {
	jobPath, dir := newTestData(t)
	cfg := testConfig(jobPath, dir)
	cfg.Quiet = true
	cfg.NoSelfCheck = true
	var out, errOut bytes.Buffer

	require.NoError(t, executeRank(context.Background(), cfg, &out, &errOut))

	assert.True(t, strings.HasPrefix(out.String(), "--- Ranked Resumes ---\n"), out.String())
	assert.NotContains(t, out.String(), "Self-match")
}

func TestExecuteRank_JSONOutput(t *testing.T) {
	jobPath, dir := newTestData(t)
	cfg := testConfig(jobPath, dir)
	cfg.Format = "json"
	cfg.Top = 1
	var out, errOut bytes.Buffer

	require.NoError(t, executeRank(context.Background(), cfg, &out, &errOut))

	// Diagnostics move to stderr so stdout stays a single JSON document.
	assert.Contains(t, errOut.String(), "SCORE: strong.txt")
	assert.NotContains(t, errOut.String(), "Warning")
	require.NoError(t, schemas.ValidateRankedCandidates(out.Bytes()))

	var report types.RankedCandidates
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Ranked, 1)
	assert.Equal(t, "strong.txt", report.Ranked[0].SourceName)
	assert.Equal(t, "job_description.txt", report.Reference)
}

func TestExecuteRank_WritesMetrics(t *testing.T) {
	jobPath, dir := newTestData(t)
	cfg := testConfig(jobPath, dir)
	cfg.MetricsFile = filepath.Join(t.TempDir(), "resume_ranker.prom")
	var out, errOut bytes.Buffer

	require.NoError(t, executeRank(context.Background(), cfg, &out, &errOut))

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resume_ranker_candidates_scored_total 2")
	assert.Contains(t, string(data), `resume_ranker_candidates_skipped_total{reason="unsupported_file_format"} 1`)
}

func TestExecuteRank_MissingReferenceStillRanks(t *testing.T) {
	_, dir := newTestData(t)
	var out, errOut bytes.Buffer

	cfg := testConfig(filepath.Join(dir, "missing.txt"), dir)
	require.NoError(t, executeRank(context.Background(), cfg, &out, &errOut))
	assert.Contains(t, out.String(), "strong.txt: 0.00")
}

func TestExecuteRank_MissingDirectory(t *testing.T) {
	jobPath, dir := newTestData(t)
	var out, errOut bytes.Buffer

	err := executeRank(context.Background(), testConfig(jobPath, filepath.Join(dir, "nope")), &out, &errOut)
	assert.ErrorContains(t, err, "ranking failed")
}

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "rank"}
	addRankFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveRankConfig_Defaults(t *testing.T) {
	cfg, err := resolveRankConfig(newFlagCommand(t))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultJob, cfg.Job)
	assert.Equal(t, config.DefaultResumesDir, cfg.ResumesDir)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Diagnostics())
	assert.True(t, cfg.SelfCheck())
}

func TestResolveRankConfig_OptOutFlags(t *testing.T) {
	cfg, err := resolveRankConfig(newFlagCommand(t, "-q", "--no-self-check"))
	require.NoError(t, err)

	assert.False(t, cfg.Diagnostics())
	assert.False(t, cfg.SelfCheck())
}

func TestResolveRankConfig_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"job": "from-file.txt", "resumes_dir": "cvs", "format": "json", "workers": 3}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := resolveRankConfig(newFlagCommand(t, "--config", path, "-j", "flag.txt", "--top", "2"))
	require.NoError(t, err)

	assert.Equal(t, "flag.txt", cfg.Job)
	assert.Equal(t, "cvs", cfg.ResumesDir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2, cfg.Top)
}

func TestResolveRankConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"--format", "xml"}},
		{name: "negative top", args: []string{"--top", "-1"}},
		{name: "too many workers", args: []string{"--workers", "100"}},
		{name: "missing vocabulary", args: []string{"--vocabulary", "/does/not/exist.yaml"}},
		{name: "missing config", args: []string{"--config", "/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveRankConfig(newFlagCommand(t, tt.args...))
			assert.Error(t, err)
		})
	}
}
