package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions_edit.tsv")
	content := strings.Join([]string{
		"id\ttext\tanswer\taliases\tstatus",
		"q00002\tSecond?\ttwo\t\tprod",
		"q00001\tFirst?\tone\tuno\tprod",
		"q00003\tDraft?\tthree\t\tdebug",
		"q00004\tPending?\tfour\t\tinbox",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunBuildEndToEnd(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := buildConfig{Input: writeTestTable(t), OutDir: outDir}

	result, wrote, err := runBuild(cfg)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Equal(t, 4, result.Report.Total)

	report, err := os.ReadFile(filepath.Join(outDir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "total\t4")
	assert.Contains(t, string(report), "prod\t2")
	assert.Contains(t, string(report), "debug\t1")
	assert.Contains(t, string(report), "ng\t1")
	assert.Contains(t, string(report), "status_not_ready\t1")

	// prod partition sorted by id despite input order
	require.Len(t, result.Prod, 2)
	assert.Equal(t, "q00001", result.Prod[0].ID)
	assert.Equal(t, "q00002", result.Prod[1].ID)
}

func TestRunBuildCheckModeWritesNothing(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := buildConfig{Input: writeTestTable(t), OutDir: outDir, Check: true}

	_, wrote, err := runBuild(cfg)
	require.NoError(t, err)
	assert.False(t, wrote)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunBuildStrictFailsOnRejects(t *testing.T) {
	cfg := buildConfig{
		Input:  writeTestTable(t),
		OutDir: filepath.Join(t.TempDir(), "out"),
		Strict: true,
	}

	result, wrote, err := runBuild(cfg)
	assert.Error(t, err)
	// Outputs are still written so the rejects can be inspected.
	assert.True(t, wrote)
	assert.Equal(t, 1, result.Report.Rejected)
}

func TestRunBuildMissingInputIsFatal(t *testing.T) {
	cfg := buildConfig{
		Input:  filepath.Join(t.TempDir(), "missing.tsv"),
		OutDir: filepath.Join(t.TempDir(), "out"),
	}

	_, _, err := runBuild(cfg)
	assert.Error(t, err)

	_, statErr := os.Stat(cfg.OutDir)
	assert.True(t, os.IsNotExist(statErr))
}
