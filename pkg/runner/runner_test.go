package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/occur/pkg/runner"
)

func TestRunner_ScansTree(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":     "one needle here\n",
		"sub/b.txt": "needle and needle\n",
		"c.txt":     "no match\n",
	})

	r := runner.New(&runner.ScanProcessor{Query: "needle"})

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesWithMatches)
	assert.Equal(t, 3, result.Stats.OccurrencesTotal)
	assert.True(t, result.HasMatches())
	assert.False(t, result.HasErrors())
}

func TestRunner_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"c.txt": "needle",
		"a.txt": "needle",
		"b.txt": "needle",
	})

	r := runner.New(&runner.ScanProcessor{Query: "needle"})

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 3})

	require.NoError(t, err)
	require.Len(t, result.Files, 3)
	paths := relPaths(t, dir, []string{
		result.Files[0].Path, result.Files[1].Path, result.Files[2].Path,
	})
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, paths)
}

func TestRunner_SkipsBinary(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"text.txt": "needle\n"})
	writeTree(t, dir, map[string]string{"blob.bin": "nee\x00dle\x00\x01\x02"})

	r := runner.New(&runner.ScanProcessor{Query: "needle"})

	result, err := r.Run(context.Background(), runner.Options{
		WorkingDir: dir,
		SkipBinary: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 1, result.Stats.OccurrencesTotal)
}

func TestRunner_EmptyDirectory(t *testing.T) {
	r := runner.New(&runner.ScanProcessor{Query: "needle"})

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})

	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunner_LabelsLanguage(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.go": "package main\n"})

	r := runner.New(&runner.ScanProcessor{Query: "package"})

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: dir})

	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	require.NotNil(t, result.Files[0].Result)
	assert.Equal(t, "Go", result.Files[0].Result.Language)
}
