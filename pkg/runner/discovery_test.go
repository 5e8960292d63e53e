package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/occur/pkg/runner"
)

// writeTree creates files under dir from relative path to content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// relPaths converts absolute discovered paths back to slash-separated
// paths relative to dir.
func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestDiscover_WalksDirectories(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":        "a",
		"sub/b.txt":    "b",
		"sub/deep/c":   "c",
		".hidden/d.go": "d",
		".dotfile":     "e",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/b.txt", "sub/deep/c"}, relPaths(t, dir, files))
}

func TestDiscover_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt": "a",
		"b.go":  "b",
		"c.TXT": "c",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".txt"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "c.TXT"}, relPaths(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.txt":            "k",
		"vendor/skip.txt":     "s",
		"sub/vendor/skip.txt": "s",
		"notes.bak":           "b",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "*.bak"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt", "sub/vendor/skip.txt"}, relPaths(t, dir, files))
}

func TestDiscover_DoubleStarPrefixGlob(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep.txt":            "k",
		"sub/vendor/skip.txt": "s",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"**/vendor"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, relPaths(t, dir, files))
}

func TestDiscover_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"only.txt": "x"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"only.txt"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"only.txt"}, relPaths(t, dir, files))
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"does-not-exist.txt"},
	})

	assert.Error(t, err)
}

func TestDiscover_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "a"})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"a.txt", ".", "a.txt"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, relPaths(t, dir, files))
}

func TestDiscover_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})

	assert.Error(t, err)
}
