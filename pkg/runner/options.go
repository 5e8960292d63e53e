// Package runner orchestrates scanning and rewriting across many files.
package runner

import "github.com/yaklabco/occur/pkg/config"

// Options controls discovery and concurrency for a run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions restricts discovery to files with these extensions
	// (lowercase, leading dot). Empty means no extension filter.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// SkipBinary skips files whose content is detected as binary.
	SkipBinary bool

	// Jobs is the maximum number of concurrent workers.
	// Zero or negative means one per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectivePaths returns the paths to process, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
