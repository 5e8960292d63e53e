// Package configloader resolves the effective configuration by merging
// defaults, a discovered or explicit config file, and environment
// variables. CLI flags are applied on top by the command layer.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/occur/pkg/config"
)

// configFileNames are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".occur.yaml",
	".occur.yml",
	"occur.yaml",
}

// vcsRootMarkers are directories that indicate a repository root; the
// upward search stops after the directory containing one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped and a missing or
	// invalid file is an error.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the configuration. Precedence (highest to lowest):
//  1. Environment variables (OCCUR_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.occur.yaml, searched upward from WorkingDir)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{Config: config.NewConfig()}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	path := opts.ExplicitPath
	if path == "" {
		path = findProjectConfig(workDir)
	}

	if path != "" {
		cfg, err := loadFile(path)
		if err != nil {
			if opts.ExplicitPath != "" {
				return nil, err
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ignoring config file %s: %v", path, err))
		} else {
			result.Config = cfg
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	for _, problem := range result.Config.Validate() {
		result.Warnings = append(result.Warnings, problem)
	}

	return result, nil
}

// loadFile reads and parses a YAML config file.
func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// findProjectConfig searches upward from dir for a config file, stopping
// after the first directory containing a VCS root marker. Returns the empty
// string when nothing is found.
func findProjectConfig(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
