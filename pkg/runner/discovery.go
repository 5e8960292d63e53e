package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds files matching opts under the given paths. It returns a
// deterministically sorted list of absolute file paths. Hidden files and
// directories are skipped during directory walks; explicitly named files are
// always included when they pass the extension and exclusion filters.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				add(f)
			}
		} else if matchesFile(absPath, workDir, opts) {
			add(absPath)
		}
	}

	sort.Strings(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(workDir)
}

// walkDirectory walks root and returns files passing the filters.
func walkDirectory(ctx context.Context, root, workDir string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAnyGlob(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		// Directory symlinks are not traversed; broken file symlinks are
		// skipped silently.
		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || info.IsDir() {
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesFile(path, workDir, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesFile checks a file path against the extension and exclusion filters.
func matchesFile(path, workDir string, opts Options) bool {
	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		relPath = path
	}

	if len(opts.Extensions) > 0 && !hasMatchingExtension(path, opts.Extensions) {
		return false
	}

	return !matchesAnyGlob(relPath, opts.ExcludeGlobs)
}

// hasMatchingExtension checks if the file has one of the given extensions.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// matchesAnyGlob matches a relative path against a set of glob patterns,
// including ** patterns for recursive matching.
func matchesAnyGlob(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a single glob pattern. Plain patterns go
// through filepath.Match (against the full relative path and the base name);
// patterns containing ** match path prefixes, suffixes, or components.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles the common ** pattern shapes: "**/name",
// "prefix/**", and "prefix/**/suffix".
func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" {
		if !strings.HasPrefix(path, prefix+"/") && path != prefix {
			return false
		}
	}

	if suffix == "" {
		return true
	}

	// Match the suffix against the tail of the path or any component.
	if strings.HasSuffix(path, suffix) {
		return true
	}
	for _, component := range strings.Split(path, "/") {
		if matched, err := filepath.Match(suffix, component); err == nil && matched {
			return true
		}
	}
	return false
}
