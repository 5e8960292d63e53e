package runner

// FileOutcome wraps a FileResult with the path it belongs to and any error
// encountered while processing it.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is the processing result. Nil when Error is set.
	Result *FileResult

	// Error is set if the file could not be read or processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped as binary content.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithMatches is the number of files containing at least one
	// occurrence of the query.
	FilesWithMatches int

	// FilesModified is the number of files rewritten in place.
	FilesModified int

	// FilesChanged is the number of files whose rewritten content differs,
	// whether or not it was written back.
	FilesChanged int

	// OccurrencesTotal is the total number of query occurrences found.
	OccurrencesTotal int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	// Files contains the outcome for each processed file.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasMatches reports whether any occurrence was found.
func (r *Result) HasMatches() bool {
	if r == nil {
		return false
	}
	return r.Stats.OccurrencesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate folds one file outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	if outcome.Result.SkippedBinary {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.OccurrencesTotal += outcome.Result.Occurrences

	if outcome.Result.Occurrences > 0 {
		r.Stats.FilesWithMatches++
	}
	if outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Result.Written {
		r.Stats.FilesModified++
	}
}
