package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldQuery      = "query"
	FieldWorkingDir = "working_dir"

	// Run fields.
	FieldJobs        = "jobs"
	FieldFormat      = "format"
	FieldWrite       = "write"
	FieldDryRun      = "dry_run"
	FieldFiles       = "files"
	FieldOccurrences = "occurrences"
	FieldModified    = "modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
