// Package config defines core configuration types for occur.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatCount OutputFormat = "count"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatCount:
		return true
	default:
		return false
	}
}

// CaseTransform names one of the built-in case transforms applied during
// rewriting. The empty value means "leave the segment unchanged".
type CaseTransform string

const (
	CaseNone  CaseTransform = ""
	CaseUpper CaseTransform = "upper"
	CaseLower CaseTransform = "lower"
	CaseTitle CaseTransform = "title"
)

// IsValid returns true if the case transform is recognized.
func (c CaseTransform) IsValid() bool {
	switch c {
	case CaseNone, CaseUpper, CaseLower, CaseTitle:
		return true
	default:
		return false
	}
}

// RewriteConfig holds defaults for the rewrite command.
type RewriteConfig struct {
	// MatchCase is the case transform applied to query occurrences.
	MatchCase CaseTransform `yaml:"match_case"`

	// GapCase is the case transform applied to the text between occurrences.
	GapCase CaseTransform `yaml:"gap_case"`

	// Replace, when non-empty, replaces every occurrence with this literal
	// instead of applying MatchCase.
	Replace string `yaml:"replace"`

	// TwoPass rewrites matches first, then re-scans the intermediate text
	// for the transformed query before touching the gaps.
	TwoPass bool `yaml:"two_pass"`
}

// Config is the root configuration structure for occur.
type Config struct {
	// Format is the default output format for scan results.
	Format OutputFormat `yaml:"format"`

	// Extensions is the set of file extensions (with leading dot) scanned
	// when a directory is given. Empty means every non-binary file.
	Extensions []string `yaml:"extensions"`

	// Ignore lists glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of concurrent workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// SkipBinary skips files detected as binary content.
	SkipBinary bool `yaml:"skip_binary"`

	// Rewrite holds defaults for the rewrite command.
	Rewrite RewriteConfig `yaml:"rewrite"`

	// CLI-only fields, never serialized.

	// Write applies rewrites in place instead of printing them.
	Write bool `yaml:"-"`

	// DryRun reports what a rewrite would change without writing.
	DryRun bool `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Format:     FormatText,
		SkipBinary: true,
	}
}

// Validate checks the configuration for invalid values and returns a
// human-readable problem list. An empty result means the config is valid.
func (c *Config) Validate() []string {
	if c == nil {
		return nil
	}

	var problems []string
	if !c.Format.IsValid() {
		problems = append(problems, "format must be one of: text, json, count")
	}
	if !c.Rewrite.MatchCase.IsValid() {
		problems = append(problems, "rewrite.match_case must be one of: upper, lower, title")
	}
	if !c.Rewrite.GapCase.IsValid() {
		problems = append(problems, "rewrite.gap_case must be one of: upper, lower, title")
	}
	if c.Jobs < 0 {
		problems = append(problems, "jobs must be zero or positive")
	}
	return problems
}
