package config

// StarterTemplate is the annotated configuration written by `occur init`.
const StarterTemplate = `# occur configuration
# See https://github.com/yaklabco/occur for documentation.

# Default output format for ` + "`occur find`" + `: text, json, or count.
format: text

# File extensions scanned when a directory is given (leading dot).
# Empty means every non-binary file.
extensions: []

# Glob patterns for files and directories to skip.
ignore:
  - "vendor/**"
  - "node_modules/**"

# Number of concurrent workers. 0 means one per CPU.
jobs: 0

# Skip files whose content looks binary.
skip_binary: true

# Defaults for ` + "`occur rewrite`" + `.
rewrite:
  # Case transform for query occurrences: upper, lower, or title.
  match_case: ""
  # Case transform for the text between occurrences.
  gap_case: ""
  # Literal replacement for occurrences (overrides match_case).
  replace: ""
  # Rewrite matches first, then re-scan for the transformed query.
  two_pass: false
`
