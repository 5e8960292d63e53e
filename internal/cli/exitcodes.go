package cli

import (
	"errors"

	"github.com/yaklabco/occur/pkg/runner"
)

// Exit codes for occur. 0/1 follow the grep convention; the higher codes
// follow BSD sysexits.
const (
	// ExitSuccess indicates at least one occurrence was found (or a
	// rewrite completed).
	ExitSuccess = 0

	// ExitNoMatches indicates the run completed but found no occurrences.
	ExitNoMatches = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNoMatches is returned when a scan finds no occurrences. It carries no
// message worth logging; it only signals the exit code.
var ErrNoMatches = errors.New("no occurrences found")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoMatches):
		return ExitNoMatches
	default:
		return ExitInternalError
	}
}

// scanOutcome converts a scan result into the command error that drives
// the exit code.
func scanOutcome(result *runner.Result) error {
	if result.HasMatches() {
		return nil
	}
	return ErrNoMatches
}
