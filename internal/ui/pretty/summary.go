package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/occur/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 occurrences in 2 files (5 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))

	if stats.OccurrencesTotal == 0 {
		return s.Dim.Render("No occurrences found") + checked + "\n"
	}

	occWord := "occurrences"
	if stats.OccurrencesTotal == 1 {
		occWord = "occurrence"
	}
	fileWord := wordFiles
	if stats.FilesWithMatches == 1 {
		fileWord = wordFile
	}

	line := s.Bold.Render(fmt.Sprintf("%d %s", stats.OccurrencesTotal, occWord)) +
		fmt.Sprintf(" in %d %s", stats.FilesWithMatches, fileWord)

	if stats.FilesModified > 0 {
		line += ", " + s.Success.Render(fmt.Sprintf("%d rewritten", stats.FilesModified))
	} else if stats.FilesChanged > 0 {
		line += ", " + s.Success.Render(fmt.Sprintf("%d would change", stats.FilesChanged))
	}

	return line + checked + "\n"
}

// FormatSummary formats run statistics as a multi-line summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")

	writeRow := func(label string, value int) {
		builder.WriteString(fmt.Sprintf("  %s %d\n", s.Dim.Render(label), value))
	}

	writeRow("Files checked:", stats.FilesProcessed)
	if stats.FilesSkipped > 0 {
		writeRow("Files skipped:", stats.FilesSkipped)
	}
	if stats.FilesErrored > 0 {
		writeRow("Files errored:", stats.FilesErrored)
	}
	writeRow("Occurrences:", stats.OccurrencesTotal)
	if stats.FilesWithMatches > 0 {
		writeRow("Files with occurrences:", stats.FilesWithMatches)
	}
	if stats.FilesChanged > 0 {
		writeRow("Files changed:", stats.FilesChanged)
	}
	if stats.FilesModified > 0 {
		writeRow("Files rewritten:", stats.FilesModified)
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	case stats.OccurrencesTotal == 0:
		builder.WriteString(s.Dim.Render("No occurrences found"))
	default:
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}
