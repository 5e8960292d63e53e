package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/occur/pkg/runner"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 100

// FormatOccurrence formats a single located occurrence for terminal output:
//
//	path:line:col  line text with the match highlighted
//
// The displayed path is rendered as given; callers relativize beforehand.
func (s *Styles) FormatOccurrence(path string, match runner.Match, width int) string {
	location := fmt.Sprintf("%s%s",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf(":%d:%d", match.Line, match.Column)),
	)

	line := s.highlightLine(match, width)
	return location + "  " + line + "\n"
}

// highlightLine renders the match's line with the matched span emphasized,
// truncating to the available width.
func (s *Styles) highlightLine(match runner.Match, width int) string {
	text := match.LineText
	start := match.Column - 1
	end := start + match.Range.Len()
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}

	var prefix, suffix string
	if width > 0 && len(text) > width {
		// Clip to a window around the match, keeping the match visible.
		left := max(0, start-width/4)
		right := min(len(text), left+width)
		left = max(0, right-width)

		if left > 0 {
			prefix = s.Dim.Render("...")
		}
		if right < len(text) {
			suffix = s.Dim.Render("...")
		}

		text = text[left:right]
		start = min(max(start-left, 0), len(text))
		end = min(max(end-left, start), len(text))
	}

	return prefix +
		s.LineText.Render(text[:start]) +
		s.Highlight.Render(text[start:end]) +
		s.LineText.Render(text[end:]) +
		suffix
}

// FormatFileHeader formats the per-file heading used when grouping
// occurrences by file.
func (s *Styles) FormatFileHeader(path, language string, count int) string {
	word := "occurrences"
	if count == 1 {
		word = "occurrence"
	}
	header := s.Bold.Render(path) + s.Dim.Render(fmt.Sprintf("  %d %s", count, word))
	if language != "" && language != "text" {
		header += "  " + s.Language.Render(language)
	}
	return header + "\n"
}

// TerminalWidth returns the width of the terminal attached to f, or
// defaultWidth when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// RelativePath returns path relative to workDir when that makes it shorter,
// otherwise path unchanged.
func RelativePath(workDir, path string) string {
	if workDir == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, workDir+string(os.PathSeparator)); ok {
		return rel
	}
	return path
}
