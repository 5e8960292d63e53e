// Package pretty provides Lipgloss-based styled output for scan and
// rewrite results.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Occurrence components
	FilePath  lipgloss.Style
	Location  lipgloss.Style
	LineText  lipgloss.Style
	Highlight lipgloss.Style
	Language  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		FilePath:  lipgloss.NewStyle().Bold(true),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LineText:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Language:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:     plain,
		Location:     plain,
		LineText:     plain,
		Highlight:    plain,
		Language:     plain,
		SummaryTitle: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
