package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/occur/internal/logging"
	"github.com/yaklabco/occur/internal/ui/pretty"
	"github.com/yaklabco/occur/pkg/config"
	"github.com/yaklabco/occur/pkg/runner"
)

// renderFindResult writes a scan result in the configured output format.
func renderFindResult(cmd *cobra.Command, result *runner.Result, format config.OutputFormat, workDir string) error {
	out := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		return renderJSON(out, result, workDir)
	case config.FormatCount:
		_, err := fmt.Fprintln(out, result.Stats.OccurrencesTotal)
		return err
	default:
		return renderFindText(cmd, out, result, workDir)
	}
}

// renderRewriteResult writes a rewrite result in the configured output format.
func renderRewriteResult(cmd *cobra.Command, result *runner.Result, format config.OutputFormat, workDir string) error {
	out := cmd.OutOrStdout()

	switch format {
	case config.FormatJSON:
		return renderJSON(out, result, workDir)
	case config.FormatCount:
		_, err := fmt.Fprintln(out, result.Stats.OccurrencesTotal)
		return err
	default:
		return renderRewriteText(cmd, out, result, workDir)
	}
}

func renderFindText(cmd *cobra.Command, out io.Writer, result *runner.Result, workDir string) error {
	styles := stylesFor(cmd, out)
	width := outputWidth(out)
	logger := logging.Default()

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Warn("failed to process file",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}
		file := outcome.Result
		if file == nil || len(file.Matches) == 0 {
			continue
		}

		path := pretty.RelativePath(workDir, outcome.Path)
		if _, err := fmt.Fprint(out, styles.FormatFileHeader(path, file.Language, file.Occurrences)); err != nil {
			return err
		}
		for _, match := range file.Matches {
			if _, err := fmt.Fprint(out, styles.FormatOccurrence(path, match, width)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	return err
}

func renderRewriteText(cmd *cobra.Command, out io.Writer, result *runner.Result, workDir string) error {
	styles := stylesFor(cmd, out)
	logger := logging.Default()

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			logger.Warn("failed to process file",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
			continue
		}
		file := outcome.Result
		if file == nil || !file.Changed {
			continue
		}

		path := pretty.RelativePath(workDir, outcome.Path)
		status := styles.Dim.Render("would change")
		if file.Written {
			status = styles.Success.Render("rewritten")
		}
		if _, err := fmt.Fprintf(out, "%s  %s\n", styles.FilePath.Render(path), status); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(out, styles.FormatSummary(result.Stats))
	return err
}

// JSON report shapes. Ranges are half-open byte offsets.
type jsonReport struct {
	Files []jsonFile `json:"files"`
	Stats jsonStats  `json:"stats"`
}

type jsonFile struct {
	Path        string           `json:"path"`
	Language    string           `json:"language,omitempty"`
	Occurrences int              `json:"occurrences"`
	Matches     []jsonOccurrence `json:"matches,omitempty"`
	Changed     bool             `json:"changed,omitempty"`
	Written     bool             `json:"written,omitempty"`
	Skipped     bool             `json:"skipped,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type jsonOccurrence struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

type jsonStats struct {
	FilesDiscovered  int `json:"filesDiscovered"`
	FilesProcessed   int `json:"filesProcessed"`
	FilesSkipped     int `json:"filesSkipped"`
	FilesErrored     int `json:"filesErrored"`
	FilesWithMatches int `json:"filesWithMatches"`
	FilesChanged     int `json:"filesChanged"`
	FilesModified    int `json:"filesModified"`
	Occurrences      int `json:"occurrences"`
}

func renderJSON(out io.Writer, result *runner.Result, workDir string) error {
	report := jsonReport{
		Files: make([]jsonFile, 0, len(result.Files)),
		Stats: jsonStats{
			FilesDiscovered:  result.Stats.FilesDiscovered,
			FilesProcessed:   result.Stats.FilesProcessed,
			FilesSkipped:     result.Stats.FilesSkipped,
			FilesErrored:     result.Stats.FilesErrored,
			FilesWithMatches: result.Stats.FilesWithMatches,
			FilesChanged:     result.Stats.FilesChanged,
			FilesModified:    result.Stats.FilesModified,
			Occurrences:      result.Stats.OccurrencesTotal,
		},
	}

	for _, outcome := range result.Files {
		file := jsonFile{Path: pretty.RelativePath(workDir, outcome.Path)}
		if outcome.Error != nil {
			file.Error = outcome.Error.Error()
			report.Files = append(report.Files, file)
			continue
		}
		if outcome.Result == nil {
			continue
		}

		file.Language = outcome.Result.Language
		file.Occurrences = outcome.Result.Occurrences
		file.Changed = outcome.Result.Changed
		file.Written = outcome.Result.Written
		file.Skipped = outcome.Result.SkippedBinary

		for _, match := range outcome.Result.Matches {
			text := ""
			start := match.Column - 1
			end := start + match.Range.Len()
			if start >= 0 && end <= len(match.LineText) {
				text = match.LineText[start:end]
			}
			file.Matches = append(file.Matches, jsonOccurrence{
				Start:  match.Range.Start,
				End:    match.Range.End,
				Line:   match.Line,
				Column: match.Column,
				Text:   text,
			})
		}
		report.Files = append(report.Files, file)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// stylesFor builds styles honoring the persistent --color flag.
func stylesFor(cmd *cobra.Command, out io.Writer) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, out))
}

// outputWidth resolves the display width for the writer.
func outputWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		return pretty.TerminalWidth(f)
	}
	return 0
}
