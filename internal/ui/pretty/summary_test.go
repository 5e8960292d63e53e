package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/occur/internal/ui/pretty"
	"github.com/yaklabco/occur/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   10,
		FilesWithMatches: 3,
		OccurrencesTotal: 15,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Occurrences:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Done")
}

func TestFormatSummary_NoMatches(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 5})

	assert.Contains(t, result, "No occurrences found")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{
		FilesProcessed: 4,
		FilesErrored:   1,
	})

	assert.Contains(t, result, "Files errored:")
	assert.Contains(t, result, "Completed with errors")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   5,
		FilesWithMatches: 2,
		OccurrencesTotal: 3,
	})

	assert.Contains(t, result, "3 occurrences in 2 files")
	assert.Contains(t, result, "5 files checked")
}

func TestFormatSummaryOneLine_Singular(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   1,
		FilesWithMatches: 1,
		OccurrencesTotal: 1,
	})

	assert.Contains(t, result, "1 occurrence in 1 file")
}

func TestFormatSummaryOneLine_Rewritten(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   2,
		FilesWithMatches: 2,
		OccurrencesTotal: 4,
		FilesChanged:     2,
		FilesModified:    2,
	})

	assert.Contains(t, result, "2 rewritten")
}

func TestFormatSummaryOneLine_DryRun(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{
		FilesProcessed:   2,
		FilesWithMatches: 2,
		OccurrencesTotal: 4,
		FilesChanged:     2,
	})

	assert.Contains(t, result, "2 would change")
}
