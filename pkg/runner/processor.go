package runner

import (
	"context"
	"sort"
	"strings"

	"github.com/yaklabco/occur/pkg/fsutil"
	"github.com/yaklabco/occur/pkg/queryrange"
)

// Match is one located range in a file, with enough context to display it.
type Match struct {
	// Range is the byte range of the occurrence in the file content.
	Range queryrange.Range

	// Line is the 1-based line number of the range start.
	Line int

	// Column is the 1-based byte column of the range start within its line.
	Column int

	// LineText is the text of the line containing the range start, without
	// its trailing newline.
	LineText string
}

// FileResult is the outcome of processing one file.
type FileResult struct {
	// Path is the file that was processed.
	Path string

	// Language is a display label for the file's detected language.
	Language string

	// SkippedBinary is true when the file was skipped as binary content.
	SkippedBinary bool

	// Matches holds the located ranges (scan runs).
	Matches []Match

	// Occurrences is the number of query occurrences in the file.
	Occurrences int

	// Rewritten is the reassembled content (rewrite runs).
	Rewritten []byte

	// Changed is true when the rewritten content differs from the original.
	Changed bool

	// Written is true when the file was updated in place.
	Written bool
}

// Processor handles a single file's content.
type Processor interface {
	Process(ctx context.Context, path string, content []byte) (*FileResult, error)
}

// ScanProcessor locates query occurrences (or the gaps between them) in
// each file.
type ScanProcessor struct {
	// Query is the literal text to locate.
	Query string

	// Gaps yields the spans between occurrences instead of the
	// occurrences themselves.
	Gaps bool
}

// Process scans content and returns the located ranges with line context.
func (p *ScanProcessor) Process(_ context.Context, path string, content []byte) (*FileResult, error) {
	text := string(content)

	var it *queryrange.Iterator
	if p.Gaps {
		it = queryrange.NewGaps(p.Query, text)
	} else {
		it = queryrange.New(p.Query, text)
	}

	ranges := it.Ranges()
	result := &FileResult{
		Path:        path,
		Occurrences: len(ranges),
	}
	if len(ranges) == 0 {
		return result, nil
	}

	lines := lineStarts(text)
	result.Matches = make([]Match, 0, len(ranges))
	for _, r := range ranges {
		result.Matches = append(result.Matches, locateLine(text, lines, r))
	}
	return result, nil
}

// RewriteProcessor reassembles each file's content, transforming matched
// and unmatched segments independently.
type RewriteProcessor struct {
	// Query is the literal text whose occurrences are rewritten.
	Query string

	// MatchFn transforms each occurrence.
	MatchFn queryrange.TransformFunc

	// GapFn transforms each span between occurrences.
	GapFn queryrange.TransformFunc

	// TwoPass rewrites matches first, then re-scans the intermediate text
	// for the transformed query before rewriting gaps.
	TwoPass bool

	// Write updates changed files in place atomically.
	Write bool

	// DryRun suppresses writes while still reporting what would change.
	DryRun bool
}

// Process rewrites content and optionally writes it back.
func (p *RewriteProcessor) Process(ctx context.Context, path string, content []byte) (*FileResult, error) {
	text := string(content)

	matchFn := p.MatchFn
	if matchFn == nil {
		matchFn = queryrange.Identity
	}
	gapFn := p.GapFn
	if gapFn == nil {
		gapFn = queryrange.Identity
	}

	var rewritten string
	if p.TwoPass {
		rewritten = queryrange.TransformAll(p.Query, text, matchFn, gapFn)
	} else {
		rewritten = queryrange.TransformBoth(p.Query, text, matchFn, gapFn)
	}

	result := &FileResult{
		Path:        path,
		Occurrences: len(queryrange.New(p.Query, text).Ranges()),
		Rewritten:   []byte(rewritten),
		Changed:     rewritten != text,
	}

	if p.Write && result.Changed && !p.DryRun {
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, result.Rewritten)
		if err != nil {
			return nil, err
		}
		result.Written = written
	}

	return result, nil
}

// lineStarts returns the byte offset of the first character of each line.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// locateLine resolves a range start to 1-based line and column plus the
// containing line's text.
func locateLine(text string, starts []int, r queryrange.Range) Match {
	idx := sort.Search(len(starts), func(i int) bool {
		return starts[i] > r.Start
	}) - 1

	lineStart := starts[idx]
	lineEnd := len(text)
	if idx+1 < len(starts) {
		lineEnd = starts[idx+1]
	}
	lineText := strings.TrimRight(text[lineStart:lineEnd], "\n")

	return Match{
		Range:    r,
		Line:     idx + 1,
		Column:   r.Start - lineStart + 1,
		LineText: lineText,
	}
}
