package queryrange

import (
	"sort"
	"strings"
)

// TransformFunc maps a segment of content to its replacement text. It must
// be a total, pure function of its input.
type TransformFunc func(string) string

// Identity returns its input unchanged. It is the default transform for
// whichever polarity a caller leaves untouched.
func Identity(segment string) string {
	return segment
}

// taggedRun is a produced segment keyed by its start offset in the original
// content, the unit merged during reassembly.
type taggedRun struct {
	text  string
	start int
}

// Transform reassembles content, applying fn to every occurrence of query
// when invert is false, or to every gap between occurrences when invert is
// true. The untouched polarity is copied verbatim. Segment order and
// concatenation follow the original content.
func Transform(query, content string, fn TransformFunc, invert bool) string {
	return transform(query, content, fn, Identity, invert)
}

// TransformMatches reassembles content with fn applied to each occurrence
// of query.
func TransformMatches(query, content string, fn TransformFunc) string {
	return Transform(query, content, fn, false)
}

// TransformGaps reassembles content with fn applied to each span between
// occurrences of query.
func TransformGaps(query, content string, fn TransformFunc) string {
	return Transform(query, content, fn, true)
}

// TransformBoth reassembles content in a single pass, applying matchFn to
// each occurrence of query and gapFn to each span between occurrences.
func TransformBoth(query, content string, matchFn, gapFn TransformFunc) string {
	return transform(query, content, matchFn, gapFn, false)
}

// TransformAll applies matchFn to each occurrence of query, then re-scans
// the intermediate result for the transformed query and applies gapFn to
// the spans between those occurrences.
//
// The second scan searches for matchFn(query), since after the first pass
// the matched text no longer equals the original query. matchFn must
// therefore be context-insensitive: applying it to the bare query must
// yield exactly what it yields for every matched occurrence. That contract
// belongs to the caller and is not checked at runtime.
func TransformAll(query, content string, matchFn, gapFn TransformFunc) string {
	intermediate := Transform(query, content, matchFn, false)
	transformedQuery := matchFn(query)
	return Transform(transformedQuery, intermediate, gapFn, true)
}

// transform drives a matches iterator and a gaps iterator over the same
// content, applies the polarity-selected transforms, and merges the tagged
// runs by start offset. Matches and gaps never share a start offset, so the
// sort is total.
func transform(query, content string, selectedFn, restFn TransformFunc, invert bool) string {
	selected := newIterator(query, content, invert)
	rest := newIterator(query, content, !invert)

	var runs []taggedRun
	for {
		r, ok := selected.Next()
		if !ok {
			break
		}
		runs = append(runs, taggedRun{text: selectedFn(r.Slice(content)), start: r.Start})
	}
	for {
		r, ok := rest.Next()
		if !ok {
			break
		}
		runs = append(runs, taggedRun{text: restFn(r.Slice(content)), start: r.Start})
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].start < runs[j].start
	})

	var builder strings.Builder
	for _, run := range runs {
		builder.WriteString(run.text)
	}
	return builder.String()
}
