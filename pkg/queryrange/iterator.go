package queryrange

// Iterator walks the non-overlapping occurrences of a literal query in
// content, yielding half-open byte ranges expressed in the coordinates of
// the original, full content. An iterator is single-pass and not restartable.
//
// The polarity is fixed at construction: New yields the occurrences
// themselves, NewGaps yields the spans between them (including zero-length
// spans at the edges and between adjacent occurrences).
//
// An iterator holds a shrinking window over the content plus a count of
// bytes removed from the front so far. The invariant
// removed + len(window) == len(full) holds after every call.
type Iterator struct {
	gaps    bool
	query   string
	window  string
	full    string
	removed int
}

// New creates an iterator over each found occurrence of query in content.
//
// An empty query never matches: the iterator yields nothing, and a gaps
// iterator over the same inputs yields one range spanning all of content.
func New(query, content string) *Iterator {
	return newIterator(query, content, false)
}

// NewGaps creates an iterator over the spans of content between occurrences
// of query: before the first occurrence, between consecutive occurrences,
// and after the last. Zero-length leading and interior gaps are yielded;
// when the content ends with an occurrence the window is already exhausted,
// so no trailing zero-length gap is produced.
func NewGaps(query, content string) *Iterator {
	return newIterator(query, content, true)
}

func newIterator(query, content string, gaps bool) *Iterator {
	return &Iterator{
		gaps:   gaps,
		query:  query,
		window: content,
		full:   content,
	}
}

// Next returns the next range, or false when the iterator is exhausted.
// Returned ranges are strictly increasing and never overlap.
func (it *Iterator) Next() (Range, bool) {
	if it.gaps {
		return it.nextGap()
	}
	return it.nextMatch()
}

// nextMatch advances to the next occurrence of the query.
func (it *Iterator) nextMatch() (Range, bool) {
	window := it.window

	found, ok := Locate(it.query, window)
	if !ok {
		return Range{}, false
	}

	// Always true after Locate; kept as an explicit guard on the window.
	if !Within(window, found) {
		return Range{}, false
	}

	rebased, ok := ShiftRangeIn(found, ShiftUp(it.removed), it.full)
	if !ok {
		// Unreachable under correct bookkeeping. Treated as exhaustion
		// rather than an error; there is no error channel at this layer.
		return Range{}, false
	}

	before := len(window)
	it.window = window[found.End:]
	it.removed += before - len(it.window)

	return rebased, true
}

// nextGap advances past the next occurrence, yielding the span before it.
// When no further occurrence exists the gap extends to the end of the
// window, which is then consumed entirely.
func (it *Iterator) nextGap() (Range, bool) {
	window := it.window
	length := len(window)

	found, ok := Locate(it.query, window)
	if !ok {
		found = Range{Start: length, End: length}
	}

	gap := Range{Start: 0, End: found.Start}
	rebased, rebasedOK := ShiftRange(gap, ShiftUp(it.removed))

	next := min(found.End, length)
	it.window = window[next:]
	it.removed += length - len(it.window)

	// A gap is only yielded when the window held bytes at the start of the
	// call. The trailing gap after the last occurrence is still produced
	// exactly once; a spurious empty gap after exhaustion is not.
	if length == 0 || !rebasedOK {
		return Range{}, false
	}

	return rebased, true
}

// Ranges drains the iterator into a slice.
func (it *Iterator) Ranges() []Range {
	var ranges []Range
	for {
		r, ok := it.Next()
		if !ok {
			return ranges
		}
		ranges = append(ranges, r)
	}
}

// CollectStrings drains the iterator and returns owned copies of the
// content at each yielded range.
func (it *Iterator) CollectStrings() []string {
	var parts []string
	for {
		r, ok := it.Next()
		if !ok {
			return parts
		}
		parts = append(parts, r.Slice(it.full))
	}
}
