package queryrange

import "strings"

// Locate returns the range of the first literal occurrence of query in
// content, or false if the query does not occur.
//
// An empty query is treated as never found; see New for the iteration
// consequences of that choice.
//
// The computed end is checked against the content length before the range is
// returned. Substring search cannot actually produce a range past the end of
// the content, but the check is kept as a hard invariant guard.
func Locate(query, content string) (Range, bool) {
	if query == "" {
		return Range{}, false
	}

	start := strings.Index(content, query)
	if start < 0 {
		return Range{}, false
	}

	r := Range{Start: start, End: start + len(query)}
	if r.End > len(content) {
		return Range{}, false
	}

	return r, true
}
