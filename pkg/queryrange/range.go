// Package queryrange locates literal query occurrences in text as byte
// ranges and reassembles text by transforming matched and unmatched
// segments independently.
//
// All positions are raw byte offsets into the original content. Ranges are
// half-open intervals [Start, End). The package performs no Unicode
// segmentation; callers that round-trip multi-byte text are responsible for
// choosing queries whose boundaries do not split an encoded character.
package queryrange

// Range is a half-open byte interval [Start, End) into some content.
type Range struct {
	// Start is the inclusive byte offset where the range begins.
	Start int

	// End is the exclusive byte offset where the range ends.
	End int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Slice returns the substring of content covered by the range.
// The range must be valid within content.
func (r Range) Slice(content string) string {
	return content[r.Start:r.End]
}

// Within reports whether the range fits inside content, i.e. its end does
// not exceed the content length.
func Within(content string, r Range) bool {
	return r.End <= len(content)
}
