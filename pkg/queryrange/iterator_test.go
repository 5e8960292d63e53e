package queryrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/occur/pkg/queryrange"
)

const haystack = "haystackneedlehaystackneedlehaystack"

func TestIterator_Matches(t *testing.T) {
	it := queryrange.New("needle", haystack)

	ranges := it.Ranges()

	require.Len(t, ranges, 2)
	assert.Equal(t, queryrange.Range{Start: 8, End: 14}, ranges[0])
	assert.Equal(t, queryrange.Range{Start: 22, End: 28}, ranges[1])
	for _, r := range ranges {
		assert.Equal(t, "needle", r.Slice(haystack))
	}
}

func TestIterator_MatchesAreOrderedAndDisjoint(t *testing.T) {
	it := queryrange.New("aa", "aaaaXaaaa")

	ranges := it.Ranges()

	// Non-overlapping enumeration: "aaaa" holds two matches, not three.
	require.Len(t, ranges, 4)
	for i := 1; i < len(ranges); i++ {
		assert.GreaterOrEqual(t, ranges[i].Start, ranges[i-1].End)
	}
}

func TestIterator_MatchesExhausted(t *testing.T) {
	it := queryrange.New("needle", haystack)
	it.Ranges()

	_, ok := it.Next()

	assert.False(t, ok)
}

func TestIterator_QueryAbsent(t *testing.T) {
	it := queryrange.New("zzz", haystack)

	assert.Empty(t, it.Ranges())
}

func TestIterator_EmptyContent(t *testing.T) {
	assert.Empty(t, queryrange.New("needle", "").Ranges())
	assert.Empty(t, queryrange.NewGaps("needle", "").Ranges())
}

func TestIterator_EmptyQuery(t *testing.T) {
	assert.Empty(t, queryrange.New("", haystack).Ranges())

	gaps := queryrange.NewGaps("", haystack).Ranges()
	require.Len(t, gaps, 1)
	assert.Equal(t, queryrange.Range{Start: 0, End: len(haystack)}, gaps[0])
}

func TestIterator_Gaps(t *testing.T) {
	it := queryrange.NewGaps("needle", haystack)

	ranges := it.Ranges()

	require.Len(t, ranges, 3)
	assert.Equal(t, "haystack", ranges[0].Slice(haystack))
	assert.Equal(t, "haystack", ranges[1].Slice(haystack))
	assert.Equal(t, "haystack", ranges[2].Slice(haystack))
}

func TestIterator_GapsQueryAbsent(t *testing.T) {
	it := queryrange.NewGaps("zzz", haystack)

	ranges := it.Ranges()

	require.Len(t, ranges, 1)
	assert.Equal(t, queryrange.Range{Start: 0, End: len(haystack)}, ranges[0])
}

func TestIterator_GapsAtEdges(t *testing.T) {
	it := queryrange.NewGaps("needle", "needlehayneedle")

	ranges := it.Ranges()

	// A zero-length leading gap is yielded. Once the final match consumes
	// the window there is no further call with a non-empty window, so no
	// trailing zero-length gap is produced.
	require.Len(t, ranges, 2)
	assert.Equal(t, queryrange.Range{Start: 0, End: 0}, ranges[0])
	assert.Equal(t, queryrange.Range{Start: 6, End: 9}, ranges[1])
}

func TestIterator_GapsBetweenAdjacentMatches(t *testing.T) {
	it := queryrange.NewGaps("ab", "abXab")

	ranges := it.Ranges()

	require.Len(t, ranges, 2)
	assert.Equal(t, queryrange.Range{Start: 0, End: 0}, ranges[0])
	assert.Equal(t, queryrange.Range{Start: 2, End: 3}, ranges[1])
}

func TestIterator_GapsAdjacentMatchesYieldEmptyGap(t *testing.T) {
	it := queryrange.NewGaps("ab", "ababX")

	ranges := it.Ranges()

	// The zero-length gap between back-to-back matches is yielded.
	require.Len(t, ranges, 3)
	assert.Equal(t, queryrange.Range{Start: 0, End: 0}, ranges[0])
	assert.Equal(t, queryrange.Range{Start: 2, End: 2}, ranges[1])
	assert.Equal(t, queryrange.Range{Start: 4, End: 5}, ranges[2])
}

func TestIterator_MatchesAndGapsReconstructContent(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		content string
	}{
		{"interior matches", "needle", haystack},
		{"match at edges", "needle", "needlehayneedle"},
		{"adjacent matches", "ab", "ababab"},
		{"absent query", "zzz", haystack},
		{"single char query", "a", "banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := queryrange.New(tt.query, tt.content).Ranges()
			gaps := queryrange.NewGaps(tt.query, tt.content).Ranges()

			// One gap per match boundary, except that no trailing gap is
			// produced when the content ends with a match.
			wantGaps := len(matches) + 1
			if n := len(matches); n > 0 && matches[n-1].End == len(tt.content) {
				wantGaps = len(matches)
			}
			require.Len(t, gaps, wantGaps)

			// Interleave gap, match, gap, ... and compare with the content.
			var rebuilt string
			for i, m := range matches {
				if i < len(gaps) {
					rebuilt += gaps[i].Slice(tt.content)
				}
				rebuilt += m.Slice(tt.content)
			}
			if len(gaps) > len(matches) {
				rebuilt += gaps[len(gaps)-1].Slice(tt.content)
			}
			assert.Equal(t, tt.content, rebuilt)
		})
	}
}

func TestIterator_CollectStrings(t *testing.T) {
	needles := queryrange.New("needle", haystack).CollectStrings()

	require.Len(t, needles, 2)
	for _, n := range needles {
		assert.Equal(t, "needle", n)
	}
}

func TestIterator_CollectStringsGaps(t *testing.T) {
	parts := queryrange.NewGaps("needle", haystack).CollectStrings()

	assert.Equal(t, []string{"haystack", "haystack", "haystack"}, parts)
}
