package queryrange

import "math"

// Shift translates byte offsets by a signed magnitude. The zero value is a
// no-op shift.
type Shift struct {
	amount int
	down   bool
}

// ShiftUp returns a Shift that increases offsets by amount.
func ShiftUp(amount int) Shift {
	return Shift{amount: amount}
}

// ShiftDown returns a Shift that decreases offsets by amount.
func ShiftDown(amount int) Shift {
	return Shift{amount: amount, down: true}
}

// Apply translates a single offset. It returns false if the result would
// fall below zero or overflow the int range; it never panics or wraps.
func (s Shift) Apply(offset int) (int, bool) {
	if s.down {
		shifted := offset - s.amount
		if shifted < 0 {
			return 0, false
		}
		return shifted, true
	}

	if offset > math.MaxInt-s.amount {
		return 0, false
	}
	return offset + s.amount, true
}

// ShiftRange translates both ends of a range. It fails if either end would
// underflow or overflow.
func ShiftRange(r Range, s Shift) (Range, bool) {
	start, ok := s.Apply(r.Start)
	if !ok {
		return Range{}, false
	}
	end, ok := s.Apply(r.End)
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// ShiftRangeIn translates a range and validates the result against content.
// It fails if the arithmetic under/overflows or if the shifted range no
// longer fits inside content.
//
// This is the single chokepoint through which window-local ranges are
// re-based into full-content coordinates.
func ShiftRangeIn(r Range, s Shift, content string) (Range, bool) {
	shifted, ok := ShiftRange(r, s)
	if !ok {
		return Range{}, false
	}
	if !Within(content, shifted) {
		return Range{}, false
	}
	return shifted, true
}
