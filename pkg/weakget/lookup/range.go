package lookup

import "strconv"

// Range is the slice form of an item key. A nil bound is open. Ranges are
// clamped to the sequence length and never fail on a sequence.
type Range struct {
	Start *int
	Stop  *int
}

// Slice returns the range [start:stop].
func Slice(start, stop int) Range {
	return Range{Start: &start, Stop: &stop}
}

// From returns the range [start:].
func From(start int) Range {
	return Range{Start: &start}
}

// To returns the range [:stop].
func To(stop int) Range {
	return Range{Stop: &stop}
}

// All returns the range [:].
func All() Range {
	return Range{}
}

// bounds resolves the range against a sequence of length n. Negative bounds
// count from the end.
func (r Range) bounds(n int) (lo, hi int) {
	lo, hi = 0, n
	if r.Start != nil {
		lo = clamp(*r.Start, n)
	}
	if r.Stop != nil {
		hi = clamp(*r.Stop, n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

func (r Range) String() string {
	s := "["
	if r.Start != nil {
		s += strconv.Itoa(*r.Start)
	}
	s += ":"
	if r.Stop != nil {
		s += strconv.Itoa(*r.Stop)
	}
	return s + "]"
}
