package sky

// Interval is a closed RA interval in radians with Lo <= Hi, both within [0, 2π].
type Interval struct {
	Lo float64
	Hi float64
}

// RARange is a set of right ascensions: either the full circle, one interval,
// or the union of two intervals when the range crosses 0h.
type RARange struct {
	intervals []Interval
	full      bool
}

// FullRA returns a range covering every right ascension.
func FullRA() RARange { return RARange{full: true} }

// RAInterval returns the range going eastward from lo to hi.
// Both ends are normalized first; when lo ends up past hi the range wraps
// through 0h and becomes [lo, 2π] ∪ [0, hi].
func RAInterval(lo, hi float64) RARange {
	lo, hi = normalizeRA(lo), normalizeRA(hi)
	if lo <= hi {
		return RARange{intervals: []Interval{{Lo: lo, Hi: hi}}}
	}
	return RARange{intervals: []Interval{
		{Lo: lo, Hi: fullCircle},
		{Lo: 0, Hi: hi},
	}}
}

// IsFull reports whether the range covers the whole circle.
func (r RARange) IsFull() bool { return r.full }

// IsSplit reports whether the range is a two-interval union.
func (r RARange) IsSplit() bool { return len(r.intervals) == 2 }

// Intervals returns the intervals making up the range; nil for a full range.
func (r RARange) Intervals() []Interval {
	if r.full {
		return nil
	}
	out := make([]Interval, len(r.intervals))
	copy(out, r.intervals)
	return out
}

// Contains reports whether ra (radians) falls inside the range.
func (r RARange) Contains(ra float64) bool {
	if r.full {
		return true
	}
	ra = normalizeRA(ra)
	for _, iv := range r.intervals {
		if ra >= iv.Lo && ra <= iv.Hi {
			return true
		}
	}
	return false
}
