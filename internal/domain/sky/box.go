package sky

import "math"

// Box is a coarse RA/Dec region guaranteed to contain a circular search cap.
type Box struct {
	RA     RARange
	DecMin float64
	DecMax float64
}

// BoundingBox returns the smallest RA/Dec box containing every point within
// radius (radians) of center.
//
// The RA half-width is asin(sin r / cos dec), which widens roughly as r/cos(dec)
// away from the equator. When the cap reaches a pole every RA is inside it.
func BoundingBox(center Coordinates, radius float64) Box {
	b := Box{
		DecMin: math.Max(center.dec-radius, -quarter),
		DecMax: math.Min(center.dec+radius, quarter),
	}

	if center.dec+radius >= quarter || center.dec-radius <= -quarter {
		b.RA = FullRA()
		return b
	}

	x := math.Sin(radius) / math.Cos(center.dec)
	if x >= 1 {
		b.RA = FullRA()
		return b
	}
	half := math.Asin(x)
	if 2*half >= fullCircle {
		b.RA = FullRA()
		return b
	}
	b.RA = RAInterval(center.ra-half, center.ra+half)
	return b
}

// Contains reports whether c lies in the box.
func (b Box) Contains(c Coordinates) bool {
	return c.dec >= b.DecMin && c.dec <= b.DecMax && b.RA.Contains(c.ra)
}
