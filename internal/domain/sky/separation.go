package sky

import (
	"fmt"
	"math"
)

// Separation is the angular distance between two positions, in degrees.
// DeltaRA and DeltaDec are signed differences (second minus first).
type Separation struct {
	Angular  float64
	DeltaRA  float64
	DeltaDec float64
}

// Distance returns the separation from a to b using the haversine formula,
// which stays precise for small angles.
func Distance(a, b Coordinates) Separation {
	return Separation{
		Angular:  degrees(Angle(a, b)),
		DeltaRA:  degrees(b.ra - a.ra),
		DeltaDec: degrees(b.dec - a.dec),
	}
}

// Angle returns the great-circle angle between a and b in radians.
func Angle(a, b Coordinates) float64 {
	sinDec := math.Sin((b.dec - a.dec) / 2)
	sinRA := math.Sin((b.ra - a.ra) / 2)
	h := sinDec*sinDec + math.Cos(a.dec)*math.Cos(b.dec)*sinRA*sinRA
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h))
}

// Text renders the angular separation as "D° Mm S.SSs". Rounding happens on
// hundredths of an arcsecond, so seconds never print as 60.
func (s Separation) Text() string {
	cs := int64(math.Round(math.Abs(s.Angular) * 360000))
	d := cs / 360000
	m := cs % 360000 / 6000
	sec := float64(cs%6000) / 100
	return fmt.Sprintf("%d° %dm %.2fs", d, m, sec)
}

// ArcminToRadians converts arcminutes to radians.
func ArcminToRadians(arcmin float64) float64 {
	return arcmin / 60 * math.Pi / 180
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 { return degrees(rad) }

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
