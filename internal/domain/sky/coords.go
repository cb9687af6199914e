// Package sky holds equatorial coordinate math: text codec, RA ranges,
// bounding boxes and angular separation.
package sky

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kailas-cloud/ngcdex/internal/domain"
)

const (
	fullCircle = 2 * math.Pi
	quarter    = math.Pi / 2
)

var (
	raPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2}(?:\.\d{1,2})?)$`)
	decPattern = regexp.MustCompile(`^([+-])(\d{1,2}):(\d{1,2}):(\d{1,2}(?:\.\d{1,2})?)$`)
)

// Coordinates is an equatorial position in radians.
// RA is kept in [0, 2π), Dec in [-π/2, π/2].
type Coordinates struct {
	ra  float64
	dec float64
}

// New validates and creates Coordinates. RA is normalized modulo 24h.
func New(ra, dec float64) (Coordinates, error) {
	if math.IsNaN(ra) || math.IsInf(ra, 0) || math.IsNaN(dec) || math.IsInf(dec, 0) {
		return Coordinates{}, domain.FormatError("coordinates must be finite")
	}
	if dec < -quarter || dec > quarter {
		return Coordinates{}, domain.FormatError("declination %.6f rad out of range", dec)
	}
	return Coordinates{ra: normalizeRA(ra), dec: dec}, nil
}

// RA returns the right ascension in radians.
func (c Coordinates) RA() float64 { return c.ra }

// Dec returns the declination in radians.
func (c Coordinates) Dec() float64 { return c.dec }

// String renders the position as "HH:MM:SS.ss ±DD:MM:SS.s".
func (c Coordinates) String() string { return Format(c) }

// Parse reads "HH:MM:SS(.ss) ±DD:MM:SS(.s)".
func Parse(text string) (Coordinates, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return Coordinates{}, domain.FormatError("coordinates %q must be \"HH:MM:SS.ss +/-DD:MM:SS.s\"", text)
	}
	ra, err := ParseRA(parts[0])
	if err != nil {
		return Coordinates{}, err
	}
	dec, err := ParseDec(parts[1])
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{ra: ra, dec: dec}, nil
}

// ParseRA reads "HH:MM:SS(.ss)" and returns radians.
func ParseRA(text string) (float64, error) {
	m := raPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, domain.FormatError("right ascension %q must be HH:MM:SS.ss", text)
	}
	h, mins, secs := atof(m[1]), atof(m[2]), atof(m[3])
	if h >= 24 || mins >= 60 || secs >= 60 {
		return 0, domain.FormatError("right ascension %q out of range", text)
	}
	deg := h*15 + mins/4 + secs/240
	return deg * math.Pi / 180, nil
}

// ParseDec reads "±DD:MM:SS(.s)" and returns radians. The sign is mandatory.
// The sign applies to the whole value, so "-00:09:01.3" is south of the equator.
func ParseDec(text string) (float64, error) {
	m := decPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, domain.FormatError("declination %q must be +/-DD:MM:SS.s", text)
	}
	d, mins, secs := atof(m[2]), atof(m[3]), atof(m[4])
	if mins >= 60 || secs >= 60 {
		return 0, domain.FormatError("declination %q out of range", text)
	}
	deg := d + mins/60 + secs/3600
	if deg > 90 {
		return 0, domain.FormatError("declination %q beyond the pole", text)
	}
	if m[1] == "-" {
		deg = -deg
	}
	return deg * math.Pi / 180, nil
}

// Format renders both coordinates.
func Format(c Coordinates) string {
	return FormatRA(c.ra) + " " + FormatDec(c.dec)
}

// FormatRA renders radians as "HH:MM:SS.ss", wrapping at 24h.
func FormatRA(ra float64) string {
	const perDay = 24 * 3600 * 100
	hours := normalizeRA(ra) * 180 / math.Pi / 15
	total := int64(math.Round(hours*3600*100)) % perDay
	h := total / 360000
	m := total % 360000 / 6000
	cs := total % 6000
	return fmt.Sprintf("%02d:%02d:%05.2f", h, m, float64(cs)/100)
}

// FormatDec renders radians as "±DD:MM:SS.s". The sign is always present.
func FormatDec(dec float64) string {
	deg := dec * 180 / math.Pi
	tenths := int64(math.Round(math.Abs(deg) * 36000))
	sign := "+"
	if deg < 0 && tenths > 0 {
		sign = "-"
	}
	d := tenths / 36000
	m := tenths % 36000 / 600
	s := tenths % 600
	return fmt.Sprintf("%s%02d:%02d:%04.1f", sign, d, m, float64(s)/10)
}

func normalizeRA(ra float64) float64 {
	r := math.Mod(ra, fullCircle)
	if r < 0 {
		r += fullCircle
	}
	return r
}

// atof parses a string already validated by a pattern.
func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
