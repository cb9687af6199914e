// Package dso defines the deep sky object entity returned by every query.
package dso

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// Dimensions holds apparent size in arcminutes and position angle in degrees.
type Dimensions struct {
	MajorAxis     Value `json:"major_axis"`
	MinorAxis     Value `json:"minor_axis"`
	PositionAngle Value `json:"position_angle"`
}

// Magnitudes holds photometry per band.
type Magnitudes struct {
	B Value `json:"b"`
	V Value `json:"v"`
	J Value `json:"j"`
	H Value `json:"h"`
	K Value `json:"k"`
}

// Kinematics holds distance and motion measurements.
type Kinematics struct {
	Parallax       Value `json:"parallax"`
	PMRA           Value `json:"pm_ra"`
	PMDec          Value `json:"pm_dec"`
	RadialVelocity Value `json:"radial_velocity"`
	Redshift       Value `json:"redshift"`
}

// CentralStar describes the central star of a planetary nebula.
type CentralStar struct {
	Names []string `json:"names,omitempty"`
	U     Value    `json:"u"`
	B     Value    `json:"b"`
	V     Value    `json:"v"`
}

// IsKnown reports whether any central star data is recorded.
func (c CentralStar) IsKnown() bool {
	return len(c.Names) > 0 || c.U.IsKnown() || c.B.IsKnown() || c.V.IsKnown()
}

// Identifiers lists the alternative designations of an object.
// NGC and IC hold cross-references; for a duplicated record they point
// at the canonical object.
type Identifiers struct {
	Messier string   `json:"messier,omitempty"`
	NGC     []string `json:"ngc,omitempty"`
	IC      []string `json:"ic,omitempty"`
	Other   []string `json:"other,omitempty"`
}

// Notes holds free-text remarks.
type Notes struct {
	NED     string `json:"ned,omitempty"`
	OpenNGC string `json:"openngc,omitempty"`
}

// Attrs is the full set of fields used to build a Dso.
type Attrs struct {
	ID                int64
	Name              string
	Type              Type
	Coordinates       *sky.Coordinates
	Constellation     string
	Dimensions        Dimensions
	Magnitudes        Magnitudes
	SurfaceBrightness Value
	Hubble            string
	Kinematics        Kinematics
	CentralStar       CentralStar
	Identifiers       Identifiers
	CommonNames       []string
	Notes             Notes
	NotNGC            bool
}

// Dso is an immutable deep sky object.
type Dso struct {
	attrs Attrs
}

// New validates attrs and creates a Dso. Slices are copied.
func New(a Attrs) (Dso, error) {
	if a.Name == "" {
		return Dso{}, domain.CorruptCatalog("object name is required")
	}
	if _, ok := ParseType(string(a.Type)); !ok {
		return Dso{}, domain.CorruptCatalog("object %s has unknown type %q", a.Name, a.Type)
	}
	if a.Coordinates != nil {
		c := *a.Coordinates
		a.Coordinates = &c
	}
	a.CommonNames = slices.Clone(a.CommonNames)
	a.CentralStar.Names = slices.Clone(a.CentralStar.Names)
	a.Identifiers.NGC = slices.Clone(a.Identifiers.NGC)
	a.Identifiers.IC = slices.Clone(a.Identifiers.IC)
	a.Identifiers.Other = slices.Clone(a.Identifiers.Other)
	return Dso{attrs: a}, nil
}

// ID returns the catalog row id.
func (d Dso) ID() int64 { return d.attrs.ID }

// Name returns the canonical name, e.g. "NGC0001".
func (d Dso) Name() string { return d.attrs.Name }

// Type returns the object type.
func (d Dso) Type() Type { return d.attrs.Type }

// Coordinates returns the J2000 position and whether it is known.
func (d Dso) Coordinates() (sky.Coordinates, bool) {
	if d.attrs.Coordinates == nil {
		return sky.Coordinates{}, false
	}
	return *d.attrs.Coordinates, true
}

// RA returns right ascension as "HH:MM:SS.ss" or "N/A".
func (d Dso) RA() string {
	if d.attrs.Coordinates == nil {
		return "N/A"
	}
	return sky.FormatRA(d.attrs.Coordinates.RA())
}

// Dec returns declination as "±DD:MM:SS.s" or "N/A".
func (d Dso) Dec() string {
	if d.attrs.Coordinates == nil {
		return "N/A"
	}
	return sky.FormatDec(d.attrs.Coordinates.Dec())
}

// Constellation returns the three-letter constellation code.
func (d Dso) Constellation() string { return d.attrs.Constellation }

func (d Dso) Dimensions() Dimensions { return d.attrs.Dimensions }

func (d Dso) Magnitudes() Magnitudes { return d.attrs.Magnitudes }

// SurfaceBrightness is in mag/arcsec² (galaxies only).
func (d Dso) SurfaceBrightness() Value { return d.attrs.SurfaceBrightness }

// Hubble returns the morphological type (galaxies only).
func (d Dso) Hubble() string { return d.attrs.Hubble }

func (d Dso) Kinematics() Kinematics { return d.attrs.Kinematics }

func (d Dso) CentralStar() CentralStar {
	c := d.attrs.CentralStar
	c.Names = slices.Clone(c.Names)
	return c
}

func (d Dso) Identifiers() Identifiers {
	id := d.attrs.Identifiers
	id.NGC = slices.Clone(id.NGC)
	id.IC = slices.Clone(id.IC)
	id.Other = slices.Clone(id.Other)
	return id
}

// CommonNames returns the common names in catalog order.
func (d Dso) CommonNames() []string { return slices.Clone(d.attrs.CommonNames) }

func (d Dso) Notes() Notes { return d.attrs.Notes }

// NotNGC reports whether the object comes from the addendum rather than NGC/IC.
func (d Dso) NotNGC() bool { return d.attrs.NotNGC }

// String returns "NGC0001, Galaxy in Peg".
func (d Dso) String() string {
	return fmt.Sprintf("%s, %s in %s", d.attrs.Name, d.attrs.Type.Description(), d.attrs.Constellation)
}

type dsoJSON struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Type              Type         `json:"type"`
	TypeDescription   string       `json:"type_description"`
	RA                string       `json:"ra"`
	Dec               string       `json:"dec"`
	RARadians         *float64     `json:"ra_rad"`
	DecRadians        *float64     `json:"dec_rad"`
	Constellation     string       `json:"constellation"`
	Dimensions        Dimensions   `json:"dimensions"`
	Magnitudes        Magnitudes   `json:"magnitudes"`
	SurfaceBrightness Value        `json:"surface_brightness"`
	Hubble            string       `json:"hubble,omitempty"`
	Kinematics        Kinematics   `json:"kinematics"`
	CentralStar       *CentralStar `json:"central_star,omitempty"`
	Identifiers       Identifiers  `json:"identifiers"`
	CommonNames       []string     `json:"common_names,omitempty"`
	Notes             Notes        `json:"notes"`
	NotNGC            bool         `json:"not_ngc"`
}

// MarshalJSON encodes the object for API responses.
func (d Dso) MarshalJSON() ([]byte, error) {
	out := dsoJSON{
		ID:                d.attrs.ID,
		Name:              d.attrs.Name,
		Type:              d.attrs.Type,
		TypeDescription:   d.attrs.Type.Description(),
		RA:                d.RA(),
		Dec:               d.Dec(),
		Constellation:     d.attrs.Constellation,
		Dimensions:        d.attrs.Dimensions,
		Magnitudes:        d.attrs.Magnitudes,
		SurfaceBrightness: d.attrs.SurfaceBrightness,
		Hubble:            d.attrs.Hubble,
		Kinematics:        d.attrs.Kinematics,
		Identifiers:       d.attrs.Identifiers,
		CommonNames:       d.attrs.CommonNames,
		Notes:             d.attrs.Notes,
		NotNGC:            d.attrs.NotNGC,
	}
	if c := d.attrs.Coordinates; c != nil {
		ra, dec := c.RA(), c.Dec()
		out.RARadians, out.DecRadians = &ra, &dec
	}
	if d.attrs.CentralStar.IsKnown() {
		cs := d.attrs.CentralStar
		out.CentralStar = &cs
	}
	return json.Marshal(out)
}
