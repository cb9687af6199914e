package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/result"
)

type neighborJSON struct {
	Object   dso.Dso `json:"object"`
	Distance float64 `json:"distance_deg"`
}

type separationJSON struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Angular  float64 `json:"angular_deg"`
	DeltaRA  float64 `json:"delta_ra_deg"`
	DeltaDec float64 `json:"delta_dec_deg"`
	Text     string  `json:"text"`
}

func neighborsJSON(hits []result.Neighbor) []neighborJSON {
	out := make([]neighborJSON, len(hits))
	for i, h := range hits {
		out[i] = neighborJSON{Object: h.Object(), Distance: h.Distance()}
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError reports err with its hints, if any.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", pterm.Red("Error:"), err)
	if hint := errors.FlattenHints(err); hint != "" {
		for _, h := range strings.Split(hint, "\n--\n") {
			fmt.Fprintf(w, "%s %s\n", pterm.Yellow("Hint:"), h)
		}
	}
}

func renderObject(w io.Writer, d dso.Dso) error {
	dims := d.Dimensions()
	mags := d.Magnitudes()
	rows := [][]string{
		{"Type", d.Type().Description()},
		{"RA", d.RA()},
		{"Dec", d.Dec()},
		{"Constellation", orNA(d.Constellation())},
		{"Major axis", arcmin(dims.MajorAxis)},
		{"Minor axis", arcmin(dims.MinorAxis)},
		{"Position angle", dims.PositionAngle.String()},
		{"B-Mag / V-Mag", mags.B.String() + " / " + mags.V.String()},
		{"J / H / K", mags.J.String() + " / " + mags.H.String() + " / " + mags.K.String()},
		{"Surface brightness", d.SurfaceBrightness().String()},
		{"Hubble type", orNA(d.Hubble())},
	}
	if cs := d.CentralStar(); cs.IsKnown() {
		rows = append(rows,
			[]string{"Central star", orNA(strings.Join(cs.Names, ", "))},
			[]string{"Central star U / B / V", cs.U.String() + " / " + cs.B.String() + " / " + cs.V.String()},
		)
	}

	ids := d.Identifiers()
	if ids.Messier != "" {
		rows = append(rows, []string{"Messier", ids.Messier})
	}
	if len(ids.NGC) > 0 {
		rows = append(rows, []string{"NGC", strings.Join(ids.NGC, ", ")})
	}
	if len(ids.IC) > 0 {
		rows = append(rows, []string{"IC", strings.Join(ids.IC, ", ")})
	}
	if len(ids.Other) > 0 {
		rows = append(rows, []string{"Other identifiers", strings.Join(ids.Other, ", ")})
	}
	if names := d.CommonNames(); len(names) > 0 {
		rows = append(rows, []string{"Common names", strings.Join(names, ", ")})
	}
	notes := d.Notes()
	if notes.NED != "" {
		rows = append(rows, []string{"NED notes", notes.NED})
	}
	if notes.OpenNGC != "" {
		rows = append(rows, []string{"OpenNGC notes", notes.OpenNGC})
	}
	if d.NotNGC() {
		rows = append(rows, []string{"Addendum", "not part of NGC/IC"})
	}

	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "render object")
	}
	fmt.Fprintln(w, pterm.Bold.Sprint(d.String()))
	fmt.Fprintln(w, table)
	return nil
}

func renderObjects(w io.Writer, objects []dso.Dso) error {
	rows := [][]string{{"Name", "Type", "RA", "Dec", "Const", "Size", "V-Mag", "Common names"}}
	for _, d := range objects {
		rows = append(rows, summary(d))
	}
	return renderTable(w, rows, len(objects))
}

func renderNeighbors(w io.Writer, hits []result.Neighbor) error {
	rows := [][]string{{"Distance", "Name", "Type", "RA", "Dec", "Const", "Size", "V-Mag", "Common names"}}
	for _, h := range hits {
		rows = append(rows, append([]string{fmt.Sprintf("%.4f°", h.Distance())}, summary(h.Object())...))
	}
	return renderTable(w, rows, len(hits))
}

func renderTable(w io.Writer, rows [][]string, n int) error {
	if n == 0 {
		fmt.Fprintln(w, "No objects found.")
		return nil
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "%d object(s)\n", n)
	return nil
}

func summary(d dso.Dso) []string {
	return []string{
		d.Name(),
		string(d.Type()),
		d.RA(),
		d.Dec(),
		orNA(d.Constellation()),
		arcmin(d.Dimensions().MajorAxis),
		d.Magnitudes().V.String(),
		strings.Join(d.CommonNames(), ", "),
	}
}

func arcmin(v dso.Value) string {
	if !v.IsKnown() {
		return v.String()
	}
	return v.String() + "'"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
