// Package catalog recognizes object identifiers and rewrites them in canonical form.
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/domain"
)

// Catalog names an accepted source catalog.
type Catalog string

// Accepted catalogs.
const (
	NGC       Catalog = "NGC"
	IC        Catalog = "IC"
	Messier   Catalog = "Messier"
	Barnard   Catalog = "Barnard"
	Caldwell  Catalog = "Caldwell"
	Collinder Catalog = "Collinder"
	ESO       Catalog = "ESO"
	Harvard   Catalog = "Harvard"
	Hickson   Catalog = "Hickson"
	LBN       Catalog = "LBN"
	Melotte   Catalog = "Melotte"
	MWSC      Catalog = "MWSC"
	PGC       Catalog = "PGC"
	UGC       Catalog = "UGC"
)

// rule describes how one catalog spells its numbers.
type rule struct {
	catalog Catalog
	prefix  string // canonical prefix
	pattern *regexp.Regexp
	digits  int // maximum significant digits, also the padding width
}

var (
	ngcPattern = regexp.MustCompile(`^(NGC|IC) ?(\d+) ?(?:NED ?(\d+)|([A-Z]{1,2}))?$`)
	esoPattern = regexp.MustCompile(`^ESO ?(\d+)-(\d+)$`)
	letters    = regexp.MustCompile(`^[A-Z]+`)

	rules = []rule{
		{Messier, "M", numbered("M"), 3},
		{Barnard, "B", numbered("B"), 3},
		{Caldwell, "C", numbered("C"), 3},
		{Collinder, "CL", numbered("CL"), 3},
		{Harvard, "H", numbered("H"), 2},
		{Hickson, "HCG", numbered("HCG"), 3},
		{LBN, "LBN", numbered("LBN"), 3},
		{Melotte, "MEL", numbered("MEL"), 3},
		{MWSC, "MWSC", numbered("MWSC"), 4},
		{PGC, "PGC", numbered("PGC|LEDA"), 6},
		{UGC, "UGC", numbered("UGC"), 5},
	}

	knownPrefixes = map[string]bool{
		"NGC": true, "IC": true, "ESO": true, "LEDA": true,
	}
)

func init() {
	for _, r := range rules {
		knownPrefixes[r.prefix] = true
	}
}

func numbered(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + prefix + `) ?(\d+)$`)
}

// Identifier is a recognized object name in canonical spelling.
type Identifier struct {
	catalog Catalog
	name    string
}

// Catalog returns the catalog the identifier belongs to.
func (id Identifier) Catalog() Catalog { return id.catalog }

// String returns the canonical spelling, e.g. "NGC0001", "IC0080 NED01", "M042", "ESO056-115".
func (id Identifier) String() string { return id.name }

// IsPrimary reports whether the canonical spelling is itself a catalog key.
// NGC and IC names are primary keys; every other catalog goes through the alias table.
func (id Identifier) IsPrimary() bool {
	return id.catalog == NGC || id.catalog == IC
}

// Recognize parses raw user input into a canonical Identifier.
// It uppercases, trims, strips leading zeros from numbers and re-pads them
// to the catalog width. M102 is treated as M101.
func Recognize(raw string) (Identifier, error) {
	text := strings.Join(strings.Fields(strings.ToUpper(raw)), " ")
	if text == "" {
		return Identifier{}, domain.FormatError("empty identifier")
	}

	if m := ngcPattern.FindStringSubmatch(text); m != nil {
		return recognizeNGC(m)
	}
	if m := esoPattern.FindStringSubmatch(text); m != nil {
		first, err := pad(m[1], 3, text)
		if err != nil {
			return Identifier{}, err
		}
		second, err := pad(m[2], 3, text)
		if err != nil {
			return Identifier{}, err
		}
		return Identifier{catalog: ESO, name: "ESO" + first + "-" + second}, nil
	}
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		num, err := pad(m[1], r.digits, text)
		if err != nil {
			return Identifier{}, err
		}
		if r.catalog == Messier && num == "102" {
			num = "101"
		}
		return Identifier{catalog: r.catalog, name: r.prefix + num}, nil
	}

	prefix := letters.FindString(text)
	if knownPrefixes[prefix] {
		return Identifier{}, domain.FormatError("malformed %s number in %q", prefix, raw)
	}
	return Identifier{}, errors.WithHint(
		errors.Wrapf(domain.ErrUnknownCatalog, "identifier %q", raw),
		"accepted prefixes: "+strings.Join(Prefixes(), ", "),
	)
}

// CrossReference recognizes a bare number stored as an NGC or IC cross-reference.
func CrossReference(c Catalog, number string) (Identifier, error) {
	if c != NGC && c != IC {
		return Identifier{}, domain.FormatError("cross-reference catalog must be NGC or IC, got %s", c)
	}
	return Recognize(string(c) + strings.TrimSpace(number))
}

// Prefixes lists the accepted identifier prefixes.
func Prefixes() []string {
	return []string{"NGC", "IC", "M", "B", "C", "CL", "ESO", "H", "HCG", "LBN", "MEL", "MWSC", "PGC", "LEDA", "UGC"}
}

func recognizeNGC(m []string) (Identifier, error) {
	c := Catalog(m[1])
	num, err := pad(m[2], 4, m[0])
	if err != nil {
		return Identifier{}, err
	}
	name := string(c) + num
	switch {
	case m[3] != "":
		ned, err := pad(m[3], 2, m[0])
		if err != nil {
			return Identifier{}, err
		}
		name += " NED" + ned
	case m[4] != "":
		name += m[4]
	}
	return Identifier{catalog: c, name: name}, nil
}

// pad strips leading zeros and left-pads to width; more significant digits
// than width is a format error.
func pad(digits string, width int, text string) (string, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if len(trimmed) > width {
		return "", domain.FormatError("number %s in %q has more than %d digits", digits, text, width)
	}
	n, err := strconv.Atoi("0" + trimmed)
	if err != nil {
		return "", domain.FormatError("number %s in %q: %v", digits, text, err)
	}
	return fmt.Sprintf("%0*d", width, n), nil
}
