// Package sqlitetest builds small OpenNGC-schema catalogs for tests.
package sqlitetest

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3" // driver

	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// Schema mirrors the tables of the published OpenNGC database.
const Schema = `
CREATE TABLE objTypes(
	type TEXT PRIMARY KEY NOT NULL,
	typedesc TEXT NOT NULL);
CREATE TABLE objects(
	id INTEGER PRIMARY KEY NOT NULL,
	name TEXT NOT NULL UNIQUE,
	type TEXT NOT NULL,
	ra REAL,
	dec REAL,
	const TEXT,
	majax REAL,
	minax REAL,
	pa INTEGER,
	bmag REAL,
	vmag REAL,
	jmag REAL,
	hmag REAL,
	kmag REAL,
	sbrightn REAL,
	hubble TEXT,
	parallax REAL,
	pmra REAL,
	pmdec REAL,
	radvel REAL,
	redshift REAL,
	cstarumag REAL,
	cstarbmag REAL,
	cstarvmag REAL,
	messier TEXT,
	ngc TEXT,
	ic TEXT,
	cstarnames TEXT,
	identifiers TEXT,
	commonnames TEXT,
	nednotes TEXT,
	ongcnotes TEXT,
	notngc BOOL DEFAULT FALSE);
CREATE TABLE objIdentifiers(
	id INTEGER PRIMARY KEY NOT NULL,
	name TEXT NOT NULL,
	identifier TEXT NOT NULL UNIQUE);
`

// Object is one fixture row. RA and Dec are sexagesimal text, empty when unknown.
type Object struct {
	Name        string
	Type        string
	RA, Dec     string
	Const       string
	MajAx       *float64
	MinAx       *float64
	BMag        *float64
	VMag        *float64
	Hubble      string
	Messier     string // "001"
	NGC         string // comma separated numbers, e.g. "0010"
	IC          string
	Identifiers string // comma separated, as printed in the catalog
	CommonNames string
	CStarNames  string
	CStarVMag   *float64
	NEDNotes    string
	NotNGC      bool

	// Aliases are extra canonical identifiers stored in objIdentifiers.
	// The upper-cased name is always stored.
	Aliases []string
}

func f(v float64) *float64 { return &v }

// Catalog returns the default fixture rows.
func Catalog() []Object {
	return []Object{
		{
			Name: "NGC0001", Type: "G", RA: "00:07:15.84", Dec: "+27:42:29.1", Const: "Peg",
			MajAx: f(1.57), MinAx: f(1.07), BMag: f(13.69), VMag: f(12.93), Hubble: "Sb",
			Identifiers: "2MASX J00071582+2742291,IRAS 00047+2725,MCG +04-01-025,PGC 000564,UGC 00057",
			Aliases:     []string{"PGC000564", "UGC00057"},
		},
		{
			Name: "NGC0002", Type: "G", RA: "00:07:17.10", Dec: "+27:40:42.0", Const: "Peg",
			MajAx: f(1.0), BMag: f(14.93), Hubble: "Sab",
		},
		{
			Name: "NGC1952", Type: "SNR", RA: "05:34:31.97", Dec: "+22:00:52.1", Const: "Tau",
			MajAx: f(8.0), MinAx: f(4.0), VMag: f(8.4), Messier: "001",
			Identifiers: "LBN 833,SH2-244", CommonNames: "Crab Nebula",
			Aliases:     []string{"LBN833"},
		},
		{
			Name: "NGC1976", Type: "Cl+N", RA: "05:35:16.48", Dec: "-05:23:22.8", Const: "Ori",
			MajAx: f(90), MinAx: f(60), VMag: f(4.0), Messier: "042",
			Identifiers: "LBN 974,MWSC 0582", CommonNames: "Great Orion Nebula,Orion Nebula",
			Aliases:     []string{"LBN974", "MWSC0582"},
		},
		{
			Name: "Mel022", Type: "OCl", RA: "03:47:00.0", Dec: "+24:07:00.0", Const: "Tau",
			MajAx: f(120), VMag: f(1.2), Messier: "045",
			Identifiers: "MWSC 0305", CommonNames: "Pleiades", NotNGC: true,
			Aliases: []string{"MWSC0305"},
		},
		{Name: "IC0673", Type: "G", RA: "11:09:25.32", Dec: "-00:05:51.5", Const: "Leo", MajAx: f(1.8), VMag: f(13.1)},
		{Name: "NGC3521", Type: "G", RA: "11:05:48.58", Dec: "-00:02:09.4", Const: "Leo", MajAx: f(10.96), VMag: f(8.94)},
		{Name: "IC0671", Type: "G", RA: "11:07:31.60", Dec: "+00:46:58.5", Const: "Leo", MajAx: f(0.9)},
		{Name: "NGC0521", Type: "G", RA: "01:24:33.78", Dec: "+01:43:53.0", Const: "Cet", MajAx: f(3.2), VMag: f(11.6)},
		{Name: "IC1694", Type: "G", RA: "01:24:40.00", Dec: "+01:36:00.0", Const: "Cet"},
		{Name: "NGC0530", Type: "G", RA: "01:24:41.67", Dec: "+01:32:00.0", Const: "Cet"},
		{Name: "IC0101", Type: "G", RA: "01:25:20.00", Dec: "+01:32:30.0", Const: "Cet"},
		{Name: "NGC0526", Type: "Dup", RA: "01:24:34.00", Dec: "+01:43:50.0", Const: "Cet", NGC: "0521"},
		{Name: "NGC5248", Type: "G", RA: "13:37:32.02", Dec: "+08:53:06.6", Const: "Boo", MajAx: f(6.2), VMag: f(9.9)},
		{Name: "NGC6814", Type: "G", RA: "19:42:40.58", Dec: "-10:19:25.1", Const: "Aql", MajAx: f(3.0), VMag: f(11.2)},
		{Name: "NGC6709", Type: "OCl", RA: "18:51:18.0", Dec: "+10:19:06.0", Const: "Aql", MajAx: f(13), VMag: f(6.7)},
		{Name: "IC0010", Type: "G", RA: "00:20:17.34", Dec: "+59:18:13.6", Const: "Cas", MajAx: f(6.3), VMag: f(9.5)},
		{Name: "IC0011", Type: "Dup", Const: "Cas", IC: "0010"},
		{Name: "IC1064", Type: "NonEx", Const: "Ser"},
		{Name: "IC5376", Type: "G", RA: "23:59:50.0", Dec: "+10:00:00.0", Const: "Peg"},
		{Name: "NGC7840", Type: "G", RA: "00:00:10.0", Dec: "+10:00:00.0", Const: "Psc"},
		{
			Name: "NGC6543", Type: "PN", RA: "17:58:33.42", Dec: "+66:37:59.5", Const: "Dra",
			MajAx: f(0.33), VMag: f(8.1), Identifiers: "C 006,PN G096.4+29.9",
			CommonNames: "Cat's Eye Nebula", CStarNames: "HD 164963", CStarVMag: f(11.14),
			NEDNotes: "Within 10 degrees of the galactic plane.", Aliases: []string{"C006"},
		},
	}
}

// Default writes the default fixture catalog and returns its path.
func Default(tb testing.TB) string {
	tb.Helper()
	return Create(tb, Catalog())
}

// Create writes objects into a fresh database file in tb.TempDir().
func Create(tb testing.TB, objects []Object) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "ngc.db")
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		tb.Fatalf("open fixture db: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(Schema); err != nil {
		tb.Fatalf("create schema: %v", err)
	}
	for _, o := range objects {
		insert(tb, conn, o)
	}
	return path
}

func insert(tb testing.TB, conn *sql.DB, o Object) {
	tb.Helper()
	var ra, dec any
	if o.RA != "" {
		c, err := sky.Parse(o.RA + " " + o.Dec)
		if err != nil {
			tb.Fatalf("fixture %s: %v", o.Name, err)
		}
		ra, dec = c.RA(), c.Dec()
	}

	_, err := conn.Exec(`INSERT INTO objects(name, type, ra, dec, const, majax, minax, bmag, vmag,
		hubble, messier, ngc, ic, cstarnames, cstarvmag, identifiers, commonnames, nednotes, ongcnotes, notngc)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?)`,
		o.Name, o.Type, ra, dec, o.Const, o.MajAx, o.MinAx, o.BMag, o.VMag,
		o.Hubble, o.Messier, o.NGC, o.IC, o.CStarNames, o.CStarVMag, o.Identifiers, o.CommonNames, o.NEDNotes, o.NotNGC)
	if err != nil {
		tb.Fatalf("insert %s: %v", o.Name, err)
	}

	for _, id := range append([]string{strings.ToUpper(o.Name)}, o.Aliases...) {
		if _, err := conn.Exec(`INSERT INTO objIdentifiers(name, identifier) VALUES(?, ?)`, o.Name, id); err != nil {
			tb.Fatalf("insert identifier %s: %v", id, err)
		}
	}
}
