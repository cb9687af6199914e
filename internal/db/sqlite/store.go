// Package sqlite implements the catalog store adapter over the OpenNGC SQLite
// database (tables objects, objIdentifiers, objTypes). The database is opened
// read-only.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3" // driver
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/db"
)

const objectColumns = `id, name, type, ra, dec, const, majax, minax, pa,
	bmag, vmag, jmag, hmag, kmag, sbrightn, hubble,
	parallax, pmra, pmdec, radvel, redshift,
	cstarumag, cstarbmag, cstarvmag, cstarnames, nednotes, ongcnotes, notngc`

// Queries.
const (
	ObjectByNameQuery = `SELECT ` + objectColumns + ` FROM objects WHERE name = ?`

	AliasesByNameQuery = `SELECT messier, ngc, ic, identifiers FROM objects WHERE name = ?`

	CommonNamesByNameQuery = `SELECT commonnames FROM objects WHERE name = ?`

	AliasTargetQuery = `SELECT name FROM objIdentifiers WHERE identifier = ?
		UNION ALL
		SELECT name FROM objects WHERE messier <> '' AND 'M' || messier = ?
		LIMIT 1`
)

// Store is a read-only catalog backed by database/sql.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens the catalog file read-only and verifies the connection.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "open catalog %s", path),
			"point catalog.path (or --db) at an OpenNGC SQLite database",
		)
	}
	conn, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	s := New(conn, logger)
	if err := s.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	logger.Debug("catalog opened", zap.String("path", path))
	return s, nil
}

// New wraps an existing connection. Used by Open and by tests.
func New(conn *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: conn, logger: logger}
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// FetchByKey returns the primary row of a canonical name.
func (s *Store) FetchByKey(ctx context.Context, key string) (db.ObjectRow, error) {
	row, err := scanObject(s.db.QueryRowContext(ctx, ObjectByNameQuery, key))
	if errors.Is(err, sql.ErrNoRows) {
		return db.ObjectRow{}, db.ErrKeyNotFound
	}
	if err != nil {
		return db.ObjectRow{}, &db.Error{Op: db.OpFetchObject, Err: err}
	}
	return row, nil
}

// FetchAliases returns the Messier, NGC, IC and other identifiers of an object.
// NGC and IC cross-references are stored as bare numbers and returned with their prefix.
func (s *Store) FetchAliases(ctx context.Context, key string) ([]db.AliasRow, error) {
	var messier, ngc, ic, other sql.NullString
	err := s.db.QueryRowContext(ctx, AliasesByNameQuery, key).Scan(&messier, &ngc, &ic, &other)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: db.OpFetchAliases, Err: err}
	}

	var aliases []db.AliasRow
	if m := strings.TrimSpace(messier.String); m != "" {
		aliases = append(aliases, db.AliasRow{Kind: db.AliasMessier, Value: "M" + m})
	}
	for _, n := range splitList(ngc.String) {
		aliases = append(aliases, db.AliasRow{Kind: db.AliasNGC, Value: "NGC" + n})
	}
	for _, n := range splitList(ic.String) {
		aliases = append(aliases, db.AliasRow{Kind: db.AliasIC, Value: "IC" + n})
	}
	for _, n := range splitList(other.String) {
		aliases = append(aliases, db.AliasRow{Kind: db.AliasOther, Value: n})
	}
	return aliases, nil
}

// FetchCommonNames returns the common names of an object in catalog order.
func (s *Store) FetchCommonNames(ctx context.Context, key string) ([]string, error) {
	var names sql.NullString
	err := s.db.QueryRowContext(ctx, CommonNamesByNameQuery, key).Scan(&names)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, db.ErrKeyNotFound
	}
	if err != nil {
		return nil, &db.Error{Op: db.OpFetchCommonNames, Err: err}
	}
	return splitList(names.String), nil
}

// FetchAliasTarget maps a canonical alias to the name of the object carrying it.
// Messier numbers live in the objects table, everything else in objIdentifiers.
func (s *Store) FetchAliasTarget(ctx context.Context, alias string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, AliasTargetQuery, alias, alias).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", db.ErrKeyNotFound
	}
	if err != nil {
		return "", &db.Error{Op: db.OpFetchAliasTarget, Err: err}
	}
	return name, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObject(sc scanner) (db.ObjectRow, error) {
	var (
		r                                               db.ObjectRow
		ra, dec, majax, minax, pa                       optFloat
		bmag, vmag, jmag, hmag, kmag, sbrightn          optFloat
		parallax, pmra, pmdec, radvel, redshift         optFloat
		cstarU, cstarB, cstarV                          optFloat
		constellation, hubble, cstarNames, ned, openNGC sql.NullString
		notNGC                                          sql.NullBool
	)
	err := sc.Scan(
		&r.ID, &r.Name, &r.Type, &ra, &dec, &constellation, &majax, &minax, &pa,
		&bmag, &vmag, &jmag, &hmag, &kmag, &sbrightn, &hubble,
		&parallax, &pmra, &pmdec, &radvel, &redshift,
		&cstarU, &cstarB, &cstarV, &cstarNames, &ned, &openNGC, &notNGC,
	)
	if err != nil {
		return db.ObjectRow{}, err
	}

	r.RA, r.Dec = ra.v, dec.v
	r.Constellation = constellation.String
	r.MajorAxis, r.MinorAxis, r.PositionAngle = majax.v, minax.v, pa.v
	r.BMag, r.VMag, r.JMag, r.HMag, r.KMag = bmag.v, vmag.v, jmag.v, hmag.v, kmag.v
	r.SurfaceBrightness = sbrightn.v
	r.Hubble = hubble.String
	r.Parallax, r.PMRA, r.PMDec = parallax.v, pmra.v, pmdec.v
	r.RadialVelocity, r.Redshift = radvel.v, redshift.v
	r.CStarUMag, r.CStarBMag, r.CStarVMag = cstarU.v, cstarB.v, cstarV.v
	r.CStarNames = cstarNames.String
	r.NEDNotes = ned.String
	r.OpenNGCNotes = openNGC.String
	r.NotNGC = notNGC.Valid && notNGC.Bool
	return r, nil
}

// optFloat scans a nullable numeric column. Older catalog builds store
// missing values as empty strings instead of NULL.
type optFloat struct {
	v *float64
}

func (f *optFloat) Scan(src any) error {
	f.v = nil
	var x float64
	switch t := src.(type) {
	case nil:
		return nil
	case float64:
		x = t
	case int64:
		x = float64(t)
	case []byte:
		return f.parse(string(t))
	case string:
		return f.parse(t)
	default:
		return errors.Newf("unsupported numeric column type %T", src)
	}
	f.v = &x
	return nil
}

func (f *optFloat) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "numeric column value %q", s)
	}
	f.v = &x
	return nil
}

// splitList splits a comma separated column, dropping blanks.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
