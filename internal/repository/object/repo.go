// Package object assembles Dso entities from catalog store rows.
package object

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain"
	"github.com/kailas-cloud/ngcdex/internal/domain/dso"
	"github.com/kailas-cloud/ngcdex/internal/domain/sky"
)

// store is the consumer interface for catalog rows (ISP).
type store interface {
	FetchByKey(ctx context.Context, key string) (db.ObjectRow, error)
	FetchAliases(ctx context.Context, key string) ([]db.AliasRow, error)
	FetchCommonNames(ctx context.Context, key string) ([]string, error)
	FetchAliasTarget(ctx context.Context, alias string) (string, error)
	FetchByPredicates(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error)
}

// Repo implements the object repository used by the catalog, search and proximity use cases.
type Repo struct {
	store store
}

// New creates an object repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get fetches the primary row, the alias rows and the common names of a
// canonical name and joins them into one entity.
func (r *Repo) Get(ctx context.Context, name string) (dso.Dso, error) {
	row, err := r.store.FetchByKey(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dso.Dso{}, domain.ObjectNotFound(name)
		}
		return dso.Dso{}, errors.Wrapf(err, "fetch %s", name)
	}
	return r.Assemble(ctx, row)
}

// Assemble completes a primary row with its aliases and common names.
func (r *Repo) Assemble(ctx context.Context, row db.ObjectRow) (dso.Dso, error) {
	aliases, err := r.store.FetchAliases(ctx, row.Name)
	if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		return dso.Dso{}, errors.Wrapf(err, "fetch aliases of %s", row.Name)
	}
	names, err := r.store.FetchCommonNames(ctx, row.Name)
	if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		return dso.Dso{}, errors.Wrapf(err, "fetch common names of %s", row.Name)
	}
	return toDso(row, aliases, names)
}

// Rows runs a predicate query and returns the raw rows.
func (r *Repo) Rows(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error) {
	rows, err := r.store.FetchByPredicates(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "fetch by predicates")
	}
	return rows, nil
}

// Find runs a predicate query and assembles every matching row.
func (r *Repo) Find(ctx context.Context, q db.ObjectQuery) ([]dso.Dso, error) {
	rows, err := r.Rows(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]dso.Dso, 0, len(rows))
	for _, row := range rows {
		d, err := r.Assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// AliasTarget maps a canonical alias such as "M001" to the name of its object.
func (r *Repo) AliasTarget(ctx context.Context, alias string) (string, error) {
	name, err := r.store.FetchAliasTarget(ctx, alias)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", domain.ObjectNotFound(alias)
		}
		return "", errors.Wrapf(err, "fetch alias %s", alias)
	}
	return name, nil
}

// DuplicateOf reports the object a duplicate record points at. ok is false for
// records that are not duplicates. The reference is returned as stored
// ("NGC0521"), its first NGC cross-reference taking precedence over IC.
func (r *Repo) DuplicateOf(ctx context.Context, name string) (target string, ok bool, err error) {
	row, err := r.store.FetchByKey(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", false, domain.ObjectNotFound(name)
		}
		return "", false, errors.Wrapf(err, "fetch %s", name)
	}
	if !dso.Type(row.Type).IsDuplicate() {
		return "", false, nil
	}

	aliases, err := r.store.FetchAliases(ctx, name)
	if err != nil && !errors.Is(err, db.ErrKeyNotFound) {
		return "", false, errors.Wrapf(err, "fetch aliases of %s", name)
	}
	for _, kind := range []db.AliasKind{db.AliasNGC, db.AliasIC} {
		for _, a := range aliases {
			if a.Kind == kind {
				return a.Value, true, nil
			}
		}
	}
	return "", true, domain.CorruptCatalog("duplicate record %s has no NGC or IC reference", name)
}

func toDso(row db.ObjectRow, aliases []db.AliasRow, names []string) (dso.Dso, error) {
	typ, ok := dso.ParseType(row.Type)
	if !ok {
		return dso.Dso{}, domain.CorruptCatalog("object %s has unknown type %q", row.Name, row.Type)
	}

	attrs := dso.Attrs{
		ID:            row.ID,
		Name:          row.Name,
		Type:          typ,
		Constellation: row.Constellation,
		Dimensions: dso.Dimensions{
			MajorAxis:     dso.FromPtr(row.MajorAxis),
			MinorAxis:     dso.FromPtr(row.MinorAxis),
			PositionAngle: dso.FromPtr(row.PositionAngle),
		},
		Magnitudes: dso.Magnitudes{
			B: dso.FromPtr(row.BMag),
			V: dso.FromPtr(row.VMag),
			J: dso.FromPtr(row.JMag),
			H: dso.FromPtr(row.HMag),
			K: dso.FromPtr(row.KMag),
		},
		SurfaceBrightness: dso.FromPtr(row.SurfaceBrightness),
		Hubble:            row.Hubble,
		Kinematics: dso.Kinematics{
			Parallax:       dso.FromPtr(row.Parallax),
			PMRA:           dso.FromPtr(row.PMRA),
			PMDec:          dso.FromPtr(row.PMDec),
			RadialVelocity: dso.FromPtr(row.RadialVelocity),
			Redshift:       dso.FromPtr(row.Redshift),
		},
		CentralStar: dso.CentralStar{
			Names: splitNames(row.CStarNames),
			U:     dso.FromPtr(row.CStarUMag),
			B:     dso.FromPtr(row.CStarBMag),
			V:     dso.FromPtr(row.CStarVMag),
		},
		CommonNames: names,
		Notes:       dso.Notes{NED: row.NEDNotes, OpenNGC: row.OpenNGCNotes},
		NotNGC:      row.NotNGC,
	}

	if row.HasCoordinates() {
		c, err := sky.New(*row.RA, *row.Dec)
		if err != nil {
			return dso.Dso{}, domain.CorruptCatalog("object %s has invalid coordinates: %v", row.Name, err)
		}
		attrs.Coordinates = &c
	}

	for _, a := range aliases {
		switch a.Kind {
		case db.AliasMessier:
			attrs.Identifiers.Messier = a.Value
		case db.AliasNGC:
			attrs.Identifiers.NGC = append(attrs.Identifiers.NGC, a.Value)
		case db.AliasIC:
			attrs.Identifiers.IC = append(attrs.Identifiers.IC, a.Value)
		default:
			attrs.Identifiers.Other = append(attrs.Identifiers.Other, a.Value)
		}
	}

	d, err := dso.New(attrs)
	if err != nil {
		return dso.Dso{}, errors.Wrapf(err, "assemble %s", row.Name)
	}
	return d, nil
}

func splitNames(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
