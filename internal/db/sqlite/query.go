package sqlite

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/db"
	"github.com/kailas-cloud/ngcdex/internal/domain/search/filter"
)

// columns maps filter keys to objects table columns. Keys outside this
// whitelist are rejected, so no caller text is ever spliced into SQL.
var columns = map[string]string{
	filter.KeyName:          "name",
	filter.KeyType:          "type",
	filter.KeyConstellation: "const",
	filter.KeyMajorAxis:     "majax",
	filter.KeyBMag:          "bmag",
	filter.KeyVMag:          "vmag",
	filter.KeyRA:            "ra",
	filter.KeyDec:           "dec",
	filter.KeyMessier:       "messier",
	filter.KeyCommonNames:   "commonnames",
	filter.KeyAddendum:      "notngc",
}

// FetchByPredicates runs a single SELECT for the whole predicate set.
func (s *Store) FetchByPredicates(ctx context.Context, q db.ObjectQuery) ([]db.ObjectRow, error) {
	query, args, err := buildSelect(q)
	if err != nil {
		return nil, &db.Error{Op: db.OpFetchPredicates, Err: err}
	}
	s.logger.Debug("catalog query", zap.String("sql", query), zap.Int("args", len(args)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpFetchPredicates, Err: err}
	}
	defer rows.Close()

	var out []db.ObjectRow
	for rows.Next() {
		r, err := scanObject(rows)
		if err != nil {
			return nil, &db.Error{Op: db.OpFetchPredicates, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpFetchPredicates, Err: err}
	}
	return out, nil
}

func buildSelect(q db.ObjectQuery) (string, []any, error) {
	qb := &queryBuilder{}
	if err := qb.addExpression(q.Filters); err != nil {
		return "", nil, err
	}

	query := "SELECT " + objectColumns + " FROM objects"
	if len(qb.whereClauses) > 0 {
		query += " WHERE " + qb.build()
	}
	switch q.Order {
	case filter.OrderMessier:
		query += " ORDER BY messier ASC"
	default:
		query += " ORDER BY id ASC"
	}
	return query, qb.args, nil
}

// queryBuilder accumulates SQL WHERE clauses and parameters.
type queryBuilder struct {
	whereClauses []string
	args         []any
}

func (qb *queryBuilder) addClause(clause string, args ...any) {
	qb.whereClauses = append(qb.whereClauses, clause)
	qb.args = append(qb.args, args...)
}

// build returns the WHERE clauses joined with AND.
func (qb *queryBuilder) build() string {
	return strings.Join(qb.whereClauses, " AND ")
}

func (qb *queryBuilder) addExpression(expr filter.Expression) error {
	for _, c := range expr.Must() {
		clause, args, err := renderCondition(c)
		if err != nil {
			return err
		}
		qb.addClause(clause, args...)
	}

	if should := expr.Should(); len(should) > 0 {
		clause, args, err := renderDisjunction(should)
		if err != nil {
			return err
		}
		qb.addClause(clause, args...)
	}

	for _, c := range expr.MustNot() {
		clause, args, err := renderCondition(c)
		if err != nil {
			return err
		}
		qb.addClause("NOT "+clause, args...)
	}
	return nil
}

// renderCondition returns a parenthesized clause for one condition.
func renderCondition(c filter.Condition) (string, []any, error) {
	if c.Kind() == filter.KindAny {
		return renderDisjunction(c.Any())
	}

	col, ok := columns[c.Key()]
	if !ok {
		return "", nil, errors.Newf("unsupported filter key %q", c.Key())
	}

	switch c.Kind() {
	case filter.KindMatch:
		return "(" + col + " = ?)", []any{c.Match()}, nil
	case filter.KindIn:
		args := make([]any, len(c.Values()))
		for i, v := range c.Values() {
			args[i] = v
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
		return "(" + col + " IN (" + marks + "))", args, nil
	case filter.KindRange:
		return renderRange(col, *c.Range())
	case filter.KindPrefix:
		return "(" + col + ` LIKE ? ESCAPE '\')`, []any{escapeLikePattern(c.Match()) + "%"}, nil
	case filter.KindContains:
		// LIKE is case-insensitive for ASCII in SQLite.
		return "(" + col + ` LIKE ? ESCAPE '\')`, []any{"%" + escapeLikePattern(c.Match()) + "%"}, nil
	case filter.KindMissing:
		return "(" + col + " IS NULL OR " + col + " = '')", nil, nil
	case filter.KindFlag:
		if c.Flag() {
			return "(" + col + " = 1)", nil, nil
		}
		return "(" + col + " IS NULL OR " + col + " = 0)", nil, nil
	default:
		return "", nil, errors.Newf("unsupported condition kind %d", c.Kind())
	}
}

func renderDisjunction(conds []filter.Condition) (string, []any, error) {
	parts := make([]string, 0, len(conds))
	var args []any
	for _, c := range conds {
		clause, a, err := renderCondition(c)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, clause)
		args = append(args, a...)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args, nil
}

// renderRange emits comparisons only; NULL columns never satisfy them.
func renderRange(col string, r filter.Range) (string, []any, error) {
	var parts []string
	var args []any
	if r.GT() != nil {
		parts, args = append(parts, col+" > ?"), append(args, *r.GT())
	}
	if r.GTE() != nil {
		parts, args = append(parts, col+" >= ?"), append(args, *r.GTE())
	}
	if r.LT() != nil {
		parts, args = append(parts, col+" < ?"), append(args, *r.LT())
	}
	if r.LTE() != nil {
		parts, args = append(parts, col+" <= ?"), append(args, *r.LTE())
	}
	if len(parts) == 0 {
		return "", nil, errors.Newf("empty range on %s", col)
	}
	return "(" + strings.Join(parts, " AND ") + ")", args, nil
}

// escapeLikePattern escapes special characters in LIKE patterns for SQL ESCAPE clause
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
