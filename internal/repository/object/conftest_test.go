package object

import (
	"context"

	"github.com/kailas-cloud/ngcdex/internal/db"
)

// mockStore implements the consumer store interface for tests.
type mockStore struct {
	rows       map[string]db.ObjectRow
	aliases    map[string][]db.AliasRow
	names      map[string][]string
	targets    map[string]string
	predicates []db.ObjectRow
	err        error
	aliasErr   error
	lastQuery  db.ObjectQuery
	aliasCalls int
}

func (m *mockStore) FetchByKey(_ context.Context, key string) (db.ObjectRow, error) {
	if m.err != nil {
		return db.ObjectRow{}, m.err
	}
	row, ok := m.rows[key]
	if !ok {
		return db.ObjectRow{}, db.ErrKeyNotFound
	}
	return row, nil
}

func (m *mockStore) FetchAliases(_ context.Context, key string) ([]db.AliasRow, error) {
	m.aliasCalls++
	if m.aliasErr != nil {
		return nil, m.aliasErr
	}
	return m.aliases[key], nil
}

func (m *mockStore) FetchCommonNames(_ context.Context, key string) ([]string, error) {
	return m.names[key], nil
}

func (m *mockStore) FetchAliasTarget(_ context.Context, alias string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	name, ok := m.targets[alias]
	if !ok {
		return "", db.ErrKeyNotFound
	}
	return name, nil
}

func (m *mockStore) FetchByPredicates(_ context.Context, q db.ObjectQuery) ([]db.ObjectRow, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.predicates, nil
}

func f(v float64) *float64 { return &v }
