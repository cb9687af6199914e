package objcache

import (
	"context"
	"time"

	"github.com/kailas-cloud/ngcdex/internal/db"
)

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	data  map[string][]byte
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{data: map[string][]byte{}}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	m.data[key] = value
	return nil
}

// mockReader counts calls to the inner catalog reader.
type mockReader struct {
	row     db.ObjectRow
	aliases []db.AliasRow
	names   []string
	target  string
	err     error
	calls   map[string]int
}

func newMockReader() *mockReader {
	return &mockReader{calls: map[string]int{}}
}

func (m *mockReader) FetchByKey(_ context.Context, _ string) (db.ObjectRow, error) {
	m.calls["object"]++
	return m.row, m.err
}

func (m *mockReader) FetchAliases(_ context.Context, _ string) ([]db.AliasRow, error) {
	m.calls["aliases"]++
	return m.aliases, m.err
}

func (m *mockReader) FetchCommonNames(_ context.Context, _ string) ([]string, error) {
	m.calls["names"]++
	return m.names, m.err
}

func (m *mockReader) FetchAliasTarget(_ context.Context, _ string) (string, error) {
	m.calls["alias"]++
	return m.target, m.err
}

func (m *mockReader) FetchByPredicates(_ context.Context, _ db.ObjectQuery) ([]db.ObjectRow, error) {
	m.calls["predicates"]++
	return []db.ObjectRow{m.row}, m.err
}
