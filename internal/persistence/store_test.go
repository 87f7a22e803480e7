package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	_, found, err := s.Load(ctx, KeyEmployees)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, KeyEmployees, `[{"id":"1"}]`))
	require.NoError(t, s.Save(ctx, KeyEmployees, `[]`))
	require.NoError(t, s.Save(ctx, KeyTaxonomy, `{"schoolName":"x"}`))

	v, found, err := s.Load(ctx, KeyEmployees)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)

	v, _, err = s.Load(ctx, KeyTaxonomy)
	require.NoError(t, err)
	assert.Equal(t, `{"schoolName":"x"}`, v)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)

	m.Close()
	_, _, err := m.Load(context.Background(), KeyEmployees)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Save(context.Background(), KeyEmployees, "[]"), ErrClosed)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hr.db")
	s, err := NewSQLite(context.Background(), config.SQLiteConfig{Path: path}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
	assert.Equal(t, path, s.Path())
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "hr.db")}

	s, err := NewSQLite(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, KeyTaxonomy, "{}"))
	s.Close()

	s, err = NewSQLite(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	v, found, err := s.Load(ctx, KeyTaxonomy)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.Config{Storage: config.StorageConfig{Backend: config.StorageMemory}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open(ctx, config.Config{Storage: config.StorageConfig{Backend: config.StoragePostgres}}, zap.NewNop())
	assert.ErrorContains(t, err, "POSTGRES_DSN")

	_, err = Open(ctx, config.Config{Storage: config.StorageConfig{Backend: "etcd"}}, zap.NewNop())
	assert.Error(t, err)
}

func TestRedisStore_Unconfigured(t *testing.T) {
	r := NewRedisWithClient(nil, "hr:")
	ctx := context.Background()

	_, _, err := r.Load(ctx, KeyEmployees)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Save(ctx, KeyEmployees, "[]"), ErrClosed)
	assert.Error(t, r.Ping(ctx))
	r.Close()
}

func TestBadgerStore(t *testing.T) {
	b, err := NewBadger(config.BadgerConfig{InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	exerciseStore(t, b)

	b.Close()
	assert.ErrorIs(t, b.Ping(context.Background()), ErrClosed)
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.BadgerConfig{Path: filepath.Join(t.TempDir(), "kv")}

	b, err := NewBadger(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, b.Save(ctx, KeyEmployees, `[{"id":"a"}]`))
	b.Close()

	b, err = NewBadger(cfg, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()
	v, found, err := b.Load(ctx, KeyEmployees)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, v)
}
