package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/persistence"
)

var errBackend = errors.New("backend down")

// failingStore rejects every call.
type failingStore struct{}

func (failingStore) Load(context.Context, string) (string, bool, error) { return "", false, errBackend }
func (failingStore) Save(context.Context, string, string) error        { return errBackend }
func (failingStore) Ping(context.Context) error                        { return errBackend }
func (failingStore) Close()                                            {}

func TestEmployeeRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(persistence.NewMemory(), zap.NewNop())

	assert.Empty(t, repo.List(ctx))
	assert.NotNil(t, repo.List(ctx))

	emp := domain.NewEmployee(domain.DefaultTaxonomy())
	emp.FullName = "דנה"
	require.NoError(t, repo.ReplaceAll(ctx, []domain.Employee{emp}))

	got := repo.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, emp, got[0])
}

func TestEmployeeRepository_DegradesOnBadData(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemory()
	repo := NewEmployeeRepository(store, zap.NewNop())

	require.NoError(t, store.Save(ctx, persistence.KeyEmployees, "{not json"))
	assert.Empty(t, repo.List(ctx))

	require.NoError(t, store.Save(ctx, persistence.KeyEmployees, "null"))
	assert.NotNil(t, repo.List(ctx))
}

func TestEmployeeRepository_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(failingStore{}, zap.NewNop())

	assert.Empty(t, repo.List(ctx))
	err := repo.ReplaceAll(ctx, nil)
	assert.ErrorIs(t, err, errBackend)
}

func TestTaxonomyRepository_DefaultsWhenMissing(t *testing.T) {
	repo := NewTaxonomyRepository(persistence.NewMemory(), zap.NewNop())
	assert.Equal(t, domain.DefaultTaxonomy(), repo.Load(context.Background()))
}

func TestTaxonomyRepository_MergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemory()
	repo := NewTaxonomyRepository(store, zap.NewNop())

	require.NoError(t, store.Save(ctx, persistence.KeyTaxonomy, `{"schoolName":"Herzl","teams":["A","B"]}`))

	got := repo.Load(ctx)
	def := domain.DefaultTaxonomy()
	assert.Equal(t, "Herzl", got.SchoolName)
	assert.Equal(t, []string{"A", "B"}, got.Teams)
	assert.Equal(t, def.StatusOptions, got.StatusOptions)
	assert.Equal(t, def.Passwords, got.Passwords)
}

func TestTaxonomyRepository_SaveStampsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewTaxonomyRepository(persistence.NewMemory(), zap.NewNop())

	tax := domain.DefaultTaxonomy()
	tax.Version = 0
	tax.SchoolName = "Ort"
	tax.Semantics = &domain.SemanticTags{ActiveStatus: tax.StatusOptions[1]}
	require.NoError(t, repo.Save(ctx, tax))

	got := repo.Load(ctx)
	assert.Equal(t, domain.TaxonomyVersion, got.Version)
	assert.Equal(t, "Ort", got.SchoolName)
	require.NotNil(t, got.Semantics)
	assert.Equal(t, tax.StatusOptions[1], got.Semantics.ActiveStatus)
}

func TestTaxonomyRepository_Failures(t *testing.T) {
	ctx := context.Background()
	repo := NewTaxonomyRepository(failingStore{}, zap.NewNop())

	assert.Equal(t, domain.DefaultTaxonomy(), repo.Load(ctx))
	assert.ErrorIs(t, repo.Save(ctx, domain.DefaultTaxonomy()), errBackend)

	store := persistence.NewMemory()
	require.NoError(t, store.Save(ctx, persistence.KeyTaxonomy, "[]"))
	assert.Equal(t, domain.DefaultTaxonomy(), NewTaxonomyRepository(store, zap.NewNop()).Load(ctx))
}

func TestEmployeeRepository_LoadReportsFailures(t *testing.T) {
	ctx := context.Background()

	_, err := NewEmployeeRepository(failingStore{}, zap.NewNop()).Load(ctx)
	assert.ErrorIs(t, err, errBackend)

	store := persistence.NewMemory()
	repo := NewEmployeeRepository(store, zap.NewNop())
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)

	require.NoError(t, store.Save(ctx, persistence.KeyEmployees, "{not json"))
	_, err = repo.Load(ctx)
	assert.Error(t, err)
}

func TestTaxonomyRepository_LoadStrictReportsFailures(t *testing.T) {
	ctx := context.Background()

	_, err := NewTaxonomyRepository(failingStore{}, zap.NewNop()).LoadStrict(ctx)
	assert.ErrorIs(t, err, errBackend)

	store := persistence.NewMemory()
	repo := NewTaxonomyRepository(store, zap.NewNop())
	got, err := repo.LoadStrict(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTaxonomy(), got)

	require.NoError(t, store.Save(ctx, persistence.KeyTaxonomy, "[]"))
	_, err = repo.LoadStrict(ctx)
	assert.Error(t, err)
}

func TestTaxonomyRepository_StoredMapsReplaceDefaults(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemory()
	repo := NewTaxonomyRepository(store, zap.NewNop())

	require.NoError(t, store.Save(ctx, persistence.KeyTaxonomy,
		`{"retentionColors":{"ירוק":"#000000"},"labels":{"coordinator":"Lead"}}`))

	got := repo.Load(ctx)
	def := domain.DefaultTaxonomy()
	assert.Equal(t, map[string]string{"ירוק": "#000000"}, got.RetentionColors)
	assert.Equal(t, map[domain.Role]string{domain.RoleCoordinator: "Lead"}, got.Labels)
	assert.Equal(t, def.BurnoutColors, got.BurnoutColors, "absent maps keep their defaults")
	assert.Equal(t, def.Passwords, got.Passwords)
}
