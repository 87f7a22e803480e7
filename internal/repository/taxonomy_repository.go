package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/persistence"
)

// TaxonomyRepository persists the admin configuration.
type TaxonomyRepository interface {
	// LoadStrict returns the stored taxonomy merged over the defaults, or an error when the
	// store or the document cannot be read. Missing data yields the defaults.
	LoadStrict(ctx context.Context) (domain.Taxonomy, error)
	// Load is LoadStrict for display: unreadable data yields the defaults.
	Load(ctx context.Context) domain.Taxonomy
	Save(ctx context.Context, tax domain.Taxonomy) error
}

type taxonomyRepository struct {
	store  persistence.Store
	logger *zap.Logger
}

// NewTaxonomyRepository constructs repository.
func NewTaxonomyRepository(store persistence.Store, logger *zap.Logger) TaxonomyRepository {
	return &taxonomyRepository{store: store, logger: logger}
}

func (r *taxonomyRepository) LoadStrict(ctx context.Context) (domain.Taxonomy, error) {
	raw, found, err := r.store.Load(ctx, persistence.KeyTaxonomy)
	if err != nil {
		return domain.Taxonomy{}, fmt.Errorf("load taxonomy: %w", err)
	}
	if !found || raw == "" {
		return domain.DefaultTaxonomy(), nil
	}

	tax, err := decodeTaxonomy([]byte(raw))
	if err != nil {
		return domain.Taxonomy{}, fmt.Errorf("decode taxonomy: %w", err)
	}
	if err := tax.Validate(); err != nil {
		r.logger.Warn("stored taxonomy is inconsistent", zap.Error(err))
	}
	return tax, nil
}

func (r *taxonomyRepository) Load(ctx context.Context) domain.Taxonomy {
	tax, err := r.LoadStrict(ctx)
	if err != nil {
		r.logger.Error("load taxonomy", zap.Error(err))
		return domain.DefaultTaxonomy()
	}
	return tax
}

// decodeTaxonomy overlays the stored document on the defaults field by field. A map present in
// the document replaces the default map whole, so deleted keys stay deleted.
func decodeTaxonomy(raw []byte) (domain.Taxonomy, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err != nil {
		return domain.Taxonomy{}, err
	}

	tax := domain.DefaultTaxonomy()
	if _, ok := present["passwords"]; ok {
		tax.Passwords = nil
	}
	if _, ok := present["labels"]; ok {
		tax.Labels = nil
	}
	if _, ok := present["retentionColors"]; ok {
		tax.RetentionColors = nil
	}
	if _, ok := present["burnoutColors"]; ok {
		tax.BurnoutColors = nil
	}
	if err := json.Unmarshal(raw, &tax); err != nil {
		return domain.Taxonomy{}, err
	}
	return tax, nil
}

func (r *taxonomyRepository) Save(ctx context.Context, tax domain.Taxonomy) error {
	tax.Version = domain.TaxonomyVersion
	raw, err := json.Marshal(tax)
	if err != nil {
		return fmt.Errorf("encode taxonomy: %w", err)
	}
	if err := r.store.Save(ctx, persistence.KeyTaxonomy, string(raw)); err != nil {
		r.logger.Error("save taxonomy", zap.Error(err))
		return fmt.Errorf("save taxonomy: %w", err)
	}
	return nil
}
