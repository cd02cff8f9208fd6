package taxbracket

import (
	"context"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, bracket *TaxBracket) error
	FindAll(ctx context.Context) ([]TaxBracket, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TaxBracket, error)
	Update(ctx context.Context, bracket *TaxBracket) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	store *tenant.Store[TaxBracket]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[TaxBracket](db)}
}

func (r *repository) Create(ctx context.Context, bracket *TaxBracket) error {
	return r.store.Create(ctx, bracket)
}

// FindAll selalu urut MinIncome naik; derivasi dan lookup bergantung
// pada urutan ini.
func (r *repository) FindAll(ctx context.Context) ([]TaxBracket, error) {
	var brackets []TaxBracket
	err := r.store.Query(ctx).
		Order("min_income ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*TaxBracket, error) {
	return r.store.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, bracket *TaxBracket) error {
	return r.store.Update(ctx, bracket.ID, bracket)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
