package department

import (
	"context"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	store *tenant.Store[Department]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[Department](db)}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	if dept.ID == uuid.Nil {
		dept.ID = uuid.New()
	}
	return r.store.Create(ctx, dept)
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	return r.store.List(ctx)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	return r.store.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
