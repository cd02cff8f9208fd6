package position

import (
	"context"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, pos *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Position, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	store *tenant.Store[Position]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[Position](db)}
}

func (r *repository) Create(ctx context.Context, pos *Position) error {
	if pos.ID == uuid.Nil {
		pos.ID = uuid.New()
	}
	return r.store.Create(ctx, pos)
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	return r.store.List(ctx)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Position, error) {
	return r.store.Get(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}
