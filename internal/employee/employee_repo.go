package employee

import (
	"context"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	store *tenant.Store[Employee]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[Employee](db)}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.store.Create(ctx, emp)
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	return r.store.List(ctx)
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.store.Query(ctx).
		Where("is_active = ?", true).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return r.store.Get(ctx, id)
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.store.Update(ctx, emp.ID, emp)
}

// Deactivate: soft saja. Employee tidak pernah dihapus keras selama
// payslip masih menunjuk ke dia.
func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	emp, err := r.store.Get(ctx, id)
	if err != nil {
		return err
	}
	emp.IsActive = false
	return r.store.Update(ctx, id, emp)
}
