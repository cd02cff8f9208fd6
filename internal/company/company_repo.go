package company

import (
	"context"
	"errors"

	"staffcore/internal/shared/apperror"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	FindBySlug(ctx context.Context, slug string) (*Company, error)
	UpdateBranding(ctx context.Context, id string, primaryColor string, logoURL *string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &company, err
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*Company, error) {
	var company Company
	err := r.db.WithContext(ctx).First(&company, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrNotFound
	}
	return &company, err
}

// UpdateBranding hanya menyentuh field branding. Nama dan slug immutable
// setelah registrasi.
func (r *repository) UpdateBranding(ctx context.Context, id string, primaryColor string, logoURL *string) error {
	updates := map[string]any{"primary_color": primaryColor}
	if logoURL != nil {
		updates["logo_url"] = *logoURL
	}

	res := r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
