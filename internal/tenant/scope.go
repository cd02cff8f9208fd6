package tenant

import (
	"context"

	"gorm.io/gorm"
)

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeFromContext menyaring ke tenant aktif. Tanpa tenant di context,
// query dibiarkan apa adanya (escape hatch untuk tooling lintas tenant).
func ScopeFromContext(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id, ok := CompanyID(ctx); ok {
			return db.Where("company_id = ?", id)
		}
		return db
	}
}
