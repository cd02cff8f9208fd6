package tenant

import (
	"time"

	"github.com/google/uuid"
)

// Company adalah root tenant: semua entitas lain menyimpan back-reference ke sini.
// Tinggal di paket tenant supaya context carrier tidak perlu mengimpor
// internal/company (yang sendiri bergantung ke tenant).
type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Slug         string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_company_slug"`
	LogoURL      *string   `gorm:"type:text"`
	PrimaryColor string    `gorm:"type:varchar(7);not null;default:'#000000'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Company) TableName() string {
	return "companies"
}
