package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollPeriod adalah rentang tanggal gajian milik tenant.
// IsProcessed monoton: sekali true tidak pernah kembali false.
type PayrollPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	IsProcessed bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

func (p *PayrollPeriod) GetCompanyID() uuid.UUID   { return p.CompanyID }
func (p *PayrollPeriod) SetCompanyID(id uuid.UUID) { p.CompanyID = id }
