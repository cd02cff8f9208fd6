package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ContractFullTime   = "FULL_TIME"
	ContractPartTime   = "PART_TIME"
	ContractContractor = "CONTRACTOR"
	ContractIntern     = "INTERN"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	PositionID   *uuid.UUID `gorm:"type:uuid"`
	FullName     string     `gorm:"column:full_name;type:varchar(200);not null"`
	Email        string     `gorm:"type:varchar(254);not null;uniqueIndex:uq_employee_email"`

	// Gaji bulanan, fixed-point 2 desimal. Jangan pernah float di sini.
	Salary decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	HireDate     time.Time `gorm:"type:date;not null"`
	ContractType string    `gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) GetCompanyID() uuid.UUID   { return e.CompanyID }
func (e *Employee) SetCompanyID(id uuid.UUID) { e.CompanyID = id }
