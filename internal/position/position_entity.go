package position

import (
	"time"

	"github.com/google/uuid"
)

type Position struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(100);not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Position) TableName() string {
	return "positions"
}

func (p *Position) GetCompanyID() uuid.UUID   { return p.CompanyID }
func (p *Position) SetCompanyID(id uuid.UUID) { p.CompanyID = id }
