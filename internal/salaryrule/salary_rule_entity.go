package salaryrule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RuleAllowance = "ALLOWANCE"
	RuleDeduction = "DEDUCTION"
)

// SalaryRule: komponen gaji berulang milik tenant. Amount dan Percentage
// saling eksklusif; keduanya kosong berarti rule menyumbang nol.
// Percentage dihitung dari gross base (gaji + lembur), bukan total gross.
type SalaryRule struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name        string           `gorm:"type:varchar(100);not null"`
	RuleType    string           `gorm:"type:varchar(20);not null"`
	Amount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Percentage  *decimal.Decimal `gorm:"type:numeric(5,2)"`
	IsGlobal    bool             `gorm:"not null;default:true"`
	Description string           `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignments []RuleAssignment `gorm:"foreignKey:RuleID"`
}

func (SalaryRule) TableName() string {
	return "salary_rules"
}

func (r *SalaryRule) GetCompanyID() uuid.UUID   { return r.CompanyID }
func (r *SalaryRule) SetCompanyID(id uuid.UUID) { r.CompanyID = id }

// AmountFor menghitung kontribusi rule untuk satu gross base.
func (r *SalaryRule) AmountFor(grossBase decimal.Decimal) decimal.Decimal {
	if r.Amount != nil {
		return *r.Amount
	}
	if r.Percentage != nil {
		return grossBase.Mul(*r.Percentage).Div(decimal.NewFromInt(100))
	}
	return decimal.Zero
}

// RuleAssignment mengikat rule non-global ke employee tertentu.
type RuleAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RuleID     uuid.UUID `gorm:"column:salary_rule_id;type:uuid;not null;index:idx_rule_employee,unique"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_rule_employee,unique"`
	CreatedAt  time.Time
}

func (RuleAssignment) TableName() string {
	return "salary_rule_assignments"
}
