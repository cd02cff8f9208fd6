package taxbracket

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxBracket adalah satu pita tarif progresif milik tenant.
// MaxIncome nil berarti pita terbuka ke atas (+∞).
//
// Pajak dihitung dengan rumus sustraendo:
//
//	tax = income × rate/100 − deduction
//
// DeductionAmount diturunkan otomatis (lihat derive.go) supaya fungsi
// pajak kontinu di batas antar pita.
type TaxBracket struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	MinIncome       decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	MaxIncome       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Rate            decimal.Decimal  `gorm:"type:numeric(5,2);not null"`
	DeductionAmount decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TaxBracket) TableName() string {
	return "tax_brackets"
}

func (b *TaxBracket) GetCompanyID() uuid.UUID   { return b.CompanyID }
func (b *TaxBracket) SetCompanyID(id uuid.UUID) { b.CompanyID = id }

// Contains: min inklusif, max inklusif (nil = tanpa batas atas).
func (b *TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.MinIncome) {
		return false
	}
	if b.MaxIncome != nil && income.GreaterThan(*b.MaxIncome) {
		return false
	}
	return true
}

// TaxOn menghitung pajak untuk income yang jatuh di pita ini.
// Hasil negatif dijepit ke nol.
func (b *TaxBracket) TaxOn(income decimal.Decimal) decimal.Decimal {
	tax := income.Mul(b.Rate).Div(decimal.NewFromInt(100)).Sub(b.DeductionAmount)
	if tax.IsNegative() {
		return decimal.Zero
	}
	return tax
}

// Lookup mencari satu-satunya pita yang memuat income. Tidak ada yang
// cocok berarti pajak nol (pita 0% implisit), bukan error.
func Lookup(brackets []TaxBracket, income decimal.Decimal) (*TaxBracket, bool) {
	for i := range brackets {
		if brackets[i].Contains(income) {
			return &brackets[i], true
		}
	}
	return nil, false
}
