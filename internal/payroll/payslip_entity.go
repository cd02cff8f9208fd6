package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payslip adalah hasil kalkulasi yang sudah dibekukan untuk satu
// employee dalam satu periode. Satu employee maksimal satu payslip
// per periode; duplikat ditolak di level index.
type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:uq_payslip_employee_period,unique"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:uq_payslip_employee_period,unique"`
	PeriodID   uuid.UUID `gorm:"type:uuid;not null;index:uq_payslip_employee_period,unique"`

	// Nomor urut per company dari company_counters, format PAY-YYYY-NNNNNN.
	Reference string `gorm:"type:varchar(30);not null"`

	// Semua angka fixed-point 2 desimal; dibulatkan saat dibekukan.
	GrossPay        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Bonus           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HoursWorked     decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	OvertimeHours   decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	OvertimePay     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	GeneratedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}

func (p *Payslip) GetCompanyID() uuid.UUID   { return p.CompanyID }
func (p *Payslip) SetCompanyID(id uuid.UUID) { p.CompanyID = id }

// ApplyBonus mengganti bonus secara absolut dan menghitung ulang net pay
// dari komponen yang dibekukan. Memanggil dua kali dengan nilai sama
// menghasilkan payslip identik.
func (p *Payslip) ApplyBonus(bonus decimal.Decimal) {
	p.Bonus = bonus
	p.NetPay = p.GrossPay.Add(p.Bonus).Sub(p.TotalDeductions)
}
