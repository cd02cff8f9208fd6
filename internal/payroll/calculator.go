package payroll

import (
	"context"
	"time"

	"staffcore/internal/attendance"
	"staffcore/internal/employee"
	"staffcore/internal/salaryrule"
	"staffcore/internal/taxbracket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	WarnZeroSalary   = "employee has no base salary; pay computed from zero"
	WarnNoTaxBracket = "no tax bracket matches gross pay; tax assumed zero"
)

var (
	daysPerMonth    = decimal.NewFromInt(30)
	hoursPerDay     = decimal.NewFromInt(8)
	overtimePremium = decimal.NewFromFloat(1.5)
)

// Sumber data kalkulasi. Repo masing-masing modul sudah memenuhi
// interface ini; test cukup memberi fake kecil.
type AttendanceSource interface {
	FindByEmployeeAndRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]attendance.Attendance, error)
}

type RuleSource interface {
	FindApplicable(ctx context.Context, employeeID uuid.UUID) ([]salaryrule.SalaryRule, error)
}

type BracketSource interface {
	FindAll(ctx context.Context) ([]taxbracket.TaxBracket, error)
}

// PayResult adalah hasil satu kalkulasi. Semua angka sudah dibulatkan
// 2 desimal; pembulatan hanya terjadi di sini, bukan di tengah pipeline.
type PayResult struct {
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimePay     decimal.Decimal
	Warnings        []string
}

type Calculator struct {
	attendances AttendanceSource
	rules       RuleSource
	brackets    BracketSource
}

func NewCalculator(attendances AttendanceSource, rules RuleSource, brackets BracketSource) *Calculator {
	return &Calculator{
		attendances: attendances,
		rules:       rules,
		brackets:    brackets,
	}
}

// Calculate menjalankan pipeline penuh untuk satu employee dalam satu
// periode: jam kerja -> lembur -> rule -> pajak progresif -> pembulatan.
// Gaji nol bukan error; hasil nol-ish plus warning supaya batch tidak
// berhenti gara-gara satu data master belum lengkap.
func (c *Calculator) Calculate(ctx context.Context, emp *employee.Employee, period *PayrollPeriod) (PayResult, error) {
	var warnings []string

	salary := emp.Salary
	if salary.Sign() <= 0 {
		salary = decimal.Zero
		warnings = append(warnings, WarnZeroSalary)
	}

	records, err := c.attendances.FindByEmployeeAndRange(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return PayResult{}, err
	}

	hoursWorked := decimal.Zero
	overtimeHours := decimal.Zero
	for i := range records {
		// Record terbuka menyumbang nol; lembur dihitung per record,
		// bukan dari total jam.
		hoursWorked = hoursWorked.Add(records[i].HoursWorked())
		overtimeHours = overtimeHours.Add(records[i].OvertimeHours())
	}

	hourlyRate := salary.Div(daysPerMonth).Div(hoursPerDay)
	overtimePay := overtimeHours.Mul(hourlyRate).Mul(overtimePremium)

	// Persentase rule dihitung dari gross base (gaji + lembur),
	// bukan dari total gross setelah tunjangan.
	grossBase := salary.Add(overtimePay)

	rules, err := c.rules.FindApplicable(ctx, emp.ID)
	if err != nil {
		return PayResult{}, err
	}

	allowances := decimal.Zero
	otherDeductions := decimal.Zero
	for i := range rules {
		amount := rules[i].AmountFor(grossBase)
		switch rules[i].RuleType {
		case salaryrule.RuleAllowance:
			allowances = allowances.Add(amount)
		case salaryrule.RuleDeduction:
			otherDeductions = otherDeductions.Add(amount)
		}
	}

	totalGross := grossBase.Add(allowances)

	brackets, err := c.brackets.FindAll(ctx)
	if err != nil {
		return PayResult{}, err
	}

	tax := decimal.Zero
	if bracket, ok := taxbracket.Lookup(brackets, totalGross); ok {
		tax = bracket.TaxOn(totalGross)
	} else {
		warnings = append(warnings, WarnNoTaxBracket)
	}

	totalDeductions := otherDeductions.Add(tax)
	netPay := totalGross.Sub(totalDeductions)

	return PayResult{
		GrossPay:        totalGross.Round(2),
		TotalDeductions: totalDeductions.Round(2),
		NetPay:          netPay.Round(2),
		HoursWorked:     hoursWorked.Round(2),
		OvertimeHours:   overtimeHours.Round(2),
		OvertimePay:     overtimePay.Round(2),
		Warnings:        warnings,
	}, nil
}
