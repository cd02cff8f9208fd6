package payroll

import (
	"context"

	"staffcore/internal/shared/apperror"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreatePeriod(ctx context.Context, period *PayrollPeriod) error
	FindAllPeriods(ctx context.Context) ([]PayrollPeriod, error)
	FindPeriodByID(ctx context.Context, id uuid.UUID) (*PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, period *PayrollPeriod) error
	DeletePeriod(ctx context.Context, id uuid.UUID) error
	MarkPeriodProcessed(ctx context.Context, id uuid.UUID) error

	CreatePayslip(ctx context.Context, payslip *Payslip) error
	FindPayslipByID(ctx context.Context, id uuid.UUID) (*Payslip, error)
	FindPayslipsByPeriod(ctx context.Context, periodID uuid.UUID) ([]Payslip, error)
	FindPayslipByEmployeeAndPeriod(ctx context.Context, employeeID, periodID uuid.UUID) (*Payslip, error)
	UpdatePayslip(ctx context.Context, payslip *Payslip) error
	SumNetPayByPeriod(ctx context.Context, periodID uuid.UUID) (decimal.Decimal, error)
}

type repository struct {
	periods  *tenant.Store[PayrollPeriod]
	payslips *tenant.Store[Payslip]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		periods:  tenant.NewStore[PayrollPeriod](db),
		payslips: tenant.NewStore[Payslip](db),
	}
}

// WithTx mengembalikan repo yang menulis lewat transaksi gorm supaya
// payslip dan baris outbox commit bersama.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return NewRepository(tx)
}

func (r *repository) CreatePeriod(ctx context.Context, period *PayrollPeriod) error {
	return r.periods.Create(ctx, period)
}

func (r *repository) FindAllPeriods(ctx context.Context) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.periods.Query(ctx).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindPeriodByID(ctx context.Context, id uuid.UUID) (*PayrollPeriod, error) {
	return r.periods.Get(ctx, id)
}

func (r *repository) UpdatePeriod(ctx context.Context, period *PayrollPeriod) error {
	return r.periods.Update(ctx, period.ID, period)
}

func (r *repository) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	return r.periods.Delete(ctx, id)
}

// MarkPeriodProcessed: satu UPDATE monoton, aman dipanggil berulang dan
// paralel. Tidak ada read-modify-write jadi tidak ada race.
func (r *repository) MarkPeriodProcessed(ctx context.Context, id uuid.UUID) error {
	res := r.periods.Query(ctx).
		Where("id = ?", id).
		Update("is_processed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *repository) CreatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.payslips.Create(ctx, payslip)
}

func (r *repository) FindPayslipByID(ctx context.Context, id uuid.UUID) (*Payslip, error) {
	return r.payslips.Get(ctx, id)
}

func (r *repository) FindPayslipsByPeriod(ctx context.Context, periodID uuid.UUID) ([]Payslip, error) {
	var payslips []Payslip
	err := r.payslips.Query(ctx).
		Where("period_id = ?", periodID).
		Order("reference ASC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindPayslipByEmployeeAndPeriod(ctx context.Context, employeeID, periodID uuid.UUID) (*Payslip, error) {
	var payslip Payslip
	err := r.payslips.Query(ctx).
		Where("employee_id = ?", employeeID).
		Where("period_id = ?", periodID).
		First(&payslip).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) UpdatePayslip(ctx context.Context, payslip *Payslip) error {
	return r.payslips.Update(ctx, payslip.ID, payslip)
}

func (r *repository) SumNetPayByPeriod(ctx context.Context, periodID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.payslips.Query(ctx).
		Where("period_id = ?", periodID).
		Select("SUM(net_pay)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
