package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"staffcore/internal/employee"
	"staffcore/internal/events"
	"staffcore/internal/messaging/kafka"
	payrollerrors "staffcore/internal/payroll/errors"
	"staffcore/internal/shared/apperror"
	"staffcore/internal/shared/counter"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Service interface {
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriods(ctx context.Context) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error
	FinalizePeriod(ctx context.Context, id string) error
	PeriodSummary(ctx context.Context, id string) (PeriodSummaryResponse, error)

	Calculate(ctx context.Context, employeeID, periodID string) (PayResult, error)
	GeneratePayslip(ctx context.Context, employeeID, periodID string) (PayslipResponse, error)
	GetPayslips(ctx context.Context, periodID string) ([]PayslipResponse, error)
	UpdateBonus(ctx context.Context, payslipID string, req UpdateBonusRequest) (PayslipResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	employees  employee.Repository
	calculator *Calculator
	outbox     kafka.OutboxRepository
	counters   counter.Repository

	sf  singleflight.Group
	now func() time.Time
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	calculator *Calculator,
	outbox kafka.OutboxRepository,
	counters counter.Repository,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		calculator: calculator,
		outbox:     outbox,
		counters:   counters,
		now:        time.Now,
	}
}

func (s *service) CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	if start.After(end) {
		return PeriodResponse{}, payrollerrors.ErrInvalidPeriodRange
	}

	period := &PayrollPeriod{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		StartDate: start,
		EndDate:   end,
	}
	if period.Name == "" {
		return PeriodResponse{}, apperror.RequiredField("Name")
	}

	if err := s.repo.CreatePeriod(ctx, period); err != nil {
		return PeriodResponse{}, err
	}
	return mapPeriodToResponse(*period), nil
}

func (s *service) GetPeriods(ctx context.Context) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAllPeriods(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = mapPeriodToResponse(p)
	}
	return res, nil
}

func (s *service) GetPeriod(ctx context.Context, id string) (PeriodResponse, error) {
	period, err := s.findPeriod(ctx, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	return mapPeriodToResponse(*period), nil
}

func (s *service) DeletePeriod(ctx context.Context, id string) error {
	period, err := s.findPeriod(ctx, id)
	if err != nil {
		return err
	}
	if period.IsProcessed {
		return payrollerrors.ErrPeriodProcessed
	}
	return mapPeriodError(s.repo.DeletePeriod(ctx, period.ID))
}

// FinalizePeriod monoton dan idempoten: finalize dua kali tidak error
// dan tidak mengubah apa pun setelah yang pertama.
func (s *service) FinalizePeriod(ctx context.Context, id string) error {
	periodID, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("Period ID")
	}
	return mapPeriodError(s.repo.MarkPeriodProcessed(ctx, periodID))
}

// PeriodSummary di belakang singleflight: N dashboard yang refresh
// bersamaan cuma membayar satu kali agregasi.
func (s *service) PeriodSummary(ctx context.Context, id string) (PeriodSummaryResponse, error) {
	period, err := s.findPeriod(ctx, id)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	companyID, _ := tenant.CompanyID(ctx)
	key := fmt.Sprintf("summary:%s:%s", companyID, period.ID)

	v, err, _ := s.sf.Do(key, func() (any, error) {
		payslips, err := s.repo.FindPayslipsByPeriod(ctx, period.ID)
		if err != nil {
			return nil, err
		}
		total, err := s.repo.SumNetPayByPeriod(ctx, period.ID)
		if err != nil {
			return nil, err
		}
		return PeriodSummaryResponse{
			PeriodID:     period.ID.String(),
			PayslipCount: len(payslips),
			TotalNetPay:  total.Round(2).StringFixed(2),
		}, nil
	})
	if err != nil {
		return PeriodSummaryResponse{}, err
	}
	return v.(PeriodSummaryResponse), nil
}

func (s *service) Calculate(ctx context.Context, employeeID, periodID string) (PayResult, error) {
	emp, period, err := s.findEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return PayResult{}, err
	}
	return s.calculator.Calculate(ctx, emp, period)
}

// GeneratePayslip membekukan hasil kalkulasi. Payslip dan baris outbox
// ditulis dalam satu transaksi; event baru terkirim kalau payslip
// benar-benar commit.
func (s *service) GeneratePayslip(ctx context.Context, employeeID, periodID string) (PayslipResponse, error) {
	emp, period, err := s.findEmployeeAndPeriod(ctx, employeeID, periodID)
	if err != nil {
		return PayslipResponse{}, err
	}

	result, err := s.calculator.Calculate(ctx, emp, period)
	if err != nil {
		return PayslipResponse{}, err
	}

	seq, err := s.counters.GetNextValue(ctx, emp.CompanyID.String(), counter.TypePayslipReference)
	if err != nil {
		return PayslipResponse{}, err
	}

	payslip := &Payslip{
		ID:              uuid.New(),
		EmployeeID:      emp.ID,
		PeriodID:        period.ID,
		Reference:       fmt.Sprintf("PAY-%d-%06d", period.EndDate.Year(), seq),
		GrossPay:        result.GrossPay,
		Bonus:           decimal.Zero,
		HoursWorked:     result.HoursWorked,
		OvertimeHours:   result.OvertimeHours,
		OvertimePay:     result.OvertimePay,
		TotalDeductions: result.TotalDeductions,
		NetPay:          result.NetPay,
		GeneratedAt:     s.now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreatePayslip(ctx, payslip); err != nil {
			if isDuplicateKey(err) {
				return payrollerrors.ErrPayslipExists
			}
			return err
		}

		payload, err := json.Marshal(events.PayslipGeneratedEvent{
			EventType:  "payslip.generated",
			PayslipID:  payslip.ID.String(),
			EmployeeID: payslip.EmployeeID.String(),
			PeriodID:   payslip.PeriodID.String(),
			CompanyID:  payslip.CompanyID.String(),
			NetPay:     payslip.NetPay.StringFixed(2),
			OccurredAt: s.now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			AggregateType: "payslip",
			AggregateID:   payslip.ID.String(),
			EventType:     "payslip.generated",
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		return PayslipResponse{}, err
	}

	return mapPayslipToResponse(*payslip), nil
}

func (s *service) GetPayslips(ctx context.Context, periodID string) ([]PayslipResponse, error) {
	period, err := s.findPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	payslips, err := s.repo.FindPayslipsByPeriod(ctx, period.ID)
	if err != nil {
		return nil, err
	}

	res := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		res[i] = mapPayslipToResponse(p)
	}
	return res, nil
}

// UpdateBonus memasang bonus absolut, bukan inkremental: apply dua kali
// dengan nilai sama menghasilkan payslip yang sama.
func (s *service) UpdateBonus(ctx context.Context, payslipID string, req UpdateBonusRequest) (PayslipResponse, error) {
	id, err := uuid.Parse(payslipID)
	if err != nil {
		return PayslipResponse{}, apperror.InvalidField("Payslip ID")
	}

	bonus, err := decimal.NewFromString(req.Bonus)
	if err != nil || bonus.IsNegative() || bonus.Exponent() < -2 {
		return PayslipResponse{}, payrollerrors.ErrInvalidBonus
	}

	payslip, err := s.repo.FindPayslipByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapPayslipError(err)
	}

	payslip.ApplyBonus(bonus)
	if err := s.repo.UpdatePayslip(ctx, payslip); err != nil {
		return PayslipResponse{}, mapPayslipError(err)
	}
	return mapPayslipToResponse(*payslip), nil
}

func (s *service) findPeriod(ctx context.Context, id string) (*PayrollPeriod, error) {
	periodID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.InvalidField("Period ID")
	}
	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, mapPeriodError(err)
	}
	return period, nil
}

func (s *service) findEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*employee.Employee, *PayrollPeriod, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, nil, apperror.InvalidField("Employee ID")
	}

	emp, err := s.employees.FindByID(ctx, empID)
	if err != nil {
		if apperror.ToHTTP(err).Code == apperror.CodeNotFound {
			return nil, nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, nil, err
	}

	period, err := s.findPeriod(ctx, periodID)
	if err != nil {
		return nil, nil, err
	}
	return emp, period, nil
}

func mapPeriodError(err error) error {
	if err == nil {
		return nil
	}
	if apperror.ToHTTP(err).Code == apperror.CodeNotFound {
		return payrollerrors.ErrPeriodNotFound
	}
	return err
}

func mapPayslipError(err error) error {
	if err == nil {
		return nil
	}
	if apperror.ToHTTP(err).Code == apperror.CodeNotFound {
		return payrollerrors.ErrPayslipNotFound
	}
	return err
}

// isDuplicateKey mengenali pelanggaran unique index lintas driver
// (postgres di produksi, sqlite di test).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint")
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperror.New(
			apperror.CodeInvalidInput,
			"invalid date format, expected YYYY-MM-DD",
			http.StatusBadRequest,
		)
	}
	return t, nil
}

func mapPeriodToResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID.String(),
		CompanyID:   p.CompanyID.String(),
		Name:        p.Name,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		IsProcessed: p.IsProcessed,
	}
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:              p.ID.String(),
		CompanyID:       p.CompanyID.String(),
		EmployeeID:      p.EmployeeID.String(),
		PeriodID:        p.PeriodID.String(),
		Reference:       p.Reference,
		GrossPay:        p.GrossPay.StringFixed(2),
		Bonus:           p.Bonus.StringFixed(2),
		HoursWorked:     p.HoursWorked.StringFixed(2),
		OvertimeHours:   p.OvertimeHours.StringFixed(2),
		OvertimePay:     p.OvertimePay.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		NetPay:          p.NetPay.StringFixed(2),
		GeneratedAt:     p.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func mapPayResultToResponse(r PayResult) PayResultResponse {
	return PayResultResponse{
		GrossPay:        r.GrossPay.StringFixed(2),
		TotalDeductions: r.TotalDeductions.StringFixed(2),
		NetPay:          r.NetPay.StringFixed(2),
		HoursWorked:     r.HoursWorked.StringFixed(2),
		OvertimeHours:   r.OvertimeHours.StringFixed(2),
		OvertimePay:     r.OvertimePay.StringFixed(2),
	}
}
