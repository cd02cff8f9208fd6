package payroll_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"staffcore/internal/company"
	"staffcore/internal/employee"
	"staffcore/internal/messaging/kafka"
	"staffcore/internal/payroll"
	payrollerrors "staffcore/internal/payroll/errors"
	"staffcore/internal/shared/apperror"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeEmployeeRepository struct {
	rows map[uuid.UUID]*employee.Employee
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	f.rows[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return f.FindAllActive(ctx)
}

func (f *fakeEmployeeRepository) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	var all []employee.Employee
	for _, emp := range f.rows {
		all = append(all, *emp)
	}
	return all, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	if emp, ok := f.rows[id]; ok {
		return emp, nil
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	f.rows[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeCounterRepository struct {
	mu   sync.Mutex
	vals map[string]int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.vals == nil {
		f.vals = map[string]int64{}
	}
	key := companyID + ":" + counterType
	f.vals[key]++
	return f.vals[key], nil
}

func openPayrollDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&payroll.PayrollPeriod{},
		&payroll.Payslip{},
		&kafka.OutboxEvent{},
	))
	return db
}

type serviceFixture struct {
	svc       payroll.Service
	repo      payroll.Repository
	outbox    kafka.OutboxRepository
	employees *fakeEmployeeRepository
	ctx       context.Context
	company   *company.Company
	emp       *employee.Employee
	period    *payroll.PayrollPeriod
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	db := openPayrollDB(t)
	acme := &company.Company{ID: uuid.New(), Name: "Acme", Slug: "acme"}
	ctx := tenant.WithCompany(context.Background(), acme)

	emp := testEmployee("4800.00")
	emp.CompanyID = acme.ID
	employees := &fakeEmployeeRepository{rows: map[uuid.UUID]*employee.Employee{emp.ID: emp}}

	repo := payroll.NewRepository(db)
	period := marchPeriod()
	assert.NoError(t, repo.CreatePeriod(ctx, period))

	// Sepuluh hari 8 jam, tanpa rule dan tanpa bracket: gross = net = gaji.
	calc := payroll.NewCalculator(
		&fakeAttendanceSource{rows: eightHourDays(10)},
		&fakeRuleSource{},
		&fakeBracketSource{},
	)

	outbox := kafka.NewOutboxRepository(db)
	svc := payroll.NewService(db, repo, employees, calc, outbox, &fakeCounterRepository{})

	return &serviceFixture{
		svc:       svc,
		repo:      repo,
		outbox:    outbox,
		employees: employees,
		ctx:       ctx,
		company:   acme,
		emp:       emp,
		period:    period,
	}
}

func TestGeneratePayslip_PersistsPayslipAndOutboxRow(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.NoError(t, err)

	assert.Equal(t, "PAY-2026-000001", resp.Reference)
	assert.Equal(t, "4800.00", resp.GrossPay)
	assert.Equal(t, "4800.00", resp.NetPay)
	assert.Equal(t, f.company.ID.String(), resp.CompanyID)

	// Baris outbox ikut commit bersama payslip.
	pending, err := f.outbox.ListPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "payslip.generated", pending[0].EventType)
	assert.Equal(t, resp.ID, pending[0].AggregateID)
}

func TestGeneratePayslip_DuplicateRejected(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.NoError(t, err)

	_, err = f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipExists)

	// Transaksi kedua rollback: tidak ada baris outbox yatim.
	pending, err := f.outbox.ListPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestGeneratePayslip_UnknownEmployee(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.GeneratePayslip(f.ctx, uuid.New().String(), f.period.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestFinalizePeriod_Idempotent(t *testing.T) {
	f := newServiceFixture(t)

	assert.NoError(t, f.svc.FinalizePeriod(f.ctx, f.period.ID.String()))
	assert.NoError(t, f.svc.FinalizePeriod(f.ctx, f.period.ID.String()))

	got, err := f.svc.GetPeriod(f.ctx, f.period.ID.String())
	assert.NoError(t, err)
	assert.True(t, got.IsProcessed)
}

func TestFinalizePeriod_UnknownPeriod(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.FinalizePeriod(f.ctx, uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotFound)
}

func TestUpdateBonus_AbsoluteNotIncremental(t *testing.T) {
	f := newServiceFixture(t)

	slip, err := f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.NoError(t, err)

	first, err := f.svc.UpdateBonus(f.ctx, slip.ID, payroll.UpdateBonusRequest{Bonus: "250.00"})
	assert.NoError(t, err)
	assert.Equal(t, "250.00", first.Bonus)
	assert.Equal(t, "5050.00", first.NetPay)

	// Apply kedua kalinya dengan nilai sama: hasil identik.
	second, err := f.svc.UpdateBonus(f.ctx, slip.ID, payroll.UpdateBonusRequest{Bonus: "250.00"})
	assert.NoError(t, err)
	assert.Equal(t, first.NetPay, second.NetPay)
	assert.Equal(t, first.Bonus, second.Bonus)
}

func TestUpdateBonus_RejectsInvalidValues(t *testing.T) {
	f := newServiceFixture(t)

	slip, err := f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.NoError(t, err)

	for _, bonus := range []string{"-5", "10.555", "abc"} {
		_, err := f.svc.UpdateBonus(f.ctx, slip.ID, payroll.UpdateBonusRequest{Bonus: bonus})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidBonus, "bonus %q", bonus)
	}
}

func TestCreatePeriod_RejectsInvalidRange(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.CreatePeriod(f.ctx, payroll.CreatePeriodRequest{
		Name:      "Backwards",
		StartDate: "2026-04-01",
		EndDate:   "2026-03-01",
	})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodRange)

	_, err = f.svc.CreatePeriod(f.ctx, payroll.CreatePeriodRequest{
		Name:      "Bad format",
		StartDate: "01-03-2026",
		EndDate:   "2026-03-31",
	})
	assert.Error(t, err)
}

func TestDeletePeriod_RejectsProcessed(t *testing.T) {
	f := newServiceFixture(t)

	assert.NoError(t, f.svc.FinalizePeriod(f.ctx, f.period.ID.String()))

	err := f.svc.DeletePeriod(f.ctx, f.period.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodProcessed)
}

func TestPeriodSummary_AggregatesPayslips(t *testing.T) {
	f := newServiceFixture(t)

	other := testEmployee("4800.00")
	other.CompanyID = f.company.ID
	f.employees.rows[other.ID] = other

	_, err := f.svc.GeneratePayslip(f.ctx, f.emp.ID.String(), f.period.ID.String())
	assert.NoError(t, err)
	_, err = f.svc.GeneratePayslip(f.ctx, other.ID.String(), f.period.ID.String())
	assert.NoError(t, err)

	summary, err := f.svc.PeriodSummary(f.ctx, f.period.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.PayslipCount)
	assert.Equal(t, "9600.00", summary.TotalNetPay)
}

func TestPeriodSummary_EmptyPeriod(t *testing.T) {
	f := newServiceFixture(t)

	summary, err := f.svc.PeriodSummary(f.ctx, f.period.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.PayslipCount)
	assert.Equal(t, "0.00", summary.TotalNetPay)
}
