package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	createFn   func(ctx context.Context, row *Attendance) error
	updateFn   func(ctx context.Context, row *Attendance) error
	findOpenFn func(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, row *Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, row *Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindAll(ctx context.Context) ([]Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepository) FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepository) FindOpenByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
	if f.findOpenFn != nil {
		return f.findOpenFn(ctx, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]Attendance, error) {
	return nil, nil
}

func fixedClock(v string) func() time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestClockIn_CreatesOpenRecord(t *testing.T) {
	var created *Attendance
	repo := &fakeAttendanceRepository{
		createFn: func(ctx context.Context, row *Attendance) error {
			created = row
			return nil
		},
	}
	svc := &service{repo: repo, now: fixedClock("2026-03-02T09:00:00Z")}

	employeeID := uuid.New()
	resp, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: employeeID.String()})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Nil(t, created.CheckOut)
	assert.Equal(t, "2026-03-02", resp.AttendanceDate)
	assert.Equal(t, "0.00", resp.HoursWorked)
}

func TestClockIn_RejectsDoubleClockIn(t *testing.T) {
	open := &Attendance{ID: uuid.New()}
	repo := &fakeAttendanceRepository{
		findOpenFn: func(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
			return open, nil
		},
	}
	svc := &service{repo: repo, now: fixedClock("2026-03-02T09:00:00Z")}

	_, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.New().String()})
	assert.ErrorIs(t, err, errAlreadyClockedIn)
}

func TestClockOut_ClosesShift(t *testing.T) {
	employeeID := uuid.New()
	in, _ := time.Parse(time.RFC3339, "2026-03-02T09:00:00Z")
	open := &Attendance{ID: uuid.New(), EmployeeID: employeeID, AttendanceDate: in, CheckIn: in}

	repo := &fakeAttendanceRepository{
		findOpenFn: func(ctx context.Context, empID uuid.UUID, date time.Time) (*Attendance, error) {
			return open, nil
		},
	}
	svc := &service{repo: repo, now: fixedClock("2026-03-02T19:00:00Z")}

	resp, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: employeeID.String()})

	assert.NoError(t, err)
	assert.NotNil(t, open.CheckOut)
	assert.Equal(t, "10.00", resp.HoursWorked)
	assert.Equal(t, "2.00", resp.OvertimeHours)
}

func TestClockOut_NoOpenShift(t *testing.T) {
	svc := &service{repo: &fakeAttendanceRepository{}, now: fixedClock("2026-03-02T19:00:00Z")}

	_, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: uuid.New().String()})
	assert.ErrorIs(t, err, errNoOpenShift)
}
