package attendance

import (
	"context"
	"time"

	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, row *Attendance) error
	Update(ctx context.Context, row *Attendance) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error)
	FindOpenByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]Attendance, error)
}

type repository struct {
	store *tenant.Store[Attendance]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{store: tenant.NewStore[Attendance](db)}
}

func (r *repository) Create(ctx context.Context, row *Attendance) error {
	return r.store.Create(ctx, row)
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.store.Update(ctx, row.ID, row)
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.store.Query(ctx).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error) {
	var rows []Attendance
	err := r.store.Query(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOpenByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
	var row Attendance
	err := r.store.Query(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		Where("check_out IS NULL").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByEmployeeAndRange: batas periode inklusif di kedua ujung.
func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.store.Query(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date >= ? AND attendance_date <= ?", from, to).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}
