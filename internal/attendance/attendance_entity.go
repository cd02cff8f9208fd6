package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var standardDayHours = decimal.NewFromInt(8)

type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;index"`
	CheckIn        time.Time  `gorm:"column:check_in;type:timestamptz;not null"`
	CheckOut       *time.Time `gorm:"column:check_out;type:timestamptz"`
	Notes          *string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

func (a *Attendance) GetCompanyID() uuid.UUID   { return a.CompanyID }
func (a *Attendance) SetCompanyID(id uuid.UUID) { a.CompanyID = id }

// IsOpen: shift masih berjalan, belum check out.
func (a *Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// HoursWorked menghitung jam kerja dari durasi check-in sampai check-out.
// Record terbuka menyumbang nol jam. Dihitung dari detik lewat decimal
// supaya hasilnya eksak (10 jam -> tepat 10, bukan 9.999...).
func (a *Attendance) HoursWorked() decimal.Decimal {
	if a.CheckOut == nil {
		return decimal.Zero
	}
	seconds := int64(a.CheckOut.Sub(a.CheckIn) / time.Second)
	if seconds <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(seconds).Div(decimal.NewFromInt(3600))
}

// OvertimeHours: semua di atas 8 jam per record.
func (a *Attendance) OvertimeHours() decimal.Decimal {
	overtime := a.HoursWorked().Sub(standardDayHours)
	if overtime.IsNegative() {
		return decimal.Zero
	}
	return overtime
}
