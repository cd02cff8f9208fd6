package attendance_test

import (
	"testing"
	"time"

	"staffcore/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func record(checkIn string, checkOut string) attendance.Attendance {
	in, err := time.Parse(time.RFC3339, checkIn)
	if err != nil {
		panic(err)
	}

	a := attendance.Attendance{CheckIn: in}
	if checkOut != "" {
		out, err := time.Parse(time.RFC3339, checkOut)
		if err != nil {
			panic(err)
		}
		a.CheckOut = &out
	}
	return a
}

func TestHoursWorked_TenHourShift(t *testing.T) {
	a := record("2026-03-02T09:00:00Z", "2026-03-02T19:00:00Z")

	// 09:00–19:00 adalah tepat 10 jam, bukan 9.999...
	assert.Equal(t, "10", a.HoursWorked().String())
	assert.Equal(t, "2", a.OvertimeHours().String())
}

func TestHoursWorked_OpenRecordIsZero(t *testing.T) {
	a := record("2026-03-02T09:00:00Z", "")

	assert.True(t, a.IsOpen())
	assert.True(t, a.HoursWorked().IsZero())
	assert.True(t, a.OvertimeHours().IsZero())
}

func TestHoursWorked_FractionalHours(t *testing.T) {
	a := record("2026-03-02T09:00:00Z", "2026-03-02T16:30:00Z")

	assert.Equal(t, "7.5", a.HoursWorked().String())
	assert.True(t, a.OvertimeHours().IsZero())
}

func TestOvertimeHours_PerRecordNotTotal(t *testing.T) {
	// 12 jam dalam satu record: 4 jam lembur.
	long := record("2026-03-02T08:00:00Z", "2026-03-02T20:00:00Z")
	assert.Equal(t, "4", long.OvertimeHours().String())

	// 6 jam: tidak ada lembur, dan tidak "meminjam" dari record lain.
	short := record("2026-03-03T09:00:00Z", "2026-03-03T15:00:00Z")
	assert.True(t, short.OvertimeHours().IsZero())
}

func TestHoursWorked_CheckOutBeforeCheckIn(t *testing.T) {
	a := record("2026-03-02T19:00:00Z", "2026-03-02T09:00:00Z")
	assert.True(t, a.HoursWorked().IsZero())
}
