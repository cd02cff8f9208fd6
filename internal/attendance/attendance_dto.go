package attendance

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Notes      *string `json:"notes"`
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Notes      *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	CheckIn        string  `json:"check_in"`
	CheckOut       *string `json:"check_out,omitempty"`
	HoursWorked    string  `json:"hours_worked"`
	OvertimeHours  string  `json:"overtime_hours"`
	Notes          *string `json:"notes,omitempty"`
}
