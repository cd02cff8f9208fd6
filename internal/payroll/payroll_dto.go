package payroll

type CreatePeriodRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateBonusRequest struct {
	Bonus string `json:"bonus" binding:"required"`
}

type PeriodResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsProcessed bool   `json:"is_processed"`
}

type PayslipResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	EmployeeID      string `json:"employee_id"`
	PeriodID        string `json:"period_id"`
	Reference       string `json:"reference"`
	GrossPay        string `json:"gross_pay"`
	Bonus           string `json:"bonus"`
	HoursWorked     string `json:"hours_worked"`
	OvertimeHours   string `json:"overtime_hours"`
	OvertimePay     string `json:"overtime_pay"`
	TotalDeductions string `json:"total_deductions"`
	NetPay          string `json:"net_pay"`
	GeneratedAt     string `json:"generated_at"`
}

type PayResultResponse struct {
	GrossPay        string `json:"gross_pay"`
	TotalDeductions string `json:"total_deductions"`
	NetPay          string `json:"net_pay"`
	HoursWorked     string `json:"hours_worked"`
	OvertimeHours   string `json:"overtime_hours"`
	OvertimePay     string `json:"overtime_pay"`
}

type PeriodSummaryResponse struct {
	PeriodID     string `json:"period_id"`
	PayslipCount int    `json:"payslip_count"`
	TotalNetPay  string `json:"total_net_pay"`
}

type ProcessResultResponse struct {
	Succeeded         int      `json:"succeeded"`
	FailedEmployeeIDs []string `json:"failed_employee_ids,omitempty"`
}
