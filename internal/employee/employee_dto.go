package employee

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Salary       string  `json:"salary" binding:"required"`
	HireDate     string  `json:"hire_date" binding:"required"`
	ContractType string  `json:"contract_type"`
	PositionID   *string `json:"position_id"`
	DepartmentID *string `json:"department_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Salary       string  `json:"salary" binding:"required"`
	ContractType string  `json:"contract_type"`
	PositionID   *string `json:"position_id"`
	DepartmentID *string `json:"department_id"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Salary       string  `json:"salary"`
	HireDate     string  `json:"hire_date"`
	ContractType string  `json:"contract_type"`
	IsActive     bool    `json:"is_active"`
	PositionID   *string `json:"position_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}
