package salaryrule

type CreateSalaryRuleRequest struct {
	Name        string   `json:"name" binding:"required"`
	RuleType    string   `json:"rule_type" binding:"required"`
	Amount      *string  `json:"amount"`
	Percentage  *string  `json:"percentage"`
	IsGlobal    *bool    `json:"is_global"`
	EmployeeIDs []string `json:"employee_ids"`
	Description string   `json:"description"`
}

type UpdateSalaryRuleRequest struct {
	Name        string   `json:"name" binding:"required"`
	RuleType    string   `json:"rule_type" binding:"required"`
	Amount      *string  `json:"amount"`
	Percentage  *string  `json:"percentage"`
	IsGlobal    *bool    `json:"is_global"`
	EmployeeIDs []string `json:"employee_ids"`
	Description string   `json:"description"`
}

type SalaryRuleResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	RuleType    string   `json:"rule_type"`
	Amount      *string  `json:"amount,omitempty"`
	Percentage  *string  `json:"percentage,omitempty"`
	IsGlobal    bool     `json:"is_global"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	Description string   `json:"description,omitempty"`
}
