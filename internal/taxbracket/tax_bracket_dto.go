package taxbracket

type CreateTaxBracketRequest struct {
	MinIncome string `json:"min_income" binding:"required"`
	// Kosong berarti pita terbuka ke atas
	MaxIncome *string `json:"max_income"`
	Rate      string  `json:"rate" binding:"required"`
	// Kosong berarti diturunkan otomatis dari pita di bawahnya
	DeductionAmount *string `json:"deduction_amount"`
}

type UpdateTaxBracketRequest struct {
	MinIncome       string  `json:"min_income" binding:"required"`
	MaxIncome       *string `json:"max_income"`
	Rate            string  `json:"rate" binding:"required"`
	DeductionAmount *string `json:"deduction_amount"`
}

type TaxBracketResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	MinIncome       string  `json:"min_income"`
	MaxIncome       *string `json:"max_income,omitempty"`
	Rate            string  `json:"rate"`
	DeductionAmount string  `json:"deduction_amount"`
}
