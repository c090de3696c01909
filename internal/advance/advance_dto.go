package advance

type CreateAdvanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	Date       string `json:"date"`
	Motif      string `json:"motif" binding:"max=1000"`
	// Status defaults to En attente.
	Status string `json:"status"`
}

type UpdateAdvanceRequest struct {
	Amount *int64  `json:"amount" binding:"omitempty,gt=0"`
	Date   *string `json:"date"`
	Motif  *string `json:"motif" binding:"omitempty,max=1000"`
}

type ListAdvancesRequest struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month"`
	Status     string `form:"status"`
}

type ExposureRequest struct {
	Month string `form:"month"`
}

type AdvanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Amount     int64   `json:"amount"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Motif      string  `json:"motif"`
	CreatedBy  *string `json:"created_by,omitempty"`
	DecidedBy  *string `json:"decided_by,omitempty"`
	DecidedAt  *string `json:"decided_at,omitempty"`
}

type ExposureResponse struct {
	Rank           int     `json:"rank,omitempty"`
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	BaseSalary     int64   `json:"base_salary"`
	TotalValidated int64   `json:"total_validated_advance"`
	Remaining      int64   `json:"remaining"`
	Percentage     float64 `json:"percentage"`
	AtMaximum      bool    `json:"at_maximum"`
	Excluded       bool    `json:"excluded,omitempty"`
}

type ExposureReport struct {
	Month          string             `json:"month"`
	TotalSalaries  int64              `json:"total_salaries"`
	TotalAdvances  int64              `json:"total_advances"`
	TotalRemaining int64              `json:"total_remaining"`
	AtMaximumCount int                `json:"at_maximum_count"`
	Employees      []ExposureResponse `json:"employees"`
	// Excluded lists eligible employees without a base salary.
	Excluded []string `json:"excluded"`
}
