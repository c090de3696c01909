package employee

type ListEmployeesRequest struct {
	Department     string `form:"department"`
	Query          string `form:"q"`
	IncludeBlocked bool   `form:"include_blocked"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	BaseSalary int64  `json:"base_salary"`
	IsBlocked  bool   `json:"is_blocked"`
	ZktimeID   string `json:"zktime_id,omitempty"`
}

type EmployeeOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
