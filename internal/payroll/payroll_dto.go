package payroll

type SummaryRequest struct {
	Month string `form:"month"`
}

type AbsenceBreakdown struct {
	Justified   int `json:"justified"`
	Unjustified int `json:"unjustified"`
	Suspension  int `json:"suspension"`
	Unrecorded  int `json:"unrecorded"`
}

type PayrollResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name,omitempty"`
	Month      string `json:"month"`

	BaseSalary  int64 `json:"base_salary"`
	Primes      int64 `json:"primes"`
	Extras      int64 `json:"extras"`
	Doublages   int64 `json:"doublages"`
	Infractions int64 `json:"infractions"`
	Advances    int64 `json:"advances"`
	NetSalary   int64 `json:"net_salary"`

	AbsentDays    int              `json:"absent_days"`
	Absences      AbsenceBreakdown `json:"absences"`
	RetardCount   int              `json:"retard_count"`
	RetardMinutes int              `json:"retard_minutes"`
	RetardDisplay string           `json:"retard_display"`

	Incomplete bool `json:"incomplete"`

	Paid       bool    `json:"paid"`
	PaidAt     *string `json:"paid_at,omitempty"`
	PaidAmount *int64  `json:"paid_amount,omitempty"`
	PaidBy     *string `json:"paid_by,omitempty"`

	// Set on paid records only: the current computation next to the frozen one.
	LiveNetSalary *int64 `json:"live_net_salary,omitempty"`
	Stale         bool   `json:"stale"`

	ComputedAt string `json:"computed_at,omitempty"`
}

type SummaryTotals struct {
	BaseSalaries int64 `json:"base_salaries"`
	Primes       int64 `json:"primes"`
	Extras       int64 `json:"extras"`
	Doublages    int64 `json:"doublages"`
	Infractions  int64 `json:"infractions"`
	Advances     int64 `json:"advances"`
	NetSalaries  int64 `json:"net_salaries"`
	PaidCount    int   `json:"paid_count"`
	UnpaidCount  int   `json:"unpaid_count"`
}

type SummaryResponse struct {
	Month     string            `json:"month"`
	Totals    SummaryTotals     `json:"totals"`
	Employees []PayrollResponse `json:"employees"`
}

type Payslip struct {
	Filename string
	Content  []byte
}
