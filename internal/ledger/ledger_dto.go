package ledger

// RecordEntryRequest is validated by the service, not by binding tags,
// so every rejected field is reported together.
type RecordEntryRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD or RFC3339
	Time        string `json:"time"`                    // optional HH:MM on the logical day
	AbsenceType string `json:"absence_type"`
	Category    string `json:"category"`
	Amount      *int64 `json:"amount"`
	Reason      string `json:"reason"`
}

type UpdateReasonRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type QueryEntriesRequest struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
	Kind       string `form:"kind"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type EntryResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Kind        string `json:"kind"`
	AbsenceType string `json:"absence_type,omitempty"`
	Category    string `json:"category,omitempty"`
	Amount      int64  `json:"amount"`
	Reason      string `json:"reason"`
	OccurredAt  string `json:"occurred_at"`
	Date        string `json:"date"`
}

type DaySummaryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Display    string          `json:"display"`
	Net        int64           `json:"net_adjustment"`
	Entries    []EntryResponse `json:"entries"`
}
