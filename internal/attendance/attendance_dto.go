package attendance

type DailyStateRequest struct {
	Date string `form:"date"`
}

type HistoryRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type TopPerformersRequest struct {
	Month string `form:"month"`
	Limit int    `form:"limit"`
}

type SyncRequest struct {
	Date string `json:"date"`
}

type DailyStateResponse struct {
	EmployeeID     string   `json:"employee_id"`
	Date           string   `json:"date"`
	State          string   `json:"state"`
	Shift          string   `json:"shift"`
	ClockIn        *string  `json:"clock_in"`
	ClockOut       *string  `json:"clock_out"`
	LastPunch      *string  `json:"last_punch"`
	ScheduledStart *string  `json:"scheduled_start,omitempty"`
	LateMinutes    int      `json:"late_minutes"`
	WorkedMinutes  int      `json:"worked_minutes"`
	ManualType     string   `json:"manual_type,omitempty"`
	Source         string   `json:"source"`
	Warnings       []string `json:"warnings,omitempty"`
}

type PersonnelEntry struct {
	DailyStateResponse
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type StatusCounts struct {
	Present int `json:"present"`
	Retard  int `json:"retard"`
	Absent  int `json:"absent"`
	Repos   int `json:"repos"`
	Total   int `json:"total"`
}

type PersonnelStatusResponse struct {
	Date      string           `json:"date"`
	Counts    StatusCounts     `json:"counts"`
	Employees []PersonnelEntry `json:"employees"`
}

type TopPerformerResponse struct {
	Rank          int     `json:"rank"`
	EmployeeID    string  `json:"employee_id"`
	FullName      string  `json:"full_name"`
	Department    string  `json:"department"`
	WorkedMinutes int     `json:"worked_minutes"`
	WorkedHours   float64 `json:"worked_hours"`
	PresentDays   int     `json:"present_days"`
	RetardDays    int     `json:"retard_days"`
}

type SyncResponse struct {
	Date           string `json:"date"`
	Queued         bool   `json:"queued"`
	AlreadyPending bool   `json:"already_pending"`
}

type IngestResult struct {
	Received   int `json:"received"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Unknown    int `json:"unknown"`
}
