package schedule

type SplitTimesRequest struct {
	P1In  string `json:"p1_in"`
	P1Out string `json:"p1_out"`
	P2In  string `json:"p2_in"`
	P2Out string `json:"p2_out"`
}

type TimePairRequest struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// UpsertScheduleRequest replaces the given parts of a schedule. Omitted
// days, split times or fixed pairs keep their stored values.
type UpsertScheduleRequest struct {
	Mode  string                     `json:"mode" binding:"required,oneof=normal coupure fixed"`
	Days  map[string]string          `json:"days"`
	Split *SplitTimesRequest         `json:"split"`
	Fixed map[string]TimePairRequest `json:"fixed"`
}

type UpdateDayRequest struct {
	Category string `json:"category" binding:"omitempty,oneof=Matin Soir Doublage Repos"`
}

type ApplyMondayRequest struct {
	Confirm bool `json:"confirm"`
}

type DayScheduleResponse struct {
	Day      string `json:"day"`
	Category string `json:"category"`
	FixedIn  string `json:"fixed_in"`
	FixedOut string `json:"fixed_out"`
}

type ScheduleResponse struct {
	EmployeeID string                `json:"employee_id"`
	Mode       string                `json:"mode"`
	Days       []DayScheduleResponse `json:"days"`
	Split      SplitTimesRequest     `json:"split"`
	UpdatedAt  string                `json:"updated_at,omitempty"`
	Warning    string                `json:"warning,omitempty"`
}

type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ResolutionResponse struct {
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	Day        string           `json:"day"`
	Category   string           `json:"category"`
	Windows    []WindowResponse `json:"windows"`
	IsSplit    bool             `json:"is_split"`
	Configured bool             `json:"configured"`
	Warning    string           `json:"warning,omitempty"`
}
