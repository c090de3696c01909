package events

import "time"

const (
	PayrollPaidTopic   = "payroll.paid.v1"
	PayrollUnpaidTopic = "payroll.unpaid.v1"

	EventPayrollPaid   = "payroll.paid"
	EventPayrollUnpaid = "payroll.unpaid"
)

// PayrollStatusChangedEvent is keyed by "employee_id:month".
type PayrollStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	NetSalary  int64     `json:"net_salary"`
	PaidAmount *int64    `json:"paid_amount,omitempty"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func PayrollKey(employeeID, month string) string {
	return employeeID + ":" + month
}
