package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRecord is the stored computation for one employee and month.
// While Paid is set the row is a frozen snapshot: recomputation never
// overwrites it and PaidAmount is the authoritative figure.
type PayrollRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_month"`
	Month      time.Time `gorm:"type:date;not null;uniqueIndex:uq_payroll_employee_month;index"`

	// Amounts in millimes.
	BaseSalary  int64 `gorm:"type:bigint;not null;default:0"`
	Primes      int64 `gorm:"type:bigint;not null;default:0"`
	Extras      int64 `gorm:"type:bigint;not null;default:0"`
	Doublages   int64 `gorm:"type:bigint;not null;default:0"`
	Infractions int64 `gorm:"type:bigint;not null;default:0"`
	Advances    int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary   int64 `gorm:"type:bigint;not null;default:0"`

	AbsentDays      int `gorm:"not null;default:0"`
	JustifiedDays   int `gorm:"not null;default:0"`
	UnjustifiedDays int `gorm:"not null;default:0"`
	SuspensionDays  int `gorm:"not null;default:0"`
	RetardCount     int `gorm:"not null;default:0"`
	RetardMinutes   int `gorm:"not null;default:0"`

	Incomplete bool `gorm:"not null;default:false"`

	Paid       bool       `gorm:"not null;default:false;index"`
	PaidAt     *time.Time `gorm:"type:timestamptz"`
	PaidAmount *int64     `gorm:"type:bigint"`
	PaidBy     *uuid.UUID `gorm:"type:uuid"`

	ComputedAt time.Time `gorm:"type:timestamptz;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// computedColumns are refreshed by an upsert on an unpaid row.
var computedColumns = []string{
	"base_salary", "primes", "extras", "doublages", "infractions", "advances", "net_salary",
	"absent_days", "justified_days", "unjustified_days", "suspension_days",
	"retard_count", "retard_minutes", "incomplete", "computed_at", "updated_at",
}

func newRecord(a Aggregate, employeeID uuid.UUID, now time.Time) *PayrollRecord {
	return &PayrollRecord{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		Month:           a.Month,
		BaseSalary:      a.BaseSalary,
		Primes:          a.Primes,
		Extras:          a.Extras,
		Doublages:       a.Doublages,
		Infractions:     a.Infractions,
		Advances:        a.Advances,
		NetSalary:       a.NetSalary,
		AbsentDays:      a.AbsentDays,
		JustifiedDays:   a.JustifiedDays,
		UnjustifiedDays: a.UnjustifiedDays,
		SuspensionDays:  a.SuspensionDays,
		RetardCount:     a.RetardCount,
		RetardMinutes:   int(a.RetardTotal / time.Minute),
		Incomplete:      a.Incomplete,
		ComputedAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
