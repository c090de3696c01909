package attendance

import (
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/schedule"

	"github.com/google/uuid"
)

// Punch is one raw timestamp from a clock device. Direction is never
// stored: it follows from the order of the day's punches.
type Punch struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_punch_employee_instant;index:idx_punch_employee_date"`
	PunchedAt   time.Time `gorm:"column:punched_at;type:timestamptz;not null;uniqueIndex:uq_punch_employee_instant"`
	LogicalDate time.Time `gorm:"column:logical_date;type:date;not null;index:idx_punch_employee_date"`
	DeviceID    string    `gorm:"column:device_id;type:varchar(50)"`
	Source      string    `gorm:"column:source;type:varchar(30);not null;default:device"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Punch) TableName() string {
	return "punches"
}

type State string

const (
	StatePresent State = "Présent"
	StateRetard  State = "Retard"
	StateAbsent  State = "Absent"
	StateRepos   State = "Repos"
)

// Source tells what decided a day's state.
type Source string

const (
	SourcePunch    Source = "punch"
	SourceManual   Source = "manual"
	SourceSchedule Source = "schedule"
)

// DailyAttendance is derived on demand and never stored.
type DailyAttendance struct {
	EmployeeID     string
	Date           time.Time
	State          State
	Shift          schedule.Category
	ClockIn        *time.Time
	ClockOut       *time.Time
	LastPunch      *time.Time
	ScheduledStart *time.Time
	LateBy         time.Duration
	Worked         time.Duration
	ManualType     ledger.AbsenceType
	Source         Source
	Warnings       []string
}

// pending is an Absent day derived from the schedule alone.
func (d DailyAttendance) pending() bool {
	return d.State == StateAbsent && d.Source == SourceSchedule
}
