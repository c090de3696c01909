package payroll

import (
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
)

type AggregateInput struct {
	EmployeeID string
	Month      time.Time
	BaseSalary int64
	// Days are the classified days of the month, in any order.
	Days []attendance.DailyAttendance
	// Entries are the employee's ledger entries; those outside the month
	// are ignored.
	Entries           []ledger.Entry
	ValidatedAdvances int64
}

type Aggregate struct {
	EmployeeID string
	Month      time.Time
	BaseSalary int64

	Primes      int64
	Extras      int64
	Doublages   int64
	Infractions int64
	Advances    int64
	NetSalary   int64

	AbsentDays      int
	JustifiedDays   int
	UnjustifiedDays int
	SuspensionDays  int
	// UnrecordedDays are absent days with no ledger absence behind them.
	UnrecordedDays int

	RetardCount int
	RetardTotal time.Duration

	Incomplete bool
}

// Compute derives a month's pay from already-fetched data. Absences are
// counted but never deducted, and lateness is reported but not monetized;
// only adjustments and validated advances move the net. The result does
// not depend on the order of Days or Entries.
func Compute(in AggregateInput) Aggregate {
	month, _ := calendar.MonthRange(in.Month)
	out := Aggregate{
		EmployeeID: in.EmployeeID,
		Month:      month,
		BaseSalary: in.BaseSalary,
		Advances:   in.ValidatedAdvances,
		Incomplete: in.BaseSalary <= 0,
	}

	starts := make(map[string]time.Time, len(in.Days))
	absentByState := make(map[string]bool)
	for _, d := range in.Days {
		if !calendar.SameMonth(d.Date, month) {
			continue
		}
		key := calendar.FormatDate(d.Date)
		if d.ScheduledStart != nil {
			starts[key] = *d.ScheduledStart
		}
		switch d.State {
		case attendance.StateAbsent:
			absentByState[key] = true
		case attendance.StateRetard:
			out.RetardCount++
			out.RetardTotal += d.LateBy
		}
	}

	byDay := make(map[string][]ledger.Entry)
	for _, e := range in.Entries {
		if !calendar.SameMonth(e.LogicalDate, month) {
			continue
		}
		key := calendar.FormatDate(e.LogicalDate)
		byDay[key] = append(byDay[key], e)

		switch e.Kind {
		case ledger.KindAdjustment:
			switch e.Category {
			case ledger.CategoryPrime:
				out.Primes += e.Amount
			case ledger.CategoryExtra:
				out.Extras += e.Amount
			case ledger.CategoryDoublage:
				out.Doublages += e.Amount
			case ledger.CategoryInfraction:
				out.Infractions += e.Amount
			}
		case ledger.KindRetard:
			out.RetardCount++
			if start, ok := starts[key]; ok && e.OccurredAt.After(start) {
				out.RetardTotal += e.OccurredAt.Sub(start)
			}
		}
	}

	counted := make(map[string]bool)
	for key, entries := range byDay {
		t := ledger.StrongestAbsence(entries)
		if !t.CountsAsAbsent() {
			continue
		}
		counted[key] = true
		switch t {
		case ledger.AbsenceJustified:
			out.JustifiedDays++
		case ledger.AbsenceUnjustified:
			out.UnjustifiedDays++
		case ledger.AbsenceSuspension:
			out.SuspensionDays++
		}
	}
	for key := range absentByState {
		if !counted[key] {
			out.UnrecordedDays++
		}
	}
	out.AbsentDays = out.JustifiedDays + out.UnjustifiedDays + out.SuspensionDays + out.UnrecordedDays

	out.NetSalary = in.BaseSalary + out.Primes + out.Extras + out.Doublages - out.Infractions - out.Advances
	return out
}
