package payroll

import (
	"testing"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var march = calendar.Date(2026, time.March, 1)

func adjustment(cat ledger.Category, amount int64, day int) ledger.Entry {
	return ledger.Entry{
		ID:          uuid.New(),
		Kind:        ledger.KindAdjustment,
		Category:    cat,
		Amount:      amount,
		LogicalDate: calendar.Date(2026, time.March, day),
	}
}

func absence(t ledger.AbsenceType, day int) ledger.Entry {
	return ledger.Entry{
		ID:          uuid.New(),
		Kind:        ledger.KindAbsence,
		AbsenceType: t,
		LogicalDate: calendar.Date(2026, time.March, day),
	}
}

func TestCompute_NetSalary(t *testing.T) {
	got := Compute(AggregateInput{
		EmployeeID: "e-1",
		Month:      march,
		BaseSalary: 1500,
		Entries: []ledger.Entry{
			adjustment(ledger.CategoryPrime, 100, 3),
			adjustment(ledger.CategoryInfraction, 50, 9),
		},
		ValidatedAdvances: 300,
	})

	assert.Equal(t, int64(1250), got.NetSalary)
	assert.Equal(t, int64(100), got.Primes)
	assert.Equal(t, int64(50), got.Infractions)
	assert.Equal(t, int64(300), got.Advances)
	assert.False(t, got.Incomplete)
}

func TestCompute_AllAdditiveCategories(t *testing.T) {
	got := Compute(AggregateInput{
		Month:      march,
		BaseSalary: 1_000_000,
		Entries: []ledger.Entry{
			adjustment(ledger.CategoryExtra, 20_000, 4),
			adjustment(ledger.CategoryDoublage, 35_000, 5),
			adjustment(ledger.CategoryPrime, 10_000, 5),
		},
	})

	assert.Equal(t, int64(1_065_000), got.NetSalary)
	assert.Equal(t, int64(20_000), got.Extras)
	assert.Equal(t, int64(35_000), got.Doublages)
}

func TestCompute_OrderIndependent(t *testing.T) {
	entries := []ledger.Entry{
		adjustment(ledger.CategoryPrime, 100, 3),
		adjustment(ledger.CategoryExtra, 40, 3),
		adjustment(ledger.CategoryInfraction, 50, 9),
		absence(ledger.AbsenceUnjustified, 10),
		absence(ledger.AbsenceJustified, 10),
		absence(ledger.AbsenceSuspension, 12),
	}
	days := []attendance.DailyAttendance{
		{Date: calendar.Date(2026, time.March, 2), State: attendance.StateRetard, LateBy: 15 * time.Minute},
		{Date: calendar.Date(2026, time.March, 4), State: attendance.StateAbsent},
		{Date: calendar.Date(2026, time.March, 10), State: attendance.StateAbsent},
	}

	reversedEntries := make([]ledger.Entry, len(entries))
	for i, e := range entries {
		reversedEntries[len(entries)-1-i] = e
	}
	reversedDays := []attendance.DailyAttendance{days[2], days[0], days[1]}

	a := Compute(AggregateInput{Month: march, BaseSalary: 900, Days: days, Entries: entries, ValidatedAdvances: 30})
	b := Compute(AggregateInput{Month: march, BaseSalary: 900, Days: reversedDays, Entries: reversedEntries, ValidatedAdvances: 30})

	assert.Equal(t, a, b)
	assert.Equal(t, int64(900+100+40-50-30), a.NetSalary)
}

func TestCompute_Absences(t *testing.T) {
	t.Run("justified counts without deduction", func(t *testing.T) {
		got := Compute(AggregateInput{
			Month:      march,
			BaseSalary: 1500,
			Entries:    []ledger.Entry{absence(ledger.AbsenceJustified, 5)},
		})

		assert.Equal(t, 1, got.AbsentDays)
		assert.Equal(t, 1, got.JustifiedDays)
		assert.Equal(t, int64(1500), got.NetSalary)
	})

	t.Run("state and entry on the same day count once", func(t *testing.T) {
		got := Compute(AggregateInput{
			Month:      march,
			BaseSalary: 1500,
			Days: []attendance.DailyAttendance{
				{Date: calendar.Date(2026, time.March, 5), State: attendance.StateAbsent},
				{Date: calendar.Date(2026, time.March, 6), State: attendance.StateAbsent},
			},
			Entries: []ledger.Entry{
				absence(ledger.AbsenceUnjustified, 5),
				absence(ledger.AbsenceSuspension, 7),
			},
		})

		assert.Equal(t, 3, got.AbsentDays)
		assert.Equal(t, 1, got.UnjustifiedDays)
		assert.Equal(t, 1, got.SuspensionDays)
		assert.Equal(t, 1, got.UnrecordedDays)
	})

	t.Run("strongest type wins for one day", func(t *testing.T) {
		got := Compute(AggregateInput{
			Month: march,
			Entries: []ledger.Entry{
				absence(ledger.AbsenceJustified, 5),
				absence(ledger.AbsenceSuspension, 5),
			},
		})

		assert.Equal(t, 1, got.AbsentDays)
		assert.Equal(t, 1, got.SuspensionDays)
		assert.Zero(t, got.JustifiedDays)
	})

	t.Run("present entry is not an absence", func(t *testing.T) {
		got := Compute(AggregateInput{
			Month:   march,
			Entries: []ledger.Entry{absence(ledger.AbsencePresent, 5)},
		})

		assert.Zero(t, got.AbsentDays)
	})
}

func TestCompute_Retards(t *testing.T) {
	start := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	days := []attendance.DailyAttendance{
		{Date: calendar.Date(2026, time.March, 2), State: attendance.StateRetard, LateBy: 15 * time.Minute},
		{Date: calendar.Date(2026, time.March, 3), State: attendance.StatePresent, ScheduledStart: &start},
	}
	entries := []ledger.Entry{
		{Kind: ledger.KindRetard, LogicalDate: calendar.Date(2026, time.March, 3), OccurredAt: start.Add(20 * time.Minute)},
		// No schedule known for that day: counted, no duration.
		{Kind: ledger.KindRetard, LogicalDate: calendar.Date(2026, time.March, 9), OccurredAt: start.AddDate(0, 0, 6)},
		// Recorded before the start is floored at zero.
		{Kind: ledger.KindRetard, LogicalDate: calendar.Date(2026, time.March, 3), OccurredAt: start.Add(-5 * time.Minute)},
	}

	got := Compute(AggregateInput{Month: march, BaseSalary: 1000, Days: days, Entries: entries})

	assert.Equal(t, 4, got.RetardCount)
	assert.Equal(t, 35*time.Minute, got.RetardTotal)
	assert.Equal(t, int64(1000), got.NetSalary)
}

func TestCompute_IgnoresOtherMonths(t *testing.T) {
	april := ledger.Entry{
		Kind:        ledger.KindAdjustment,
		Category:    ledger.CategoryPrime,
		Amount:      999,
		LogicalDate: calendar.Date(2026, time.April, 1),
	}

	got := Compute(AggregateInput{
		Month:      calendar.Date(2026, time.March, 17),
		BaseSalary: 1000,
		Entries:    []ledger.Entry{april},
		Days:       []attendance.DailyAttendance{{Date: calendar.Date(2026, time.February, 28), State: attendance.StateAbsent}},
	})

	assert.Equal(t, march, got.Month)
	assert.Equal(t, int64(1000), got.NetSalary)
	assert.Zero(t, got.AbsentDays)
}

func TestCompute_MissingBaseSalary(t *testing.T) {
	got := Compute(AggregateInput{
		Month:   march,
		Entries: []ledger.Entry{adjustment(ledger.CategoryPrime, 100, 3)},
	})

	assert.True(t, got.Incomplete)
	assert.Equal(t, int64(100), got.NetSalary)
}

func TestFormatRetard(t *testing.T) {
	cases := map[int]string{
		0:   "0min",
		-3:  "0min",
		45:  "45min",
		60:  "1h",
		80:  "1h 20min",
		125: "2h 5min",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRetard(in))
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1250.000 DT", FormatMoney(1_250_000))
	assert.Equal(t, "0.050 DT", FormatMoney(50))
	assert.Equal(t, "-3.200 DT", FormatMoney(-3200))
}
