// Package calendar owns the restaurant's logical day. A logical day runs
// from 04:00 to 04:00 local time so that a closing shift ending after
// midnight still belongs to the day it started.
package calendar

import (
	"fmt"
	"time"
)

const (
	DayStartHour = 4

	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	DefaultTimezone = "Africa/Tunis"
)

// Dates are represented as time.Time at 00:00 UTC. Instants are converted
// with the calendar's location.
type Calendar struct {
	loc *time.Location
}

func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Load resolves an IANA zone name. An empty name uses DefaultTimezone.
func Load(name string) (Calendar, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return New(loc), nil
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// LogicalDate returns the business date of an instant: local times before
// 04:00 belong to the previous calendar date.
func (c Calendar) LogicalDate(instant time.Time) time.Time {
	local := instant.In(c.Location())
	d := Date(local.Year(), local.Month(), local.Day())
	if local.Hour() < DayStartHour {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func (c Calendar) Today(now time.Time) time.Time {
	return c.LogicalDate(now)
}

// DayBounds returns the half-open instant range [start, end) of a logical date.
func (c Calendar) DayBounds(date time.Time) (time.Time, time.Time) {
	d := Truncate(date)
	start := time.Date(d.Year(), d.Month(), d.Day(), DayStartHour, 0, 0, 0, c.Location())
	next := d.AddDate(0, 0, 1)
	end := time.Date(next.Year(), next.Month(), next.Day(), DayStartHour, 0, 0, 0, c.Location())
	return start, end
}

// RangeBounds is DayBounds over an inclusive date range.
func (c Calendar) RangeBounds(from, to time.Time) (time.Time, time.Time) {
	start, _ := c.DayBounds(from)
	_, end := c.DayBounds(to)
	return start, end
}

// At places a wall-clock time inside a logical day. Clock times before the
// 04:00 cutoff land on the following calendar date.
func (c Calendar) At(date time.Time, clock ClockTime) time.Time {
	d := Truncate(date)
	if clock.BeforeCutoff() {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, c.Location())
}

// Date builds a date value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day of a date value, keeping its wall date.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseMonth returns the first day of the month.
func ParseMonth(s string) (time.Time, error) {
	return time.ParseInLocation(MonthLayout, s, time.UTC)
}

func FormatMonth(d time.Time) string {
	return d.Format(MonthLayout)
}

// MonthRange returns the first and last dates of the month containing d.
func MonthRange(d time.Time) (time.Time, time.Time) {
	first := Date(d.Year(), d.Month(), 1)
	return first, first.AddDate(0, 1, -1)
}

// WeekRange returns Monday and Sunday of the week containing d.
func WeekRange(d time.Time) (time.Time, time.Time) {
	d = Truncate(d)
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// Dates lists every date in [from, to]. It returns nil when to is before from.
func Dates(from, to time.Time) []time.Time {
	from, to = Truncate(from), Truncate(to)
	if to.Before(from) {
		return nil
	}
	out := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// SameMonth reports whether the date falls in month.
func SameMonth(d, month time.Time) bool {
	return d.Year() == month.Year() && d.Month() == month.Month()
}
