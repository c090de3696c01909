package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/schedule"
)

const DefaultGrace = 10 * time.Minute

type ClassifyInput struct {
	EmployeeID string
	Date       time.Time // logical date
	Schedule   *schedule.Schedule
	Punches    []time.Time
	// Manual is the strongest ledger absence type recorded for the day.
	Manual ledger.AbsenceType
}

// Classifier turns one employee-day of punches into a DailyAttendance. It
// holds no state and never fails: problems come back as warnings.
type Classifier struct {
	cal      calendar.Calendar
	resolver schedule.Resolver
	grace    time.Duration
}

func NewClassifier(cal calendar.Calendar, resolver schedule.Resolver, grace time.Duration) Classifier {
	if grace < 0 {
		grace = 0
	}
	return Classifier{cal: cal, resolver: resolver, grace: grace}
}

func (c Classifier) Grace() time.Duration {
	return c.grace
}

func (c Classifier) Classify(in ClassifyInput) DailyAttendance {
	date := calendar.Truncate(in.Date)
	out := DailyAttendance{
		EmployeeID: in.EmployeeID,
		Date:       date,
		ManualType: in.Manual,
	}

	res := c.resolver.ResolveDay(in.Schedule, date.Weekday())
	out.Shift = res.Category
	if res.Warning != "" {
		out.Warnings = append(out.Warnings, res.Warning)
	}

	punches, dropped := c.punchesOfDay(date, in.Punches)
	out.Warnings = append(out.Warnings, dropped...)

	if len(punches) > 0 {
		first, last := punches[0], punches[len(punches)-1]
		out.ClockIn = &first
		out.LastPunch = &last
		if len(punches) > 1 {
			out.ClockOut = &last
		}
		out.Worked = workedDuration(punches)
		out.Source = SourcePunch
	}

	if !res.Working() {
		out.State = StateRepos
		if len(punches) > 0 {
			out.State = StatePresent
			out.Warnings = append(out.Warnings, "punches recorded on a rest day")
		} else {
			out.Source = SourceSchedule
		}
		return out
	}

	start := c.cal.At(date, res.Windows[0].Start)
	out.ScheduledStart = &start

	if len(punches) == 0 {
		switch {
		case in.Manual == ledger.AbsencePresent:
			out.State = StatePresent
			out.Source = SourceManual
		case in.Manual.CountsAsAbsent():
			out.State = StateAbsent
			out.Source = SourceManual
		default:
			out.State = StateAbsent
			out.Source = SourceSchedule
		}
		return out
	}

	late, warning := c.lateness(date, res, punches)
	if warning != "" {
		out.Warnings = append(out.Warnings, warning)
	}
	out.LateBy = late
	out.State = StatePresent
	if late > 0 {
		out.State = StateRetard
	}
	return out
}

// punchesOfDay keeps the punches inside the logical day, sorted and without
// duplicates, and reports the others.
func (c Classifier) punchesOfDay(date time.Time, raw []time.Time) ([]time.Time, []string) {
	start, end := c.cal.DayBounds(date)
	kept := make([]time.Time, 0, len(raw))
	var warnings []string
	for _, p := range raw {
		if p.Before(start) || !p.Before(end) {
			warnings = append(warnings, fmt.Sprintf("punch at %s is outside the logical day and was ignored", p.In(c.cal.Location()).Format(time.RFC3339)))
			continue
		}
		kept = append(kept, p)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Before(kept[j]) })

	uniq := kept[:0]
	for i, p := range kept {
		if i > 0 && p.Equal(kept[i-1]) {
			continue
		}
		uniq = append(uniq, p)
	}
	return uniq, warnings
}

type interval struct {
	start, end time.Time
}

func (iv interval) contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

func (iv interval) distance(t time.Time) time.Duration {
	switch {
	case t.Before(iv.start):
		return iv.start.Sub(t)
	case t.After(iv.end):
		return t.Sub(iv.end)
	}
	return 0
}

// overlap is how long [from, to) runs inside the window.
func (iv interval) overlap(from, to time.Time) time.Duration {
	if from.Before(iv.start) {
		from = iv.start
	}
	if to.After(iv.end) {
		to = iv.end
	}
	if !to.After(from) {
		return 0
	}
	return to.Sub(from)
}

// assign picks the window an in/out pair belongs to. The pair goes to the
// first window it runs inside for longer than the grace period; every such
// window counts as covered. A pair too short for that (a lone entry, or a
// few minutes around a boundary) falls back to the window holding its
// entry, then to the nearest one, later windows winning ties.
func (c Classifier) assign(windows []interval, entry, exit time.Time) (int, []int) {
	owner := -1
	var spanned []int
	for w, iv := range windows {
		if iv.overlap(entry, exit) > c.grace {
			if owner < 0 {
				owner = w
			}
			spanned = append(spanned, w)
		}
	}
	if owner >= 0 {
		return owner, spanned
	}

	for w, iv := range windows {
		if iv.contains(entry) {
			return w, []int{w}
		}
	}
	owner = 0
	for w := 1; w < len(windows); w++ {
		if windows[w].distance(entry) <= windows[owner].distance(entry) {
			owner = w
		}
	}
	return owner, []int{owner}
}

// lateness walks the punches as in/out pairs, gives each pair to a window
// and compares the first entry of each window with its start plus grace.
// Late windows add their delay past the start. A window a pair runs
// through without its own entry counts as covered and on time, which is
// how a continuous double shift looks.
func (c Classifier) lateness(date time.Time, res schedule.Resolution, punches []time.Time) (time.Duration, string) {
	windows := make([]interval, len(res.Windows))
	for i, w := range res.Windows {
		windows[i] = interval{start: c.cal.At(date, w.Start), end: c.cal.At(date, w.End)}
	}

	firstEntry := make([]*time.Time, len(windows))
	covered := make([]bool, len(windows))
	for i := 0; i < len(punches); i += 2 {
		entry := punches[i]
		exit := entry
		if i+1 < len(punches) {
			exit = punches[i+1]
		}

		owner, spanned := c.assign(windows, entry, exit)
		if firstEntry[owner] == nil && !covered[owner] {
			firstEntry[owner] = &punches[i]
		}
		for _, w := range spanned {
			covered[w] = true
		}
	}

	var (
		late    time.Duration
		missing []int
	)
	for i, w := range windows {
		if !covered[i] {
			missing = append(missing, i+1)
			continue
		}
		if p := firstEntry[i]; p != nil && p.After(w.start.Add(c.grace)) {
			late += p.Sub(w.start)
		}
	}

	if res.IsSplit && len(missing) > 0 {
		return late, fmt.Sprintf("split shift only partially covered: no punch for period %v", missing)
	}
	return late, ""
}

// workedDuration pairs punches by alternation (in, out, in, out...). A
// trailing unmatched entry adds nothing.
func workedDuration(punches []time.Time) time.Duration {
	var total time.Duration
	for i := 0; i+1 < len(punches); i += 2 {
		total += punches[i+1].Sub(punches[i])
	}
	return total
}
