package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"
)

type Category string

const (
	CategoryUnset    Category = ""
	CategoryMatin    Category = "Matin"
	CategorySoir     Category = "Soir"
	CategoryDoublage Category = "Doublage"
	CategoryRepos    Category = "Repos"
)

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CategoryUnset, nil
	case "matin":
		return CategoryMatin, nil
	case "soir":
		return CategorySoir, nil
	case "doublage":
		return CategoryDoublage, nil
	case "repos":
		return CategoryRepos, nil
	}
	return CategoryUnset, fmt.Errorf("unknown shift category %q", s)
}

type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeCoupure Mode = "coupure"
	ModeFixed   Mode = "fixed"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNormal:
		return ModeNormal, nil
	case ModeCoupure:
		return ModeCoupure, nil
	case ModeFixed:
		return ModeFixed, nil
	}
	return "", fmt.Errorf("unknown schedule mode %q", s)
}

var dayKeys = [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"}

// DayKey is the storage key of a weekday (dim, lun, ... sam).
func DayKey(wd time.Weekday) string {
	return dayKeys[wd]
}

func ParseDayKey(s string) (time.Weekday, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for i, key := range dayKeys {
		if key == k {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// Window is a working interval on a logical day. End may be past midnight.
type Window struct {
	Start calendar.ClockTime
	End   calendar.ClockTime
}

func (w Window) Duration() time.Duration {
	return time.Duration(w.End.Offset()-w.Start.Offset()) * time.Minute
}

func (w Window) Valid() bool {
	return w.End.Offset() > w.Start.Offset()
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

type Schedule struct {
	EmployeeID string
	Mode       Mode
	Days       [7]Category // indexed by time.Weekday
	Split      [2]Window   // coupure periods
	Fixed      [7]Window   // fixed in/out per weekday

	// Invalid carries the reason a stored record could not be read. Such a
	// schedule resolves every day as a configuration gap.
	Invalid string
}

type Resolution struct {
	Category   Category
	Windows    []Window
	IsSplit    bool
	Configured bool
	Warning    string
}

// Working reports whether the day expects the employee on site.
func (r Resolution) Working() bool {
	return r.Category != CategoryRepos && len(r.Windows) > 0
}

// Start is the first scheduled window start, if any.
func (r Resolution) Start() (calendar.ClockTime, bool) {
	if len(r.Windows) == 0 {
		return 0, false
	}
	return r.Windows[0].Start, true
}

type StandardWindows struct {
	Matin Window
	Soir  Window
}

func DefaultStandardWindows() StandardWindows {
	return StandardWindows{
		Matin: Window{Start: calendar.NewClockTime(8, 0), End: calendar.NewClockTime(16, 0)},
		Soir:  Window{Start: calendar.NewClockTime(16, 0), End: calendar.NewClockTime(0, 0)},
	}
}

func ParseStandardWindows(matinStart, matinEnd, soirStart, soirEnd string) (StandardWindows, error) {
	var (
		std  StandardWindows
		errs []string
	)
	parse := func(label, s string) calendar.ClockTime {
		c, err := calendar.ParseClock(s)
		if err != nil {
			errs = append(errs, label+": "+err.Error())
		}
		return c
	}
	std.Matin = Window{Start: parse("matin start", matinStart), End: parse("matin end", matinEnd)}
	std.Soir = Window{Start: parse("soir start", soirStart), End: parse("soir end", soirEnd)}
	if len(errs) > 0 {
		return StandardWindows{}, fmt.Errorf("standard shift windows: %s", strings.Join(errs, "; "))
	}
	if !std.Matin.Valid() || !std.Soir.Valid() {
		return StandardWindows{}, fmt.Errorf("standard shift windows must end after they start")
	}
	return std, nil
}

type Resolver struct {
	standard StandardWindows
}

func NewResolver(std StandardWindows) Resolver {
	return Resolver{standard: std}
}

func gap(warning string) Resolution {
	return Resolution{Category: CategoryRepos, Warning: warning}
}

// ResolveDay turns a schedule and weekday into the windows in effect.
// Missing or unreadable configuration never falls back to a working day:
// it resolves as Repos with Configured=false and a warning.
func (r Resolver) ResolveDay(s *Schedule, wd time.Weekday) Resolution {
	if s == nil {
		return gap("no shift schedule configured")
	}
	if s.Invalid != "" {
		return gap("shift schedule unreadable: " + s.Invalid)
	}

	cat := s.Days[wd]
	switch cat {
	case CategoryUnset:
		return gap(fmt.Sprintf("no shift category set for %s", DayKey(wd)))
	case CategoryRepos:
		return Resolution{Category: CategoryRepos, Configured: true}
	case CategoryMatin, CategorySoir, CategoryDoublage:
	default:
		return gap(fmt.Sprintf("unknown shift category %q for %s", cat, DayKey(wd)))
	}

	var res Resolution
	switch s.Mode {
	case ModeNormal:
		switch cat {
		case CategoryMatin:
			res = Resolution{Windows: []Window{r.standard.Matin}}
		case CategorySoir:
			res = Resolution{Windows: []Window{r.standard.Soir}}
		case CategoryDoublage:
			res = Resolution{Windows: []Window{r.standard.Matin, r.standard.Soir}, IsSplit: true}
		}
	case ModeCoupure:
		res = Resolution{Windows: []Window{s.Split[0], s.Split[1]}, IsSplit: true}
	case ModeFixed:
		res = Resolution{Windows: []Window{s.Fixed[wd]}}
	default:
		return gap(fmt.Sprintf("unknown schedule mode %q", s.Mode))
	}

	for _, w := range res.Windows {
		if !w.Valid() {
			return gap(fmt.Sprintf("invalid shift window %s for %s", w, DayKey(wd)))
		}
	}
	if res.IsSplit && res.Windows[1].Start.Offset() < res.Windows[0].End.Offset() {
		return gap(fmt.Sprintf("overlapping shift windows for %s", DayKey(wd)))
	}

	res.Category = cat
	res.Configured = true
	return res
}
