package schedule

import (
	"testing"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"

	"github.com/stretchr/testify/assert"
)

func clock(s string) calendar.ClockTime { return calendar.MustParseClock(s) }

func win(start, end string) Window { return Window{Start: clock(start), End: clock(end)} }

func weekOf(c Category) [7]Category {
	var days [7]Category
	for i := range days {
		days[i] = c
	}
	return days
}

func TestResolveDay(t *testing.T) {
	r := NewResolver(DefaultStandardWindows())

	fixed := &Schedule{Mode: ModeFixed, Days: weekOf(CategoryMatin)}
	for i := range fixed.Fixed {
		fixed.Fixed[i] = win("09:00", "17:00")
	}
	fixed.Fixed[time.Friday] = win("10:00", "18:00")

	tests := []struct {
		name       string
		sched      *Schedule
		day        time.Weekday
		want       Category
		windows    []Window
		split      bool
		configured bool
		warning    bool
	}{
		{name: "missing schedule is a gap", sched: nil, day: time.Monday, want: CategoryRepos, warning: true},
		{name: "unreadable schedule is a gap", sched: &Schedule{Invalid: "bad"}, day: time.Monday, want: CategoryRepos, warning: true},
		{name: "unset day is a gap", sched: &Schedule{Mode: ModeNormal}, day: time.Monday, want: CategoryRepos, warning: true},
		{name: "repos", sched: &Schedule{Mode: ModeNormal, Days: weekOf(CategoryRepos)}, day: time.Sunday, want: CategoryRepos, configured: true},
		{
			name: "normal matin", sched: &Schedule{Mode: ModeNormal, Days: weekOf(CategoryMatin)}, day: time.Monday,
			want: CategoryMatin, windows: []Window{win("08:00", "16:00")}, configured: true,
		},
		{
			name: "normal soir ends at midnight", sched: &Schedule{Mode: ModeNormal, Days: weekOf(CategorySoir)}, day: time.Monday,
			want: CategorySoir, windows: []Window{win("16:00", "00:00")}, configured: true,
		},
		{
			name: "normal doublage is split", sched: &Schedule{Mode: ModeNormal, Days: weekOf(CategoryDoublage)}, day: time.Monday,
			want: CategoryDoublage, windows: []Window{win("08:00", "16:00"), win("16:00", "00:00")}, split: true, configured: true,
		},
		{
			name: "coupure uses both periods",
			sched: &Schedule{Mode: ModeCoupure, Days: weekOf(CategoryMatin),
				Split: [2]Window{win("08:00", "12:00"), win("14:00", "18:00")}},
			day: time.Tuesday, want: CategoryMatin,
			windows: []Window{win("08:00", "12:00"), win("14:00", "18:00")}, split: true, configured: true,
		},
		{
			name: "overlapping coupure is a gap",
			sched: &Schedule{Mode: ModeCoupure, Days: weekOf(CategoryMatin),
				Split: [2]Window{win("08:00", "15:00"), win("14:00", "18:00")}},
			day: time.Tuesday, want: CategoryRepos, warning: true,
		},
		{name: "fixed uses the weekday pair", sched: fixed, day: time.Friday, want: CategoryMatin, windows: []Window{win("10:00", "18:00")}, configured: true},
		{
			name: "fixed with empty pair is a gap", sched: &Schedule{Mode: ModeFixed, Days: weekOf(CategoryMatin)}, day: time.Monday,
			want: CategoryRepos, warning: true,
		},
		{name: "unknown mode is a gap", sched: &Schedule{Mode: "weird", Days: weekOf(CategoryMatin)}, day: time.Monday, want: CategoryRepos, warning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ResolveDay(tt.sched, tt.day)

			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.windows, got.Windows)
			assert.Equal(t, tt.split, got.IsSplit)
			assert.Equal(t, tt.configured, got.Configured)
			assert.Equal(t, tt.warning, got.Warning != "")
		})
	}
}

func TestResolution_Working(t *testing.T) {
	assert.False(t, Resolution{Category: CategoryRepos}.Working())
	assert.True(t, Resolution{Category: CategoryMatin, Windows: []Window{win("08:00", "16:00")}}.Working())

	start, ok := Resolution{Windows: []Window{win("08:00", "16:00")}}.Start()
	assert.True(t, ok)
	assert.Equal(t, clock("08:00"), start)
}

func TestWindowDuration(t *testing.T) {
	assert.Equal(t, 8*time.Hour, win("16:00", "00:00").Duration())
	assert.Equal(t, 4*time.Hour, win("22:00", "02:00").Duration())
	assert.False(t, win("12:00", "12:00").Valid())
}

func TestParseStandardWindows(t *testing.T) {
	std, err := ParseStandardWindows("07:00", "15:00", "15:00", "23:00")
	assert.NoError(t, err)
	assert.Equal(t, win("07:00", "15:00"), std.Matin)

	_, err = ParseStandardWindows("7h", "15:00", "15:00", "23:00")
	assert.Error(t, err)

	_, err = ParseStandardWindows("15:00", "07:00", "15:00", "23:00")
	assert.Error(t, err)
}

func TestParseDayKeyAndCategory(t *testing.T) {
	wd, err := ParseDayKey("LUN")
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
	assert.Equal(t, "dim", DayKey(time.Sunday))

	_, err = ParseDayKey("monday")
	assert.Error(t, err)

	c, err := ParseCategory("doublage")
	assert.NoError(t, err)
	assert.Equal(t, CategoryDoublage, c)

	_, err = ParseCategory("Nuit")
	assert.Error(t, err)
}
