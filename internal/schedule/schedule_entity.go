package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/calendar"

	"github.com/google/uuid"
)

const (
	DefaultFixedIn  = "08:00"
	DefaultFixedOut = "17:00"
	DefaultP1In     = "08:00"
	DefaultP1Out    = "12:00"
	DefaultP2In     = "14:00"
	DefaultP2Out    = "18:00"
)

// ShiftSchedule keeps the roster's column layout: one category column per
// weekday, the coupure periods, and fixed in/out pairs per weekday. Both
// mode-specific time sets stay stored when the mode changes.
type ShiftSchedule struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_schedule_employee"`

	Dim string `gorm:"column:dim"`
	Lun string `gorm:"column:lun"`
	Mar string `gorm:"column:mar"`
	Mer string `gorm:"column:mer"`
	Jeu string `gorm:"column:jeu"`
	Ven string `gorm:"column:ven"`
	Sam string `gorm:"column:sam"`

	IsCoupure bool `gorm:"column:is_coupure"`
	IsFixed   bool `gorm:"column:is_fixed"`

	P1In  string `gorm:"column:p1_in"`
	P1Out string `gorm:"column:p1_out"`
	P2In  string `gorm:"column:p2_in"`
	P2Out string `gorm:"column:p2_out"`

	DimIn  string `gorm:"column:dim_in"`
	DimOut string `gorm:"column:dim_out"`
	LunIn  string `gorm:"column:lun_in"`
	LunOut string `gorm:"column:lun_out"`
	MarIn  string `gorm:"column:mar_in"`
	MarOut string `gorm:"column:mar_out"`
	MerIn  string `gorm:"column:mer_in"`
	MerOut string `gorm:"column:mer_out"`
	JeuIn  string `gorm:"column:jeu_in"`
	JeuOut string `gorm:"column:jeu_out"`
	VenIn  string `gorm:"column:ven_in"`
	VenOut string `gorm:"column:ven_out"`
	SamIn  string `gorm:"column:sam_in"`
	SamOut string `gorm:"column:sam_out"`

	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShiftSchedule) TableName() string {
	return "shift_schedules"
}

// NewShiftSchedule returns an empty record with the default times filled.
func NewShiftSchedule(employeeID uuid.UUID) *ShiftSchedule {
	s := &ShiftSchedule{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		P1In:       DefaultP1In,
		P1Out:      DefaultP1Out,
		P2In:       DefaultP2In,
		P2Out:      DefaultP2Out,
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		in, out := s.fixedFields(wd)
		*in, *out = DefaultFixedIn, DefaultFixedOut
	}
	return s
}

func (s *ShiftSchedule) categoryField(wd time.Weekday) *string {
	switch wd {
	case time.Sunday:
		return &s.Dim
	case time.Monday:
		return &s.Lun
	case time.Tuesday:
		return &s.Mar
	case time.Wednesday:
		return &s.Mer
	case time.Thursday:
		return &s.Jeu
	case time.Friday:
		return &s.Ven
	default:
		return &s.Sam
	}
}

func (s *ShiftSchedule) fixedFields(wd time.Weekday) (*string, *string) {
	switch wd {
	case time.Sunday:
		return &s.DimIn, &s.DimOut
	case time.Monday:
		return &s.LunIn, &s.LunOut
	case time.Tuesday:
		return &s.MarIn, &s.MarOut
	case time.Wednesday:
		return &s.MerIn, &s.MerOut
	case time.Thursday:
		return &s.JeuIn, &s.JeuOut
	case time.Friday:
		return &s.VenIn, &s.VenOut
	default:
		return &s.SamIn, &s.SamOut
	}
}

func (s *ShiftSchedule) Category(wd time.Weekday) string {
	return *s.categoryField(wd)
}

func (s *ShiftSchedule) SetCategory(wd time.Weekday, c Category) {
	*s.categoryField(wd) = string(c)
}

func (s *ShiftSchedule) FixedPair(wd time.Weekday) (string, string) {
	in, out := s.fixedFields(wd)
	return *in, *out
}

func (s *ShiftSchedule) SetFixedPair(wd time.Weekday, in, out string) {
	pin, pout := s.fixedFields(wd)
	*pin, *pout = in, out
}

func (s *ShiftSchedule) Mode() (Mode, error) {
	switch {
	case s.IsCoupure && s.IsFixed:
		return "", fmt.Errorf("both coupure and fixed flags are set")
	case s.IsCoupure:
		return ModeCoupure, nil
	case s.IsFixed:
		return ModeFixed, nil
	}
	return ModeNormal, nil
}

func (s *ShiftSchedule) SetMode(m Mode) {
	s.IsCoupure = m == ModeCoupure
	s.IsFixed = m == ModeFixed
}

func parseWindow(label, in, out, defIn, defOut string) (Window, error) {
	if strings.TrimSpace(in) == "" {
		in = defIn
	}
	if strings.TrimSpace(out) == "" {
		out = defOut
	}
	start, err := calendar.ParseClock(in)
	if err != nil {
		return Window{}, fmt.Errorf("%s in: %w", label, err)
	}
	end, err := calendar.ParseClock(out)
	if err != nil {
		return Window{}, fmt.Errorf("%s out: %w", label, err)
	}
	return Window{Start: start, End: end}, nil
}

// ToSchedule converts the stored record. Only the active mode's times are
// required to parse; the inactive set is kept as stored.
func (s *ShiftSchedule) ToSchedule() (*Schedule, error) {
	out := &Schedule{EmployeeID: s.EmployeeID.String()}

	mode, err := s.Mode()
	if err != nil {
		return nil, err
	}
	out.Mode = mode

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		cat, err := ParseCategory(s.Category(wd))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", DayKey(wd), err)
		}
		out.Days[wd] = cat
	}

	switch mode {
	case ModeCoupure:
		if out.Split[0], err = parseWindow("p1", s.P1In, s.P1Out, DefaultP1In, DefaultP1Out); err != nil {
			return nil, err
		}
		if out.Split[1], err = parseWindow("p2", s.P2In, s.P2Out, DefaultP2In, DefaultP2Out); err != nil {
			return nil, err
		}
	case ModeFixed:
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			in, o := s.FixedPair(wd)
			if out.Fixed[wd], err = parseWindow(DayKey(wd), in, o, DefaultFixedIn, DefaultFixedOut); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
