package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindRetard     Kind = "retard"
	KindAbsence    Kind = "absence"
	KindAdjustment Kind = "adjustment"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindRetard:
		return KindRetard, nil
	case KindAbsence:
		return KindAbsence, nil
	case KindAdjustment:
		return KindAdjustment, nil
	}
	return "", fmt.Errorf("unknown entry kind %q", s)
}

type AbsenceType string

const (
	AbsenceJustified   AbsenceType = "Justifié"
	AbsenceUnjustified AbsenceType = "Non justifié"
	AbsenceSuspension  AbsenceType = "Mise à pied"
	AbsencePresent     AbsenceType = "Présent"
)

var absenceAliases = map[string]AbsenceType{
	"justifié":            AbsenceJustified,
	"justifie":            AbsenceJustified,
	"absent_justifie":     AbsenceJustified,
	"non justifié":        AbsenceUnjustified,
	"non justifie":        AbsenceUnjustified,
	"non_justifie":        AbsenceUnjustified,
	"absent_non_justifie": AbsenceUnjustified,
	"mise à pied":         AbsenceSuspension,
	"mise a pied":         AbsenceSuspension,
	"mise_a_pied":         AbsenceSuspension,
	"présent":             AbsencePresent,
	"present":             AbsencePresent,
}

func ParseAbsenceType(s string) (AbsenceType, error) {
	if t, ok := absenceAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown absence type %q", s)
}

// CountsAsAbsent reports whether the type adds to a month's absent days.
// A manual Présent does not.
func (t AbsenceType) CountsAsAbsent() bool {
	return t == AbsenceJustified || t == AbsenceUnjustified || t == AbsenceSuspension
}

func (t AbsenceType) rank() int {
	switch t {
	case AbsenceSuspension:
		return 4
	case AbsenceUnjustified:
		return 3
	case AbsenceJustified:
		return 2
	case AbsencePresent:
		return 1
	}
	return 0
}

type Category string

const (
	CategoryExtra      Category = "Extra"
	CategoryPrime      Category = "Prime"
	CategoryDoublage   Category = "Doublage"
	CategoryInfraction Category = "Infraction"
)

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extra":
		return CategoryExtra, nil
	case "prime":
		return CategoryPrime, nil
	case "doublage":
		return CategoryDoublage, nil
	case "infraction":
		return CategoryInfraction, nil
	}
	return "", fmt.Errorf("unknown adjustment category %q", s)
}

// Sign is +1 for additive categories and -1 for Infraction.
func (c Category) Sign() int64 {
	if c == CategoryInfraction {
		return -1
	}
	return 1
}

// Entry is one manual record in the notebook. Amounts are in millimes and
// never negative; the category carries the sign.
type Entry struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID   `gorm:"type:uuid;not null;index:idx_ledger_employee_date"`
	Kind        Kind        `gorm:"type:varchar(20);not null"`
	AbsenceType AbsenceType `gorm:"type:varchar(30)"`
	Category    Category    `gorm:"type:varchar(20)"`
	Amount      int64       `gorm:"not null;default:0"`
	Reason      string      `gorm:"type:text"`
	OccurredAt  time.Time   `gorm:"type:timestamptz;not null"`
	LogicalDate time.Time   `gorm:"type:date;not null;index:idx_ledger_employee_date"`
	CreatedBy   *uuid.UUID  `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Entry) TableName() string {
	return "ledger_entries"
}

// SignedAmount is the entry's effect on net pay.
func (e Entry) SignedAmount() int64 {
	if e.Kind != KindAdjustment {
		return 0
	}
	return e.Category.Sign() * e.Amount
}

// Display values follow the notebook's entry names.
const (
	DisplayNone        = ""
	DisplayPresent     = "present"
	DisplayRetard      = "retard"
	DisplayJustified   = "absent_justifie"
	DisplayUnjustified = "absent_non_justifie"
	DisplaySuspension  = "mise_a_pied"
)

// DisplayKind picks what a single day shows when several entries coexist:
// a suspension or absence hides a plain lateness. Aggregation never uses
// this; every entry still counts on its own.
func DisplayKind(entries []Entry) string {
	absence := StrongestAbsence(entries)
	switch absence {
	case AbsenceSuspension:
		return DisplaySuspension
	case AbsenceUnjustified:
		return DisplayUnjustified
	case AbsenceJustified:
		return DisplayJustified
	}
	for _, e := range entries {
		if e.Kind == KindRetard {
			return DisplayRetard
		}
	}
	if absence == AbsencePresent {
		return DisplayPresent
	}
	return DisplayNone
}

// StrongestAbsence returns the highest-precedence absence type among the
// entries, or "" when there is none.
func StrongestAbsence(entries []Entry) AbsenceType {
	var best AbsenceType
	for _, e := range entries {
		if e.Kind == KindAbsence && e.AbsenceType.rank() > best.rank() {
			best = e.AbsenceType
		}
	}
	return best
}
