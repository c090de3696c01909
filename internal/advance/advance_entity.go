package advance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusValidated Status = "Validé"
	StatusPending   Status = "En attente"
	StatusRefused   Status = "Refusé"
)

var statusAliases = map[string]Status{
	"validé":     StatusValidated,
	"valide":     StatusValidated,
	"approved":   StatusValidated,
	"en attente": StatusPending,
	"pending":    StatusPending,
	"refusé":     StatusRefused,
	"refuse":     StatusRefused,
	"rejected":   StatusRefused,
}

func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown advance status %q", s)
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusValidated, StatusRefused},
	StatusValidated: {StatusPending},
	StatusRefused:   {StatusPending},
}

func (s Status) CanMoveTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type Advance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_advances_employee_date"`
	Amount     int64     `gorm:"not null"` // millimes
	Date       time.Time `gorm:"type:date;not null;index:idx_advances_employee_date"`
	Status     Status    `gorm:"type:varchar(20);not null;default:'En attente';index"`
	Motif      string    `gorm:"type:text"`

	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Advance) TableName() string {
	return "advances"
}

func (a Advance) Counts() bool {
	return a.Status == StatusValidated
}
