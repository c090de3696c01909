package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Employee is owned by the account management side; this service only
// reads it.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username   string    `gorm:"uniqueIndex"`
	FullName   string
	Department string `gorm:"index"`
	Role       string
	BaseSalary int64   // monthly, in millimes
	IsBlocked  bool    `gorm:"index"`
	ZktimeID   *string `gorm:"column:zktime_id;uniqueIndex"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) DisplayName() string {
	if strings.TrimSpace(e.FullName) != "" {
		return e.FullName
	}
	return e.Username
}

func (e Employee) IsAdmin() bool {
	return strings.EqualFold(e.Role, RoleAdmin)
}

// Eligible reports whether the employee takes part in attendance
// statistics and payroll.
func (e Employee) Eligible() bool {
	return !e.IsBlocked && !e.IsAdmin()
}
