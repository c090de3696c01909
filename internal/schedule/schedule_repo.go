package schedule

import (
	"context"
	"database/sql"

	"github.com/anzallkiyteb-cell/bey/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]ShiftSchedule, error)
	FindByEmployee(ctx context.Context, employeeID string) (*ShiftSchedule, error)
	FindByEmployees(ctx context.Context, employeeIDs []string) ([]ShiftSchedule, error)
	FindByEmployeeForUpdate(ctx context.Context, employeeID string) (*ShiftSchedule, error)
	Save(ctx context.Context, s *ShiftSchedule) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(r.db, r.tx).WithContext(ctx)
}

func (r *repository) FindAll(ctx context.Context) ([]ShiftSchedule, error) {
	var out []ShiftSchedule
	err := r.conn(ctx).Order("employee_id").Find(&out).Error
	return out, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*ShiftSchedule, error) {
	var s ShiftSchedule
	err := r.conn(ctx).First(&s, "employee_id = ?", employeeID).Error
	return &s, err
}

func (r *repository) FindByEmployees(ctx context.Context, employeeIDs []string) ([]ShiftSchedule, error) {
	var out []ShiftSchedule
	if len(employeeIDs) == 0 {
		return out, nil
	}
	err := r.conn(ctx).Where("employee_id IN ?", employeeIDs).Find(&out).Error
	return out, err
}

func (r *repository) FindByEmployeeForUpdate(ctx context.Context, employeeID string) (*ShiftSchedule, error) {
	var s ShiftSchedule
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "employee_id = ?", employeeID).Error
	return &s, err
}

func (r *repository) Save(ctx context.Context, s *ShiftSchedule) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
