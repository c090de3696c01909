package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// InsertPunches skips punches already stored for the same employee and
	// instant and returns how many rows were new.
	InsertPunches(ctx context.Context, punches []Punch) (int64, error)
	// FindPunches returns punches with start <= punched_at < end, oldest
	// first. An empty id list means every employee.
	FindPunches(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Punch, error)
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

func (r *repository) InsertPunches(ctx context.Context, punches []Punch) (int64, error) {
	if len(punches) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "punched_at"}},
			DoNothing: true,
		}).
		CreateInBatches(punches, 500)
	return res.RowsAffected, res.Error
}

func (r *repository) FindPunches(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Punch, error) {
	var rows []Punch
	q := r.conn(ctx).
		Where("punched_at >= ? AND punched_at < ?", start, end)
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}
	err := q.Order("employee_id ASC, punched_at ASC").Find(&rows).Error
	return rows, err
}
