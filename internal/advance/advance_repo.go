package advance

import (
	"context"
	"database/sql"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/shared/dbtx"

	"gorm.io/gorm"
)

type Filter struct {
	EmployeeIDs []string
	From        time.Time
	To          time.Time
	Statuses    []Status
}

//go:generate mockgen -source=advance_repo.go -destination=mock/advance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Advance) error
	FindByID(ctx context.Context, id string) (*Advance, error)
	Find(ctx context.Context, filter Filter) ([]Advance, error)
	Update(ctx context.Context, a *Advance) error
	Delete(ctx context.Context, id string) (int64, error)
	// SumValidated totals Validé advances per employee over [from, to].
	SumValidated(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]int64, error)
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

func (r *repository) Create(ctx context.Context, a *Advance) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Advance, error) {
	var a Advance
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Find(ctx context.Context, f Filter) ([]Advance, error) {
	q := r.conn(ctx).Model(&Advance{})
	if len(f.EmployeeIDs) > 0 {
		q = q.Where("employee_id IN ?", f.EmployeeIDs)
	}
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From.Format("2006-01-02"))
	}
	if !f.To.IsZero() {
		q = q.Where("date <= ?", f.To.Format("2006-01-02"))
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var out []Advance
	err := q.Order("date DESC, created_at DESC").Find(&out).Error
	return out, err
}

func (r *repository) Update(ctx context.Context, a *Advance) error {
	return r.conn(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn(ctx).Delete(&Advance{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

type validatedSum struct {
	EmployeeID string
	Total      int64
}

func (r *repository) SumValidated(ctx context.Context, employeeIDs []string, from, to time.Time) (map[string]int64, error) {
	q := r.conn(ctx).Model(&Advance{}).
		Select("employee_id, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", StatusValidated).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}

	var rows []validatedSum
	if err := q.Group("employee_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.EmployeeID] = row.Total
	}
	return out, nil
}
