package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Upsert inserts the record or refreshes the computed columns of an
	// existing unpaid row. Paid rows are left as they are.
	Upsert(ctx context.Context, rec *PayrollRecord) error
	FindByEmployeeMonth(ctx context.Context, employeeID string, month time.Time) (*PayrollRecord, error)
	FindByMonth(ctx context.Context, month time.Time) ([]PayrollRecord, error)
	// MarkPaid flips an unpaid row and reports how many rows changed.
	MarkPaid(ctx context.Context, employeeID string, month time.Time, amount int64, paidBy *uuid.UUID, at time.Time) (int64, error)
	MarkUnpaid(ctx context.Context, employeeID string, month time.Time) (int64, error)
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

func monthKey(month time.Time) string {
	return month.Format("2006-01-02")
}

func (r *repository) Upsert(ctx context.Context, rec *PayrollRecord) error {
	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns(computedColumns),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "payroll_records", Name: "paid"}, Value: false},
		}},
	}).Create(rec).Error
}

func (r *repository) FindByEmployeeMonth(ctx context.Context, employeeID string, month time.Time) (*PayrollRecord, error) {
	var rec PayrollRecord
	err := r.conn(ctx).
		Where("employee_id = ? AND month = ?", employeeID, monthKey(month)).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByMonth(ctx context.Context, month time.Time) ([]PayrollRecord, error) {
	var out []PayrollRecord
	err := r.conn(ctx).
		Where("month = ?", monthKey(month)).
		Order("employee_id").
		Find(&out).Error
	return out, err
}

func (r *repository) MarkPaid(
	ctx context.Context,
	employeeID string,
	month time.Time,
	amount int64,
	paidBy *uuid.UUID,
	at time.Time,
) (int64, error) {
	res := r.conn(ctx).Model(&PayrollRecord{}).
		Where("employee_id = ? AND month = ? AND paid = ?", employeeID, monthKey(month), false).
		Updates(map[string]any{
			"paid":        true,
			"paid_at":     at,
			"paid_amount": amount,
			"paid_by":     paidBy,
			"updated_at":  at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkUnpaid(ctx context.Context, employeeID string, month time.Time) (int64, error) {
	res := r.conn(ctx).Model(&PayrollRecord{}).
		Where("employee_id = ? AND month = ? AND paid = ?", employeeID, monthKey(month), true).
		Updates(map[string]any{
			"paid":        false,
			"paid_at":     nil,
			"paid_amount": nil,
			"paid_by":     nil,
			"updated_at":  time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
