package ledger

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
	Kinds       []Kind
	Limit       int
	Offset      int
}

//go:generate mockgen -source=ledger_repo.go -destination=mock/ledger_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Entry) error
	FindByID(ctx context.Context, id string) (*Entry, error)
	UpdateReason(ctx context.Context, id, reason string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Find(ctx context.Context, filter Filter) ([]Entry, error)
	Count(ctx context.Context, filter Filter) (int64, error)
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

func (r *repository) scoped(ctx context.Context, f Filter) *gorm.DB {
	q := r.conn(ctx).Model(&Entry{}).
		Where("logical_date BETWEEN ? AND ?", f.From.Format("2006-01-02"), f.To.Format("2006-01-02"))
	if len(f.EmployeeIDs) > 0 {
		q = q.Where("employee_id IN ?", f.EmployeeIDs)
	}
	if len(f.Kinds) > 0 {
		q = q.Where("kind IN ?", f.Kinds)
	}
	return q
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) UpdateReason(ctx context.Context, id, reason string) (int64, error) {
	res := r.conn(ctx).Model(&Entry{}).
		Where("id = ?", id).
		Updates(map[string]any{"reason": reason, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

// Delete is permanent.
func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn(ctx).Delete(&Entry{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) Find(ctx context.Context, f Filter) ([]Entry, error) {
	var out []Entry
	q := r.scoped(ctx, f).Order("logical_date ASC, occurred_at ASC, id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *repository) Count(ctx context.Context, f Filter) (int64, error) {
	var n int64
	err := r.scoped(ctx, f).Count(&n).Error
	return n, err
}
