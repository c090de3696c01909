package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_MarkPaid_OnlyFromUnpaid(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := NewRepository(gdb)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	actor := uuid.New()

	mock.ExpectExec(`UPDATE "payroll_records" SET .* WHERE employee_id = \$\d+ AND month = \$\d+ AND paid = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.MarkPaid(context.Background(), uuid.NewString(), month, 1250, &actor, time.Now())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkUnpaid(t *testing.T) {
	gdb, mock := newGormMock(t)
	repo := NewRepository(gdb)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "payroll_records" SET .*"paid_amount"=\$\d+.* WHERE employee_id = \$\d+ AND month = \$\d+ AND paid = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.MarkUnpaid(context.Background(), uuid.NewString(), month)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
