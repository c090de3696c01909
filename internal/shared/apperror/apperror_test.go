package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := apperror.New(apperror.CodeAlreadyPaid, "Payroll already paid", http.StatusConflict)

	got := apperror.ToHTTP(err)

	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, apperror.CodeAlreadyPaid, got.Code)
	assert.Equal(t, "Payroll already paid", got.Message)
	assert.Nil(t, got.Details)
}

func TestToHTTP_WrappedClientErrorExposesCause(t *testing.T) {
	err := apperror.Wrap(errors.New("amount: must be >= 0"), apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest)

	got := apperror.ToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, got.Status)
	assert.Equal(t, "amount: must be >= 0", got.Details)
}

func TestToHTTP_UnknownErrorHidesInternals(t *testing.T) {
	got := apperror.ToHTTP(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, apperror.CodeInternalError, got.Code)
	assert.NotContains(t, got.Message, "pq")
	assert.Nil(t, got.Details)
}

func TestToHTTP_InternalWrapHidesCause(t *testing.T) {
	got := apperror.ToHTTP(apperror.Internal(errors.New("disk full")))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, got.Details)
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeConflict, "x", http.StatusConflict))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_month"}

	assert.True(t, apperror.IsUniqueViolation(pgErr, ""))
	assert.True(t, apperror.IsUniqueViolation(pgErr, "uq_payroll_employee_month"))
	assert.False(t, apperror.IsUniqueViolation(pgErr, "uq_other"))
	assert.False(t, apperror.IsUniqueViolation(errors.New("boom"), ""))
	assert.True(t, apperror.IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_x"`), "uq_x"))
}

func TestMapValidationError_NonValidatorError(t *testing.T) {
	err := apperror.MapValidationError(errors.New("EOF"))

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}
