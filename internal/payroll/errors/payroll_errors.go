package payrollerrors

import (
	"net/http"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeExcluded = apperror.New(
		apperror.CodeEmployeeExcluded,
		"Blocked and admin accounts are not part of payroll",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeAlreadyPaid,
		"Salary for this month is already paid",
		http.StatusConflict,
	)
	ErrNotPaid = apperror.New(
		apperror.CodeNotPaid,
		"Salary for this month is not paid",
		http.StatusConflict,
	)
	ErrPayslipRender = apperror.New(
		apperror.CodeInternalError,
		"Payslip could not be generated",
		http.StatusInternalServerError,
	)
)
