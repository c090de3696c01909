package employeeerrors

import (
	"net/http"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeExcluded = apperror.New(
		apperror.CodeEmployeeExcluded,
		"Employee is blocked or not part of payroll",
		http.StatusUnprocessableEntity,
	)
)
