package attendanceerrors

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
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Date range is invalid",
		http.StatusBadRequest,
	)
	ErrRangeTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Date range may not exceed 93 days",
		http.StatusBadRequest,
	)
)
