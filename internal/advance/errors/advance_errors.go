package advanceerrors

import (
	"net/http"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
)

var (
	ErrInvalidAdvanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid advance ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Advance amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown advance status",
		http.StatusBadRequest,
	)
	ErrAdvanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Advance not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Invalid advance status transition",
		http.StatusConflict,
	)
	ErrValidatedImmutable = apperror.New(
		apperror.CodeInvalidState,
		"A validated advance must be reset before it can be edited",
		http.StatusConflict,
	)
)
