package ledgererrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ledger entry not found",
		http.StatusNotFound,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ledger entry ID",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"Date range is invalid",
		http.StatusBadRequest,
	)
)

func InvalidEntry(problems []string) *apperror.AppError {
	return apperror.Wrap(
		fmt.Errorf("%s", strings.Join(problems, "; ")),
		apperror.CodeInvalidInput,
		"Ledger entry is invalid",
		http.StatusBadRequest,
	)
}
