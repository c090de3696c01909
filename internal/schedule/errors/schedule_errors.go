package scheduleerrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift schedule not found",
		http.StatusNotFound,
	)
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"Day must be one of dim, lun, mar, mer, jeu, ven, sam",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

// InvalidSchedule reports every rejected field at once.
func InvalidSchedule(problems []string) *apperror.AppError {
	return apperror.Wrap(
		fmt.Errorf("%s", strings.Join(problems, "; ")),
		apperror.CodeInvalidInput,
		"Shift schedule is invalid",
		http.StatusBadRequest,
	)
}

// ConfirmationRequired lists the days a bulk copy would overwrite.
func ConfirmationRequired(days []string) *apperror.AppError {
	return apperror.Wrap(
		fmt.Errorf("days with different hours: %s", strings.Join(days, ", ")),
		apperror.CodeConfirmationRequired,
		"Other days already have different hours, confirm to overwrite",
		http.StatusConflict,
	)
}
