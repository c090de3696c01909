package employee

import (
	"errors"

	employeeerrors "github.com/anzallkiyteb-cell/bey/internal/employee/errors"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(err)
}
