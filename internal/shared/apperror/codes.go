package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeConflict             = "CONFLICT"
	CodeInvalidState         = "INVALID_STATE"
	CodeAlreadyPaid          = "ALREADY_PAID"
	CodeNotPaid              = "NOT_PAID"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeEmployeeExcluded     = "EMPLOYEE_EXCLUDED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
