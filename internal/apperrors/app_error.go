package apperrors

import "fmt"

// AppError wraps a lower-level error with an HTTP-ish status code and a
// message suitable for logging. Sentinel errors (ErrNotFound etc.) remain
// reachable through errors.Is via Unwrap.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates a 400 AppError that satisfies errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
