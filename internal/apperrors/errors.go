package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrConflict indicates that an atomic storage operation could not complete,
// e.g. a document number draw that lost its row lock. Callers must treat this
// as a hard failure of the enclosing operation, never retry it silently.
var ErrConflict = errors.New("storage conflict")

// ErrInvalidRange indicates an unparsable or inverted date range. Statement
// callers resolve it by falling back to the default as-on-date range.
var ErrInvalidRange = errors.New("invalid date range")
