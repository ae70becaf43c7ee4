package services

import "errors"

type ErrorCode string

const (
	ErrorValidation ErrorCode = "validation"
	ErrorNotFound   ErrorCode = "not_found"
	ErrorConflict   ErrorCode = "conflict"
	ErrorExternal   ErrorCode = "external"
	ErrorInternal   ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewValidationError(msg string) error { return &ServiceError{Code: ErrorValidation, Message: msg} }
func NewNotFoundError(msg string) error   { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error   { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewExternalError(msg string) error   { return &ServiceError{Code: ErrorExternal, Message: msg} }
func NewInternalError(msg string) error   { return &ServiceError{Code: ErrorInternal, Message: msg} }

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsValidation reports whether err is a validation-class service error.
func IsValidation(err error) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == ErrorValidation
}

// IsNotFound reports whether err is a not-found-class service error.
func IsNotFound(err error) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == ErrorNotFound
}
