package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced in the error response body.
const (
	CodeInvalidResource     = "INVALID_RESOURCE"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeMalformedRequest    = "MALFORMED_REQUEST"
	CodeTypeMismatch        = "TYPE_MISMATCH"
	CodeResourceNotFound    = "RESOURCE_NOT_FOUND"
	CodeBusinessViolation   = "BUSINESS_LOGIC_VIOLATION"
	CodeResourceExists      = "RESOURCE_ALREADY_EXISTS"
	CodeOperationNotAllowed = "OPERATION_NOT_ALLOWED"
	CodeInternal            = "INTERNAL_SERVER_ERROR"
)

// Error is the single failure type every service returns. It carries the
// HTTP status and machine code the boundary needs to render the error body.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// From extracts an *Error from an error chain.
func From(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// InvalidField reports an out-of-range or missing field value.
func InvalidField(field, reason string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidResource,
		Message: fmt.Sprintf("Invalid value for field '%s': %s", field, reason),
	}
}

func InvalidResource(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeInvalidResource,
		Message: message,
	}
}

// Malformed reports an unparseable request body.
func Malformed(err error) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeMalformedRequest,
		Message: fmt.Sprintf("Invalid request body: %v", err),
		cause:   err,
	}
}

// TypeMismatch reports a path or query parameter that could not be converted.
func TypeMismatch(param, value, wantType string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("Parameter '%s' with value '%s' could not be converted to %s", param, value, wantType),
	}
}

func NotFound(resourceType, identifier string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeResourceNotFound,
		Message: fmt.Sprintf("%s with identifier '%s' not found", resourceType, identifier),
	}
}

func NotFoundID(resourceType string, id int64) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeResourceNotFound,
		Message: fmt.Sprintf("%s with ID %d not found", resourceType, id),
	}
}

func AlreadyExists(resourceType, identifier string) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeResourceExists,
		Message: fmt.Sprintf("%s with identifier '%s' already exists", resourceType, identifier),
	}
}

func AlreadyExistsMsg(message string) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeResourceExists,
		Message: message,
	}
}

// BusinessRule reports a valid request that a business rule disallows.
func BusinessRule(message string) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    CodeBusinessViolation,
		Message: message,
	}
}

func NotAllowed(operation, reason string) *Error {
	return &Error{
		Status:  http.StatusForbidden,
		Code:    CodeOperationNotAllowed,
		Message: fmt.Sprintf("Operation '%s' is not allowed: %s", operation, reason),
	}
}

func Internal(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: fmt.Sprintf("An unexpected error occurred: %v", err),
		cause:   err,
	}
}
