// internal/domain/errors.go
package domain

import (
	"errors"
	"net/http"
)

// Error codes reported in ErrorResponse payloads.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeBusinessError   = "BUSINESS_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_SERVER_ERROR"
)

// ValidationError is a caller-fixable shape problem: a malformed request
// field or an input that violates the issuer's structural preconditions.
// It never causes a partial write.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// BusinessError is a recognized failure during authorization or lookup.
// It carries the cause's message for diagnostics but deliberately not the
// cause itself: callers classify on the business failure, not on whatever
// infrastructure error happened underneath.
type BusinessError struct {
	Message string
}

func NewBusinessError(msg string) *BusinessError {
	return &BusinessError{Message: msg}
}

func (e *BusinessError) Error() string { return e.Message }

// NotFoundError reports a lookup miss that escaped without being wrapped
// into the business channel.
type NotFoundError struct {
	Message string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

func (e *NotFoundError) Error() string { return e.Message }

// Classification is the stable external shape of an internal failure.
type Classification struct {
	ErrorCode string
	Status    int
}

// Classify walks the error chain and maps it onto the error taxonomy,
// most specific kind first. Dispatch is strictly by type; matching on
// message text is deliberately avoided.
func Classify(err error) Classification {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return Classification{ErrorCode: CodeValidationError, Status: http.StatusBadRequest}
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return Classification{ErrorCode: CodeBusinessError, Status: http.StatusBadRequest}
	}

	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return Classification{ErrorCode: CodeNotFound, Status: http.StatusNotFound}
	}

	return Classification{ErrorCode: CodeInternalError, Status: http.StatusInternalServerError}
}
