package model

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeTransportError   = "TRANSPORT_ERROR"
	CodeInvalidSelection = "INVALID_SELECTION"
)

// BookstoreError is the error type of the bookstore domain.
type BookstoreError struct {
	Code    string // stable machine-readable code
	Message string // human-readable message
	Err     error  // underlying error
}

func (e *BookstoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BookstoreError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewTransportError reports that the open-data feed could not be fetched
// or decoded.
func NewTransportError(message string, err error) *BookstoreError {
	return &BookstoreError{
		Code:    CodeTransportError,
		Message: message,
		Err:     err,
	}
}

// NewInvalidSelection wraps a validation failure of the request's selection.
func NewInvalidSelection(err error) *BookstoreError {
	return &BookstoreError{
		Code:    CodeInvalidSelection,
		Message: "Invalid selection",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsTransportError(err error) bool {
	var bErr *BookstoreError
	return errors.As(err, &bErr) && bErr.Code == CodeTransportError
}

func IsInvalidSelection(err error) bool {
	var bErr *BookstoreError
	return errors.As(err, &bErr) && bErr.Code == CodeInvalidSelection
}

// GetErrorCode returns the domain code, or UNKNOWN_ERROR.
func GetErrorCode(err error) string {
	var bErr *BookstoreError
	if errors.As(err, &bErr) {
		return bErr.Code
	}
	return "UNKNOWN_ERROR"
}

// MapErrorToHTTP maps a domain error to status code, user-facing message and code.
// Transport failures are reported generically; the cause goes to the log only.
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusOK, "Success", ""
	case IsTransportError(err):
		return http.StatusBadGateway, "無法取得書店資料，請稍後再試。", CodeTransportError
	case IsInvalidSelection(err):
		var bErr *BookstoreError
		errors.As(err, &bErr)
		msg := bErr.Message
		if bErr.Err != nil {
			msg = bErr.Err.Error()
		}
		return http.StatusBadRequest, msg, CodeInvalidSelection
	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
