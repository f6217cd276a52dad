package errs

import (
	"errors"
	"net/http"
)

// CodeValidationFailed marks errors raised by the service layer before any
// store access: empty required fields, values outside a closed enumeration,
// a missing identifier on update.
const CodeValidationFailed = "VALIDATION_FAILED"

// CodeDatabaseUnavailable marks connection acquisition failures: the store
// is unreachable or the credentials are invalid. Raised before any
// statement is issued.
const CodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"

// NewValidationError creates a 400 HTTPError with code VALIDATION_FAILED.
// fieldErrors may be nil when the problem is not tied to a single field.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:     CodeValidationFailed,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: true,
		Errors:   fieldErrors,
	}
}

// NewConnectionError creates a 503 HTTPError with code DATABASE_UNAVAILABLE.
func NewConnectionError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeDatabaseUnavailable,
		Message:  message,
		Status:   http.StatusServiceUnavailable,
		Override: false,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code optionally replaces the default "BAD_REQUEST"; errors carries
// field-level details when they exist.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a generic 500 HTTPError. The message is
// the bare status text; internals never leak to clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// IsValidation reports whether err is (or wraps) a VALIDATION_FAILED error.
func IsValidation(err error) bool {
	return HasCode(err, CodeValidationFailed)
}

// HasCode reports whether err is (or wraps) an *HTTPError with the given code.
func HasCode(err error, code string) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code == code
	}
	return false
}
