package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "duration_minutes", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface and is serialized directly to
// JSON by the global error handler.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND")
//   - Message: human-friendly message
//   - Status: HTTP status code
//   - Override: whether the client UI may show Message verbatim
//   - Errors: per-field validation errors
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so
// errors.Is(err, &HTTPError{}) matches any HTTP error regardless of
// code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced,
// leaving the original untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format, e.g. "Not Found" -> "NOT_FOUND".
// Used to derive stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
