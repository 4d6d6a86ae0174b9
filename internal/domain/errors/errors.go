// Package errors defines the application error taxonomy. Every failure path
// in the system resolves to one of these values (or a type below) before the
// response classifier renders it, so no component formats client-facing
// errors on its own.
package errors

import (
	"net/http"

	"gatekeeper/internal/errors"
)

// AppError is the contract the response classifier consumes. It carries
// everything needed to render one classified failure: HTTP status, a stable
// machine error code (empty means "generate a fresh one"), a user-facing
// message, optional structured details and the operability flag.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() any
	Operational() bool
}

// BaseError is a basic error value implementing the AppError interface.
type BaseError struct {
	httpCode    int
	errorCode   string
	message     string
	details     any
	operational bool
}

// NewBaseError creates a new base error with a fixed error code.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		errorCode:   errorCode,
		message:     message,
		operational: true,
	}
}

// NewAppError creates an application-raised error with an explicit status
// and operability flag. The classifier generates a fresh error code for it.
func NewAppError(httpCode int, message string, operational bool) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		message:     message,
		operational: operational,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message and a stack trace.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is lets errors.Is match derived copies (e.g. WithDetails) against the
// predefined values above.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode && e.message == t.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the stable machine error code, or "" when the classifier
// should mint one.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error details, if any.
func (e *BaseError) Details() any {
	return e.details
}

// Operational reports whether the error is an expected, handled condition.
func (e *BaseError) Operational() bool {
	return e.operational
}

// WithDetails returns a copy of the error carrying structured details.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:    e.httpCode,
		errorCode:   e.errorCode,
		message:     e.message,
		details:     details,
		operational: e.operational,
	}
}

// Predefined error values. The fixed error codes mirror the classifier
// contract: duplicate/foreign-key/not-found/token/rate-limit failures keep
// stable codes, everything else gets a freshly generated one per response.
var (
	ErrDuplicateEntry = NewBaseError(
		http.StatusConflict,
		"ERR-DUPLICATE-409",
		"Duplicate entry found.",
	)

	ErrForeignKeyViolation = NewBaseError(
		http.StatusBadRequest,
		"ERR-FOREIGNKEY-400",
		"Invalid foreign key reference.",
	)

	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"ERR-NOT-FOUND-404",
		"Record not found",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"ERR-JWT-INVALID-401",
		"Invalid token. Please login again.",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"ERR-JWT-EXPIRED-401",
		"Your token has expired. Please login again.",
	)

	// ErrInvalidCredentials deliberately collapses "no such user" and "wrong
	// password" so responses cannot be used for account enumeration.
	ErrInvalidCredentials = NewAppError(
		http.StatusUnauthorized,
		"Invalid credentials",
		true,
	)

	ErrInternalError = NewAppError(
		http.StatusInternalServerError,
		"Internal Server Error",
		false,
	)
)

// StorageError wraps a storage-layer failure that is none of the classified
// constraint kinds. The classifier renders it as 400 with a sanitized
// message so raw driver text never reaches a client unfiltered.
type StorageError struct {
	err error
}

// NewStorageError creates a storage error from a native driver error.
func NewStorageError(err error) *StorageError {
	return &StorageError{err: err}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the native error for errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StorageError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the stable storage error code.
func (e *StorageError) ErrorCode() string {
	return "ERR-STORAGE-400"
}

// Message returns the native error text; the classifier sanitizes it.
func (e *StorageError) Message() string {
	return e.err.Error()
}

// Details returns nil; storage errors carry no structured details.
func (e *StorageError) Details() any {
	return nil
}

// Operational reports that unclassified storage failures are unexpected.
func (e *StorageError) Operational() bool {
	return false
}

// FieldIssue describes a single validation failure for one input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered list of per-field issues produced by
// input validation. The classifier passes the list through untouched so the
// client sees exactly which fields failed and why.
type ValidationError struct {
	Issues []FieldIssue
}

// NewValidationError creates a validation error from field issues.
func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "Validation failed"
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns "" so the classifier generates a fresh code.
func (e *ValidationError) ErrorCode() string {
	return ""
}

// Message returns the user-facing error message.
func (e *ValidationError) Message() string {
	return "Validation failed"
}

// Details returns the ordered field issues.
func (e *ValidationError) Details() any {
	return e.Issues
}

// Operational reports that validation failures are expected conditions.
func (e *ValidationError) Operational() bool {
	return true
}

// RateLimitError signals that a caller exceeded the request budget. The
// classifier maps it to 429 with a retry-after hint in the details.
type RateLimitError struct {
	RetryAfter int // seconds
}

// NewRateLimitError creates a rate-limit error. A non-positive retryAfter
// falls back to 60 seconds.
func NewRateLimitError(retryAfter int) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = 60
	}

	return &RateLimitError{RetryAfter: retryAfter}
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return "Too many requests. Please try again later."
}

// HTTPCode returns the HTTP status code.
func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

// ErrorCode returns the stable rate-limit error code.
func (e *RateLimitError) ErrorCode() string {
	return "ERR-RATE-LIMIT-429"
}

// Message returns the user-facing error message.
func (e *RateLimitError) Message() string {
	return e.Error()
}

// Details returns the retry-after hint.
func (e *RateLimitError) Details() any {
	return map[string]any{"retryAfter": e.RetryAfter}
}

// Operational reports that rate limiting is an expected condition.
func (e *RateLimitError) Operational() bool {
	return true
}
