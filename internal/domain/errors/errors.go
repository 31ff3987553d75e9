// Package errors defines the application-level error taxonomy. Every error
// that reaches the delivery layer implements AppError so the HTTP middleware
// can render it without knowing where it came from.
package errors

import (
	"net/http"
	"strings"

	"plantstore/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	// Authentication-related errors. This system reports missing or invalid
	// credentials with 403, not 401.
	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHENTICATED",
		"Authentication credentials were not provided.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token.",
		"",
	)

	// Catalog-related errors
	ErrPlantNotFound = NewBaseError(
		http.StatusNotFound,
		"PLANT_NOT_FOUND",
		"Plant not found.",
		"",
	)

	ErrNoPlantsFound = NewBaseError(
		http.StatusNotFound,
		"NO_PLANTS_FOUND",
		"No plants found.",
		"",
	)

	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found.",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"The product is not in your cart.",
		"",
	)

	// Feedback-related errors
	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDBACK_NOT_FOUND",
		"Feedback not found.",
		"",
	)

	ErrNoFeedbackFound = NewBaseError(
		http.StatusNotFound,
		"NO_FEEDBACK_FOUND",
		"No feedback found.",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// ValidationError carries the flat list of field-level violations produced by
// the domain validation rules. It renders as 400 with every message included,
// mirroring the account/feedback error surface of the HTTP API.
type ValidationError struct {
	violations []string
}

// NewValidationError creates a validation error from one or more violation
// messages. The list must not be empty.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{violations: violations}
}

// Violations returns the individual violation messages.
func (e *ValidationError) Violations() []string {
	return e.violations
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return strings.Join(e.violations, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed."
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
