// Package errors defines application-level errors carrying the HTTP
// status, business code and user-facing message the API surfaces.
package errors

import (
	"net/http"

	"propmart/internal/errors"
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
	// Account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"You do not have permission to perform this action.",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"This account has been deactivated.",
		"",
	)

	// Listing errors
	ErrPropertyNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found.",
		"",
	)

	ErrNotListingOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_LISTING_OWNER",
		"You do not own this property.",
		"",
	)

	// Lead errors
	ErrInquiryNotFound = NewBaseError(
		http.StatusNotFound,
		"INQUIRY_NOT_FOUND",
		"Inquiry not found.",
		"",
	)

	ErrNotInquiryParty = NewBaseError(
		http.StatusForbidden,
		"NOT_INQUIRY_PARTY",
		"You are not part of this inquiry.",
		"",
	)

	ErrInvalidInquiryStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INQUIRY_STATUS",
		"Invalid inquiry status.",
		"",
	)

	// Wishlist errors
	ErrWishlistItemNotFound = NewBaseError(
		http.StatusNotFound,
		"WISHLIST_ITEM_NOT_FOUND",
		"Property is not in your wishlist.",
		"",
	)

	ErrAlreadyWishlisted = NewBaseError(
		http.StatusConflict,
		"ALREADY_WISHLISTED",
		"Property is already in your wishlist.",
		"",
	)
)
