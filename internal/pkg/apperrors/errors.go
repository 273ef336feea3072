package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrInvalidFormat   = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Domain operation errors
	ErrInvalidOperation = errors.New("invalid operation")
)

// Club errors
var (
	ErrClubNotFound      = errors.New("club not found")
	ErrClubAlreadyExists = errors.New("club with this name already exists")
	ErrMemberNotFound    = errors.New("member not found in this club")
)

// Event errors
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadySubscribed = errors.New("already subscribed to this event")
	ErrEventStarted      = errors.New("event cannot be deleted after it has started")
)

// Lost and found errors
var (
	ErrItemNotFound   = errors.New("lost and found item not found")
	ErrClaimNotFound  = errors.New("claim not found")
	ErrDuplicateClaim = errors.New("a claim by this user already exists for this item")
	ErrSelfClaim      = errors.New("an item cannot be claimed by its poster")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// CustomError carries a sentinel plus a human-readable message for the
// response body.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewInvalidOperationError creates an invalid-operation error with a message
func NewInvalidOperationError(message string) error {
	return &CustomError{Err: ErrInvalidOperation, Message: message}
}
