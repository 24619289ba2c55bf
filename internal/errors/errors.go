package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound     = &NotFoundError{Entity: "organization"}
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrShiftCategoryNotFound    = &NotFoundError{Entity: "shift category"}
	ErrRecurringShiftNotFound   = &NotFoundError{Entity: "recurring shift"}
	ErrShiftNotFound            = &NotFoundError{Entity: "shift"}
	ErrShiftSignupNotFound      = &NotFoundError{Entity: "shift signup"}
	ErrDonorNotFound            = &NotFoundError{Entity: "donor"}
	ErrDonationCategoryNotFound = &NotFoundError{Entity: "donation category"}
	ErrDonationNotFound         = &NotFoundError{Entity: "donation"}
	ErrDonationItemNotFound     = &NotFoundError{Entity: "donation item"}
	ErrPasswordResetNotFound    = &NotFoundError{Entity: "password reset request"}
)

// Already Exists Errors
var (
	ErrOrganizationExists     = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrShiftCategoryExists    = &AlreadyExistsError{Entity: "shift category", Context: "with this name in the organization"}
	ErrDonationCategoryExists = &AlreadyExistsError{Entity: "donation category", Context: "with this name in the organization"}
	ErrDonorExists            = &AlreadyExistsError{Entity: "donor", Context: "with this name in the organization"}
	ErrShiftSignupExists      = &AlreadyExistsError{Entity: "shift signup", Context: "for this user and shift"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrNoUserIDs               = errors.New("user_ids is required and must not be empty")
	ErrYearRequired            = errors.New("year query parameter is required")
	ErrInvalidMonth            = errors.New("month must be 'all' or a number between 0 and 12")
	ErrShiftFull               = errors.New("shift has no remaining slots")
	ErrCheckOutBeforeCheckIn   = errors.New("check-out time cannot be before check-in time")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidResetCode   = &AuthenticationError{Message: "invalid or expired reset code"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
