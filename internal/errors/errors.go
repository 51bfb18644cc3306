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
	Context string
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
	ErrWorkspaceNotFound      = &NotFoundError{Entity: "workspace"}
	ErrSystemNotFound         = &NotFoundError{Entity: "system"}
	ErrResourceNotFound       = &NotFoundError{Entity: "resource"}
	ErrDeploymentNotFound     = &NotFoundError{Entity: "deployment"}
	ErrEnvironmentNotFound    = &NotFoundError{Entity: "environment"}
	ErrVersionNotFound        = &NotFoundError{Entity: "deployment version"}
	ErrChannelNotFound        = &NotFoundError{Entity: "version channel"}
	ErrPolicyNotFound         = &NotFoundError{Entity: "policy"}
	ErrPolicyTargetNotFound   = &NotFoundError{Entity: "policy target"}
	ErrPolicyRuleNotFound     = &NotFoundError{Entity: "policy rule"}
	ErrReleaseTargetNotFound  = &NotFoundError{Entity: "release target"}
	ErrTriggerNotFound        = &NotFoundError{Entity: "release job trigger"}
	ErrJobNotFound            = &NotFoundError{Entity: "job"}
	ErrApprovalNotFound       = &NotFoundError{Entity: "approval"}
	ErrChannelBindingNotFound = &NotFoundError{Entity: "channel binding"}
)

// Already Exists Errors
var (
	ErrWorkspaceExists      = &AlreadyExistsError{Entity: "workspace", Context: "with this slug"}
	ErrSystemExists         = &AlreadyExistsError{Entity: "system", Context: "with this slug in the workspace"}
	ErrDeploymentExists     = &AlreadyExistsError{Entity: "deployment", Context: "with this slug in the system"}
	ErrEnvironmentExists    = &AlreadyExistsError{Entity: "environment", Context: "with this name in the system"}
	ErrChannelExists        = &AlreadyExistsError{Entity: "version channel", Context: "with this name for the deployment"}
	ErrPolicyExists         = &AlreadyExistsError{Entity: "policy", Context: "with this name in the workspace"}
	ErrChannelBindingExists = &AlreadyExistsError{Entity: "channel binding", Context: "for this environment and deployment"}
)

// Business Logic Errors
var (
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidCause             = errors.New("invalid trigger cause")
	ErrVersionNotReady          = errors.New("version is not in ready status")
	ErrApprovalAlreadyDecided   = errors.New("approval has already been decided")
	ErrApproverNotQualified     = errors.New("approver does not qualify for this approval")
	ErrTriggerAlreadyDispatched = errors.New("trigger has already been dispatched")
	ErrJobStatusTransition      = errors.New("illegal job status transition")
	ErrInvalidPaginationParams  = errors.New("invalid pagination parameters")
	ErrInvalidSelector          = errors.New("invalid selector condition")
	ErrChannelInUse             = errors.New("version channel is bound to one or more environments")
)

// Authentication Errors
var (
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingActor = &AuthenticationError{Message: "request carries no actor identity"}
	// ErrActionDenied deliberately says nothing about whether the target
	// exists; an unauthorized caller only ever learns "denied".
	ErrActionDenied = &AuthorizationError{Message: "denied"}
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

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
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
