package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvariantViolation marks a mutation rejected because it would break
	// a ledger invariant (e.g. a negative wallet balance).
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrDependencyFailure marks a failure of an external collaborator
	// (token cache, mail transport).
	ErrDependencyFailure = errors.New("dependency failure")
)

// Authentication failures. All of them are ErrUnauthorized.
var (
	ErrMissingDigest = fmt.Errorf("missing digest: %w", ErrUnauthorized)
	ErrInvalidDigest = fmt.Errorf("invalid digest: %w", ErrUnauthorized)
	ErrWrongPassword = fmt.Errorf("wrong password: %w", ErrUnauthorized)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ---------------------------------------------------------------------------
// Not found
// ---------------------------------------------------------------------------

// UserNotFoundError is returned when no user matches an id, email, username or alias.
type UserNotFoundError struct {
	Identifier string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Identifier)
}

func (e *UserNotFoundError) Unwrap() error { return ErrNotFound }

// TokenNotFoundError is returned when a verification token does not resolve
// to a live user token. The token itself is never included.
type TokenNotFoundError struct {
	Operation PendingOperationKind
}

func (e *TokenNotFoundError) Error() string {
	if e.Operation == "" {
		return "verification token not found"
	}
	return fmt.Sprintf("verification token for operation %s not found", e.Operation)
}

func (e *TokenNotFoundError) Unwrap() error { return ErrNotFound }

// ---------------------------------------------------------------------------
// Authorization
// ---------------------------------------------------------------------------

// OwnershipError is returned when the caller is not the owner of the targeted resource.
type OwnershipError struct {
	Resource string
	ID       uuid.UUID
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("caller does not own %s %s", e.Resource, e.ID)
}

func (e *OwnershipError) Unwrap() error { return ErrForbidden }

// ---------------------------------------------------------------------------
// State conflicts
// ---------------------------------------------------------------------------

// PendingOperationInProgressError is returned when a profile operation is
// requested while another one is still pending.
type PendingOperationInProgressError struct {
	Identifier string
	Operation  PendingOperationKind
}

func (e *PendingOperationInProgressError) Error() string {
	return fmt.Sprintf("user %q has pending operation %s in progress", e.Identifier, e.Operation)
}

func (e *PendingOperationInProgressError) Unwrap() error { return ErrConflict }

// WrongPendingOperationError is returned when a token is confirmed for a user
// whose pending operation differs from the one the token was issued for.
type WrongPendingOperationError struct {
	Identifier string
	Expected   PendingOperationKind
	Actual     PendingOperationKind
}

func (e *WrongPendingOperationError) Error() string {
	return fmt.Sprintf("user %q: expected pending operation %s, got %s", e.Identifier, e.Expected, e.Actual)
}

func (e *WrongPendingOperationError) Unwrap() error { return ErrConflict }

// AlreadyVerifiedError is returned when a sign-up token is resent for a user
// that has no pending sign-up.
type AlreadyVerifiedError struct {
	Identifier string
}

func (e *AlreadyVerifiedError) Error() string {
	return fmt.Sprintf("user %q is already verified", e.Identifier)
}

func (e *AlreadyVerifiedError) Unwrap() error { return ErrConflict }

// EqualPasswordError is returned when the new password equals the current one.
type EqualPasswordError struct {
	Identifier string
}

func (e *EqualPasswordError) Error() string {
	return fmt.Sprintf("user %q: new password equals the current password", e.Identifier)
}

func (e *EqualPasswordError) Unwrap() error { return ErrConflict }

// ---------------------------------------------------------------------------
// Invariants
// ---------------------------------------------------------------------------

// NegativeWalletBalanceError is returned when a mutation would leave a wallet
// with a negative balance. Nothing is mutated when it is returned.
type NegativeWalletBalanceError struct {
	WalletID uuid.UUID
	Balance  int64
	Amount   int64
}

func (e *NegativeWalletBalanceError) Error() string {
	return fmt.Sprintf("wallet %s: subtracting %d from balance %d would be negative", e.WalletID, e.Amount, e.Balance)
}

func (e *NegativeWalletBalanceError) Unwrap() error { return ErrInvariantViolation }

// ---------------------------------------------------------------------------
// Dependency failures
// ---------------------------------------------------------------------------

// CacheCreateTokenError is returned when a verification token could not be written.
type CacheCreateTokenError struct {
	Identifier string
	Operation  PendingOperationKind
	Err        error
}

func (e *CacheCreateTokenError) Error() string {
	return fmt.Sprintf("create %s token for %q: %v", e.Operation, e.Identifier, e.Err)
}

func (e *CacheCreateTokenError) Unwrap() []error { return []error{ErrDependencyFailure, e.Err} }

// CacheCleanupError is returned when a verification token could not be removed.
type CacheCleanupError struct {
	Identifier string
	Operation  PendingOperationKind
	Err        error
}

func (e *CacheCleanupError) Error() string {
	return fmt.Sprintf("cleanup %s token for %q: %v", e.Operation, e.Identifier, e.Err)
}

func (e *CacheCleanupError) Unwrap() []error { return []error{ErrDependencyFailure, e.Err} }

// MailError is returned when a mail could not be handed to the mail transport.
type MailError struct {
	Recipient string
	Template  string
	Err       error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("send %s mail to %q: %v", e.Template, e.Recipient, e.Err)
}

func (e *MailError) Unwrap() []error { return []error{ErrDependencyFailure, e.Err} }

// StateCommittedError is returned when the profile state change was persisted
// but the follow-up token cleanup failed. The token TTL still bounds its lifetime.
type StateCommittedError struct {
	Identifier string
	Operation  PendingOperationKind
	Err        error
}

func (e *StateCommittedError) Error() string {
	return fmt.Sprintf("%s for %q committed, token cleanup failed: %v", e.Operation, e.Identifier, e.Err)
}

func (e *StateCommittedError) Unwrap() []error { return []error{ErrDependencyFailure, e.Err} }
