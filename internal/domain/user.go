package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingOperationKind is the discriminator of a PendingOperation.
type PendingOperationKind string

const (
	PendingNone           PendingOperationKind = "NONE"
	PendingSignUp         PendingOperationKind = "SIGN_UP"
	PendingForgotPassword PendingOperationKind = "FORGOT_PASSWORD"
	PendingChangeEmail    PendingOperationKind = "CHANGE_EMAIL"
)

func (k PendingOperationKind) String() string { return string(k) }

func (k PendingOperationKind) IsValid() bool {
	switch k {
	case PendingNone, PendingSignUp, PendingForgotPassword, PendingChangeEmail:
		return true
	}
	return false
}

// PendingOperation is the single in-flight profile change of a user:
// None | SignUp | ForgotPassword | ChangeEmail{newEmail}.
// The zero value is None.
type PendingOperation struct {
	kind     PendingOperationKind
	newEmail string
}

// NoPendingOperation returns the None variant.
func NoPendingOperation() PendingOperation { return PendingOperation{kind: PendingNone} }

// SignUpPending returns the SignUp variant.
func SignUpPending() PendingOperation { return PendingOperation{kind: PendingSignUp} }

// ForgotPasswordPending returns the ForgotPassword variant.
func ForgotPasswordPending() PendingOperation { return PendingOperation{kind: PendingForgotPassword} }

// ChangeEmailPending returns the ChangeEmail variant carrying the requested address.
func ChangeEmailPending(newEmail string) PendingOperation {
	return PendingOperation{kind: PendingChangeEmail, newEmail: newEmail}
}

// RestorePendingOperation rebuilds a variant from its persisted columns.
// It returns ErrValidation if the columns do not describe a valid variant.
func RestorePendingOperation(kind PendingOperationKind, newEmail *string) (PendingOperation, error) {
	switch kind {
	case "", PendingNone:
		return NoPendingOperation(), nil
	case PendingSignUp:
		return SignUpPending(), nil
	case PendingForgotPassword:
		return ForgotPasswordPending(), nil
	case PendingChangeEmail:
		if newEmail == nil || *newEmail == "" {
			return PendingOperation{}, NewValidationError("pending_email", "required for CHANGE_EMAIL")
		}
		return ChangeEmailPending(*newEmail), nil
	}
	return PendingOperation{}, NewValidationError("pending_operation", "unknown kind "+string(kind))
}

// Kind returns the variant discriminator.
func (p PendingOperation) Kind() PendingOperationKind {
	if p.kind == "" {
		return PendingNone
	}
	return p.kind
}

// IsNone reports whether no operation is pending.
func (p PendingOperation) IsNone() bool { return p.Kind() == PendingNone }

// NewEmail returns the requested address of a ChangeEmail variant.
func (p PendingOperation) NewEmail() (string, bool) {
	if p.kind != PendingChangeEmail {
		return "", false
	}
	return p.newEmail, true
}

// PendingEmail returns the column value for pending_email.
func (p PendingOperation) PendingEmail() *string {
	if email, ok := p.NewEmail(); ok {
		return &email
	}
	return nil
}

// Matches reports whether the variant is of the given kind.
func (p PendingOperation) Matches(kind PendingOperationKind) bool { return p.Kind() == kind }

func (p PendingOperation) String() string { return p.Kind().String() }

// User is an account identity.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	Alias            *string
	PasswordHash     string
	PendingOperation PendingOperation
	HasNsfwAllowed   bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayName returns the public name of the user: the alias if set, the username otherwise.
func (u *User) DisplayName() string {
	if u.Alias != nil && *u.Alias != "" {
		return *u.Alias
	}
	return u.Username
}

// GuardStart returns PendingOperationInProgressError unless no operation is pending.
func (u *User) GuardStart() error {
	if u.PendingOperation.IsNone() {
		return nil
	}
	return &PendingOperationInProgressError{Identifier: u.ID.String(), Operation: u.PendingOperation.Kind()}
}

// GuardConfirm returns WrongPendingOperationError unless the pending operation is of the given kind.
func (u *User) GuardConfirm(kind PendingOperationKind) error {
	if u.PendingOperation.Matches(kind) {
		return nil
	}
	return &WrongPendingOperationError{
		Identifier: u.ID.String(),
		Expected:   kind,
		Actual:     u.PendingOperation.Kind(),
	}
}
