package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/saga"
)

// ForgotPassword starts a password reset and mails the reset link.
func (s *Service) ForgotPassword(ctx context.Context, identifier string) error {
	// Step 1: Load user
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return wrap("ForgotPassword", err)
	}

	// Step 2: Run the saga
	var token string
	err = s.saga.Run(ctx, "forgot_password",
		saga.Step{
			Name: "start_operation",
			Do: func(ctx context.Context) error {
				return s.startOperation(ctx, user, domain.ForgotPasswordPending())
			},
			Compensate: func(ctx context.Context) error {
				return s.abortOperation(ctx, user.ID, domain.PendingForgotPassword)
			},
		},
		s.issueTokenStep(user.ID, domain.PendingForgotPassword, "", &token),
		saga.Step{
			Name: "send_mail",
			Do: func(ctx context.Context) error {
				return s.mail.SendPasswordReset(ctx, user.Email, token)
			},
		},
	)
	if err != nil {
		return wrap("ForgotPassword", err)
	}

	s.log.InfoContext(ctx, "password reset requested",
		slog.String("user_id", user.ID.String()))

	return nil
}

// ValidatePasswordReset checks that token belongs to a user with a pending
// reset. Nothing is changed.
func (s *Service) ValidatePasswordReset(ctx context.Context, token string) error {
	if _, err := s.resolveConfirmation(ctx, token, domain.PendingForgotPassword); err != nil {
		return wrap("ValidatePasswordReset", err)
	}
	return nil
}

// SubmitPasswordReset sets the new password and ends the reset.
func (s *Service) SubmitPasswordReset(ctx context.Context, input SubmitPasswordResetInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve token and check the pending operation
	user, err := s.resolveConfirmation(ctx, input.Token, domain.PendingForgotPassword)
	if err != nil {
		return nil, wrap("SubmitPasswordReset", err)
	}

	// Step 3: Hash the new password
	hash, err := s.newPasswordHash(user, input.NewPassword)
	if err != nil {
		return nil, wrap("SubmitPasswordReset", err)
	}

	// Step 4: Persist hash and transition in one statement
	updated, err := s.users.CompletePasswordReset(ctx, user.ID, hash)
	if err != nil {
		return nil, wrap("SubmitPasswordReset", err)
	}

	// Step 5: Cleanup
	if err := s.finishConfirmation(ctx, user.ID, domain.PendingForgotPassword); err != nil {
		return nil, wrap("SubmitPasswordReset", err)
	}

	s.log.InfoContext(ctx, "password reset",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}

// UpdatePassword changes the password of the caller after re-checking the current one.
func (s *Service) UpdatePassword(ctx context.Context, callerID uuid.UUID, input UpdatePasswordInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load caller and re-check password
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, wrap("UpdatePassword", err)
	}
	if err := s.checkPassword(user, input.CurrentPassword); err != nil {
		return nil, wrap("UpdatePassword", err)
	}

	// Step 3: Hash and persist
	hash, err := s.newPasswordHash(user, input.NewPassword)
	if err != nil {
		return nil, wrap("UpdatePassword", err)
	}
	updated, err := s.users.UpdatePasswordHash(ctx, user.ID, hash)
	if err != nil {
		return nil, wrap("UpdatePassword", err)
	}

	s.log.InfoContext(ctx, "password updated",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}

// newPasswordHash rejects a password equal to the current one and hashes it.
func (s *Service) newPasswordHash(user *domain.User, password string) (string, error) {
	err := s.hasher.Compare(user.PasswordHash, password)
	if err == nil {
		return "", &domain.EqualPasswordError{Identifier: user.ID.String()}
	}
	if !errors.Is(err, domain.ErrWrongPassword) {
		return "", err
	}
	return s.hasher.Hash(password)
}
