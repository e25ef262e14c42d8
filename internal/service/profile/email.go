package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/saga"
)

// RequestEmailChange starts an email change for the caller and mails a
// confirmation link to the new address.
func (s *Service) RequestEmailChange(ctx context.Context, callerID uuid.UUID, input RequestEmailChangeInput) error {
	input.NewEmail = domain.NormalizeEmail(input.NewEmail)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Load caller and re-check password
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return wrap("RequestEmailChange", err)
	}
	if err := s.checkPassword(user, input.Password); err != nil {
		return wrap("RequestEmailChange", err)
	}

	// Step 3: New address must be unused
	if err := s.ensureEmailAvailable(ctx, input.NewEmail); err != nil {
		return wrap("RequestEmailChange", err)
	}

	// Step 4: Run the saga
	var token string
	err = s.saga.Run(ctx, "request_email_change",
		saga.Step{
			Name: "start_operation",
			Do: func(ctx context.Context) error {
				return s.startOperation(ctx, user, domain.ChangeEmailPending(input.NewEmail))
			},
			Compensate: func(ctx context.Context) error {
				return s.abortOperation(ctx, user.ID, domain.PendingChangeEmail)
			},
		},
		s.issueTokenStep(user.ID, domain.PendingChangeEmail, input.NewEmail, &token),
		saga.Step{
			Name: "send_mail",
			Do: func(ctx context.Context) error {
				return s.mail.SendEmailChange(ctx, input.NewEmail, token)
			},
		},
	)
	if err != nil {
		return wrap("RequestEmailChange", err)
	}

	s.log.InfoContext(ctx, "email change requested",
		slog.String("user_id", user.ID.String()))

	return nil
}

// ConfirmEmailChange applies the pending address the token was issued for.
func (s *Service) ConfirmEmailChange(ctx context.Context, token string) (*domain.User, error) {
	// Step 1: Resolve token and check the pending operation
	user, err := s.resolveConfirmation(ctx, token, domain.PendingChangeEmail)
	if err != nil {
		return nil, wrap("ConfirmEmailChange", err)
	}

	newEmail, ok := user.PendingOperation.NewEmail()
	if !ok {
		return nil, wrap("ConfirmEmailChange", &domain.WrongPendingOperationError{
			Identifier: user.ID.String(),
			Expected:   domain.PendingChangeEmail,
			Actual:     user.PendingOperation.Kind(),
		})
	}

	// Step 2: Persist email and transition in one statement
	updated, err := s.users.CompleteEmailChange(ctx, user.ID, newEmail)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// The address was taken after the request; the token can never succeed.
		s.dropEmailChange(ctx, user.ID)
		return nil, wrap("ConfirmEmailChange", err)
	}
	if err != nil {
		return nil, wrap("ConfirmEmailChange", err)
	}

	// Step 3: Cleanup
	if err := s.finishConfirmation(ctx, user.ID, domain.PendingChangeEmail); err != nil {
		return nil, wrap("ConfirmEmailChange", err)
	}

	s.log.InfoContext(ctx, "email change confirmed",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}

// dropEmailChange returns the user to NONE and removes the token. Failures are
// logged only: the sweeper and the token TTL cover what is left behind.
func (s *Service) dropEmailChange(ctx context.Context, userID uuid.UUID) {
	if err := s.abortOperation(ctx, userID, domain.PendingChangeEmail); err != nil {
		s.log.WarnContext(ctx, "abort email change",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
	if err := s.tokens.CleanupUserToken(ctx, userID, domain.PendingChangeEmail); err != nil {
		s.log.WarnContext(ctx, "cleanup email change token",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *Service) ensureEmailAvailable(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("email %q: %w", email, domain.ErrAlreadyExists)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}
