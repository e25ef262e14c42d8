package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/saga"
)

// SignUp creates a user in SIGN_UP, issues a verification token and mails it.
// If any step fails, the earlier ones are undone: no user row and no token survive.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Username must not answer for anyone else
	if err := s.ensureIdentifierFree(ctx, uuid.Nil, "username", input.Username); err != nil {
		return nil, wrap("SignUp", err)
	}

	// Step 3: Hash password
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, wrap("SignUp", err)
	}

	// Step 4: Run the saga
	now := time.Now().UTC()
	newUser := &domain.User{
		ID:               uuid.New(),
		Username:         input.Username,
		Email:            input.Email,
		PasswordHash:     hash,
		PendingOperation: domain.SignUpPending(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	var (
		created *domain.User
		token   string
	)
	err = s.saga.Run(ctx, "sign_up",
		saga.Step{
			Name: "create_user",
			Do: func(ctx context.Context) error {
				u, err := s.users.Create(ctx, newUser)
				if err != nil {
					return err
				}
				created = u
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.users.Delete(ctx, newUser.ID)
			},
		},
		s.issueTokenStep(newUser.ID, domain.PendingSignUp, "", &token),
		saga.Step{
			Name: "send_mail",
			Do: func(ctx context.Context) error {
				return s.mail.SendSignUp(ctx, newUser.Email, token)
			},
		},
	)
	if err != nil {
		return nil, wrap("SignUp", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", created.ID.String()))

	return created, nil
}

// ResendSignUpToken replaces the sign-up token of an unverified user and mails the new one.
func (s *Service) ResendSignUpToken(ctx context.Context, identifier string) error {
	// Step 1: Load user
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return wrap("ResendSignUpToken", err)
	}

	// Step 2: Guard
	if err := user.GuardConfirm(domain.PendingSignUp); err != nil {
		var wrong *domain.WrongPendingOperationError
		if errors.As(err, &wrong) {
			return wrap("ResendSignUpToken", &domain.AlreadyVerifiedError{Identifier: identifier})
		}
		return wrap("ResendSignUpToken", err)
	}

	// Step 3: Run the saga
	var token string
	err = s.saga.Run(ctx, "resend_sign_up_token",
		saga.Step{
			Name: "cleanup_token",
			Do: func(ctx context.Context) error {
				return s.tokens.CleanupUserToken(ctx, user.ID, domain.PendingSignUp)
			},
		},
		s.issueTokenStep(user.ID, domain.PendingSignUp, "", &token),
		saga.Step{
			Name: "send_mail",
			Do: func(ctx context.Context) error {
				return s.mail.SendSignUp(ctx, user.Email, token)
			},
		},
	)
	if err != nil {
		return wrap("ResendSignUpToken", err)
	}

	s.log.InfoContext(ctx, "sign-up token resent",
		slog.String("user_id", user.ID.String()))

	return nil
}

// ConfirmSignUp completes the sign-up the token was issued for.
func (s *Service) ConfirmSignUp(ctx context.Context, token string) (*domain.User, error) {
	// Step 1: Resolve token and check the pending operation
	user, err := s.resolveConfirmation(ctx, token, domain.PendingSignUp)
	if err != nil {
		return nil, wrap("ConfirmSignUp", err)
	}

	// Step 2: Persist
	confirmed, err := s.users.TransitionPendingOperation(ctx, user.ID, domain.PendingSignUp, domain.NoPendingOperation())
	if err != nil {
		return nil, wrap("ConfirmSignUp", err)
	}

	// Step 3: Cleanup
	if err := s.finishConfirmation(ctx, user.ID, domain.PendingSignUp); err != nil {
		return nil, wrap("ConfirmSignUp", err)
	}

	s.log.InfoContext(ctx, "sign-up confirmed",
		slog.String("user_id", user.ID.String()))

	return confirmed, nil
}
