// Package profile implements the user lifecycle: sign-up, sign-in, password
// reset, email change and alias change. Flows that touch more than one
// resource run as sagas.
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

// userRepo defines the user persistence needed by the profile service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByAlias(ctx context.Context, alias string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateAlias(ctx context.Context, id uuid.UUID, alias *string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error)
	TransitionPendingOperation(ctx context.Context, id uuid.UUID, from domain.PendingOperationKind, to domain.PendingOperation) (*domain.User, error)
	CompletePasswordReset(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error)
	CompleteEmailChange(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)
}

// tokenCache defines the verification-token operations.
type tokenCache interface {
	CreateUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind, payload string) (string, error)
	CleanupUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error
	ResolveToken(ctx context.Context, token string, op domain.PendingOperationKind) (uuid.UUID, error)
}

// mailer defines the notification mails sent by the flows.
type mailer interface {
	SendSignUp(ctx context.Context, to, token string) error
	SendPasswordReset(ctx context.Context, to, token string) error
	SendEmailChange(ctx context.Context, to, token string) error
	SendUsernameChanged(ctx context.Context, to string, oldAlias *string, newAlias string) error
}

// passwordHasher defines password hashing.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// tokenIssuer defines access token generation.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
}

// Service implements profile operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenCache
	mail   mailer
	hasher passwordHasher
	jwt    tokenIssuer
	saga   *saga.Runner
}

// NewService creates a new profile service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenCache,
	mail mailer,
	hasher passwordHasher,
	jwt tokenIssuer,
	runner *saga.Runner,
) *Service {
	return &Service{
		log:    logger.With("service", "profile"),
		users:  users,
		tokens: tokens,
		mail:   mail,
		hasher: hasher,
		jwt:    jwt,
		saga:   runner,
	}
}

// findByIdentifier looks the user up by email when the identifier looks like
// one, otherwise by username and then by alias.
func (s *Service) findByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if domain.LooksLikeEmail(identifier) {
		return s.users.GetByEmail(ctx, domain.NormalizeEmail(identifier))
	}

	u, err := s.users.GetByUsername(ctx, identifier)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return u, err
	}
	return s.users.GetByAlias(ctx, identifier)
}

// checkPassword re-verifies the caller's password.
func (s *Service) checkPassword(user *domain.User, password string) error {
	return s.hasher.Compare(user.PasswordHash, password)
}

// startOperation moves a user from NONE to op. A lost race is reported the
// same way as a failed guard.
func (s *Service) startOperation(ctx context.Context, user *domain.User, op domain.PendingOperation) error {
	if err := user.GuardStart(); err != nil {
		return err
	}

	_, err := s.users.TransitionPendingOperation(ctx, user.ID, domain.PendingNone, op)
	if errors.Is(err, domain.ErrConflict) {
		current, getErr := s.users.GetByID(ctx, user.ID)
		if getErr != nil {
			return err
		}
		if guardErr := current.GuardStart(); guardErr != nil {
			return guardErr
		}
	}
	return err
}

// abortOperation returns a user from op back to NONE.
func (s *Service) abortOperation(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error {
	_, err := s.users.TransitionPendingOperation(ctx, userID, op, domain.NoPendingOperation())
	return err
}

// resolveConfirmation maps a verification token to its user and checks that
// the user is still in the operation the token was issued for.
func (s *Service) resolveConfirmation(ctx context.Context, token string, op domain.PendingOperationKind) (*domain.User, error) {
	if token == "" {
		return nil, &domain.TokenNotFoundError{Operation: op}
	}

	userID, err := s.tokens.ResolveToken(ctx, token, op)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.GuardConfirm(op); err != nil {
		return nil, err
	}
	return user, nil
}

// finishConfirmation removes the token after the state change was committed.
func (s *Service) finishConfirmation(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error {
	if err := s.tokens.CleanupUserToken(ctx, userID, op); err != nil {
		return &domain.StateCommittedError{Identifier: userID.String(), Operation: op, Err: err}
	}
	return nil
}

// issueTokenStep creates a verification token and stores it in *token.
func (s *Service) issueTokenStep(userID uuid.UUID, op domain.PendingOperationKind, payload string, token *string) saga.Step {
	return saga.Step{
		Name: "issue_token",
		Do: func(ctx context.Context) error {
			t, err := s.tokens.CreateUserToken(ctx, userID, op, payload)
			if err != nil {
				return err
			}
			*token = t
			return nil
		},
		Compensate: func(ctx context.Context) error {
			return s.tokens.CleanupUserToken(ctx, userID, op)
		},
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("profile.%s: %w", op, err)
}
