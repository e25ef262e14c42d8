package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

// SignInResult is returned by SignIn.
type SignInResult struct {
	AccessToken string
	User        *domain.User
}

// SignIn authenticates by email, username or alias plus password.
// Users that have not confirmed their sign-up are rejected with ErrForbidden.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	input.Identifier = strings.TrimSpace(input.Identifier)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user
	user, err := s.findByIdentifier(ctx, input.Identifier)
	if err != nil {
		return nil, wrap("SignIn", err)
	}

	// Step 3: Verify password
	if err := s.checkPassword(user, input.Password); err != nil {
		return nil, wrap("SignIn", err)
	}

	// Step 4: Sign-up must be confirmed
	if user.PendingOperation.Matches(domain.PendingSignUp) {
		return nil, wrap("SignIn", fmt.Errorf("user %s has not confirmed sign-up: %w", user.ID, domain.ErrForbidden))
	}

	// Step 5: Issue access token
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, wrap("SignIn", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID.String()))

	return &SignInResult{AccessToken: token, User: user}, nil
}

// Me returns the caller.
func (s *Service) Me(ctx context.Context, callerID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, callerID)
	return u, wrap("Me", err)
}

// UserByID returns a user by id.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	return u, wrap("UserByID", err)
}

// FindUserByIdentifier returns the user matching an email, username or alias.
func (s *Service) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domain.NewValidationError("identifier", "required")
	}
	u, err := s.findByIdentifier(ctx, identifier)
	return u, wrap("FindUserByIdentifier", err)
}
