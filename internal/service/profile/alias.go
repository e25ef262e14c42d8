package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/saga"
)

// ChangeAlias sets the caller's public username and notifies the current email.
// If the notification cannot be queued, the old alias is restored.
func (s *Service) ChangeAlias(ctx context.Context, callerID uuid.UUID, input ChangeAliasInput) (*domain.User, error) {
	input.NewAlias = strings.TrimSpace(input.NewAlias)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load caller and re-check password
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, wrap("ChangeAlias", err)
	}
	if err := s.checkPassword(user, input.Password); err != nil {
		return nil, wrap("ChangeAlias", err)
	}

	// Step 3: Alias must not answer for anyone else
	if err := s.ensureIdentifierFree(ctx, user.ID, "alias", input.NewAlias); err != nil {
		return nil, wrap("ChangeAlias", err)
	}

	// Step 4: Run the saga
	oldAlias := user.Alias
	newAlias := input.NewAlias
	var updated *domain.User
	err = s.saga.Run(ctx, "change_alias",
		saga.Step{
			Name: "update_alias",
			Do: func(ctx context.Context) error {
				u, err := s.users.UpdateAlias(ctx, user.ID, &newAlias)
				if err != nil {
					return err
				}
				updated = u
				return nil
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.users.UpdateAlias(ctx, user.ID, oldAlias)
				return err
			},
		},
		saga.Step{
			Name: "send_mail",
			Do: func(ctx context.Context) error {
				return s.mail.SendUsernameChanged(ctx, user.Email, oldAlias, newAlias)
			},
		},
	)
	if err != nil {
		return nil, wrap("ChangeAlias", err)
	}

	s.log.InfoContext(ctx, "alias changed",
		slog.String("user_id", user.ID.String()))

	return updated, nil
}

// ensureIdentifierFree rejects name when a user other than ownerID already
// answers to it as a username, an alias or an email. Pass uuid.Nil when
// there is no owner yet.
func (s *Service) ensureIdentifierFree(ctx context.Context, ownerID uuid.UUID, field, name string) error {
	lookups := []func(context.Context, string) (*domain.User, error){
		s.users.GetByUsername,
		s.users.GetByAlias,
	}
	if domain.LooksLikeEmail(name) {
		lookups = append(lookups, func(ctx context.Context, email string) (*domain.User, error) {
			return s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
		})
	}

	for _, lookup := range lookups {
		other, err := lookup(ctx, name)
		switch {
		case err == nil:
			if other.ID != ownerID {
				return fmt.Errorf("%s %q: %w", field, name, domain.ErrAlreadyExists)
			}
		case errors.Is(err, domain.ErrNotFound):
		default:
			return err
		}
	}
	return nil
}
