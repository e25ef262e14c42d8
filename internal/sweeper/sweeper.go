// Package sweeper repairs state left behind by failed compensations: reverse
// token keys whose user hash is gone, and password-reset or email-change
// operations whose token has expired.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/metrics"
)

// expiringKinds are the operations a user may abandon. A stale SIGN_UP is
// left alone: resending the token is the only way out of it.
var expiringKinds = []domain.PendingOperationKind{domain.PendingForgotPassword, domain.PendingChangeEmail}

type userRepo interface {
	ListStalePending(ctx context.Context, kinds []domain.PendingOperationKind, olderThan time.Time, limit int) ([]domain.User, error)
	TransitionPendingOperation(ctx context.Context, id uuid.UUID, from domain.PendingOperationKind, to domain.PendingOperation) (*domain.User, error)
}

type tokenCache interface {
	SweepOrphans(ctx context.Context, batch int) (int, error)
	UserToken(ctx context.Context, userID uuid.UUID) (token, payload string, err error)
}

// Config controls one sweep.
type Config struct {
	// TokenTTL is the verification token lifetime. Operations untouched for
	// longer than this are candidates for reset.
	TokenTTL time.Duration
	// BatchSize bounds the Redis SCAN page and the number of users examined per run.
	BatchSize int
}

// Result summarizes one sweep.
type Result struct {
	OrphanTokens    int
	StaleOperations int
}

// Sweeper performs the repairs.
type Sweeper struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenCache
	cfg    Config
	now    func() time.Time
}

// New creates a Sweeper.
func New(logger *slog.Logger, users userRepo, tokens tokenCache, cfg Config) *Sweeper {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &Sweeper{
		log:    logger.With("component", "sweeper"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Run performs one sweep. A failure on one user is logged and skipped; a
// failure of a listing aborts the run.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result

	// Step 1: Orphan reverse keys
	removed, err := s.tokens.SweepOrphans(ctx, s.cfg.BatchSize)
	res.OrphanTokens = removed
	metrics.SweeperRemovedTotal.WithLabelValues("orphan_token").Add(float64(removed))
	if err != nil {
		return res, fmt.Errorf("sweeper.Run: orphan tokens: %w", err)
	}

	// Step 2: Abandoned operations
	olderThan := s.now().Add(-s.cfg.TokenTTL)
	users, err := s.users.ListStalePending(ctx, expiringKinds, olderThan, s.cfg.BatchSize)
	if err != nil {
		return res, fmt.Errorf("sweeper.Run: list stale users: %w", err)
	}

	for i := range users {
		reset, err := s.resetIfExpired(ctx, &users[i])
		if err != nil {
			if ctx.Err() != nil {
				return res, fmt.Errorf("sweeper.Run: %w", ctx.Err())
			}
			s.log.WarnContext(ctx, "stale operation not reset",
				slog.String("user_id", users[i].ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if reset {
			res.StaleOperations++
			metrics.SweeperRemovedTotal.WithLabelValues("stale_operation").Inc()
		}
	}

	s.log.InfoContext(ctx, "sweep completed",
		slog.Int("orphan_tokens", res.OrphanTokens),
		slog.Int("stale_operations", res.StaleOperations),
		slog.Int("examined", len(users)))

	return res, nil
}

// resetIfExpired moves u back to NONE when its token is gone. A user whose
// state changed since it was listed is left alone.
func (s *Sweeper) resetIfExpired(ctx context.Context, u *domain.User) (bool, error) {
	_, _, err := s.tokens.UserToken(ctx, u.ID)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, err
	}

	op := u.PendingOperation.Kind()
	_, err = s.users.TransitionPendingOperation(ctx, u.ID, op, domain.NoPendingOperation())
	if errors.Is(err, domain.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "stale operation reset",
		slog.String("user_id", u.ID.String()),
		slog.String("operation", op.String()))
	return true, nil
}
