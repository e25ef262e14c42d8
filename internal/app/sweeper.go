package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/account-service/internal/adapter/postgres/user"
	"github.com/heartmarshall/account-service/internal/sweeper"
)

// RunSweeper runs the token sweeper on its cron schedule until ctx is
// cancelled. With once set it performs a single run and returns.
func RunSweeper(ctx context.Context, once bool) error {
	cfg, logger, err := bootstrap("token-sweeper")
	if err != nil {
		return err
	}

	infra, err := openInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	s := sweeper.New(logger, user.New(infra.pool, cfg.Timeouts.Database), infra.tokens, sweeper.Config{
		TokenTTL:  cfg.Token.TTL,
		BatchSize: cfg.Sweeper.BatchSize,
	})

	if once {
		res, err := s.Run(ctx)
		if err != nil {
			return err
		}
		logger.Info("sweep finished",
			slog.Int("orphan_tokens", res.OrphanTokens),
			slog.Int("stale_operations", res.StaleOperations))
		return nil
	}

	logger.Info("sweeper scheduled", slog.String("schedule", cfg.Sweeper.Schedule))
	return s.Schedule(ctx, cfg.Sweeper.Schedule)
}
