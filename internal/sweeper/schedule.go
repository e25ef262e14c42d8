package sweeper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Schedule runs the sweeper on a cron schedule until ctx is done. Runs never
// overlap: a tick that fires while a sweep is in progress is skipped.
func (s *Sweeper) Schedule(ctx context.Context, spec string) error {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	if _, err := c.AddFunc(spec, func() { s.runLogged(ctx) }); err != nil {
		return fmt.Errorf("sweeper.Schedule: parse %q: %w", spec, err)
	}

	s.log.InfoContext(ctx, "sweeper scheduled", slog.String("schedule", spec))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (s *Sweeper) runLogged(ctx context.Context) {
	if _, err := s.Run(ctx); err != nil {
		s.log.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
	}
}
