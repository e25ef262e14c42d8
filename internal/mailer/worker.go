package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/account-service/internal/adapter/rabbitmq"
	"github.com/heartmarshall/account-service/internal/metrics"
)

type sender interface {
	Send(ctx context.Context, msg Message) error
}

// Worker renders and delivers queued jobs.
type Worker struct {
	renderer *Renderer
	sender   sender
	log      *slog.Logger
}

// NewWorker creates a worker.
func NewWorker(renderer *Renderer, sender sender, logger *slog.Logger) *Worker {
	return &Worker{
		renderer: renderer,
		sender:   sender,
		log:      logger.With("component", "mail_worker"),
	}
}

// Handle processes one queued job body. Malformed jobs are permanent failures;
// delivery failures are retried by the queue.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		metrics.MailJobsTotal.WithLabelValues("unknown", "rejected").Inc()
		return rabbitmq.Permanent(fmt.Errorf("decode job: %w", err))
	}
	if !job.Template.IsValid() || job.Recipient == "" {
		metrics.MailJobsTotal.WithLabelValues("unknown", "rejected").Inc()
		return rabbitmq.Permanent(fmt.Errorf("invalid job %s: template %q", job.ID, job.Template))
	}

	msg, err := w.renderer.Render(job)
	if err != nil {
		metrics.MailJobsTotal.WithLabelValues(job.Template.String(), "rejected").Inc()
		return rabbitmq.Permanent(fmt.Errorf("render job %s: %w", job.ID, err))
	}

	if err := w.sender.Send(ctx, msg); err != nil {
		metrics.MailJobsTotal.WithLabelValues(job.Template.String(), "delivery_failed").Inc()
		return fmt.Errorf("deliver job %s: %w", job.ID, err)
	}

	metrics.MailJobsTotal.WithLabelValues(job.Template.String(), "delivered").Inc()
	w.log.InfoContext(ctx, "mail delivered",
		slog.String("job_id", job.ID.String()),
		slog.String("template", job.Template.String()),
	)
	return nil
}
