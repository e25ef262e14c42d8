package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/metrics"
)

type publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// Dispatcher hands mail jobs to the queue. A job counts as sent once the
// broker accepted it; delivery happens in the mail worker.
type Dispatcher struct {
	pub     publisher
	timeout time.Duration
	log     *slog.Logger
}

// NewDispatcher creates a dispatcher bounded by publishTimeout per job.
func NewDispatcher(pub publisher, publishTimeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		pub:     pub,
		timeout: publishTimeout,
		log:     logger.With("component", "mail_dispatcher"),
	}
}

// SendSignUp queues the sign-up confirmation mail.
func (d *Dispatcher) SendSignUp(ctx context.Context, to, token string) error {
	return d.dispatch(ctx, Job{Template: TemplateSignUp, Recipient: to, Token: token})
}

// SendPasswordReset queues the password reset mail.
func (d *Dispatcher) SendPasswordReset(ctx context.Context, to, token string) error {
	return d.dispatch(ctx, Job{Template: TemplatePasswordReset, Recipient: to, Token: token})
}

// SendEmailChange queues the confirmation mail for a new address.
func (d *Dispatcher) SendEmailChange(ctx context.Context, to, token string) error {
	return d.dispatch(ctx, Job{Template: TemplateEmailChange, Recipient: to, Token: token})
}

// SendUsernameChanged queues the notification about a changed public username.
func (d *Dispatcher) SendUsernameChanged(ctx context.Context, to string, oldAlias *string, newAlias string) error {
	return d.dispatch(ctx, Job{Template: TemplateUsernameChanged, Recipient: to, OldAlias: oldAlias, NewAlias: newAlias})
}

func (d *Dispatcher) dispatch(ctx context.Context, job Job) error {
	job.ID = uuid.New()
	job.CreatedAt = time.Now().UTC()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.pub.Publish(ctx, job.Template.RoutingKey(), job); err != nil {
		metrics.MailJobsTotal.WithLabelValues(job.Template.String(), "publish_failed").Inc()
		return &domain.MailError{
			Recipient: job.Recipient,
			Template:  job.Template.String(),
			Err:       fmt.Errorf("publish job: %w", err),
		}
	}

	metrics.MailJobsTotal.WithLabelValues(job.Template.String(), "published").Inc()
	d.log.DebugContext(ctx, "mail job queued",
		slog.String("job_id", job.ID.String()),
		slog.String("template", job.Template.String()),
	)
	return nil
}
