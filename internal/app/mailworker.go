package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/account-service/internal/adapter/rabbitmq"
	"github.com/heartmarshall/account-service/internal/mailer"
)

// mailRoutingKey binds the worker queue to every mail template.
const mailRoutingKey = "mail.*"

// RunMailWorker consumes mail jobs and delivers them over SMTP until ctx is cancelled.
func RunMailWorker(ctx context.Context) error {
	cfg, logger, err := bootstrap("mail-worker")
	if err != nil {
		return err
	}

	renderer, err := mailer.NewRenderer(cfg.Mail.SenderEmail, cfg.Mail.WebAppAddress)
	if err != nil {
		return err
	}
	sender := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		User:     cfg.Mail.SMTPUser,
		Password: cfg.Mail.SMTPPassword,
	})
	worker := mailer.NewWorker(renderer, sender, logger)

	conn, err := rabbitmq.Dial(cfg.Mail.AMQPURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	consumer := rabbitmq.NewConsumer(conn, cfg.Mail.WorkerPrefetch, logger)

	logger.Info("consuming mail jobs",
		slog.String("exchange", cfg.Mail.Exchange),
		slog.String("queue", cfg.Mail.Queue))

	if err := consumer.Consume(ctx, cfg.Mail.Exchange, cfg.Mail.Queue, mailRoutingKey, worker.Handle); err != nil {
		return err
	}
	logger.Info("mail worker stopped")
	return nil
}
