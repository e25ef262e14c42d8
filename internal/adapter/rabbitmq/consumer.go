package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one message body. A nil error acks the message.
// An error wrapped with Permanent rejects it without requeue; any other error requeues it.
type Handler func(ctx context.Context, body []byte) error

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// Consumer reads messages from a durable queue bound to a topic exchange.
type Consumer struct {
	conn     *amqp.Connection
	prefetch int
	log      *slog.Logger
}

// NewConsumer creates a consumer. prefetch bounds the number of unacked deliveries.
func NewConsumer(conn *amqp.Connection, prefetch int, logger *slog.Logger) *Consumer {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &Consumer{
		conn:     conn,
		prefetch: prefetch,
		log:      logger.With("component", "rabbitmq_consumer"),
	}
}

// Consume declares exchange and queue, binds them with routingKey and hands
// every delivery to handler. It blocks until ctx is done or the channel closes.
func (c *Consumer) Consume(ctx context.Context, exchange, queue, routingKey string, handler Handler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq.Consume: open channel: %w", err)
	}
	defer ch.Close()

	if err := declareExchange(ch, exchange); err != nil {
		return fmt.Errorf("rabbitmq.Consume: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("rabbitmq.Consume: declare queue %s: %w", queue, err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
		return fmt.Errorf("rabbitmq.Consume: bind queue %s: %w", queue, err)
	}

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("rabbitmq.Consume: qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq.Consume: %w", err)
	}

	c.log.InfoContext(ctx, "consuming",
		slog.String("queue", q.Name),
		slog.String("routing_key", routingKey),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("rabbitmq.Consume: delivery channel closed")
			}
			c.handle(ctx, d, handler)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	err := handler(ctx, d.Body)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			c.log.ErrorContext(ctx, "ack failed", slog.String("error", ackErr.Error()))
		}
	case IsPermanent(err):
		c.log.ErrorContext(ctx, "message rejected",
			slog.String("routing_key", d.RoutingKey),
			slog.String("error", err.Error()),
		)
		_ = d.Reject(false)
	default:
		c.log.WarnContext(ctx, "message requeued",
			slog.String("routing_key", d.RoutingKey),
			slog.String("error", err.Error()),
		)
		_ = d.Nack(false, !d.Redelivered)
	}
}
