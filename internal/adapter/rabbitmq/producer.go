package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Producer publishes JSON messages to one exchange.
// A failed publish reopens the channel and retries once.
type Producer struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *slog.Logger
}

// NewProducer opens a channel on conn and declares the exchange.
func NewProducer(conn *amqp.Connection, exchange string, logger *slog.Logger) (*Producer, error) {
	p := &Producer{
		conn:     conn,
		exchange: exchange,
		log:      logger.With("component", "rabbitmq_producer"),
	}
	if err := p.reopen(); err != nil {
		return nil, err
	}
	return p, nil
}

// Publish marshals body to JSON and publishes it as a persistent message.
func (p *Producer) Publish(ctx context.Context, routingKey string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("rabbitmq.Publish: marshal: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         payload,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("rabbitmq.Publish: %w", ctx.Err())
	}

	p.log.WarnContext(ctx, "publish failed, reopening channel",
		slog.String("routing_key", routingKey),
		slog.String("error", err.Error()),
	)
	if reopenErr := p.reopen(); reopenErr != nil {
		return fmt.Errorf("rabbitmq.Publish: %w", reopenErr)
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq.Publish: %w", err)
	}
	return nil
}

// Close closes the channel. The connection belongs to the caller.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	return p.ch.Close()
}

func (p *Producer) reopen() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err := declareExchange(ch, p.exchange); err != nil {
		_ = ch.Close()
		return err
	}
	p.ch = ch
	return nil
}
