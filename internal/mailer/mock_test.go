package mailer

import (
	"context"
	"sync"
)

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(ctx context.Context, routingKey string, body any) error

	mu    sync.Mutex
	calls []publishCall
}

type publishCall struct {
	RoutingKey string
	Body       any
}

func (m *publisherMock) Publish(ctx context.Context, routingKey string, body any) error {
	m.mu.Lock()
	m.calls = append(m.calls, publishCall{RoutingKey: routingKey, Body: body})
	m.mu.Unlock()
	if m.PublishFunc == nil {
		return nil
	}
	return m.PublishFunc(ctx, routingKey, body)
}

func (m *publisherMock) PublishCalls() []publishCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]publishCall(nil), m.calls...)
}

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, msg Message) error

	mu    sync.Mutex
	calls []Message
}

func (m *senderMock) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	m.calls = append(m.calls, msg)
	m.mu.Unlock()
	if m.SendFunc == nil {
		return nil
	}
	return m.SendFunc(ctx, msg)
}

func (m *senderMock) SendCalls() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.calls...)
}
