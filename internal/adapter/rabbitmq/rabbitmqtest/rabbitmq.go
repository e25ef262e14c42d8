// Package rabbitmqtest starts a shared RabbitMQ container for integration tests.
package rabbitmqtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once      sync.Once
	sharedURL string
	initErr   error
)

// SetupRabbitMQ starts a shared broker (once for the entire test run) and
// returns the AMQP URL plus a fresh connection closed via t.Cleanup.
func SetupRabbitMQ(t *testing.T) (string, *amqp.Connection) {
	t.Helper()

	once.Do(func() {
		sharedURL, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("rabbitmqtest: failed to setup rabbitmq: %v", initErr)
	}

	conn, err := amqp.Dial(sharedURL)
	if err != nil {
		t.Fatalf("rabbitmqtest: dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return sharedURL, conn
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5672")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), nil
}
