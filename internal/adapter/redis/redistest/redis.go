// Package redistest starts a shared Redis container for integration tests.
package redistest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	once       sync.Once
	sharedAddr string
	initErr    error
)

// SetupRedis starts a shared Redis container (once for the entire test run)
// and returns a new client connected to it. The client is closed via t.Cleanup.
// Each call gets its own client, so hooks added by one test do not leak into another.
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()

	once.Do(func() {
		sharedAddr, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("redistest: failed to setup redis: %v", initErr)
	}

	client := redis.NewClient(&redis.Options{Addr: sharedAddr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
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
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

// ErrInjected is returned by commands failed through FailCommand.
var ErrInjected = errors.New("redistest: injected failure")

// FailCommand returns a hook that fails every command with the given
// lowercase name (e.g. "set", "expire") without sending it to Redis.
func FailCommand(name string) redis.Hook {
	return failHook{name: name}
}

type failHook struct {
	name string
}

func (h failHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h failHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == h.name {
			cmd.SetErr(ErrInjected)
			return ErrInjected
		}
		return next(ctx, cmd)
	}
}

func (h failHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
