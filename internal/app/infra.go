package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/account-service/internal/adapter/postgres"
	"github.com/heartmarshall/account-service/internal/adapter/redis"
	"github.com/heartmarshall/account-service/internal/adapter/redis/tokencache"
	"github.com/heartmarshall/account-service/internal/config"
	"github.com/heartmarshall/account-service/internal/transport/rest"
)

// infra holds the connections shared by the server and the sweeper.
type infra struct {
	pool   *pgxpool.Pool
	redis  *goredis.Client
	tokens *tokencache.Cache
}

func openInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, appName)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected")

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, err
	}
	logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))

	tokens := tokencache.New(rdb, tokencache.Config{
		TTL:       cfg.Token.TTL,
		KeyPrefix: cfg.Token.KeyPrefix,
		OpTimeout: cfg.Redis.OpTimeout,
	}, logger)

	return &infra{pool: pool, redis: rdb, tokens: tokens}, nil
}

func (i *infra) checks() []rest.Check {
	return []rest.Check{
		{Name: "database", Ping: i.pool.Ping},
		{Name: "redis", Ping: func(ctx context.Context) error { return i.redis.Ping(ctx).Err() }},
	}
}

// Close releases the connections.
func (i *infra) Close() {
	_ = i.redis.Close()
	i.pool.Close()
}
