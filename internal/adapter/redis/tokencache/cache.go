// Package tokencache stores verification tokens in Redis.
//
// A token is written under two keys with the same TTL:
//
//	<prefix>user:<userID>   hash {token, payload?}
//	<prefix>token:<token>   string userID
//
// The reverse key is only trusted while the user hash still holds the same
// token; anything else is an orphan and resolves as not found.
package tokencache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/metrics"
)

const (
	fieldToken   = "token"
	fieldPayload = "payload"

	tokenBytes = 16
)

// Config holds token cache settings.
type Config struct {
	TTL       time.Duration
	KeyPrefix string
	OpTimeout time.Duration
}

// Cache is the Redis-backed verification-token store.
type Cache struct {
	client redis.Cmdable
	cfg    Config
	log    *slog.Logger
}

// New creates a token cache.
func New(client redis.Cmdable, cfg Config, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		cfg:    cfg,
		log:    logger.With("component", "tokencache"),
	}
}

// CreateUserToken issues a fresh token for userID, replacing the one in the
// user hash if any. op only labels errors and logs.
func (c *Cache) CreateUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind, payload string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", c.createErr(userID, op, fmt.Errorf("generate token: %w", err))
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	userKey := c.userKey(userID)
	tokenKey := c.tokenKey(token)

	// Step 1: user hash.
	fields := []any{fieldToken, token}
	if payload != "" {
		fields = append(fields, fieldPayload, payload)
	}
	if err := c.client.HSet(ctx, userKey, fields...).Err(); err != nil {
		return "", c.createErr(userID, op, fmt.Errorf("hset user key: %w", err))
	}
	if payload == "" {
		// A previous token's payload must not leak into this one.
		if err := c.client.HDel(ctx, userKey, fieldPayload).Err(); err != nil {
			c.bestEffortDel(ctx, userKey)
			return "", c.createErr(userID, op, fmt.Errorf("hdel payload: %w", err))
		}
	}

	// Step 2: reverse key.
	if err := c.client.Set(ctx, tokenKey, userID.String(), c.cfg.TTL).Err(); err != nil {
		c.bestEffortDel(ctx, userKey)
		return "", c.createErr(userID, op, fmt.Errorf("set token key: %w", err))
	}

	// Step 3: same TTL on the user hash.
	if err := c.client.Expire(ctx, userKey, c.cfg.TTL).Err(); err != nil {
		c.bestEffortDel(ctx, userKey, tokenKey)
		return "", c.createErr(userID, op, fmt.Errorf("expire user key: %w", err))
	}

	metrics.TokenCacheOpsTotal.WithLabelValues("create", metrics.ResultOK).Inc()
	return token, nil
}

// CleanupUserToken removes the user's token and its reverse key.
// A missing token is not an error.
func (c *Cache) CleanupUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	userKey := c.userKey(userID)

	token, err := c.client.HGet(ctx, userKey, fieldToken).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return c.cleanupErr(userID, op, fmt.Errorf("hget token: %w", err))
	default:
		if err := c.client.Del(ctx, c.tokenKey(token)).Err(); err != nil {
			return c.cleanupErr(userID, op, fmt.Errorf("del token key: %w", err))
		}
	}

	if err := c.client.Del(ctx, userKey).Err(); err != nil {
		return c.cleanupErr(userID, op, fmt.Errorf("del user key: %w", err))
	}

	metrics.TokenCacheOpsTotal.WithLabelValues("cleanup", metrics.ResultOK).Inc()
	return nil
}

// ResolveToken returns the owner of token. An unknown, expired or orphaned
// token returns *domain.TokenNotFoundError.
func (c *Cache) ResolveToken(ctx context.Context, token string, op domain.PendingOperationKind) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, c.miss(op)
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	raw, err := c.client.Get(ctx, c.tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, c.miss(op)
	}
	if err != nil {
		return uuid.Nil, c.readErr("tokencache.ResolveToken", err)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, c.miss(op)
	}

	current, err := c.client.HGet(ctx, c.userKey(userID), fieldToken).Result()
	if errors.Is(err, redis.Nil) || (err == nil && current != token) {
		return uuid.Nil, c.miss(op)
	}
	if err != nil {
		return uuid.Nil, c.readErr("tokencache.ResolveToken", err)
	}

	metrics.TokenCacheOpsTotal.WithLabelValues("resolve", metrics.ResultOK).Inc()
	return userID, nil
}

// UserToken returns the token and payload currently held for userID.
func (c *Cache) UserToken(ctx context.Context, userID uuid.UUID) (token, payload string, err error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	vals, err := c.client.HGetAll(ctx, c.userKey(userID)).Result()
	if err != nil {
		return "", "", c.readErr("tokencache.UserToken", err)
	}
	token, ok := vals[fieldToken]
	if !ok {
		return "", "", &domain.TokenNotFoundError{}
	}
	return token, vals[fieldPayload], nil
}

// SweepOrphans deletes reverse keys whose user hash is gone or holds another
// token. batch is the SCAN page size.
func (c *Cache) SweepOrphans(ctx context.Context, batch int) (int, error) {
	pattern := c.cfg.KeyPrefix + "token:*"
	removed := 0

	var cursor uint64
	for {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		keys, next, err := c.client.Scan(ctx, cursor, pattern, int64(batch)).Result()
		if err != nil {
			metrics.TokenCacheOpsTotal.WithLabelValues("sweep", metrics.ResultFailed).Inc()
			return removed, c.readErr("tokencache.SweepOrphans", err)
		}

		for _, key := range keys {
			orphan, err := c.isOrphan(ctx, key)
			if err != nil {
				return removed, err
			}
			if !orphan {
				continue
			}
			if err := c.client.Del(ctx, key).Err(); err != nil {
				return removed, c.readErr("tokencache.SweepOrphans", err)
			}
			removed++
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	metrics.TokenCacheOpsTotal.WithLabelValues("sweep", metrics.ResultOK).Inc()
	return removed, nil
}

func (c *Cache) isOrphan(ctx context.Context, tokenKey string) (bool, error) {
	token := strings.TrimPrefix(tokenKey, c.cfg.KeyPrefix+"token:")

	raw, err := c.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil // expired meanwhile
	}
	if err != nil {
		return false, c.readErr("tokencache.SweepOrphans", err)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return true, nil
	}

	current, err := c.client.HGet(ctx, c.userKey(userID), fieldToken).Result()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, c.readErr("tokencache.SweepOrphans", err)
	}
	return current != token, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (c *Cache) userKey(userID uuid.UUID) string { return c.cfg.KeyPrefix + "user:" + userID.String() }

func (c *Cache) tokenKey(token string) string { return c.cfg.KeyPrefix + "token:" + token }

func (c *Cache) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.OpTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.OpTimeout)
}

// bestEffortDel removes partially written keys. Its failure is only logged;
// the TTL (or the sweeper) removes what is left.
func (c *Cache) bestEffortDel(ctx context.Context, keys ...string) {
	if err := c.client.Del(context.WithoutCancel(ctx), keys...).Err(); err != nil {
		c.log.WarnContext(ctx, "token cleanup after failed create",
			slog.Any("keys", keys),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Cache) createErr(userID uuid.UUID, op domain.PendingOperationKind, err error) error {
	metrics.TokenCacheOpsTotal.WithLabelValues("create", metrics.ResultFailed).Inc()
	return &domain.CacheCreateTokenError{Identifier: userID.String(), Operation: op, Err: err}
}

func (c *Cache) cleanupErr(userID uuid.UUID, op domain.PendingOperationKind, err error) error {
	metrics.TokenCacheOpsTotal.WithLabelValues("cleanup", metrics.ResultFailed).Inc()
	return &domain.CacheCleanupError{Identifier: userID.String(), Operation: op, Err: err}
}

func (c *Cache) miss(op domain.PendingOperationKind) error {
	metrics.TokenCacheOpsTotal.WithLabelValues("resolve", "miss").Inc()
	return &domain.TokenNotFoundError{Operation: op}
}

func (c *Cache) readErr(where string, err error) error {
	metrics.TokenCacheOpsTotal.WithLabelValues("read", metrics.ResultFailed).Inc()
	return fmt.Errorf("%s: %w: %w", where, domain.ErrDependencyFailure, err)
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
