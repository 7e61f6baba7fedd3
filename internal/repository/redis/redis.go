package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saasStackAnalyzer/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCache keeps a token -> session id lookup next to the record store
type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{
		client: client,
	}
}

func lookupKey(token string) string {
	return fmt.Sprintf("session:lookup:%s", token)
}

func (c *SessionCache) Store(ctx context.Context, token string, sessionID uuid.UUID, ttl time.Duration) error {
	err := c.client.Set(ctx, lookupKey(token), sessionID.String(), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	return nil
}

// Lookup resolves a token to its session id
func (c *SessionCache) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := c.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, domain.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse cached session id: %w", err)
	}

	return id, nil
}

// Refresh extends the lookup TTL
func (c *SessionCache) Refresh(ctx context.Context, token string, ttl time.Duration) error {
	ok, err := c.client.Expire(ctx, lookupKey(token), ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh session TTL: %w", err)
	}

	if !ok {
		return domain.ErrNotFound
	}

	return nil
}

func (c *SessionCache) Forget(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, lookupKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}

	return nil
}
