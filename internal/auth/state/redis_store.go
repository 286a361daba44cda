package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hacklabr/wordpress-linkedin-login/internal/utils"
)

const (
	attemptIDBytes = 16
	stateBytes     = 32
)

// RedisStore keeps pending states in Redis keyed per login attempt, so
// concurrent visitors never see each other's state. The key TTL bounds
// how long an attempt may stay pending.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "oauth:state:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(attemptID string) string {
	return s.prefix + attemptID
}

func (s *RedisStore) Begin(ctx context.Context) (string, string, error) {
	attemptID := utils.RandomToken(attemptIDBytes)
	state := utils.RandomToken(stateBytes)

	if err := s.client.Set(ctx, s.key(attemptID), state, s.ttl).Err(); err != nil {
		return "", "", fmt.Errorf("state: failed to store: %w", err)
	}

	return attemptID, state, nil
}

func (s *RedisStore) Consume(ctx context.Context, attemptID string) (string, error) {
	if attemptID == "" {
		return "", ErrNotFound
	}

	val, err := s.client.GetDel(ctx, s.key(attemptID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("state: failed to consume: %w", err)
	}

	return val, nil
}
