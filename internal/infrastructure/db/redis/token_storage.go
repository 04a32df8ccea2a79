package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// TokenStorage implements ports.TokenStorage on Redis strings.
// Key format: session:<client_id>:<key>
type TokenStorage struct {
	client *redis.Client
}

func NewTokenStorage(client *redis.Client) *TokenStorage {
	return &TokenStorage{client: client}
}

func (s *TokenStorage) Get(ctx context.Context, clientID, key string) (string, error) {
	v, err := s.client.Get(ctx, tokenKey(clientID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("token get: %w", err)
	}
	return v, nil
}

// Swap sets setKey and deletes clear inside MULTI/EXEC so no reader sees both
// role tokens at once.
func (s *TokenStorage) Swap(ctx context.Context, clientID, setKey, value string, ttl time.Duration, clear ...string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKey(clientID, setKey), value, ttl)
		if len(clear) > 0 {
			pipe.Del(ctx, tokenKeys(clientID, clear)...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("token swap: %w", err)
	}
	return nil
}

func (s *TokenStorage) Delete(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, tokenKeys(clientID, keys)...).Err(); err != nil {
		return fmt.Errorf("token delete: %w", err)
	}
	return nil
}

func tokenKey(clientID, key string) string {
	return fmt.Sprintf("session:%s:%s", clientID, key)
}

func tokenKeys(clientID string, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = tokenKey(clientID, k)
	}
	return out
}
