package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const defaultLockTTL = 30 * time.Second

// releaseScript deletes the lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// SubmissionLock is a per-client, per-operation SET NX lock. The TTL bounds
// how long a crashed request can block the next submission.
// Key format: submit:<client_id>:<operation>, value: owner token.
type SubmissionLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmissionLock(client *redis.Client, ttl time.Duration) *SubmissionLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &SubmissionLock{client: client, ttl: ttl}
}

func (l *SubmissionLock) Acquire(ctx context.Context, clientID, operation string) (string, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key(clientID, operation), token, l.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("submission lock: %w", err)
	}
	if !ok {
		return "", domain.ErrSubmissionPending
	}
	return token, nil
}

func (l *SubmissionLock) Release(ctx context.Context, clientID, operation, token string) error {
	return releaseScript.Run(ctx, l.client, []string{l.key(clientID, operation)}, token).Err()
}

func (l *SubmissionLock) key(clientID, operation string) string {
	return fmt.Sprintf("submit:%s:%s", clientID, operation)
}
