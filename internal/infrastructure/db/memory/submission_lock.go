package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// SubmissionLock mirrors the Redis lock: a held key expires after ttl and
// only the token that acquired it can release it.
type SubmissionLock struct {
	mu   sync.Mutex
	held map[string]lease
	ttl  time.Duration
	now  func() time.Time
}

type lease struct {
	token string
	until time.Time
}

func NewSubmissionLock(ttl time.Duration) *SubmissionLock {
	return &SubmissionLock{held: make(map[string]lease), ttl: ttl, now: time.Now}
}

func (l *SubmissionLock) Acquire(_ context.Context, clientID, operation string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := clientID + ":" + operation
	if cur, ok := l.held[key]; ok && (l.ttl <= 0 || l.now().Before(cur.until)) {
		return "", domain.ErrSubmissionPending
	}
	token := uuid.NewString()
	l.held[key] = lease{token: token, until: l.now().Add(l.ttl)}
	return token, nil
}

func (l *SubmissionLock) Release(_ context.Context, clientID, operation, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := clientID + ":" + operation
	if cur, ok := l.held[key]; ok && cur.token == token {
		delete(l.held, key)
	}
	return nil
}
