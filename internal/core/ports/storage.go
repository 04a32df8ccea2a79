package ports

import (
	"context"
	"time"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// TokenStorage is a client-scoped persisted key/value store, the server-side
// counterpart of browser local storage. Every key lives in the namespace of
// one client id.
type TokenStorage interface {
	// Get returns domain.ErrKeyNotFound when key is absent.
	Get(ctx context.Context, clientID, key string) (string, error)
	// Swap stores value under setKey and removes every key in clear in one
	// atomic step.
	Swap(ctx context.Context, clientID, setKey, value string, ttl time.Duration, clear ...string) error
	Delete(ctx context.Context, clientID string, keys ...string) error
}

// SubmissionLock guards non-idempotent create operations against double
// submission while a previous request is in flight.
type SubmissionLock interface {
	// Acquire returns an owner token, or domain.ErrSubmissionPending when
	// the lock is held.
	Acquire(ctx context.Context, clientID, operation string) (string, error)
	// Release drops the lock only while token still owns it.
	Release(ctx context.Context, clientID, operation, token string) error
}

// SessionAuditRepository persists the session audit trail.
type SessionAuditRepository interface {
	Insert(ctx context.Context, event *domain.SessionEvent) error
	ListByClient(ctx context.Context, clientID string, limit int64) ([]domain.SessionEvent, error)
}
