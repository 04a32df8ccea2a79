// Package memory provides in-process storage for development and tests. State
// is lost on restart and is not shared between replicas.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// TokenStorage is a mutex-guarded map implementation of ports.TokenStorage.
type TokenStorage struct {
	mu   sync.Mutex
	data map[string]map[string]entry
	now  func() time.Time
}

func NewTokenStorage() *TokenStorage {
	return &TokenStorage{data: make(map[string]map[string]entry), now: time.Now}
}

func (s *TokenStorage) Get(_ context.Context, clientID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[clientID][key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.data[clientID], key)
		return "", domain.ErrKeyNotFound
	}
	return e.value, nil
}

func (s *TokenStorage) Swap(_ context.Context, clientID, setKey, value string, ttl time.Duration, clear ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[clientID]
	if !ok {
		ns = make(map[string]entry)
		s.data[clientID] = ns
	}
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	ns[setKey] = e
	for _, k := range clear {
		if k != setKey {
			delete(ns, k)
		}
	}
	return nil
}

func (s *TokenStorage) Delete(_ context.Context, clientID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[clientID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(ns, k)
	}
	if len(ns) == 0 {
		delete(s.data, clientID)
	}
	return nil
}
