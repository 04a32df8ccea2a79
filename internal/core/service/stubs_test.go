package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

type stubAlertGateway struct {
	listFn   func(ctx context.Context, token string) ([]domain.Alert, error)
	getFn    func(ctx context.Context, token, id string) (*domain.Alert, error)
	createFn func(ctx context.Context, token string, alert domain.Alert) (*domain.Alert, error)
	updateFn func(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error)
	deleteFn func(ctx context.Context, token, id string) error
	scanFn   func(ctx context.Context, token string) (*domain.ScanResult, error)
}

func (s *stubAlertGateway) ListAlerts(ctx context.Context, token string) ([]domain.Alert, error) {
	return s.listFn(ctx, token)
}

func (s *stubAlertGateway) GetAlert(ctx context.Context, token, id string) (*domain.Alert, error) {
	if s.getFn == nil {
		return nil, domain.ErrNotFound
	}
	return s.getFn(ctx, token, id)
}

func (s *stubAlertGateway) CreateAlert(ctx context.Context, token string, alert domain.Alert) (*domain.Alert, error) {
	return s.createFn(ctx, token, alert)
}

func (s *stubAlertGateway) UpdateAlert(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error) {
	return s.updateFn(ctx, token, id, update)
}

func (s *stubAlertGateway) DeleteAlert(ctx context.Context, token, id string) error {
	return s.deleteFn(ctx, token, id)
}

func (s *stubAlertGateway) ScanNepal(ctx context.Context, token string) (*domain.ScanResult, error) {
	return s.scanFn(ctx, token)
}

// stubLock counts acquisitions and can be switched to fail or report pending.
type stubLock struct {
	mu         sync.Mutex
	acquireErr error
	held       map[string]string
	released   int
	seq        int
}

func (l *stubLock) Acquire(_ context.Context, clientID, operation string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acquireErr != nil {
		return "", l.acquireErr
	}
	if l.held == nil {
		l.held = make(map[string]string)
	}
	key := clientID + ":" + operation
	if _, ok := l.held[key]; ok {
		return "", domain.ErrSubmissionPending
	}
	l.seq++
	token := strconv.Itoa(l.seq)
	l.held[key] = token
	return token, nil
}

func (l *stubLock) Release(_ context.Context, clientID, operation, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := clientID + ":" + operation
	if l.held[key] == token {
		delete(l.held, key)
	}
	l.released++
	return nil
}

type stubAudit struct {
	mu     sync.Mutex
	events []domain.SessionEvent
}

func (a *stubAudit) Insert(_ context.Context, event *domain.SessionEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, *event)
	return nil
}

func (a *stubAudit) ListByClient(_ context.Context, clientID string, limit int64) ([]domain.SessionEvent, error) {
	return a.events, nil
}

func (a *stubAudit) types() []domain.SessionEventType {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.SessionEventType, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Type)
	}
	return out
}

// failingStorage is a token store whose backend is down.
type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string, string) (string, error) { return "", f.err }

func (f failingStorage) Swap(context.Context, string, string, string, time.Duration, ...string) error {
	return f.err
}

func (f failingStorage) Delete(context.Context, string, ...string) error { return f.err }

var (
	_ ports.AlertGateway           = (*stubAlertGateway)(nil)
	_ ports.SubmissionLock         = (*stubLock)(nil)
	_ ports.SessionAuditRepository = (*stubAudit)(nil)
	_ ports.TokenStorage           = failingStorage{}
)
