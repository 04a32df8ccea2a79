package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// SessionManager builds a SessionStore per client over shared persisted storage.
type SessionManager struct {
	storage ports.TokenStorage
	audit   ports.SessionAuditRepository // optional
	ttl     time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewSessionManager returns a SessionManager. audit may be nil; ttl <= 0 keeps
// tokens until logout.
func NewSessionManager(storage ports.TokenStorage, audit ports.SessionAuditRepository, ttl time.Duration, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		storage: storage,
		audit:   audit,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

// ForClient returns a fresh, uninitialised store for clientID.
func (m *SessionManager) ForClient(clientID string) *SessionStore {
	return &SessionStore{
		clientID: clientID,
		manager:  m,
		session:  domain.Anonymous(),
	}
}

// SessionStore is the single source of authentication truth for one client.
// Views read it through Current; only Login and Logout mutate it.
type SessionStore struct {
	clientID string
	manager  *SessionManager
	session  domain.Session
}

// ClientID returns the id of the client this store belongs to.
func (s *SessionStore) ClientID() string { return s.clientID }

// Current returns a copy of the session.
func (s *SessionStore) Current() domain.Session { return s.session }

// Initialize restores the session from persisted storage. An admin token wins
// over a user token; when both exist the user token is removed so only one
// session stays active. Expired tokens and storage failures count as absent.
func (s *SessionStore) Initialize(ctx context.Context) domain.Session {
	admin := s.readToken(ctx, domain.RoleAdmin)
	user := s.readToken(ctx, domain.RoleUser)

	switch {
	case admin != "":
		if user != "" {
			if err := s.manager.storage.Delete(ctx, s.clientID, domain.UserTokenKey); err != nil {
				s.manager.log.Warn().Err(err).Str("client_id", s.clientID).Msg("failed to drop user token shadowed by admin token")
			}
			s.record(ctx, domain.SessionEventConflict, domain.RoleAdmin)
		}
		s.session = domain.Session{Authenticated: true, Role: domain.RoleAdmin, TokenRef: admin}
	case user != "":
		s.session = domain.Session{Authenticated: true, Role: domain.RoleUser, TokenRef: user}
	default:
		s.session = domain.Anonymous()
	}
	return s.session
}

// Login persists token under the role's key, clears the other role's key and
// marks the session authenticated.
func (s *SessionStore) Login(ctx context.Context, token string, role domain.Role) error {
	if token == "" {
		return domain.NewValidationError("token is required")
	}
	if !role.Valid() {
		return domain.NewValidationError("role must be one of: admin user")
	}

	other := domain.RoleUser
	if role == domain.RoleUser {
		other = domain.RoleAdmin
	}

	if err := s.manager.storage.Swap(ctx, s.clientID, role.TokenKey(), token, s.manager.ttl, other.TokenKey()); err != nil {
		return fmt.Errorf("login: persist token: %w", err)
	}

	s.session = domain.Session{Authenticated: true, Role: role, TokenRef: token}
	s.record(ctx, domain.SessionEventLogin, role)
	return nil
}

// Logout clears both token keys and resets the session to anonymous. The
// in-memory reset happens even when storage fails; the error is returned so
// the caller can tell the user the logout may not survive a reload.
func (s *SessionStore) Logout(ctx context.Context) error {
	role := s.session.Role
	s.session = domain.Anonymous()

	if err := s.manager.storage.Delete(ctx, s.clientID, domain.AdminTokenKey, domain.UserTokenKey); err != nil {
		return fmt.Errorf("logout: clear tokens: %w", err)
	}
	s.record(ctx, domain.SessionEventLogout, role)
	return nil
}

func (s *SessionStore) readToken(ctx context.Context, role domain.Role) string {
	token, err := s.manager.storage.Get(ctx, s.clientID, role.TokenKey())
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.manager.log.Warn().Err(err).Str("client_id", s.clientID).Msg("token storage unavailable, treating session as absent")
		}
		return ""
	}

	if tokenExpired(token, s.manager.now()) {
		if err := s.manager.storage.Delete(ctx, s.clientID, role.TokenKey()); err != nil {
			s.manager.log.Warn().Err(err).Str("client_id", s.clientID).Msg("failed to drop expired token")
		}
		s.record(ctx, domain.SessionEventExpired, role)
		return ""
	}
	return token
}

func (s *SessionStore) record(ctx context.Context, typ domain.SessionEventType, role domain.Role) {
	metrics.SessionEventsTotal.WithLabelValues(string(typ)).Inc()
	if s.manager.audit == nil {
		return
	}
	event := &domain.SessionEvent{
		ID:        uuid.NewString(),
		ClientID:  s.clientID,
		Type:      typ,
		Role:      role,
		Timestamp: s.manager.now().UTC(),
	}
	if err := s.manager.audit.Insert(ctx, event); err != nil {
		s.manager.log.Warn().Err(err).Str("client_id", s.clientID).Str("event", string(typ)).Msg("failed to record session event")
	}
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Opaque tokens never expire on the portal side; the backend remains the
// authority on validity.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.Time.After(now)
}
