package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/service"
)

const (
	sessionContextKey = "session_store"
	clientCookieTTL   = 365 * 24 * time.Hour
)

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Manager *service.SessionManager
	Signer  *CookieSigner
	// Secure marks the client cookie HTTPS-only.
	Secure bool
}

// Session resolves the client from its signed cookie, issuing a new client id
// when the cookie is missing or forged, and injects an initialised
// SessionStore into the request context.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := ""
			if ck, err := c.Cookie(ClientCookieName); err == nil {
				clientID, _ = cfg.Signer.Verify(ck.Value)
			}
			if clientID == "" {
				clientID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     ClientCookieName,
					Value:    cfg.Signer.Sign(clientID),
					Path:     "/",
					MaxAge:   int(clientCookieTTL / time.Second),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			store := cfg.Manager.ForClient(clientID)
			store.Initialize(c.Request().Context())
			SetSession(c, store)
			return next(c)
		}
	}
}

// SetSession attaches store to c.
func SetSession(c echo.Context, store *service.SessionStore) {
	c.Set(sessionContextKey, store)
}

// SessionFrom returns the store injected by Session, or nil.
func SessionFrom(c echo.Context) *service.SessionStore {
	store, _ := c.Get(sessionContextKey).(*service.SessionStore)
	return store
}
