package domain

import "time"

// Role identifies which kind of actor a session belongs to.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleNone  Role = "none"
)

// Storage keys under which a client's bearer tokens are persisted, one per role.
const (
	AdminTokenKey = "adminToken"
	UserTokenKey  = "userToken"
)

// TokenKey returns the storage key for role, or "" for RoleNone.
func (r Role) TokenKey() string {
	switch r {
	case RoleAdmin:
		return AdminTokenKey
	case RoleUser:
		return UserTokenKey
	default:
		return ""
	}
}

// Valid reports whether r is a role a client can log in as.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Session is the authentication state of one client.
// TokenRef is opaque; it is only ever forwarded as a bearer credential.
type Session struct {
	Authenticated bool   `json:"is_authenticated"`
	Role          Role   `json:"role"`
	TokenRef      string `json:"-"`
}

// Anonymous is the zero-privilege session.
func Anonymous() Session {
	return Session{Authenticated: false, Role: RoleNone}
}

// IsAdmin reports whether s is an authenticated admin session.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}

// SessionEventType labels entries in the session audit trail.
type SessionEventType string

const (
	SessionEventLogin    SessionEventType = "login"
	SessionEventLogout   SessionEventType = "logout"
	SessionEventExpired  SessionEventType = "expired"
	SessionEventConflict SessionEventType = "conflict_resolved"
)

// SessionEvent records a session state change for a client.
type SessionEvent struct {
	ID        string           `json:"id" bson:"_id"`
	ClientID  string           `json:"client_id" bson:"client_id"`
	Type      SessionEventType `json:"type" bson:"type"`
	Role      Role             `json:"role" bson:"role"`
	Timestamp time.Time        `json:"timestamp" bson:"timestamp"`
}
