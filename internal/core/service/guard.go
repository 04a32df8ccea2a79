package service

import "github.com/firewatch-nepal/portal/internal/core/domain"

// Guard decides whether session may see a route with the given access level.
// It is pure and cheap; callers evaluate it on every request instead of
// caching the result across session changes.
//
// The guard only shapes navigation. The backend still authorises every call
// on the bearer token it receives.
func Guard(session domain.Session, access domain.Access) domain.GuardDecision {
	switch access {
	case domain.AccessAdmin:
		if session.IsAdmin() {
			return domain.GuardDecision{Allow: true}
		}
		if session.Authenticated {
			return domain.GuardDecision{RedirectTo: DashboardFor(session)}
		}
		return domain.GuardDecision{RedirectTo: domain.PathLogin}

	case domain.AccessAuthenticated:
		if session.Authenticated {
			return domain.GuardDecision{Allow: true}
		}
		return domain.GuardDecision{RedirectTo: domain.PathLogin}

	case domain.AccessAnonymousOnly:
		if session.Authenticated {
			return domain.GuardDecision{RedirectTo: DashboardFor(session)}
		}
		return domain.GuardDecision{Allow: true}

	case domain.AccessPublic:
		return domain.GuardDecision{Allow: true}

	default:
		return domain.GuardDecision{RedirectTo: domain.PathLogin}
	}
}

// DashboardFor returns the landing page for session.
func DashboardFor(session domain.Session) string {
	switch {
	case session.IsAdmin():
		return domain.PathAdminDashboard
	case session.Authenticated:
		return domain.PathUserDashboard
	default:
		return domain.PathLogin
	}
}
