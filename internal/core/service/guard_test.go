package service

import (
	"errors"
	"testing"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

var (
	anon  = domain.Anonymous()
	user  = domain.Session{Authenticated: true, Role: domain.RoleUser, TokenRef: "u"}
	admin = domain.Session{Authenticated: true, Role: domain.RoleAdmin, TokenRef: "a"}
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name    string
		session domain.Session
		access  domain.Access
		want    domain.GuardDecision
	}{
		{"public anon", anon, domain.AccessPublic, domain.GuardDecision{Allow: true}},
		{"public admin", admin, domain.AccessPublic, domain.GuardDecision{Allow: true}},
		{"authenticated anon", anon, domain.AccessAuthenticated, domain.GuardDecision{RedirectTo: domain.PathLogin}},
		{"authenticated user", user, domain.AccessAuthenticated, domain.GuardDecision{Allow: true}},
		{"authenticated admin", admin, domain.AccessAuthenticated, domain.GuardDecision{Allow: true}},
		{"admin anon", anon, domain.AccessAdmin, domain.GuardDecision{RedirectTo: domain.PathLogin}},
		{"admin user", user, domain.AccessAdmin, domain.GuardDecision{RedirectTo: domain.PathUserDashboard}},
		{"admin admin", admin, domain.AccessAdmin, domain.GuardDecision{Allow: true}},
		{"anonymous-only anon", anon, domain.AccessAnonymousOnly, domain.GuardDecision{Allow: true}},
		{"anonymous-only user", user, domain.AccessAnonymousOnly, domain.GuardDecision{RedirectTo: domain.PathUserDashboard}},
		{"anonymous-only admin", admin, domain.AccessAnonymousOnly, domain.GuardDecision{RedirectTo: domain.PathAdminDashboard}},
		{"unknown level anon", anon, domain.Access("admn"), domain.GuardDecision{RedirectTo: domain.PathLogin}},
		{"empty level admin", admin, domain.Access(""), domain.GuardDecision{RedirectTo: domain.PathLogin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.session, tt.access); got != tt.want {
				t.Fatalf("Guard() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGuard_UnauthenticatedAdminRoleIsNotAdmin(t *testing.T) {
	s := domain.Session{Authenticated: false, Role: domain.RoleAdmin}
	if Guard(s, domain.AccessAdmin).Allow {
		t.Fatalf("role without authentication must not pass the admin guard")
	}
}

func TestBuildShell(t *testing.T) {
	paths := func(v ShellView) map[string]bool {
		m := map[string]bool{}
		for _, l := range v.Navbar {
			m[l.Path] = true
		}
		return m
	}

	a := paths(BuildShell(anon))
	if !a[domain.PathLogin] || a[domain.PathUserDashboard] || a[domain.PathAdminDashboard] {
		t.Fatalf("unexpected anonymous navbar: %v", a)
	}
	u := paths(BuildShell(user))
	if u[domain.PathLogin] || !u[domain.PathUserDashboard] || u[domain.PathAdminDashboard] {
		t.Fatalf("unexpected user navbar: %v", u)
	}
	ad := paths(BuildShell(admin))
	if ad[domain.PathLogin] || !ad[domain.PathAdminDashboard] {
		t.Fatalf("unexpected admin navbar: %v", ad)
	}
	if BuildShell(admin).Dashboard != domain.PathAdminDashboard {
		t.Fatalf("admin dashboard link missing")
	}
}

func TestResolveRoute(t *testing.T) {
	res, err := ResolveRoute(anon, domain.PathUserDashboard)
	if err != nil || res.Redirect != domain.PathLogin || res.View != "" {
		t.Fatalf("expected redirect to login, got %+v %v", res, err)
	}

	res, err = ResolveRoute(admin, "/sensor-stack-chart")
	if err != nil || res.View != "sensor-stack-chart" {
		t.Fatalf("expected admin view, got %+v %v", res, err)
	}

	if _, err := ResolveRoute(admin, "/missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
