package service

import "github.com/firewatch-nepal/portal/internal/core/domain"

// NavLink is one navbar entry.
type NavLink struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// ShellView is the frame around every page: who is logged in and which links
// the navbar shows.
type ShellView struct {
	Session   domain.Session `json:"session"`
	Dashboard string         `json:"dashboard,omitempty"`
	Navbar    []NavLink      `json:"navbar"`
}

// RouteResolution is what the shell does for a path: render a view or redirect.
type RouteResolution struct {
	Path     string        `json:"path"`
	View     string        `json:"view,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
	Access   domain.Access `json:"access"`
}

// BuildShell returns the navbar for session. Links the guard would redirect
// away from are hidden.
func BuildShell(session domain.Session) ShellView {
	view := ShellView{Session: session, Navbar: []NavLink{}}
	if session.Authenticated {
		view.Dashboard = DashboardFor(session)
	}
	for _, r := range domain.Routes {
		if !r.InNavbar {
			continue
		}
		if !Guard(session, r.Access).Allow {
			continue
		}
		view.Navbar = append(view.Navbar, NavLink{Path: r.Path, Label: r.Label})
	}
	return view
}

// ResolveRoute runs path through the route table and the guard. Unknown paths
// return domain.ErrNotFound.
func ResolveRoute(session domain.Session, path string) (RouteResolution, error) {
	route, ok := domain.FindRoute(path)
	if !ok {
		return RouteResolution{}, domain.ErrNotFound
	}
	res := RouteResolution{Path: route.Path, Access: route.Access}
	decision := Guard(session, route.Access)
	if decision.Allow {
		res.View = route.View
	} else {
		res.Redirect = decision.RedirectTo
	}
	return res, nil
}
