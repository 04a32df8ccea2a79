package domain

// Access is the visibility level of a route.
type Access string

const (
	AccessPublic        Access = "public"
	AccessAuthenticated Access = "authenticated"
	AccessAdmin         Access = "admin"
	AccessAnonymousOnly Access = "anonymous_only"
)

// Entry points the guard redirects to.
const (
	PathHome           = "/"
	PathLogin          = "/login"
	PathUserDashboard  = "/user-dashboard"
	PathAdminDashboard = "/admin-dashboard"
)

// Route is one entry of the shell's route table.
type Route struct {
	Path   string `json:"path"`
	View   string `json:"view"`
	Label  string `json:"label,omitempty"`
	Access Access `json:"access"`
	// InNavbar marks routes that get a navbar link when visible.
	InNavbar bool `json:"-"`
}

// GuardDecision is the outcome of checking a route against a session.
type GuardDecision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect,omitempty"`
}

// Routes is the application route table.
var Routes = []Route{
	{Path: PathHome, View: "home", Label: "Home", Access: AccessPublic, InNavbar: true},
	{Path: "/live-map", View: "live-map", Label: "Live Map", Access: AccessPublic, InNavbar: true},
	{Path: "/predict", View: "predict", Label: "Predict", Access: AccessPublic, InNavbar: true},
	{Path: "/how-it-works", View: "how-it-works", Label: "How It Works", Access: AccessPublic, InNavbar: true},
	{Path: "/stats", View: "stats", Label: "Statistics", Access: AccessPublic, InNavbar: true},
	{Path: "/report", View: "report-fire", Label: "Report Fire", Access: AccessPublic, InNavbar: true},
	{Path: "/contact", View: "contact", Label: "Contact", Access: AccessPublic, InNavbar: true},
	{Path: "/forgot-password", View: "forgot-password", Access: AccessPublic},
	{Path: "/reset-password", View: "reset-password", Access: AccessPublic},
	{Path: PathLogin, View: "login", Label: "Login", Access: AccessAnonymousOnly, InNavbar: true},
	{Path: PathUserDashboard, View: "user-dashboard", Label: "Dashboard", Access: AccessAuthenticated, InNavbar: true},
	{Path: PathAdminDashboard, View: "admin-dashboard", Label: "Admin", Access: AccessAdmin, InNavbar: true},
	{Path: "/sensor-stack-chart", View: "sensor-stack-chart", Access: AccessAdmin},
}

// FindRoute returns the route registered for path.
func FindRoute(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
