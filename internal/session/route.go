package session

// Route names a navigable location in the client.
type Route string

const (
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	// RouteBoards is the authenticated landing page.
	RouteBoards Route = "/"
)

// isAuthEntry reports whether r is one of the unauthenticated entry
// pages.
func isAuthEntry(r Route) bool {
	return r == RouteLogin || r == RouteRegister
}

// Redirect implements the route guard: given the session state and the
// current location, it returns the route to redirect to, or "" when the
// current location is allowed. No redirect happens while the session is
// still loading.
func Redirect(loading, loggedIn bool, current Route) Route {
	if loading {
		return ""
	}
	switch {
	case !loggedIn && !isAuthEntry(current):
		return RouteLogin
	case loggedIn && isAuthEntry(current):
		return RouteBoards
	default:
		return ""
	}
}
