package views

import "github.com/23F3001886/CleanEarth/internal/session"

// Route identifies a page.
type Route string

const (
	RouteLogin        Route = "/login"
	RouteRegister     Route = "/register"
	RouteAbout        Route = "/about"
	RouteHome         Route = "/"
	RouteReport       Route = "/report"
	RouteVolunteer    Route = "/volunteer"
	RouteCampRegister Route = "/camp-register"
	RouteLeaderboard  Route = "/leaderboard"
	RouteAdmin        Route = "/admin"
	RouteCamp         Route = "/camp"
)

// AuthState is the guard's two-state machine.
type AuthState int

const (
	Unauthenticated AuthState = iota
	Authenticated
)

// Guard gates navigation. It is a pure function of credential store state
// evaluated at render time; it does not subscribe to changes.
type Guard struct {
	store *session.Store
}

func NewGuard(store *session.Store) *Guard {
	return &Guard{store: store}
}

// State reports the current auth state from the store.
func (g *Guard) State() AuthState {
	if _, ok := g.store.Get(); ok {
		return Authenticated
	}
	return Unauthenticated
}

// Resolve maps a requested route to the route actually rendered.
// Unauthenticated sessions land on login for any protected route;
// role-restricted routes fall back to the appropriate home.
func (g *Guard) Resolve(route Route) Route {
	switch route {
	case RouteLogin, RouteRegister, RouteAbout:
		return route
	}

	sess, ok := g.store.Get()
	if !ok {
		return RouteLogin
	}

	switch route {
	case RouteVolunteer, RouteCampRegister:
		if sess.User.Role != "volunteer" {
			return RouteHome
		}
	case RouteAdmin:
		if sess.User.Role != "admin" {
			return RouteHome
		}
	}
	return route
}
