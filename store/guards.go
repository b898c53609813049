package store

// Guard decides which screen a navigation attempt actually lands on,
// given whether anyone is logged in.
type Guard struct {
	// LoginPath is where unauthenticated visits to protected screens are
	// redirected.
	LoginPath string
	// HomePath is where logged-in users are sent when they hit an
	// auth-only screen (login, signup).
	HomePath string

	protected map[string]bool
	authOnly  map[string]bool
}

func NewGuard(loginPath, homePath string) *Guard {
	return &Guard{
		LoginPath: loginPath,
		HomePath:  homePath,
		protected: map[string]bool{},
		authOnly:  map[string]bool{},
	}
}

// Protect marks paths as requiring a logged-in user.
func (g *Guard) Protect(paths ...string) {
	for _, p := range paths {
		g.protected[p] = true
	}
}

// AuthOnly marks paths reachable only while logged out.
func (g *Guard) AuthOnly(paths ...string) {
	for _, p := range paths {
		g.authOnly[p] = true
	}
}

// Resolve returns the path the navigation should land on.
func (g *Guard) Resolve(path string, connected bool) string {
	if g.protected[path] && !connected {
		return g.LoginPath
	}
	if g.authOnly[path] && connected {
		return g.HomePath
	}
	return path
}
