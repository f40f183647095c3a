package models

// AuthState is the authentication state published by the auth manager.
// The set of implementations is closed: NotAuthenticated, Authenticating,
// Authenticated and AuthError. Callers are expected to type-switch on it.
type AuthState interface {
	isAuthState()
	String() string
}

// NotAuthenticated is the initial state and the state after logout.
type NotAuthenticated struct{}

// Authenticating is published while a login or register call is in flight.
type Authenticating struct{}

// Authenticated holds the identity and credential of the signed-in user.
type Authenticated struct {
	User  User
	Token string
}

// AuthError is published when an explicit login or register attempt fails.
// It stays until the next attempt.
type AuthError struct {
	Message string
}

func (NotAuthenticated) isAuthState() {}
func (Authenticating) isAuthState()   {}
func (Authenticated) isAuthState()    {}
func (AuthError) isAuthState()        {}

func (NotAuthenticated) String() string { return "not authenticated" }
func (Authenticating) String() string   { return "authenticating" }
func (a Authenticated) String() string  { return "authenticated as " + a.User.Username }
func (a AuthError) String() string      { return "auth error: " + a.Message }
