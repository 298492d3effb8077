// Package modelauth provides the explicit authentication context passed to write operations.
package modelauth

// AuthContext identifies the caller of an operation.
type AuthContext struct {
	UserID string
}

// Anonymous returns an unauthenticated context.
func Anonymous() AuthContext {
	return AuthContext{}
}

// Authenticated reports whether a user is present.
func (a AuthContext) Authenticated() bool {
	return a.UserID != ""
}
