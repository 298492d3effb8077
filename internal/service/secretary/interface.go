// Package secretary provides methods for verifying bearer tokens.
package secretary

// Secretary defines a set of methods for types implementing Secretary.
type Secretary interface {
	Sign(userID string) (string, error)
	Verify(token string) (string, error)
}
