// Package identity defines the port through which the core learns who
// is signed in. Authentication itself (tokens, login, expiry) lives
// outside the core; sessions only need a stable user identifier.
package identity

// Provider reports the authenticated user, if any.
type Provider interface {
	// IsAuthenticated reports whether a valid, identified user exists.
	IsAuthenticated() bool

	// CurrentUserID returns the user's identifier. The second return
	// is false when nobody is signed in.
	CurrentUserID() (string, bool)
}

// Static is a fixed identity for tests and single-user setups.
type Static struct {
	UserID string
}

func (s Static) IsAuthenticated() bool {
	return s.UserID != ""
}

func (s Static) CurrentUserID() (string, bool) {
	return s.UserID, s.UserID != ""
}
