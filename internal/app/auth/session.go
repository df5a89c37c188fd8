package auth

import "time"

// Session is the client-side view of an authenticated exchange. It
// replaces ad-hoc token threading: a session starts anonymous, becomes
// authenticated after login, and reports expiry explicitly instead of
// surfacing a 401 surprise.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires"`
}

// Authenticated reports whether the session holds a token at all.
func (s Session) Authenticated() bool { return s.Token != "" }

// Expired reports whether an authenticated session has passed its
// expiry. Anonymous sessions are never expired.
func (s Session) Expired(now time.Time) bool {
	return s.Authenticated() && now.After(s.ExpiresAt)
}

// Valid reports whether the session can authorize a request now.
func (s Session) Valid(now time.Time) bool {
	return s.Authenticated() && !s.Expired(now)
}
