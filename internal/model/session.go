package model

import "time"

// Session associates an opaque token with an authenticated user.
// It is keyed by the immutable user ID, not the email, so editing the
// profile email never invalidates a live session.
type Session struct {
	Token     string
	UserID    UserID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
