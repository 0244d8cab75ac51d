package domain

import "time"

// Session is the server-side record backing one issued token. The token
// itself is opaque to the gate; revoking the record invalidates the token
// regardless of what the client still holds.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session record has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
