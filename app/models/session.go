package models

import "time"

// Session is a persistent remember-me token. The primary login session is
// the signed cookie; a session row only exists when the user asked to be
// remembered across browser restarts.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
