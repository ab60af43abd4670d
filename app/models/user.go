package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the identity bound to one browser session. The zero value
// is the anonymous principal.
type Principal struct {
	UserID string
}

func (p Principal) Authenticated() bool {
	return p.UserID != ""
}
