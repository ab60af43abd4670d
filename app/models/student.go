package models

import "time"

type Student struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArchivedStudent is a historical copy made when a student is deleted.
// It keeps no reference to the original student id and is never updated.
type ArchivedStudent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	ArchivedAt  time.Time `json:"archived_at"`
}
