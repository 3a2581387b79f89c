package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the users table.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// UserListItem is the projection returned by the list endpoint,
// timestamps excluded.
type UserListItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
}

// UpsertUserRequest carries the mutable user fields. Create and update
// accept the same shape; the body uses camelCase keys.
type UpsertUserRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	ImageURL    *string `json:"imageUrl"`
}
