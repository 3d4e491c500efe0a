package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a registered account row in the database.
type UserDB struct {
	UserID          uuid.UUID `json:"id" db:"user_id"`                            // Primary key
	Username        string    `json:"username" db:"username"`                     // Display name
	Email           string    `json:"email" db:"email"`                           // Login key, unique
	PasswordHash    string    `json:"-" db:"password_hash"`                       // bcrypt hash, never plaintext
	ProfileImageURL *string   `json:"profileImage,omitempty" db:"profile_image_url"` // Object storage URL, optional
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`                  // Creation timestamp
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`                  // Last update timestamp
}
