package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDB represents a customer record row. Every record belongs to
// exactly one user; the record id alone resolves its owner.
type CustomerDB struct {
	CustomerID  uuid.UUID `json:"id" db:"customer_id"`       // Primary key, globally unique
	UserID      uuid.UUID `json:"-" db:"user_id"`            // Owning user
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Age         int       `json:"age" db:"age"`
	Country     string    `json:"country" db:"country"`
	Gender      string    `json:"gender" db:"gender"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"` // Set once at creation
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"` // Bumped on every mutation
}

// CustomerFields carries the client-supplied attributes of a customer
// record, without identifiers or timestamps.
type CustomerFields struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Age         int    `json:"age"`
	Country     string `json:"country"`
	Gender      string `json:"gender"`
}
