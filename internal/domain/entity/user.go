// Package entity contains the pure domain objects of the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash never leaves the
// domain/persistence layers; delivery code works with Profile projections.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the safe projection of a User that may be returned to callers.
// It deliberately has no field for the password hash.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToProfile derives the safe projection from a full user record.
func (u *User) ToProfile() *Profile {
	if u == nil {
		return nil
	}

	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
