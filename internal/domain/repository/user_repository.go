// Package repository defines the persistence contracts the domain depends on.
// Concrete implementations live under internal/infra/persistence and must
// translate their native errors into the domain taxonomy at this boundary.
package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
)

// ErrUserNotFound signals a lookup miss. It is a flow-control sentinel, not a
// client-facing error; callers decide how a miss surfaces (signup continues,
// login reports invalid credentials).
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the account store the authentication flows depend on.
// Create must rely on the store's unique constraint as the authoritative
// race-safety net and surface a violation as domainerrors.ErrDuplicateEntry,
// identical to what a pre-check collision produces.
type UserRepository interface {
	// FindByEmail retrieves a user by normalized email. Returns
	// ErrUserNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and
	// timestamps on the passed entity.
	Create(ctx context.Context, user *entity.User) error
}
