// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// --- Input DTOs ---
// Inputs arrive already validated and normalized (email trimmed and
// lowercased) by the delivery-layer validator.

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---
// Outputs carry only the safe projection of a user; the password hash never
// appears in any output type.

// SignupOutput returns the newly created account's safe projection.
type SignupOutput struct {
	User *entity.Profile
}

// LoginOutput returns the session token and safe projection after login.
type LoginOutput struct {
	User  *entity.Profile
	Token string
}

// AccountUsecase defines the interface for authentication business operations.
// This is the contract the delivery layer (API handlers) depends on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
