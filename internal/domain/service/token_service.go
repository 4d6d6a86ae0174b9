package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the identity a session token binds: the user id and email, plus
// the issuance and expiry instants.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-bounded identity tokens.
// The signing key is process-wide configuration, loaded once at startup.
type TokenService interface {
	// Issue produces a signed token binding the user id and email, expiring
	// a fixed configured duration after issuance.
	Issue(userID uuid.UUID, email string) (string, error)

	// Validate parses and verifies a token. Failures keep the underlying
	// jwt sentinel (jwt.ErrTokenExpired, jwt.ErrSignatureInvalid) in their
	// chain so the response classifier can tell the kinds apart.
	Validate(token string) (*Claims, error)
}
