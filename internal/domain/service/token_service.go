package service

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the identity extracted from a verified token.
type Principal struct {
	UserID uuid.UUID
}

// TokenService defines the interface for issuing and verifying signed,
// time-bounded identity tokens. This abstracts the token format (JWT) from
// the use cases and the delivery layer.
type TokenService interface {
	// Issue creates a new signed token for the given user. Two tokens issued
	// at the same instant for the same user are never equal.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token's signature, audience, issuer and validity window
	// and extracts the identity claim. Any failure yields an error and no
	// principal.
	Verify(token string) (*Principal, error)

	// Realm returns the presentation-only realm label from configuration.
	Realm() string

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
