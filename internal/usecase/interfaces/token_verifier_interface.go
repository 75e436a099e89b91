package interfaces

import (
	"context"
	"errors"

	"client_portal/internal/domain/entities"
)

// Verifier rejection reasons. Expired and revoked are surfaced with their
// own user-facing messages; every other verifier failure collapses to
// ErrInvalidToken.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrInvalidToken = errors.New("invalid token")
)

// ITokenVerifier validates the raw bearer token (the part after the
// "Bearer " marker) and returns the client it identifies. A pure
// translation of the credential provider's outcome; no side effects.
type ITokenVerifier interface {
	Verify(ctx context.Context, token string) (entities.Client, error)
}

// IRevokedTokenStore answers whether a token id (jti) has been revoked.
// This layer only reads the revocation list; writing it belongs to the
// credential provider's session management.
type IRevokedTokenStore interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
