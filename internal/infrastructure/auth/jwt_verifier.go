package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingAuthSecret = errors.New("missing AUTH_JWT_SECRET")

type portalClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// JWTVerifier validates the HMAC-signed bearer tokens issued by the
// credential provider and translates its outcomes into the three rejection
// reasons the gate distinguishes: expired, revoked, invalid.
//
// The revocation store is optional; without one only signature and expiry
// are checked.
type JWTVerifier struct {
	secret  []byte
	revoked interfaces.IRevokedTokenStore
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string, revoked interfaces.IRevokedTokenStore) (*JWTVerifier, error) {
	if secret == "" {
		return nil, ErrMissingAuthSecret
	}
	return &JWTVerifier{secret: []byte(secret), revoked: revoked}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (entities.Client, error) {
	claims := &portalClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Client{}, interfaces.ErrTokenExpired
		}
		return entities.Client{}, interfaces.ErrInvalidToken
	}

	if claims.Subject == "" {
		return entities.Client{}, interfaces.ErrInvalidToken
	}

	if v.revoked != nil {
		revoked, err := v.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			// A revocation lookup failure cannot prove the token valid.
			log.Printf("[auth] revocation check failed for jti=%s: %v", claims.ID, err)
			return entities.Client{}, interfaces.ErrInvalidToken
		}
		if revoked {
			return entities.Client{}, interfaces.ErrTokenRevoked
		}
	}

	return entities.Client{
		ID:            claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}
