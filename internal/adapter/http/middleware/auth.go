package middleware

import (
	"errors"
	"net/http"
	"strings"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
	"client_portal/pkg"

	"github.com/gin-gonic/gin"
)

// clientContextKey is where the authenticated client is stored in the gin
// context for the rest of the request.
const clientContextKey = "auth_client"

const bearerPrefix = "Bearer "

var (
	errNoToken       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No token provided", http.StatusUnauthorized)
	errInvalidFormat = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token format", http.StatusUnauthorized)
	errTokenExpired  = pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Your session has expired. Please login again.", http.StatusUnauthorized)
	errTokenRevoked  = pkg.NewDomainErrorSimple("TOKEN_REVOKED", "Your session has been revoked. Please login again.", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Authentication failed", http.StatusUnauthorized)
)

// RequireAuth rejects the request with 401 unless a verifiable bearer token
// is presented. On success the client identity is attached to the request
// context; verification happens on every request, nothing is cached.
func RequireAuth(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abort(c, errNoToken)
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == "" {
			abort(c, errInvalidFormat)
			return
		}

		client, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abort(c, mapVerifyError(err))
			return
		}

		c.Set(clientContextKey, client)
		c.Next()
	}
}

// OptionalAuth attaches the client identity when a valid token is present
// and otherwise lets the request proceed anonymously. It never rejects:
// missing header, malformed token and verifier failures all degrade to "no
// client".
func OptionalAuth(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, bearerPrefix) {
			if token := strings.TrimPrefix(header, bearerPrefix); token != "" {
				if client, err := verifier.Verify(c.Request.Context(), token); err == nil {
					c.Set(clientContextKey, client)
				}
			}
		}
		c.Next()
	}
}

// ClientFromContext returns the authenticated client attached by
// RequireAuth or OptionalAuth.
func ClientFromContext(c *gin.Context) (entities.Client, bool) {
	v, ok := c.Get(clientContextKey)
	if !ok {
		return entities.Client{}, false
	}
	client, ok := v.(entities.Client)
	return client, ok
}

func mapVerifyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, interfaces.ErrTokenRevoked):
		return errTokenRevoked
	default:
		return errInvalidToken
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
