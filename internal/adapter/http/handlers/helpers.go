package handlers

import (
	"net/http"
	"strconv"

	"client_portal/internal/adapter/http/middleware"
	"client_portal/internal/domain/entities"
	"client_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// authedClient pulls the identity the auth middleware attached. A missing
// identity means the route was wired without RequireAuth; reject rather
// than proceed unscoped.
func authedClient(c *gin.Context) (entities.Client, bool) {
	client, ok := middleware.ClientFromContext(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "No token provided", http.StatusUnauthorized)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
	return client, ok
}

// pageParams reads the shared list query parameters. Unparsable numbers
// fall back to the accessor defaults.
func pageParams(c *gin.Context) (status string, limit, offset int) {
	status = c.Query("status")
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return status, limit, offset
}
