package rbac

import (
	"net/http"

	"hr-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize guards a route with one resource/action grant. The role claim
// is set by the auth middleware.
func Authorize(service Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "Missing role claim")
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Authorization check failed")
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
