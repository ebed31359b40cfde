package contract

import (
	"hr-console/internal/middleware"
	"hr-console/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	contracts := r.Group("/contracts")
	contracts.Use(middleware.AuthMiddleware())
	contracts.Use(middleware.ContextLogger(logger))
	{
		contracts.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "contract", "read"),
			handler.List,
		)

		contracts.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "contract", "read"),
			handler.GetByID,
		)
	}
}
