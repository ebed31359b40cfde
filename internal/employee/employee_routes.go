package employee

import (
	"hr-console/internal/middleware"
	"hr-console/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.List,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.Update,
		)

		// Multipart updates tunnel through POST with _method=PUT.
		employees.POST("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "employee", "update"),
			handler.UpdateOverride,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
