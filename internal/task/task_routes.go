package task

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
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	tasks.Use(middleware.ContextLogger(logger))
	{
		tasks.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "task", "read"),
			handler.List,
		)

		tasks.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "task", "read"),
			handler.GetByID,
		)

		tasks.POST("",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "task", "create"),
			handler.Create,
		)

		tasks.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "task", "update"),
			handler.Update,
		)

		tasks.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "task", "delete"),
			handler.Delete,
		)
	}
}
