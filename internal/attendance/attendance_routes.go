package attendance

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
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "attendance", "read"),
			handler.GetAll,
		)

		attendances.POST("/clock-in",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "attendance", "create"),
			handler.ClockIn,
		)

		attendances.POST("/clock-out",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "attendance", "create"),
			handler.ClockOut,
		)
	}
}
