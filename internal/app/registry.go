package app

import (
	"context"
	"database/sql"

	"hr-console/internal/attendance"
	"hr-console/internal/auth"
	"hr-console/internal/contract"
	"hr-console/internal/department"
	"hr-console/internal/employee"
	"hr-console/internal/messaging/kafka"
	"hr-console/internal/middleware"
	"hr-console/internal/rbac"
	"hr-console/internal/rbac/infra"
	"hr-console/internal/shared/config"
	"hr-console/internal/shared/counter"
	"hr-console/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	taskStore := task.NewMemoryStore()

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.Reload(context.Background()); err != nil {
		logger.Warn("rbac policy reload failed, requests will be denied until it succeeds", zap.Error(err))
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	taskService := task.NewService(taskStore)
	contractService := contract.NewService(contract.SeedContracts())

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, cfg.UploadDir)
	taskHandler := task.NewHandler(taskService)
	contractHandler := contract.NewHandler(contractService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(10, 30))
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger)
		contract.RegisterRoutes(api, contractHandler, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, logger)
		task.RegisterRoutes(api, taskHandler, rbacService, logger)
	}

	return nil
}
