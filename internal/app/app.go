package app

import (
	"hr-console/internal/shared/config"
	"hr-console/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

// BuildApp connects the infrastructure and registers every feature module
// on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}

	return registerModules(router, sqlDB, gormDB, rdb, cfg)
}
