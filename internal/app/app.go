package app

import (
	"hradmin/internal/config"
	"hradmin/internal/shared/connection"

	"github.com/gin-gonic/gin"
)

func BuildApp(cfg *config.Config, router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	// 2. Register Modules & Routes
	return registerModules(cfg, router, gormDB, redisClient)
}
