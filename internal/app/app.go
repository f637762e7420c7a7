package app

import (
	"context"
	"fmt"

	"hris-portal/internal/config"
	"hris-portal/internal/messaging/kafka"
	"hris-portal/internal/shared/connection"
	"hris-portal/internal/todo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on router.
// The returned cleanup stops background work and closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	ctx, cancel := context.WithCancel(context.Background())

	if err := kafka.EnsureOutboxSchema(ctx, sqlDB); err != nil {
		cancel()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure outbox schema: %w", err)
	}
	if err := gormDB.WithContext(ctx).AutoMigrate(&todo.Todo{}); err != nil {
		cancel()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate todos: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		cancel()
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	if err := registerModules(ctx, router, cfg, sqlDB, gormDB, rdb); err != nil {
		cancel()
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		cancel()
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}
