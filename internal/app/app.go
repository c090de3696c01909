package app

import (
	"github.com/anzallkiyteb-cell/bey/internal/advance"
	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka"
	"github.com/anzallkiyteb-cell/bey/internal/payroll"
	"github.com/anzallkiyteb-cell/bey/internal/rbac"
	"github.com/anzallkiyteb-cell/bey/internal/schedule"
	"github.com/anzallkiyteb-cell/bey/internal/shared/config"
	"github.com/anzallkiyteb-cell/bey/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func postgresConfig(cfg config.Config) connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
		SSLMode:  cfg.DBSSLMode,
	}
}

// BuildApp connects the infrastructure and registers every module on
// router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfig(cfg), cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.DBAutoMigrate {
		if err := migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("database schema migrated")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency keys and option caching disabled")
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&schedule.ShiftSchedule{},
		&attendance.Punch{},
		&ledger.Entry{},
		&advance.Advance{},
		&payroll.PayrollRecord{},
		&rbac.Role{},
		&rbac.Permission{},
		&rbac.EmployeeRole{},
		&rbac.RolePermission{},
		&kafka.OutboxRecord{},
	)
}
