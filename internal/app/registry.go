package app

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/anzallkiyteb-cell/bey/internal/advance"
	"github.com/anzallkiyteb-cell/bey/internal/attendance"
	"github.com/anzallkiyteb-cell/bey/internal/calendar"
	"github.com/anzallkiyteb-cell/bey/internal/employee"
	"github.com/anzallkiyteb-cell/bey/internal/ledger"
	"github.com/anzallkiyteb-cell/bey/internal/messaging/kafka"
	"github.com/anzallkiyteb-cell/bey/internal/middleware"
	"github.com/anzallkiyteb-cell/bey/internal/payroll"
	"github.com/anzallkiyteb-cell/bey/internal/rbac"
	"github.com/anzallkiyteb-cell/bey/internal/rbac/infra"
	"github.com/anzallkiyteb-cell/bey/internal/schedule"
	"github.com/anzallkiyteb-cell/bey/internal/shared/audit"
	"github.com/anzallkiyteb-cell/bey/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// engine holds the domain services shared by the API and the consumer.
type engine struct {
	employees  employee.Service
	schedules  schedule.Service
	ledger     ledger.Service
	attendance attendance.Service
	advances   advance.Service
	payroll    payroll.Service
}

func newEngine(cfg config.Config, db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, auditLogger audit.Logger) (*engine, error) {
	logger := zap.L()

	cal, err := calendar.Load(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	std, err := schedule.ParseStandardWindows(cfg.ShiftMatinStart, cfg.ShiftMatinEnd, cfg.ShiftSoirStart, cfg.ShiftSoirEnd)
	if err != nil {
		return nil, err
	}
	resolver := schedule.NewResolver(std)
	classifier := attendance.NewClassifier(cal, resolver, cfg.Grace())
	outboxRepo := kafka.NewOutboxRepository(db)

	e := &engine{}
	e.employees = employee.NewService(employee.NewRepository(gormDB), rdb, logger)
	e.schedules = schedule.NewService(db, schedule.NewRepository(gormDB), resolver, auditLogger, logger)
	e.ledger = ledger.NewService(ledger.NewRepository(gormDB), e.employees, cal, logger)
	e.attendance = attendance.NewService(
		db,
		attendance.NewRepository(gormDB),
		outboxRepo,
		e.employees,
		e.schedules,
		e.ledger,
		classifier,
		cal,
		logger,
	)
	e.advances = advance.NewService(db, advance.NewRepository(gormDB), e.employees, cal, auditLogger, logger)
	e.payroll = payroll.NewService(
		db,
		payroll.NewRepository(gormDB),
		outboxRepo,
		e.employees,
		e.attendance,
		e.ledger,
		e.advances,
		cal,
		auditLogger,
		logger,
	)
	return e, nil
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	auditLogger := audit.NewStdoutLogger()

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(gormDB), enforcer)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	e, err := newEngine(cfg, db, gormDB, rdb, auditLogger)
	if err != nil {
		return err
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(e.employees)
	scheduleHandler := schedule.NewHandler(e.schedules)
	attendanceHandler := attendance.NewHandler(e.attendance)
	ledgerHandler := ledger.NewHandler(e.ledger)
	advanceHandler := advance.NewHandler(e.advances)
	payrollHandler := payroll.NewHandler(e.payroll)
	rbacHandler := rbac.NewHandler(rbacService)

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(zap.L()),
	)
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService, rdb)
		advance.RegisterRoutes(api, advanceHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
