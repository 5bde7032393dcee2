package app

import (
	"hradmin/internal/auth"
	"hradmin/internal/config"
	"hradmin/internal/department"
	"hradmin/internal/division"
	"hradmin/internal/employee"
	"hradmin/internal/messaging/kafka"
	"hradmin/internal/middleware"
	"hradmin/internal/registration"
	"hradmin/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	cfg *config.Config,
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// Secret diinjeksikan sekali di sini; tidak ada pembacaan env di tengah request
	issuer := token.NewIssuer(cfg.JWTSecret, token.DefaultTTL)
	guard := middleware.AuthGuard(issuer)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	divisionRepo := division.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, issuer)
	registrationService := registration.NewServiceWithOutbox(gormDB, authRepo, employeeRepo, outboxRepo)
	employeeService := employee.NewService(gormDB, employeeRepo)
	departmentService := department.NewService(gormDB, departmentRepo, rdb)
	divisionService := division.NewService(gormDB, divisionRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	registrationHandler := registration.NewHandler(registrationService)
	employeeHandler := employee.NewHandler(employeeService)
	departmentHandler := department.NewHandler(departmentService)
	divisionHandler := division.NewHandler(divisionService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	root := router.Group("")
	auth.RegisterRoutes(root, authHandler)
	registration.RegisterRoutes(root, registrationHandler)

	admin := router.Group("/admin")
	employee.RegisterRoutes(admin, employeeHandler, registrationHandler.CreateEmployee, guard, logger)
	department.RegisterRoutes(admin, departmentHandler, guard)
	division.RegisterRoutes(admin, divisionHandler, guard)

	return nil
}
