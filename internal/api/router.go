package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/forefront/clientplus/docs"
	"github.com/forefront/clientplus/internal/api/handler"
	"github.com/forefront/clientplus/internal/api/middleware"
	"github.com/forefront/clientplus/internal/core/domain"
	"github.com/forefront/clientplus/internal/core/service"
	"github.com/forefront/clientplus/internal/infrastructure/db/gormdb"
	redisdb "github.com/forefront/clientplus/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clientplus"))

	// --- Repositories ---
	userRepo := gormdb.NewUserRepository(db)
	refRepo := gormdb.NewReferenceRepository(db)
	entryRepo := gormdb.NewEntryRepository(db)
	dealRepo := gormdb.NewDealRepository(db)
	adminRepo := gormdb.NewAdminRepository(db)
	statsCache := redisdb.NewStatsCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	refService := service.NewReferenceService(refRepo, log)
	entryService := service.NewEntryService(entryRepo, refRepo, statsCache, log)
	dashboardService := service.NewDashboardService(entryRepo, dealRepo, statsCache, log)
	adminService := service.NewAdminService(userRepo, adminRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	refHandler := handler.NewReferenceHandler(refService)
	entryHandler := handler.NewEntryHandler(entryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	authMiddleware := middleware.Auth(jwtSecret)
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/domains", refHandler.ListDomains)
	v1.GET("/domains/:domainId/subdomains", refHandler.ListSubdomains)
	v1.GET("/subdomains/:subdomainId/scopes", refHandler.ListScopes)
	v1.GET("/clients", refHandler.ListClients)

	v1.POST("/entries", entryHandler.Submit)
	v1.POST("/entries/exceptional", entryHandler.SubmitExceptional)
	v1.PUT("/entries/:id", entryHandler.Update)
	v1.DELETE("/entries/:id", entryHandler.Delete)

	v1.GET("/dashboard/stats", dashboardHandler.Stats)
	v1.GET("/dashboard/today", dashboardHandler.Today)
	v1.GET("/dashboard/activity", dashboardHandler.Activity)

	// --- Admin routes (SUPER_USER only) ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleSuperUser))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users/:id/permissions", adminHandler.ListUserPermissions)
	admin.GET("/domains", adminHandler.ListDomains)

	return e
}
