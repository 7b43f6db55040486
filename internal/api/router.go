package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/martialverse/booking-api/docs"
	"github.com/martialverse/booking-api/internal/api/handler"
	"github.com/martialverse/booking-api/internal/api/middleware"
	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/service"
	mongodb "github.com/martialverse/booking-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/martialverse/booking-api/internal/infrastructure/db/redis"
	"github.com/martialverse/booking-api/internal/infrastructure/gateway"
	"github.com/martialverse/booking-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	classRepo := mongodb.NewClassRepository(db)
	selectionRepo := mongodb.NewSelectionRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	userService := service.NewUserService(userRepo, log)
	popularCache := redisinfra.NewPopularCache(rdb, log)
	classService := service.NewClassService(classRepo, popularCache, log)
	selectionService := service.NewSelectionService(selectionRepo, log)
	stripeGateway := gateway.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.APIURL)
	paymentService := service.NewPaymentService(paymentRepo, selectionRepo, stripeGateway, cfg.Payment.Currency, log)

	// --- Guards ---
	authn := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)
	instructorOnly := middleware.RequireRole(userRepo, domain.RoleInstructor)

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(classService)
	selectionHandler := handler.NewSelectionHandler(selectionService)
	reviewHandler := handler.NewReviewHandler(reviewRepo)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Tokens ---
	e.POST("/tokens", tokenHandler.Issue)

	// --- Users ---
	e.GET("/users", userHandler.List, authn)
	e.GET("/users/admin/:email", userHandler.CheckAdmin, authn)
	e.GET("/users/instructor/:email", userHandler.CheckInstructor, authn)
	e.GET("/users/student/:email", userHandler.CheckStudent, authn)
	e.POST("/users", userHandler.Create)
	e.PATCH("/users/admin/:id", userHandler.PromoteAdmin, authn, adminOnly)
	e.PATCH("/users/instructor/:id", userHandler.PromoteInstructor, authn, adminOnly)

	// --- Classes ---
	e.GET("/services", classHandler.List)
	e.GET("/popular", classHandler.ListPopular)
	e.POST("/services", classHandler.Create, authn, instructorOnly)
	e.PATCH("/services/booking/:id", classHandler.UpdateCounters, authn)
	e.PATCH("/services/feedback/:id", classHandler.SetFeedback, authn, adminOnly)
	e.PATCH("/services/approved/:id", classHandler.Approve, authn, adminOnly)
	e.PATCH("/services/denied/:id", classHandler.Deny, authn, adminOnly)

	// --- Selections (cart) ---
	e.GET("/selected", selectionHandler.List, authn)
	e.POST("/selected", selectionHandler.Add, authn)
	e.DELETE("/selected/:id", selectionHandler.Remove, authn)

	// --- Reviews ---
	e.GET("/reviews", reviewHandler.List)

	// --- Payments ---
	e.POST("/create-payment", paymentHandler.CreateIntent, authn)
	e.GET("/payments", paymentHandler.List, authn)
	e.POST("/payments", paymentHandler.Record, authn)

	// --- Liveness, metrics, docs ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
