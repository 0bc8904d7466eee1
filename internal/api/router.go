package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guitarworld/guitar-store/internal/api/handler"
	"github.com/guitarworld/guitar-store/internal/api/middleware"
	"github.com/guitarworld/guitar-store/internal/core/service"
	mongodb "github.com/guitarworld/guitar-store/internal/infrastructure/db/mongo"
	redisdb "github.com/guitarworld/guitar-store/internal/infrastructure/db/redis"
	"github.com/guitarworld/guitar-store/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("guitarstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	guitarRepo := mongodb.NewGuitarRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	creds := service.NewCredentialService(jwtSecret)
	userService := service.NewUserService(userRepo, guitarRepo, creds, log)
	guitarService := service.NewGuitarService(guitarRepo, catalogCache, log)

	userHandler := handler.NewUserHandler(userService)
	guitarHandler := handler.NewGuitarHandler(guitarService)

	auth := middleware.Auth(creds)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/:idUser", userHandler.Profile, auth, middleware.SelfOnly("idUser"))
	users.PATCH("/add/cart/:idGuitar", userHandler.AddGuitar, auth)
	users.PATCH("/remove/cart/:idGuitar", userHandler.RemoveGuitar, auth)

	// --- Guitar routes ---
	guitars := e.Group("/guitars", auth)
	guitars.GET("/products", guitarHandler.Products)
	guitars.GET("/details/:idGuitar", guitarHandler.Details)
	guitars.POST("/create", guitarHandler.Create, middleware.AdminOnly())
	guitars.PATCH("/edit/:idGuitar", guitarHandler.Edit, middleware.AdminOnly())
	guitars.DELETE("/delete/:idGuitar", guitarHandler.Delete, middleware.AdminOnly())

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
