package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsewire/social-api/internal/api/handler"
	"github.com/pulsewire/social-api/internal/api/middleware"
	"github.com/pulsewire/social-api/internal/core/service"
	"github.com/pulsewire/social-api/internal/infrastructure/config"
	mongodb "github.com/pulsewire/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulsewire/social-api/internal/infrastructure/db/redis"
)

// tokenLifetime is fixed: every issued token expires one hour after issuance.
const tokenLifetime = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// This is the single route composition for the whole service.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("social"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: cfg.CORS.AllowCredentials,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	tokenService := service.NewTokenService(cfg.JWTSecret, tokenLifetime)
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	postService := service.NewPostService(postRepo, userRepo, log)
	commentService := service.NewCommentService(postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	authRequired := middleware.Auth(tokenService, userRepo, log)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)
	users.GET("/profile", authHandler.Profile, authRequired)

	// --- Post routes ---
	posts := e.Group("/api/posts")
	posts.POST("", postHandler.Create, authRequired)
	posts.GET("", postHandler.List)
	posts.DELETE("/:postId", postHandler.Delete, authRequired)
	posts.POST("/:postId/comment", commentHandler.Add, authRequired)

	// --- Comment routes ---
	comments := e.Group("/api/comments")
	comments.POST("/:postId", commentHandler.Add, authRequired)
	comments.GET("/:postId", commentHandler.List)
	comments.PUT("/:postId/:commentId", commentHandler.Update, authRequired)
	comments.DELETE("/:postId/:commentId", commentHandler.Delete, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
