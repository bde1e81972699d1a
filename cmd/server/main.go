package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/ghiaccio/backend/internal/application/identity"
	orderingapp "github.com/ghiaccio/backend/internal/application/ordering"
	reportapp "github.com/ghiaccio/backend/internal/application/report"
	"github.com/ghiaccio/backend/internal/infrastructure/config"
	"github.com/ghiaccio/backend/internal/infrastructure/logger"
	"github.com/ghiaccio/backend/internal/infrastructure/persistence"
	"github.com/ghiaccio/backend/internal/infrastructure/session"
	"github.com/ghiaccio/backend/internal/interfaces/http/handler"
	"github.com/ghiaccio/backend/internal/interfaces/http/middleware"
	"github.com/ghiaccio/backend/internal/interfaces/http/router"
	"github.com/ghiaccio/backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ice delivery backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Initialize the session store
	sessionStore, closeStore := newSessionStore(cfg, log)
	defer closeStore()

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	freezerRepo := persistence.NewGormFreezerRepository(db.DB)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, sessionStore, identityapp.AuthServiceConfig{
		IdleTTL:       cfg.Session.IdleTTL,
		RememberMeTTL: cfg.Session.RememberMeTTL,
	}, log)
	orderService := orderingapp.NewOrderService(orderRepo, userRepo, log)
	summaryService := reportapp.NewSummaryService(orderRepo, freezerRepo, log)

	// Initialize Prometheus metrics
	httpMetrics := metrics.NewHTTPMetrics()

	// Initialize handlers
	var authRateLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRateLimit = middleware.RateLimit(limiter)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authHandler := handler.NewAuthHandler(authService, cfg.Session, authRateLimit)
	orderHandler := handler.NewOrderHandler(orderService, httpMetrics)
	adminHandler := handler.NewAdminHandler(summaryService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. Metrics - Record request counters and latency
	// 8. SessionAuth - Resolve the session cookie into the request context
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(httpMetrics.GinMiddleware())
	engine.Use(middleware.SessionAuth(cfg.Session.CookieName, sessionStore))

	// Health check and metrics endpoints (outside the API prefix)
	engine.GET("/health", healthHandler(db))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	r := router.NewRouter(engine)
	r.Register(authHandler).
		Register(orderHandler).
		Register(adminHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSessionStore builds the configured session backend. The returned close
// function releases the backing resources on shutdown.
func newSessionStore(cfg *config.Config, log *zap.Logger) (session.Store, func()) {
	if cfg.Session.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("Using redis session store", zap.String("addr", cfg.Redis.Addr()))
		return session.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}
	}

	store := session.NewMemoryStore(5 * time.Minute)
	log.Info("Using in-memory session store")
	return store, store.Close
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
