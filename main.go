package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/config"
	_ "github.com/DanCG7040/RealTaker-cup-backend/docs" // Swagger docs
	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/migrations"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/utils"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

//go:generate swag init

// @title           RealTaker Cup API
// @version         1.0
// @description     Tournament settlement, standings and reward ledger of the RealTaker Cup
// @termsOfService  http://swagger.io/terms/

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr := logger.Init(cfg.LogLevel)

	if err := run(cfg, logr); err != nil {
		logr.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *slog.Logger) error {
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	location, err := cfg.WheelLocation()
	if err != nil {
		return err
	}

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, logr)
		if err != nil {
			return err
		}
		migrator.AddMigrations(migrations.All()...)
		if err := migrator.Migrate(); err != nil {
			return err
		}
	}

	publisher, closePublisher, err := newPublisher(cfg.NATS, logr)
	if err != nil {
		return err
	}
	defer closePublisher()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	tokens := utils.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authModule := auth.NewModule(db, tokens)
	coreModule := core.NewModule(db, authModule, core.Options{
		StatementTimeout: cfg.Database.StatementTimeout,
		WheelLocation:    location,
		ArchiveSchedule:  cfg.Archive.Schedule,
		Logger:           logr,
		Notifier:         notify.NewNotifier(publisher, logr),
		Metrics:          metrics.New(registry),
	})

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logr), newCORS(cfg.CORS))

	coreModule.SetupRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/health", healthHandler(db))

	if err := coreModule.StartScheduler(); err != nil {
		return err
	}
	defer coreModule.StopScheduler()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logr.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newPublisher connects to NATS when a URL is configured. Without one, events are dropped.
func newPublisher(cfg config.NATSConfig, logr *slog.Logger) (notify.Publisher, func(), error) {
	if cfg.URL == "" {
		logr.Info("NATS not configured, events are not published")
		return notify.Noop{}, func() {}, nil
	}
	publisher, err := notify.NewNATSPublisher(cfg.URL, cfg.Subject)
	if err != nil {
		return nil, nil, err
	}
	logr.Info("Publishing events to NATS", "subject", cfg.Subject)
	return publisher, publisher.Close, nil
}

func newCORS(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AddAllowHeaders("Authorization")
	if len(cfg.Origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.Origins
		c.AllowCredentials = true
	}
	return cors.New(c)
}

func requestLogger(logr *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logr.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Message:  "Server is running",
				Database: "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{
			Message:  "Server is running",
			Database: "connected",
		})
	}
}
