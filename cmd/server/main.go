package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/config"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/jobs"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/repositories"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/handlers"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/middleware"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/usecases"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/jwt"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/logger"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	appRepo := repositories.NewApplicationRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	subRepo := repositories.NewSubscriptionRepository(db)
	certRepo := repositories.NewCertificateRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	notifier := usecases.NewLogNotifier()
	renderer := usecases.NewPlainTextRenderer()
	applicationUsecase := usecases.NewApplicationUsecase(appRepo, docRepo, paymentRepo, subRepo, userRepo, auditRepo, uow, notifier)
	documentUsecase := usecases.NewDocumentUsecase(docRepo, appRepo, auditRepo, uow, notifier)
	certificateUsecase := usecases.NewCertificateUsecase(certRepo, appRepo, auditRepo, uow, renderer)
	applicationUsecase.SetIssuer(certificateUsecase)
	adminUsecase := usecases.NewAdminUsecase(userRepo, appRepo, auditRepo, uow)

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	documentHandler := handlers.NewDocumentHandler(documentUsecase)
	certificateHandler := handlers.NewCertificateHandler(certificateUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewSubscriptionExpiryJob(applicationUsecase, cfg.Vendor.SubscriptionSweepInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		applicationHandler: applicationHandler,
		documentHandler:    documentHandler,
		certificateHandler: certificateHandler,
		adminHandler:       adminHandler,
		authMiddleware:     middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 VendorHub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
