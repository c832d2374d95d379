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
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vendor-kyc.backend/internal/config"
	"vendor-kyc.backend/internal/infrastructure/jobs"
	"vendor-kyc.backend/internal/infrastructure/repositories"
	"vendor-kyc.backend/internal/infrastructure/storage"
	"vendor-kyc.backend/internal/interfaces/http/handlers"
	"vendor-kyc.backend/internal/interfaces/http/middleware"
	"vendor-kyc.backend/internal/metrics"
	"vendor-kyc.backend/internal/usecases"
	"vendor-kyc.backend/pkg/jwt"
	"vendor-kyc.backend/pkg/logger"
	"vendor-kyc.backend/pkg/redis"
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
	newMetrics = func() *metrics.Metrics { return metrics.New(prometheus.DefaultRegisterer) }
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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

	// Initialize document storage
	store, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("failed to initialize document storage: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize metrics
	m := newMetrics()

	// Initialize repositories
	vendorRepo := repositories.NewVendorRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	seqRepo := repositories.NewSequenceRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	registrationUsecase := usecases.NewRegistrationUsecase(vendorRepo, docRepo, seqRepo, uow)
	documentUsecase := usecases.NewDocumentUsecase(vendorRepo, docRepo, store, uow)
	reviewUsecase := usecases.NewReviewUsecase(vendorRepo, auditRepo, uow)
	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService)

	// Seed reviewer account from configuration
	if err := authUsecase.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Printf("⚠️ Failed to seed admin account: %v", err)
	}

	// Initialize handlers
	vendorHandler := handlers.NewVendorHandler(registrationUsecase, documentUsecase, m)
	adminHandler := handlers.NewAdminHandler(reviewUsecase, registrationUsecase, documentUsecase, m)
	authHandler := handlers.NewAuthHandler(authUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewDocumentOrphanSweepJob(docRepo, store, cfg.Storage.SweepInterval)
	go sweepJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		vendorHandler:  vendorHandler,
		adminHandler:   adminHandler,
		authHandler:    authHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweepJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Vendor KYC Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
