package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/handler"
	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/internal/service"
	jwtpkg "tapstar/reviewgate/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize state store (Redis or in-memory)
	var stateStore repository.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		stateStore = repository.NewRedisStateStore(redisClient)
		logger.Info("using Redis state store")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		logger.Info("using in-memory state store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	tenantRepo := repository.NewPGTenantRepository(db)
	customerRepo := repository.NewPGCustomerRepository(db)
	visitRepo := repository.NewPGVisitRepository(db)
	couponRepo := repository.NewPGCouponRepository(db)
	feedbackRepo := repository.NewPGFeedbackRepository(db)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
	)

	// 8. Initialize services
	policy := service.NewRatingPolicy(cfg.Rating)
	tenantService := service.NewTenantService(tenantRepo, cfg.Server.BaseURL)
	ratingService := service.NewRatingService(tenantRepo, visitRepo, policy)
	couponService := service.NewCouponService(couponRepo, customerRepo, tenantRepo, cfg.Coupon.ValidityWindow)
	feedbackService := service.NewFeedbackService(feedbackRepo, customerRepo, tenantRepo)
	adminService := service.NewAdminService(cfg.Admin, jwtManager, stateStore, tenantRepo, visitRepo, couponRepo, feedbackRepo)

	// 9. Seed the tenant directory from config
	if err := tenantService.Seed(context.Background(), cfg.Tenants); err != nil {
		logger.Fatal("failed to seed tenants", zap.Error(err))
	}
	logger.Info("tenant directory seeded", zap.Int("count", len(cfg.Tenants)))

	// 10. Initialize handlers
	tenantHandler := handler.NewTenantHandler(tenantService, policy)
	ratingHandler := handler.NewRatingHandler(ratingService)
	couponHandler := handler.NewCouponHandler(couponService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	adminHandler := handler.NewAdminHandler(adminService, tenantService)

	// 11. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, adminService,
		tenantHandler, ratingHandler, couponHandler, feedbackHandler, adminHandler)

	// 12. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 13. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 14. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
