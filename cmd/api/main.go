package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/kislikjeka/bookstore/internal/infra/postgres"
	infraRedis "github.com/kislikjeka/bookstore/internal/infra/redis"
	"github.com/kislikjeka/bookstore/internal/module/reporting"
	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/platform/distributor"
	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/platform/sale"
	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/handler"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/config"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// Login attempts per client IP: a burst of 5, then one every 12 seconds
const (
	loginRateEvery = 12 * time.Second
	loginRateBurst = 5
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewDefault(cfg.Env)
	log.Info("Starting bookstore API server", "env", cfg.Env, "port", cfg.Port)

	db, err := postgres.NewPool(ctx, postgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("Database connection established")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	// The category cache falls back to the database, so a missing Redis only
	// costs latency.
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, category cache degraded", "error", err)
	} else {
		log.Info("Redis connection established")
	}

	userRepo := postgres.NewUserRepository(db.Pool)
	categoryRepo := postgres.NewCategoryRepository(db.Pool)
	clientRepo := postgres.NewClientRepository(db.Pool)
	productRepo := postgres.NewProductRepository(db.Pool)
	distributorRepo := postgres.NewDistributorRepository(db.Pool)
	saleRepo := postgres.NewSaleRepository(db.Pool)

	userSvc := user.NewService(userRepo, log)
	categorySvc := category.NewService(categoryRepo)
	categoryCache := infraRedis.NewCategoryCache(redisClient, categorySvc, cfg.CategoryCacheTTL, log)
	clientSvc := client.NewService(clientRepo)
	productSvc := product.NewService(productRepo, categoryCache)
	distributorSvc := distributor.NewService(distributorRepo)
	saleSvc := sale.NewService(saleRepo, clientSvc)

	if cfg.AdminUsername != "" {
		created, err := userSvc.EnsureAdmin(ctx, user.Registration{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		})
		if err != nil {
			log.Error("Failed to bootstrap admin", "error", err)
			os.Exit(1)
		}
		if !created {
			log.Info("Admin account present, bootstrap skipped")
		}
	}

	logo, err := loadLogo(cfg.ReportLogoPath)
	if err != nil {
		log.Warn("Report logo not loaded", "path", cfg.ReportLogoPath, "error", err)
	}
	reportSvc := reporting.NewService(saleSvc, productSvc, clientSvc, logo, log)

	jwtSvc := middleware.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	apiLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer apiLimiter.Stop()
	loginLimiter := middleware.NewRateLimiter(rate.Every(loginRateEvery), loginRateBurst)
	defer loginLimiter.Stop()

	r := httpapi.NewRouter(httpapi.Config{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,

		AuthHandler: handler.NewAuthHandler(userSvc, jwtSvc, handler.CookieConfig{
			Name:   cfg.AuthCookieName,
			Secure: cfg.CookieSecure,
		}, log),
		UserHandler:        handler.NewUserHandler(userSvc, log),
		CategoryHandler:    handler.NewCategoryHandler(categorySvc, categoryCache, log),
		ClientHandler:      handler.NewClientHandler(clientSvc, log),
		ProductHandler:     handler.NewProductHandler(productSvc, log),
		DistributorHandler: handler.NewDistributorHandler(distributorSvc, log),
		SaleHandler:        handler.NewSaleHandler(saleSvc, log),
		ReportHandler:      handler.NewReportHandler(reportSvc, log),
		HealthHandler: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": db,
			"redis":    categoryCache,
		}),

		JWTMiddleware:  middleware.JWTMiddleware(jwtSvc, cfg.AuthCookieName),
		RateLimit:      apiLimiter.Middleware,
		LoginRateLimit: loginLimiter.Middleware,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Report rendering can take a while for large catalogs
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}

func loadLogo(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	return os.ReadFile(path)
}
