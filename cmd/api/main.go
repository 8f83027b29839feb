package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs"
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Portal API
// @version         1.0
// @description     REST backend for a job board. Recruiters post jobs, applicants apply.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()

	pool, err := database.NewPostgresConnection(cfg.DatabaseURL(), cfg.DBPoolSize)
	if err != nil {
		logger.Log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(cfg.RedisURL); err != nil {
			logger.Log.Warn("redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			defer redis.Close()
		}
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)

	authUC := usecase.NewAuthUsecase(userRepo, companyRepo, cfg.JWTSecret, cfg.JWTExpire)
	jobUC := usecase.NewJobUsecase(jobRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)

	router := v1.NewRouter(v1.RouterDeps{
		Config:      cfg,
		AuthUsecase: authUC,
		JobUsecase:  jobUC,
		AppUsecase:  appUC,
		CompanyUC:   companyUC,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("server stopped")
}
