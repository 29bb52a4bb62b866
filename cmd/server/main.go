package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skolmaten/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"skolmaten/internal/auth"
	"skolmaten/internal/cache"
	"skolmaten/internal/config"
	"skolmaten/internal/db"
	"skolmaten/internal/handler"
	"skolmaten/internal/importer"
	"skolmaten/internal/logging"
	"skolmaten/internal/policy"
	"skolmaten/internal/repository"
	"skolmaten/internal/router"
	"skolmaten/internal/service"
)

// @title Skolmaten API
// @version 1.0
// @description Weekly school lunch menu with user accounts and per-day comments.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cacheClient != nil {
		if err := cacheClient.Ping(ctx); err != nil {
			log.Warn(ctx, "redis unreachable, serving without cache", "addr", cfg.RedisAddr, "error", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.TokenSecret)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize services
	credentials := service.NewCredentialService(userRepo, hasher, log)
	tokens := service.NewTokenService(userRepo, jwtService, log)
	authService := service.NewAuthService(credentials, tokens)
	menuService := service.NewMenuService(menuRepo, commentRepo, cacheClient, log)
	commentService := service.NewCommentService(commentRepo, log)
	guard := policy.NewGuard(credentials, tokens, menuService, commentService, log)

	if cfg.AdminPassword != "" {
		created, err := credentials.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			log.Info(ctx, "admin account created", "name", cfg.AdminName)
		}
	}

	opener, err := importer.NewOpener(ctx, importer.S3Config{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, jwtService, tokens, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, guard),
		Users:    handler.NewUserHandler(guard),
		Menu:     handler.NewMenuHandler(menuService, guard, opener),
		Comments: handler.NewCommentHandler(commentService, guard),
	}, log)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	addr := ":" + cfg.ServerPort
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server listening", "addr", addr, "swagger", "/swagger/index.html")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info(shutdownCtx, "shutting down")
	return e.Shutdown(shutdownCtx)
}
