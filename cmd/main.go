package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"maori_dictionary/internal/config"
	"maori_dictionary/internal/handlers"
	"maori_dictionary/internal/middleware"
	"maori_dictionary/internal/repository"
	"maori_dictionary/internal/service"
)

const sessionPurgeInterval = 15 * time.Minute

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig(*configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	sessionRepo := repository.NewGormSessionRepository()
	categoryRepo := repository.NewGormCategoryRepository()
	wordRepo := repository.NewGormWordRepository()

	authService := service.NewAuthService(db, userRepo)
	sessionService := service.NewSessionService(db, authService, sessionRepo,
		config.Cfg.Session.SecretKey, config.Cfg.App.Name, config.Cfg.Session.TTL)
	categoryService := service.NewCategoryService(db, categoryRepo, wordRepo)
	wordService := service.NewWordService(db, wordRepo, authService)
	guard := service.NewGuard(wordService, categoryService)

	startupCtx := middleware.WithLogger(context.Background(), logger)
	created, err := categoryService.SeedCategories(startupCtx, config.Cfg.App.SeedCategories)
	if err != nil {
		slog.Error("Error seeding categories", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("System categories seeded", slog.Int("created", created))

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:     logger,
		Auth:       handlers.NewAuthHandler(authService, sessionService, config.Cfg.Session.CookieName, config.Cfg.Session.CookieSecure),
		Category:   handlers.NewCategoryHandler(categoryService, guard),
		Word:       handlers.NewWordHandler(wordService, guard),
		Sessions:   sessionService,
		CookieName: config.Cfg.Session.CookieName,
		CORS: cors.Options{
			AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
			AllowedMethods:   config.Cfg.CORS.AllowedMethods,
			AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
			ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
			AllowCredentials: config.Cfg.CORS.AllowCredentials,
			MaxAge:           config.Cfg.CORS.MaxAge,
		},
		HealthCheck: pingDB(db),
	})

	bgCtx, stopBackground := context.WithCancel(startupCtx)
	defer stopBackground()
	go purgeSessions(bgCtx, sessionService)

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラでロガーを作ります
func newLogger(level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	return slog.New(handler)
}

func pingDB(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func purgeSessions(ctx context.Context, sessions service.SessionService) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sessions.PurgeExpired(ctx); err != nil {
				middleware.GetLogger(ctx).Error("Failed to purge expired sessions", "error", err)
			}
		}
	}
}
