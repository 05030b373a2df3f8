package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-analytics/internal/cache"
	"portfolio-analytics/internal/config"
	"portfolio-analytics/internal/database"
	"portfolio-analytics/internal/handler"
	"portfolio-analytics/internal/repository"
	"portfolio-analytics/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (контактная форма)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Репозитории
	githubRepo := repository.NewGitHubRepository(cfg.GithubAPIURL, cfg.GithubToken, logger)
	contactRepo := repository.NewContactRepository(db)

	// TTL-кеш списка репозиториев
	repoCache := cache.NewRepoCache(cfg.CacheTTL)

	// Use Cases
	repoUC := usecase.NewRepoUseCase(githubRepo, repoCache, cfg.GithubUser, cfg.ExcludedRepos, logger)
	calendar := usecase.NewSyntheticCalendar(time.Now().UnixNano())
	statsUC := usecase.NewStatsUseCase(githubRepo, repoUC, calendar, cfg.GithubUser, logger)
	contactUC := usecase.NewContactUseCase(contactRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(statsUC, repoUC, contactUC, logger)
	handler.RegisterRoutes(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Прогрев кеша, чтобы первый запрос UI не ждал сеть
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repoUC.RefreshRepositories(ctx); err != nil {
			logger.Warnf("Cache warmup failed: %v", err)
		}
	}()

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
