package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corporate-portal-service/internal/config"
	"corporate-portal-service/internal/database"
	"corporate-portal-service/internal/handler"
	"corporate-portal-service/internal/repository"
	"corporate-portal-service/internal/usecase"

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

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Репозитории
	userRepo := repository.NewUserRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	directoryRepo := repository.NewDirectoryRepository()

	// Use Cases
	userUC := usecase.NewUserUseCase(userRepo)
	newsUC := usecase.NewNewsUseCase(newsRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)
	directoryUC := usecase.NewDirectoryUseCase(directoryRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.IdentityMiddleware(cfg.DevTelegramID, logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(userUC, newsUC, taskUC, directoryUC, statsUC, logger)
	apiHandler.RegisterRoutes(e)

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
