package main

import (
	"os"
	"os/signal"
	"syscall"

	"jobhub-backend/internal/adapters/http/middleware"
	"jobhub-backend/internal/adapters/http/routes"
	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		logger.Get().Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDev(),
	})

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase(db)

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}
	log.Info().Msg("database migration completed")

	app := fiber.New(fiber.Config{
		AppName:      cfg.ProjectName,
		ErrorHandler: middleware.ErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, cfg)

	go gracefulShutdown(app)

	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// gracefulShutdown stops accepting connections on SIGINT/SIGTERM and
// drains in-flight requests.
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Get().Error().Err(err).Msg("error during shutdown")
	}
}
