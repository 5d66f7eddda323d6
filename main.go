// server/main.go
package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/theranotes/server/config"
	httphandlers "github.com/theranotes/server/http"
	"github.com/theranotes/server/store"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("invalid log level")
	}
	logger = logger.Level(level)

	st, err := store.New(cfg.Data.Dir, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("data_dir", cfg.Data.Dir).Msg("failed to initialize store")
	}

	app := fiber.New(fiber.Config{
		AppName:               "theranotes-server",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(httphandlers.RequestLogger(logger))

	server := httphandlers.NewServer(st, logger)
	server.Register(app)

	logger.Info().Str("addr", cfg.Addr()).Str("data_dir", cfg.Data.Dir).Msg("server starting")
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
