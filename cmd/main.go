package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/poirierc/gazette/internal/auth"
	"github.com/poirierc/gazette/internal/config"
	"github.com/poirierc/gazette/internal/core"
)

type application struct {
	config *config.Config
	logger *slog.Logger
	core   *core.Core
	auth   *auth.Auth
}

func main() {
	cfg := config.Load()
	logger := configLogger()
	logger.Info("Starting application...", "env", cfg.Env)

	db, err := core.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Error("Error opening database connection", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Database connection established successfully")

	c := core.New(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.InitSchema(ctx); err != nil {
		logger.Error("Error initializing database schema", "error", err)
		os.Exit(1)
	}

	app := &application{
		config: cfg,
		logger: logger,
		core:   c,
		auth:   auth.New(c),
	}

	if err := app.serve(); err != nil {
		logger.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	return slog.New(handler)
}
