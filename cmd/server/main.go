package main

import (
	"log/slog"
	"net/http"

	"github.com/Arthur-Gab/graphql-task-api/internal/app"
	"github.com/Arthur-Gab/graphql-task-api/internal/config"
	"github.com/Arthur-Gab/graphql-task-api/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port+"/graphql")

	err = http.ListenAndServe(":"+cfg.Port, app.Handler())
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
