package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/coolcut/siphon/internal/config"
	"github.com/coolcut/siphon/internal/router"
	"github.com/coolcut/siphon/internal/storage/sqlitestore"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// structured logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	})))

	// the store opens its database lazily on first use
	store := sqlitestore.New(cfg.Database)

	r := router.SetupRouter(cfg, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server listening", "addr", addr, "db", cfg.Database.Path)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
