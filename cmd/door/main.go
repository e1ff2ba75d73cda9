package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/classroom-quorum/client"
	"github.com/danielhkuo/classroom-quorum/cliparse"
)

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	cfg, err := cliparse.ParseDoorFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if cfg.Name == "" {
		cfg.Name = "Main entrance door"
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	door := client.NewDoor(client.New(cfg.ServerURL, nil), cfg)
	if err := door.Run(ctx); err != nil {
		slog.Error("door stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("door stopped", "id", door.Record().ID)
}
