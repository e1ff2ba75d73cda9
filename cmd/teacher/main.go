package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/classroom-quorum/client"
	"github.com/danielhkuo/classroom-quorum/cliparse"
)

var defaultNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve"}

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	cfg, err := cliparse.ParseTeacherFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if cfg.Name == "" {
		cfg.Name = defaultNames[rand.IntN(len(defaultNames))]
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	teacher := client.NewTeacher(client.New(cfg.ServerURL, nil), cfg)
	if err := teacher.Run(ctx); err != nil {
		slog.Error("teacher stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("teacher stopped", "id", teacher.Record().ID)
}
