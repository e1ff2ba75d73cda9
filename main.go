package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/cliparse"
	"github.com/danielhkuo/classroom-quorum/db"
	"github.com/danielhkuo/classroom-quorum/middleware"
	"github.com/danielhkuo/classroom-quorum/router"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Open the session journal and create its schema
	journal, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("journal open failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer journal.Close()
	slog.Info("Journal ready", "type", cfg.DatabaseType)

	coord := classroom.New(classroom.Options{
		MinStudents: cfg.MinStudents,
		OnTransition: func(tr classroom.Transition) {
			if _, err := journal.Record(context.Background(), tr); err != nil {
				slog.Error("failed to journal transition", "direction", tr.Direction, "session_id", tr.SessionID, "error", err)
			}
		},
	})

	// Create router
	mux := router.NewRouter(coord, journal)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "min_students", cfg.MinStudents)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
