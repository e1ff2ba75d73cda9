// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/db"
	"github.com/danielhkuo/classroom-quorum/handlers"
	"github.com/danielhkuo/classroom-quorum/middleware"
)

// Prefix is the path prefix shared by all classroom routes
const Prefix = "/api/classroom"

func NewRouter(coord *classroom.Coordinator, journal *db.Journal) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	classroomHandler := handlers.NewClassroomHandler(coord)
	historyHandler := handlers.NewHistoryHandler(journal)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polled by teachers and doors
	mux.HandleFunc("GET "+Prefix+"/status", middleware.WithLogging(classroomHandler.Status))
	mux.HandleFunc("GET "+Prefix+"/getUniqueId", middleware.WithLogging(classroomHandler.UniqueID))
	mux.HandleFunc("GET "+Prefix+"/enoughstudents", middleware.WithLogging(classroomHandler.EnoughStudents))

	// Teacher votes
	mux.HandleFunc("POST "+Prefix+"/join", middleware.WithLogging(classroomHandler.Join))
	mux.HandleFunc("POST "+Prefix+"/vote/start", middleware.WithLogging(classroomHandler.VoteStart))
	mux.HandleFunc("POST "+Prefix+"/start", middleware.WithLogging(classroomHandler.VoteStart))
	mux.HandleFunc("POST "+Prefix+"/vote/end", middleware.WithLogging(classroomHandler.VoteEnd))
	mux.HandleFunc("POST "+Prefix+"/end", middleware.WithLogging(classroomHandler.VoteEnd))

	// Door reports
	mux.HandleFunc("POST "+Prefix+"/generate", middleware.WithLogging(classroomHandler.Generate))

	// Inspection
	mux.HandleFunc("GET "+Prefix+"/session", middleware.WithLogging(classroomHandler.Session))
	mux.HandleFunc("GET "+Prefix+"/history", middleware.WithLogging(historyHandler.GetHistory))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("classroom-quorum API v1"))
	})

	return mux
}
