// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/classroom-quorum/db"
	"github.com/danielhkuo/classroom-quorum/middleware"
	"github.com/danielhkuo/classroom-quorum/models"
)

type HistoryHandler struct {
	journal *db.Journal
}

func NewHistoryHandler(journal *db.Journal) *HistoryHandler {
	return &HistoryHandler{journal: journal}
}

// GetHistory handles GET /api/classroom/history?limit=N
// Returns recorded transitions, newest first
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.journal.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list session events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	starts := make(map[string]time.Time)
	for _, ev := range events {
		if ev.Direction == models.DirectionStart {
			starts[ev.SessionID] = ev.OccurredAt
		}
	}

	entries := make([]models.HistoryEntry, 0, len(events))
	for _, ev := range events {
		entry := models.HistoryEntry{
			SessionEvent: ev,
			Ago:          humanize.Time(ev.OccurredAt),
		}

		if ev.Direction == models.DirectionEnd {
			startedAt, ok := starts[ev.SessionID]
			if !ok {
				// start fell outside the requested page
				start, err := h.journal.StartOf(r.Context(), ev.SessionID)
				if err != nil && !errors.Is(err, sql.ErrNoRows) {
					slog.Warn("failed to look up session start", "session_id", ev.SessionID, "error", err)
				}
				ok = err == nil
				startedAt = start.OccurredAt
			}
			if ok {
				entry.Duration = strings.TrimSpace(humanize.RelTime(startedAt, ev.OccurredAt, "", ""))
			}
		}

		entries = append(entries, entry)
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
