// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/middleware"
	"github.com/danielhkuo/classroom-quorum/models"
)

type ClassroomHandler struct {
	coord *classroom.Coordinator
}

func NewClassroomHandler(coord *classroom.Coordinator) *ClassroomHandler {
	return &ClassroomHandler{coord: coord}
}

// Status handles GET /api/classroom/status
func (h *ClassroomHandler) Status(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.coord.IsInSession())
}

// UniqueID handles GET /api/classroom/getUniqueId
// Issues an identity for a teacher or a door
func (h *ClassroomHandler) UniqueID(w http.ResponseWriter, r *http.Request) {
	id := h.coord.NextIdentity()
	slog.Info("identity issued", "id", id)
	middleware.JSONResponse(w, http.StatusOK, id)
}

// EnoughStudents handles GET /api/classroom/enoughstudents
func (h *ClassroomHandler) EnoughStudents(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.coord.CanVotingStart())
}

// VoteStart handles POST /api/classroom/vote/start (and /start)
// Returns true only if this vote started the class
func (h *ClassroomHandler) VoteStart(w http.ResponseWriter, r *http.Request) {
	teacher, ok := parseTeacher(w, r)
	if !ok {
		return
	}

	started := h.coord.VoteToStart(teacher)
	slog.Info("start vote", "teacher_id", teacher.ID, "name", teacher.Name, "started", started)

	middleware.JSONResponse(w, http.StatusOK, started)
}

// VoteEnd handles POST /api/classroom/vote/end (and /end)
// Returns true only if this vote ended the class
func (h *ClassroomHandler) VoteEnd(w http.ResponseWriter, r *http.Request) {
	teacher, ok := parseTeacher(w, r)
	if !ok {
		return
	}

	ended := h.coord.VoteToEnd(teacher)
	slog.Info("end vote", "teacher_id", teacher.ID, "name", teacher.Name, "ended", ended)

	middleware.JSONResponse(w, http.StatusOK, ended)
}

// Generate handles POST /api/classroom/generate
// Applies a door's signed student delta; responds 200 with an empty body
func (h *ClassroomHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var door models.Door
	if err := middleware.ParseJSONBody(r, &door); err != nil {
		if errors.Is(err, middleware.ErrEmptyBody) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Door data is required.")
			return
		}
		if tooLarge(err) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Door data is too large.")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.coord.ReportDoor(door)
	slog.Info("students reported", "door_id", door.ID, "delta", door.AmountOfStudents)

	w.WriteHeader(http.StatusOK)
}

// Join handles POST /api/classroom/join
// Registers a teacher without voting and returns the stored record
func (h *ClassroomHandler) Join(w http.ResponseWriter, r *http.Request) {
	teacher, ok := parseTeacher(w, r)
	if !ok {
		return
	}

	stored := h.coord.Join(teacher)
	slog.Info("teacher joined", "teacher_id", stored.ID, "name", stored.Name)

	middleware.JSONResponse(w, http.StatusOK, stored)
}

// Session handles GET /api/classroom/session
func (h *ClassroomHandler) Session(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.coord.Snapshot())
}

// parseTeacher reads a teacher record and writes a 400 if it is missing,
// malformed, or has no issued identity.
func parseTeacher(w http.ResponseWriter, r *http.Request) (models.Teacher, bool) {
	var teacher models.Teacher
	if err := middleware.ParseJSONBody(r, &teacher); err != nil {
		if errors.Is(err, middleware.ErrEmptyBody) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Teacher data is required.")
			return models.Teacher{}, false
		}
		if tooLarge(err) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Teacher data is too large.")
			return models.Teacher{}, false
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.Teacher{}, false
	}

	if teacher.ID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "teacherId is required (request one from /getUniqueId)")
		return models.Teacher{}, false
	}

	return teacher, true
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
