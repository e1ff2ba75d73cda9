// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Session phase constants
const (
	PhaseNotInSession = "not_in_session"
	PhaseInSession    = "in_session"
)

// Transition direction constants
const (
	DirectionStart = "start"
	DirectionEnd   = "end"
)

// Participant types

// Teacher is a voting participant. ID 0 means no identity has been issued yet.
type Teacher struct {
	ID           int    `json:"teacherId"`
	Name         string `json:"name"`
	VotedToStart bool   `json:"hasVotedToStart"`
	VotedToEnd   bool   `json:"hasVotedToEnd"`
}

// Door reports student movement. AmountOfStudents is a signed delta since
// the door's previous report.
type Door struct {
	ID               int    `json:"doorId"`
	Name             string `json:"name"`
	AmountOfStudents int    `json:"amountOfStudents"`
	IsOpened         bool   `json:"isOpened"`
	IsClosed         bool   `json:"isClosed"`
}

// Response types

type SessionSnapshot struct {
	Phase       string    `json:"phase"`
	InSession   bool      `json:"in_session"`
	SessionID   string    `json:"session_id,omitempty"`
	Students    int       `json:"students"`
	MinStudents int       `json:"min_students"`
	Doors       int       `json:"doors"`
	Teachers    []Teacher `json:"teachers"`
}

// SessionEvent is one recorded phase transition.
type SessionEvent struct {
	ID         string    `json:"id"`
	Seq        int       `json:"seq"`
	SessionID  string    `json:"session_id"`
	Direction  string    `json:"direction"`
	Teachers   int       `json:"teachers"`
	Votes      int       `json:"votes"`
	Students   int       `json:"students"`
	OccurredAt time.Time `json:"occurred_at"`
}

type HistoryEntry struct {
	SessionEvent
	Ago      string `json:"ago"`
	Duration string `json:"duration,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
