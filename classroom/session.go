// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/classroom-quorum/models"
)

// Phase is the two-valued session state.
type Phase int

const (
	NotInSession Phase = iota
	InSession
)

func (p Phase) String() string {
	if p == InSession {
		return models.PhaseInSession
	}
	return models.PhaseNotInSession
}

// Transition describes a phase change produced by a vote.
type Transition struct {
	// Seq counts transitions since the coordinator was created, from 1.
	Seq       int
	Direction string // models.DirectionStart or models.DirectionEnd
	SessionID string
	Teachers  int
	Votes     int
	// Students is the count at the moment of the transition, before any reset.
	Students int
	At       time.Time
}

// Session is the state machine over a Registry. It holds no lock; callers
// serialize access.
type Session struct {
	phase    Phase
	id       string
	seq      int
	registry *Registry
	now      func() time.Time
}

func NewSession(registry *Registry) *Session {
	return &Session{registry: registry, now: time.Now}
}

func (s *Session) Phase() Phase {
	return s.phase
}

// ID returns the identifier of the running session, or "" when not in session.
func (s *Session) ID() string {
	return s.id
}

// VoteToStart records a start vote for t and starts the class when a strict
// majority of registered teachers has voted to start. Votes cast while the
// class is already in session are rejected without touching any state.
func (s *Session) VoteToStart(t models.Teacher) (Transition, bool) {
	if s.phase != NotInSession {
		return Transition{}, false
	}

	teacher := s.registry.RegisterOrGetTeacher(t.ID, t.Name)
	teacher.VotedToStart = true

	votes := s.registry.startVotes()
	total := s.registry.TeacherCount()
	if !HasQuorum(votes, total) {
		return Transition{}, false
	}

	s.id = uuid.NewString()
	s.seq++
	tr := Transition{
		Seq:       s.seq,
		Direction: models.DirectionStart,
		SessionID: s.id,
		Teachers:  total,
		Votes:     countYes(votes),
		Students:  s.registry.StudentCount(),
		At:        s.now(),
	}

	s.phase = InSession
	s.registry.clearVotes()
	// the arrivals that justified starting are consumed
	s.registry.resetStudents()
	return tr, true
}

// VoteToEnd records an end vote for t and ends the class on a strict
// majority. The student count carries over; only a start resets it.
func (s *Session) VoteToEnd(t models.Teacher) (Transition, bool) {
	if s.phase != InSession {
		return Transition{}, false
	}

	teacher := s.registry.RegisterOrGetTeacher(t.ID, t.Name)
	teacher.VotedToEnd = true

	votes := s.registry.endVotes()
	total := s.registry.TeacherCount()
	if !HasQuorum(votes, total) {
		return Transition{}, false
	}

	s.seq++
	tr := Transition{
		Seq:       s.seq,
		Direction: models.DirectionEnd,
		SessionID: s.id,
		Teachers:  total,
		Votes:     countYes(votes),
		Students:  s.registry.StudentCount(),
		At:        s.now(),
	}

	s.phase = NotInSession
	s.id = ""
	s.registry.clearVotes()
	return tr, true
}
