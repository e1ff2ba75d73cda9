// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

import (
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/classroom-quorum/models"
)

// DefaultMinStudents is the arrival threshold used when Options leaves it unset.
const DefaultMinStudents = 20

type Options struct {
	// MinStudents is the student count required before start voting opens.
	MinStudents int
	// OnTransition, if set, is called after every phase change. It runs
	// outside the coordinator's lock, in the goroutine that cast the
	// deciding vote.
	OnTransition func(Transition)
	// Now overrides the clock used to stamp transitions.
	Now func() time.Time
}

// Coordinator is the single authority over one classroom. All of its
// methods are safe for concurrent use and are linearizable: every call runs
// inside one critical section covering identities, the registry, and the
// session state.
type Coordinator struct {
	mu           sync.Mutex
	issuer       *Issuer
	registry     *Registry
	session      *Session
	minStudents  int
	onTransition func(Transition)
}

func New(opts Options) *Coordinator {
	if opts.MinStudents <= 0 {
		opts.MinStudents = DefaultMinStudents
	}
	registry := NewRegistry()
	session := NewSession(registry)
	if opts.Now != nil {
		session.now = opts.Now
	}
	return &Coordinator{
		issuer:       NewIssuer(),
		registry:     registry,
		session:      session,
		minStudents:  opts.MinStudents,
		onTransition: opts.OnTransition,
	}
}

func (c *Coordinator) IsInSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Phase() == InSession
}

// NextIdentity issues a fresh participant identity.
func (c *Coordinator) NextIdentity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issuer.Next()
}

// CanVotingStart reports whether enough students are present to solicit
// start votes.
func (c *Coordinator) CanVotingStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CanVotingStart(c.registry.StudentCount(), c.minStudents)
}

func (c *Coordinator) MinStudents() int {
	return c.minStudents
}

// VoteToStart casts t's start vote and reports whether it started the class.
func (c *Coordinator) VoteToStart(t models.Teacher) bool {
	c.mu.Lock()
	tr, ok := c.session.VoteToStart(t)
	c.mu.Unlock()

	if ok {
		c.transitioned(tr)
	}
	return ok
}

// VoteToEnd casts t's end vote and reports whether it ended the class.
func (c *Coordinator) VoteToEnd(t models.Teacher) bool {
	c.mu.Lock()
	tr, ok := c.session.VoteToEnd(t)
	c.mu.Unlock()

	if ok {
		c.transitioned(tr)
	}
	return ok
}

func (c *Coordinator) ReportStudentDelta(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry.RecordStudentDelta(delta)
}

// ReportDoor records a door's report and applies its student delta.
func (c *Coordinator) ReportDoor(d models.Door) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry.RecordDoor(d)
	c.registry.RecordStudentDelta(d.AmountOfStudents)
}

// Join registers t without casting a vote so it counts toward quorum from
// now on. The stored record is returned; a known teacher is left unchanged.
func (c *Coordinator) Join(t models.Teacher) models.Teacher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.registry.RegisterOrGetTeacher(t.ID, t.Name)
}

// Snapshot returns a consistent view of the whole classroom.
func (c *Coordinator) Snapshot() models.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.session.Phase()
	return models.SessionSnapshot{
		Phase:       phase.String(),
		InSession:   phase == InSession,
		SessionID:   c.session.ID(),
		Students:    c.registry.StudentCount(),
		MinStudents: c.minStudents,
		Doors:       c.registry.DoorCount(),
		Teachers:    c.registry.Teachers(),
	}
}

func (c *Coordinator) transitioned(tr Transition) {
	slog.Info("class session transition",
		"direction", tr.Direction,
		"session_id", tr.SessionID,
		"votes", tr.Votes,
		"teachers", tr.Teachers,
		"students", tr.Students,
	)
	if c.onTransition != nil {
		c.onTransition(tr)
	}
}
