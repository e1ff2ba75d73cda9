// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/danielhkuo/classroom-quorum/cliparse"
	"github.com/danielhkuo/classroom-quorum/models"
)

// Teacher polls the classroom and votes to start or end the class
type Teacher struct {
	client *Client
	cfg    cliparse.ActorConfig
	rnd    *rand.Rand
	record models.Teacher
	joined bool
}

func NewTeacher(c *Client, cfg cliparse.ActorConfig) *Teacher {
	return &Teacher{
		client: c,
		cfg:    cfg,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		record: models.Teacher{Name: cfg.Name},
	}
}

// Record returns the teacher as last sent to the server
func (t *Teacher) Record() models.Teacher {
	return t.record
}

// Run polls until ctx is cancelled
func (t *Teacher) Run(ctx context.Context) error {
	slog.Info("teacher starting", "name", t.cfg.Name, "server", t.cfg.ServerURL, "interval", t.cfg.PollInterval)
	return run(ctx, "teacher", t.Step, func() time.Duration { return t.cfg.PollInterval }, t.cfg.RetryDelay)
}

// Step performs one poll: register if needed, then vote according to the
// current phase
func (t *Teacher) Step(ctx context.Context) error {
	if t.record.ID == 0 {
		id, err := acquireID(ctx, t.client, t.cfg.RetryDelay, "teacher")
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}
		t.record.ID = id
		slog.Info("teacher identity issued", "id", id, "name", t.record.Name)
	}
	if !t.joined {
		if _, err := t.client.Join(ctx, t.record); err != nil {
			return fmt.Errorf("join: %w", err)
		}
		t.joined = true
	}

	inSession, err := t.client.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	if !inSession {
		return t.considerStart(ctx)
	}
	return t.considerEnd(ctx)
}

func (t *Teacher) considerStart(ctx context.Context) error {
	t.record.VotedToEnd = false

	enough, err := t.client.EnoughStudents(ctx)
	if err != nil {
		return fmt.Errorf("enough students: %w", err)
	}
	if !enough {
		slog.Debug("waiting for students", "id", t.record.ID)
		return nil
	}
	if !t.decide() {
		slog.Debug("not voting to start this round", "id", t.record.ID)
		return nil
	}

	t.record.VotedToStart = true
	started, err := t.client.VoteStart(ctx, t.record)
	if err != nil {
		return fmt.Errorf("vote start: %w", err)
	}
	slog.Info("voted to start", "id", t.record.ID, "started", started)
	return nil
}

func (t *Teacher) considerEnd(ctx context.Context) error {
	t.record.VotedToStart = false

	if !t.decide() {
		slog.Debug("not voting to end this round", "id", t.record.ID)
		return nil
	}

	t.record.VotedToEnd = true
	ended, err := t.client.VoteEnd(ctx, t.record)
	if err != nil {
		return fmt.Errorf("vote end: %w", err)
	}
	slog.Info("voted to end", "id", t.record.ID, "ended", ended)
	return nil
}

func (t *Teacher) decide() bool {
	return t.rnd.Float64() < t.cfg.VoteProbability
}
