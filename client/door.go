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

// Door reports random student arrivals and departures while the class is
// not in session
type Door struct {
	client *Client
	cfg    cliparse.ActorConfig
	rnd    *rand.Rand
	record models.Door
}

func NewDoor(c *Client, cfg cliparse.ActorConfig) *Door {
	return &Door{
		client: c,
		cfg:    cfg,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		record: models.Door{Name: cfg.Name},
	}
}

// Record returns the door as last sent to the server
func (d *Door) Record() models.Door {
	return d.record
}

func (d *Door) Run(ctx context.Context) error {
	slog.Info("door starting", "name", d.cfg.Name, "server", d.cfg.ServerURL)
	return run(ctx, "door", d.Step, d.interval, d.cfg.RetryDelay)
}

// Step performs one poll. While the class is in session the door stays
// closed and nothing is reported.
func (d *Door) Step(ctx context.Context) error {
	if d.record.ID == 0 {
		id, err := acquireID(ctx, d.client, d.cfg.RetryDelay, "door")
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}
		d.record.ID = id
		slog.Info("door identity issued", "id", id, "name", d.record.Name)
	}

	inSession, err := d.client.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if inSession {
		d.record.IsOpened = false
		d.record.IsClosed = true
		d.record.AmountOfStudents = 0
		slog.Debug("class in session, door closed", "id", d.record.ID)
		return nil
	}

	d.record.IsOpened = true
	d.record.IsClosed = false
	d.record.AmountOfStudents = d.cfg.MinDelta + d.rnd.IntN(d.cfg.MaxDelta-d.cfg.MinDelta+1)
	if err := d.client.Generate(ctx, d.record); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	slog.Info("students moved", "id", d.record.ID, "delta", d.record.AmountOfStudents)
	return nil
}

func (d *Door) interval() time.Duration {
	if d.cfg.PollInterval > 0 {
		return d.cfg.PollInterval
	}
	return time.Second + time.Duration(d.rnd.Int64N(int64(2*time.Second)))
}
