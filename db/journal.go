// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/classroom-quorum/classroom"
	"github.com/danielhkuo/classroom-quorum/models"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// History page size limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrUnknownType = errors.New("unknown database type")

// Journal is an append-only log of session transitions. It is never read
// back into the coordinator.
type Journal struct {
	db     *sql.DB
	dbType string
}

// Open connects to the database, verifies the connection, and creates the
// schema. SQLite is limited to one connection so an in-memory database is
// shared by every query.
func Open(dbType, url string) (*Journal, error) {
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewJournal(conn, dbType), nil
}

// NewJournal wraps an existing connection whose schema is already in place.
func NewJournal(conn *sql.DB, dbType string) *Journal {
	return &Journal{db: conn, dbType: dbType}
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends tr and returns the stored event.
func (j *Journal) Record(ctx context.Context, tr classroom.Transition) (models.SessionEvent, error) {
	ev := models.SessionEvent{
		ID:         uuid.NewString(),
		Seq:        tr.Seq,
		SessionID:  tr.SessionID,
		Direction:  tr.Direction,
		Teachers:   tr.Teachers,
		Votes:      tr.Votes,
		Students:   tr.Students,
		OccurredAt: tr.At.UTC().Truncate(time.Millisecond),
	}

	_, err := j.db.ExecContext(ctx, j.rebind(`
		INSERT INTO session_event (id, seq, session_id, direction, teachers, votes, students, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), ev.ID, ev.Seq, ev.SessionID, ev.Direction, ev.Teachers, ev.Votes, ev.Students, ev.OccurredAt.UnixMilli())
	if err != nil {
		return models.SessionEvent{}, fmt.Errorf("failed to insert session event: %w", err)
	}

	return ev, nil
}

// List returns up to limit events, newest first.
func (j *Journal) List(ctx context.Context, limit int) ([]models.SessionEvent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := j.db.QueryContext(ctx, j.rebind(`
		SELECT id, seq, session_id, direction, teachers, votes, students, occurred_at
		FROM session_event
		ORDER BY occurred_at DESC, seq DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query session events: %w", err)
	}
	defer rows.Close()

	events := []models.SessionEvent{}
	for rows.Next() {
		var ev models.SessionEvent
		var millis int64
		if err := rows.Scan(&ev.ID, &ev.Seq, &ev.SessionID, &ev.Direction, &ev.Teachers, &ev.Votes, &ev.Students, &millis); err != nil {
			return nil, fmt.Errorf("failed to scan session event: %w", err)
		}
		ev.OccurredAt = time.UnixMilli(millis).UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session events: %w", err)
	}

	return events, nil
}

// StartOf returns the start event of the given session.
func (j *Journal) StartOf(ctx context.Context, sessionID string) (models.SessionEvent, error) {
	var ev models.SessionEvent
	var millis int64
	err := j.db.QueryRowContext(ctx, j.rebind(`
		SELECT id, seq, session_id, direction, teachers, votes, students, occurred_at
		FROM session_event
		WHERE session_id = ? AND direction = ?
	`), sessionID, models.DirectionStart).Scan(
		&ev.ID, &ev.Seq, &ev.SessionID, &ev.Direction, &ev.Teachers, &ev.Votes, &ev.Students, &millis,
	)
	if err != nil {
		return models.SessionEvent{}, err
	}
	ev.OccurredAt = time.UnixMilli(millis).UTC()
	return ev, nil
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (j *Journal) rebind(query string) string {
	if j.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
