// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the session journal.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Kept to SQL that both SQLite and PostgreSQL accept. Timestamps are unix
// milliseconds.
const schema = `
CREATE TABLE IF NOT EXISTS session_event (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL,
    session_id TEXT NOT NULL,
    direction TEXT NOT NULL CHECK (direction IN ('start', 'end')),
    teachers INTEGER NOT NULL,
    votes INTEGER NOT NULL,
    students INTEGER NOT NULL,
    occurred_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_event_occurred_at ON session_event(occurred_at);
CREATE INDEX IF NOT EXISTS idx_session_event_session_id ON session_event(session_id);
`
