// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the session journal: an append-only history of class
start and end transitions.

# Opening

Open connects, pings, and creates the schema in one step:

	journal, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer journal.Close()

Supported types are "sqlite" (modernc.org/sqlite, the default) and
"postgres" (github.com/lib/pq). The caller imports the driver.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for the
table and its indexes.

# Tables

  - session_event: one row per phase transition (session_id, direction,
    teachers, votes, students, occurred_at in unix milliseconds)

The journal is history only. Classroom state is never restored from it.
*/
package db
