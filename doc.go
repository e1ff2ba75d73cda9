// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the classroom-quorum API server.

The server coordinates a simulated classroom. Doors report students
entering and leaving; once enough students have arrived, teachers vote,
and a strict majority of registered teachers starts the class. The same
majority ends it.

# Starting the Server

With no configuration the server listens on 5000 and journals sessions
to an in-memory SQLite database:

	go run .

Or with flags:

	go run . -p 5000 -m 20 -t postgres -d "postgres://..."

Variables in a .env file in the working directory are loaded first.

# Configuration

  - PORT (-p): Server port (default: 5000)
  - MIN_STUDENTS (-m): Students required before start voting opens (default: 20)
  - DATABASE_TYPE (-t): Journal database, sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Journal DSN, required for postgres (default: :memory:)
  - LOG_LEVEL (--log-level): debug, info, warn, or error (default: info)

# Actors

cmd/teacher and cmd/door run the simulated participants against a
server. See package client.

# Architecture

  - classroom: Identities, registry, quorum, and the session state machine
  - handlers: HTTP request handlers (classroom, history)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Session journal
  - cliparse: Configuration parsing
  - client: API client and polling actors

See package documentation for each component.
*/
package main
