// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the classroom API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(coord, journal)

# Endpoints

Health:

	GET /health

Polled by teachers and doors:

	GET  /api/classroom/status         - Is the class in session
	GET  /api/classroom/getUniqueId    - Issue an identity
	GET  /api/classroom/enoughstudents - Is start voting open

Teachers:

	POST /api/classroom/join       - Register without voting
	POST /api/classroom/vote/start - Vote to start (alias: /start)
	POST /api/classroom/vote/end   - Vote to end (alias: /end)

Doors:

	POST /api/classroom/generate - Report a signed student delta

Inspection:

	GET /api/classroom/session - Consistent snapshot of the classroom
	GET /api/classroom/history - Journaled transitions, newest first

# Handler Initialization

	classroomHandler := handlers.NewClassroomHandler(coord)
	historyHandler := handlers.NewHistoryHandler(journal)

All classroom routes are wrapped with middleware.WithLogging.
*/
package router
