// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the classroom API.

# Handler Types

  - ClassroomHandler: status, identities, votes, and door reports, all
    delegated to a *classroom.Coordinator
  - HistoryHandler: the session journal

Handlers are created via constructor functions:

	classroomHandler := handlers.NewClassroomHandler(coord)
	historyHandler := handlers.NewHistoryHandler(journal)

# Input Validation

Vote, join, and report bodies are checked before the coordinator is
called. A missing or null body is a 400 ("Teacher data is required." /
"Door data is required."), as is malformed JSON or a teacher without an
issued identity. Votes in the wrong phase are not errors: they answer 200
with false.

# Voting Flow

	GET  /api/classroom/getUniqueId → UniqueID (identity for the record)
	POST /api/classroom/join        → Join
	GET  /api/classroom/enoughstudents → EnoughStudents
	POST /api/classroom/vote/start  → VoteStart (true if the class started)
	POST /api/classroom/vote/end    → VoteEnd (true if the class ended)

# History

GET /api/classroom/history lists journaled transitions with a humanized
age and, for end events, the session duration.
*/
package handlers
