// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the participant, response, and journal types shared
by the server and the actor clients.

# Participant Types

Records exchanged with the classroom API:

  - Teacher: teacherId, name, hasVotedToStart, hasVotedToEnd
  - Door: doorId, name, amountOfStudents (signed delta), isOpened, isClosed

A Teacher with ID 0 has not yet been issued an identity.

# Response Types

  - SessionSnapshot: phase, student count, registered teachers
  - HistoryEntry: a SessionEvent plus human-readable age and duration
  - ErrorResponse: error, message

# Constants

Phases:

	PhaseNotInSession = "not_in_session"
	PhaseInSession    = "in_session"

Transition directions:

	DirectionStart = "start"
	DirectionEnd   = "end"
*/
package models
