// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classroom implements the session coordinator: the single authority
that decides, by teacher quorum, whether the class is in session.

# Components

  - Issuer: monotonically increasing identities shared by teachers and doors
  - Registry: registered teachers with their vote flags, known doors, and
    the aggregate student count
  - HasQuorum / CanVotingStart: the strict-majority rule and the arrival gate
  - Session: the two-phase state machine (NotInSession ⇄ InSession)
  - Coordinator: the concurrency-safe facade used by the HTTP layer

# Usage

Construct exactly one Coordinator per classroom and hand it to the router:

	coord := classroom.New(classroom.Options{MinStudents: 20})
	mux := router.NewRouter(coord, journal, cfg)

# Voting Rules

Quorum is a strict majority of all registered teachers; an exact half does
not count, and zero teachers never reach quorum. A vote returns true only
when it caused the phase change. Votes for the wrong phase return false and
change nothing.

On every transition all vote flags are cleared in the same step. Starting
the class also resets the student count to zero; ending it does not.

# Transitions

Options.OnTransition receives every phase change after the lock is
released, so observers may do I/O:

	coord := classroom.New(classroom.Options{
		OnTransition: func(tr classroom.Transition) {
			journal.Record(context.Background(), tr)
		},
	})
*/
package classroom
