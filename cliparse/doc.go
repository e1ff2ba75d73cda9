// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the server and the two actor clients.

# Configuration

Settings are resolved in increasing precedence: .env file, environment
variables, CLI flags.

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Server Config

	-p          PORT            Server port (default: 5000)
	-m          MIN_STUDENTS    Students required to open start voting (default: 20)
	-t          DATABASE_TYPE   sqlite or postgres (default: sqlite)
	-d          DATABASE_URL    Journal database (default for sqlite: :memory:)
	--log-level LOG_LEVEL       debug, info, warn, error (default: info)

# Actor Config

ParseTeacherFlags and ParseDoorFlags share:

	-u  CLASSROOM_URL  Server base URL (default: http://127.0.0.1:5000)
	-n  NAME           Display name
	-i  POLL_INTERVAL  Time between polls
	-r  RETRY_DELAY    Wait after a transport failure (default: 2s)

Teachers add -v / VOTE_PROBABILITY (default 0.4). Doors add
--min-delta / MIN_DELTA and --max-delta / MAX_DELTA (default -6 and 9).
*/
package cliparse
