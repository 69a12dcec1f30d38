/*
Package main provides the entry point for the e-voting API server.

The server implements a single-winner, interval-bounded election
engine: voters cast at most one ballot per election, within the
election's time window, and only if their identity has been approved
by the external identity provider.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... AUTH_TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 3210 -t sqlite -d "file:evoting.db"

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - AUTH_TOKEN_SALT (-auth-salt): Secret for principal token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3210)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers plus the vote admission and tally logic
  - phase: pure election phase derivation from time bounds
  - audit: append-only audit log recording
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - monitoring: Prometheus metrics
  - models: domain and request/response types
  - auth: principal token validation
  - db: schema creation and driver selection
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
