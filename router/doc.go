/*
Package router defines HTTP routes for the e-voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

Every application route is wrapped in logging and per-pattern metrics
middleware.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Election lifecycle (admin, requires admin X-Auth-Token):

	POST /elections                   - Create election
	POST /elections/{id}/end          - End election now
	POST /elections/{id}/archive      - Hide from listings
	POST /elections/{id}/unarchive    - Restore to listings
	POST /elections/{id}/candidates   - Add candidate
	GET  /elections/archived          - List archived elections

Listings and results (public):

	GET /elections                    - List non-archived elections
	GET /elections/{id}               - Election detail with candidates
	GET /elections/{id}/results       - Ranked results and winner set

Voting (requires any valid X-Auth-Token):

	POST /elections/{id}/votes        - Cast vote
	GET  /elections/{id}/vote-status  - Whether the caller voted

# Handler Initialization

The router creates handler instances with dependency injection:

	electionHandler := handlers.NewElectionHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
