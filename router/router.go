package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abimad123/E-Voting-System-sub001/cliparse"
	"github.com/abimad123/E-Voting-System-sub001/handlers"
	"github.com/abimad123/E-Voting-System-sub001/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Election lifecycle (admin operations)
	handle("POST /elections", electionHandler.CreateElection)
	handle("POST /elections/{id}/end", electionHandler.EndElection)
	handle("POST /elections/{id}/archive", electionHandler.ArchiveElection)
	handle("POST /elections/{id}/unarchive", electionHandler.UnarchiveElection)
	handle("POST /elections/{id}/candidates", electionHandler.AddCandidate)
	handle("GET /elections/archived", electionHandler.ListArchivedElections)

	// Listings and results (public)
	handle("GET /elections", electionHandler.ListElections)
	handle("GET /elections/{id}", resultsHandler.GetElection)
	handle("GET /elections/{id}/results", resultsHandler.GetResults)

	// Voting (voter principal)
	handle("POST /elections/{id}/votes", votingHandler.CastVote)
	handle("GET /elections/{id}/vote-status", votingHandler.GetVoteStatus)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("e-voting API v1"))
	})

	return mux
}
