package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/abimad123/E-Voting-System-sub001/auth"
	"github.com/abimad123/E-Voting-System-sub001/cliparse"
	"github.com/abimad123/E-Voting-System-sub001/middleware"
	"github.com/abimad123/E-Voting-System-sub001/models"
	"github.com/abimad123/E-Voting-System-sub001/monitoring"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// CastVote handles POST /elections/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	p, err := auth.ParseUserToken(r.Header.Get("X-Auth-Token"), h.cfg.AuthTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	receipt, err := AdmitVote(h.db, p.UserID, electionID, req.CandidateID, time.Now().UTC())
	switch {
	case err == nil:
		monitoring.RecordVoteCast()
		slog.Info("vote cast", "election_id", electionID, "vote_id", receipt.VoteID)
		middleware.JSONResponse(w, http.StatusCreated, receipt)

	case errors.Is(err, ErrNotEligible):
		monitoring.RecordVoteRejected("not_eligible")
		middleware.ErrorResponse(w, http.StatusForbidden, "Voter is not approved to vote")

	case errors.Is(err, ErrElectionNotFound):
		monitoring.RecordVoteRejected("not_found")
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")

	case errors.Is(err, ErrCandidateNotFound):
		monitoring.RecordVoteRejected("not_found")
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")

	case errors.Is(err, ErrElectionNotStarted):
		monitoring.RecordVoteRejected("out_of_window")
		middleware.ErrorResponse(w, http.StatusConflict, "Election has not started yet")

	case errors.Is(err, ErrElectionEnded):
		monitoring.RecordVoteRejected("out_of_window")
		middleware.ErrorResponse(w, http.StatusConflict, "Election has already ended")

	case errors.Is(err, ErrAlreadyVoted):
		monitoring.RecordVoteRejected("already_voted")
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this election")

	default:
		monitoring.RecordVoteRejected("internal")
		slog.Error("failed to cast vote", "error", err, "election_id", electionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
	}
}

// GetVoteStatus handles GET /elections/{id}/vote-status
func (h *VotingHandler) GetVoteStatus(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	p, err := auth.ParseUserToken(r.Header.Get("X-Auth-Token"), h.cfg.AuthTokenSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return
	}

	if _, err := getElection(h.db, electionID); err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	} else if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	voted, err := HasVoted(h.db, p.UserID, electionID)
	if err != nil {
		slog.Error("failed to query vote status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{HasVoted: voted})
}
