package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abimad123/E-Voting-System-sub001/audit"
	"github.com/abimad123/E-Voting-System-sub001/auth"
	"github.com/abimad123/E-Voting-System-sub001/cliparse"
	"github.com/abimad123/E-Voting-System-sub001/middleware"
	"github.com/abimad123/E-Voting-System-sub001/models"
	"github.com/abimad123/E-Voting-System-sub001/monitoring"
)

type ElectionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg}
}

// requireAdmin resolves the caller principal and writes the error
// response itself when the caller is not an authenticated admin.
func requireAdmin(w http.ResponseWriter, r *http.Request, salt string) (auth.Principal, bool) {
	p, err := auth.ParseUserToken(r.Header.Get("X-Auth-Token"), salt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid auth token")
		return auth.Principal{}, false
	}
	if p.Role != models.RoleAdmin {
		middleware.ErrorResponse(w, http.StatusForbidden, "Admin role required")
		return auth.Principal{}, false
	}
	return p, true
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	p, ok := requireAdmin(w, r, h.cfg.AuthTokenSalt)
	if !ok {
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	// A window with the end before the start would never accept a vote;
	// reject it at creation instead of storing a dead election.
	if req.StartTime != nil && req.EndTime != nil && !req.StartTime.Before(*req.EndTime) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start_time must be before end_time")
		return
	}

	election := models.Election{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsPublic:    req.IsPublic,
		CreatedBy:   p.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := h.db.Exec(`
		INSERT INTO election (id, title, description, start_time, end_time, is_public, is_archived, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, election.ID, election.Title, election.Description, election.StartTime, election.EndTime,
		election.IsPublic, false, election.CreatedBy, election.CreatedAt)
	if err != nil {
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	monitoring.RecordElectionCreated()
	audit.RecordBestEffort(h.db, &p.UserID, audit.ActionElectionCreated, audit.ElectionDetails{
		ElectionID: election.ID,
		Title:      election.Title,
	}, election.CreatedAt)

	slog.Info("election created", "election_id", election.ID, "created_by", p.UserID)

	middleware.JSONResponse(w, http.StatusCreated, election)
}

// EndElection handles POST /elections/{id}/end
// Sets end_time to now. Idempotent: ending an already-ended election
// simply re-sets end_time to a later now and does not fail.
func (h *ElectionHandler) EndElection(w http.ResponseWriter, r *http.Request) {
	p, ok := requireAdmin(w, r, h.cfg.AuthTokenSalt)
	if !ok {
		return
	}

	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	election, err := getElection(h.db, electionID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(`UPDATE election SET end_time = $1 WHERE id = $2`, now, electionID)
	if err != nil {
		slog.Error("failed to end election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to end election")
		return
	}
	election.EndTime = &now

	audit.RecordBestEffort(h.db, &p.UserID, audit.ActionElectionEnded, audit.ElectionDetails{
		ElectionID: electionID,
	}, now)

	slog.Info("election ended", "election_id", electionID, "ended_by", p.UserID)

	middleware.JSONResponse(w, http.StatusOK, election)
}

// ArchiveElection handles POST /elections/{id}/archive
func (h *ElectionHandler) ArchiveElection(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

// UnarchiveElection handles POST /elections/{id}/unarchive
func (h *ElectionHandler) UnarchiveElection(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *ElectionHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	p, ok := requireAdmin(w, r, h.cfg.AuthTokenSalt)
	if !ok {
		return
	}

	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	election, err := getElection(h.db, electionID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to query election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	_, err = h.db.Exec(`UPDATE election SET is_archived = $1 WHERE id = $2`, archived, electionID)
	if err != nil {
		slog.Error("failed to update election archive flag", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update election")
		return
	}
	election.IsArchived = archived

	action := audit.ActionElectionArchived
	if !archived {
		action = audit.ActionElectionUnarchived
	}
	audit.RecordBestEffort(h.db, &p.UserID, action, audit.ElectionDetails{
		ElectionID: electionID,
	}, time.Now().UTC())

	slog.Info("election archive flag updated", "election_id", electionID, "archived", archived)

	middleware.JSONResponse(w, http.StatusOK, election)
}

// AddCandidate handles POST /elections/{id}/candidates
// Candidates may be added in any phase; admission only checks that the
// candidate belongs to the election being voted on.
func (h *ElectionHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	p, ok := requireAdmin(w, r, h.cfg.AuthTokenSalt)
	if !ok {
		return
	}

	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
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

	candidate := models.Candidate{
		ID:          uuid.NewString(),
		ElectionID:  electionID,
		Name:        req.Name,
		Party:       req.Party,
		Description: req.Description,
		IconRef:     req.IconRef,
	}

	_, err := h.db.Exec(`
		INSERT INTO candidate (id, election_id, name, party, description, icon_ref, votes_count)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
	`, candidate.ID, candidate.ElectionID, candidate.Name, candidate.Party, candidate.Description, candidate.IconRef)
	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}

	audit.RecordBestEffort(h.db, &p.UserID, audit.ActionCandidateAdded, audit.CandidateAddedDetails{
		ElectionID:  electionID,
		CandidateID: candidate.ID,
		Name:        candidate.Name,
	}, time.Now().UTC())

	slog.Info("candidate added", "election_id", electionID, "candidate_id", candidate.ID)

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

// ListElections handles GET /elections
// Archived elections are always excluded. Private elections are only
// listed for admin callers.
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	includePrivate := false
	if token := r.Header.Get("X-Auth-Token"); token != "" {
		if p, err := auth.ParseUserToken(token, h.cfg.AuthTokenSalt); err == nil && p.Role == models.RoleAdmin {
			includePrivate = true
		}
	}

	query := `
		SELECT id, title, description, start_time, end_time,
		       is_public, is_archived, created_by, created_at
		FROM election
		WHERE is_archived = FALSE
	`
	if !includePrivate {
		query += ` AND is_public = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	h.listElections(w, query)
}

// ListArchivedElections handles GET /elections/archived
func (h *ElectionHandler) ListArchivedElections(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r, h.cfg.AuthTokenSalt); !ok {
		return
	}

	h.listElections(w, `
		SELECT id, title, description, start_time, end_time,
		       is_public, is_archived, created_by, created_at
		FROM election
		WHERE is_archived = TRUE
		ORDER BY created_at DESC
	`)
}

func (h *ElectionHandler) listElections(w http.ResponseWriter, query string) {
	rows, err := h.db.Query(query)
	if err != nil {
		slog.Error("failed to query elections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	elections := []models.Election{}
	for rows.Next() {
		var e models.Election
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
			&e.IsPublic, &e.IsArchived, &e.CreatedBy, &e.CreatedAt,
		); err != nil {
			slog.Error("failed to scan election", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		elections = append(elections, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate elections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, elections)
}
