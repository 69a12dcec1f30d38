package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Action tags. One details schema per tag, see the Details types below.
const (
	ActionVoteCast           = "VOTE_CAST"
	ActionElectionCreated    = "ELECTION_CREATED"
	ActionElectionEnded      = "ELECTION_ENDED"
	ActionElectionArchived   = "ELECTION_ARCHIVED"
	ActionElectionUnarchived = "ELECTION_UNARCHIVED"
	ActionCandidateAdded     = "CANDIDATE_ADDED"
)

// Execer is the write surface Record needs. Both *sql.DB and *sql.Tx
// satisfy it, so a vote's audit append can run inside the same
// transaction as the vote insert and tally increment.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// VoteCastDetails accompanies VOTE_CAST.
type VoteCastDetails struct {
	ElectionID  string `json:"election_id"`
	CandidateID string `json:"candidate_id"`
}

// ElectionDetails accompanies the ELECTION_* lifecycle tags.
type ElectionDetails struct {
	ElectionID string `json:"election_id"`
	Title      string `json:"title,omitempty"`
}

// CandidateAddedDetails accompanies CANDIDATE_ADDED.
type CandidateAddedDetails struct {
	ElectionID  string `json:"election_id"`
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
}

// Record appends one audit entry. actorID may be nil for system or
// anonymous actions. Entries are never updated or deleted.
func Record(ex Execer, actorID *string, action string, details any, now time.Time) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	_, err = ex.Exec(`
		INSERT INTO audit_entry (id, actor_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), actorID, action, string(payload), now)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// RecordBestEffort logs and swallows append failures. Lifecycle actions
// must never be blocked by a failed audit write; only vote casting
// demands the append succeed, and that path uses Record inside the vote
// transaction instead.
func RecordBestEffort(ex Execer, actorID *string, action string, details any, now time.Time) {
	if err := Record(ex, actorID, action, details, now); err != nil {
		slog.Error("failed to record audit entry", "action", action, "error", err)
	}
}
