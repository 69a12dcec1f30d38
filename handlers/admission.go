package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abimad123/E-Voting-System-sub001/audit"
	"github.com/abimad123/E-Voting-System-sub001/db"
	"github.com/abimad123/E-Voting-System-sub001/models"
	"github.com/abimad123/E-Voting-System-sub001/phase"
)

// Admission rejection kinds. Each maps to a distinct caller-facing
// outcome; see VotingHandler.CastVote for the HTTP mapping.
var (
	ErrNotEligible        = errors.New("voter is not approved")
	ErrElectionNotFound   = errors.New("election not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrElectionNotStarted = errors.New("election has not started")
	ErrElectionEnded      = errors.New("election has ended")
	ErrAlreadyVoted       = errors.New("voter already cast a ballot in this election")
)

// AdmitVote runs the full vote admission sequence for one ballot:
// eligibility, election existence, phase, candidate ownership, and
// duplicate checks, then a single transaction that inserts the vote,
// increments the candidate tally, and appends the VOTE_CAST audit
// entry. Either all three writes commit or none do.
//
// The duplicate pre-check only exists to reject the common case without
// opening a transaction. The authoritative enforcement is the store's
// UNIQUE (election_id, voter_id) constraint: when two ballots from the
// same voter race, the loser's insert fails and surfaces as
// ErrAlreadyVoted exactly like the pre-check path.
func AdmitVote(dbc *sql.DB, voterID, electionID, candidateID string, now time.Time) (models.VoteReceipt, error) {
	// 1. Voter must exist and be approved
	var verification string
	err := dbc.QueryRow(`
		SELECT verification_status FROM user_account WHERE id = $1
	`, voterID).Scan(&verification)
	if err == sql.ErrNoRows {
		return models.VoteReceipt{}, ErrNotEligible
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to query voter: %w", err)
	}
	if verification != models.VerificationApproved {
		return models.VoteReceipt{}, ErrNotEligible
	}

	// 2. Election must exist
	election, err := getElection(dbc, electionID)
	if err == sql.ErrNoRows {
		return models.VoteReceipt{}, ErrElectionNotFound
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to query election: %w", err)
	}

	// 3. Election must be in its voting window
	switch phase.Of(election, now) {
	case models.PhaseUpcoming:
		return models.VoteReceipt{}, ErrElectionNotStarted
	case models.PhaseCompleted:
		return models.VoteReceipt{}, ErrElectionEnded
	}

	// 4. Candidate must exist and belong to this election
	var candidateElection string
	err = dbc.QueryRow(`
		SELECT election_id FROM candidate WHERE id = $1
	`, candidateID).Scan(&candidateElection)
	if err == sql.ErrNoRows {
		return models.VoteReceipt{}, ErrCandidateNotFound
	}
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	if candidateElection != electionID {
		return models.VoteReceipt{}, ErrCandidateNotFound
	}

	// 5. Fast duplicate rejection before opening a transaction
	voted, err := HasVoted(dbc, voterID, electionID)
	if err != nil {
		return models.VoteReceipt{}, err
	}
	if voted {
		return models.VoteReceipt{}, ErrAlreadyVoted
	}

	// 6. Atomic admission: vote row, tally increment, audit append
	tx, err := dbc.Begin()
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	voteID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO vote (id, election_id, candidate_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, electionID, candidateID, voterID, now)
	if err != nil {
		if db.IsUniqueViolation(err) {
			// Lost the race against a concurrent ballot by the same voter
			return models.VoteReceipt{}, ErrAlreadyVoted
		}
		return models.VoteReceipt{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	// Atomic in-place increment; a read-modify-write here would lose
	// updates under concurrent votes for the same candidate.
	_, err = tx.Exec(`
		UPDATE candidate SET votes_count = votes_count + 1 WHERE id = $1
	`, candidateID)
	if err != nil {
		return models.VoteReceipt{}, fmt.Errorf("failed to increment tally: %w", err)
	}

	// Vote provenance is part of the integrity guarantee: the audit
	// entry commits with the vote or not at all.
	err = audit.Record(tx, &voterID, audit.ActionVoteCast, audit.VoteCastDetails{
		ElectionID:  electionID,
		CandidateID: candidateID,
	}, now)
	if err != nil {
		return models.VoteReceipt{}, err
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return models.VoteReceipt{}, ErrAlreadyVoted
		}
		return models.VoteReceipt{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	return models.VoteReceipt{
		VoteID:      voteID,
		ElectionID:  electionID,
		CandidateID: candidateID,
		CastAt:      now,
	}, nil
}

// HasVoted reports whether the voter already has a committed vote in
// the election. Read-only, no side effects.
func HasVoted(dbc *sql.DB, voterID, electionID string) (bool, error) {
	var exists bool
	err := dbc.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE election_id = $1 AND voter_id = $2
		)
	`, electionID, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query vote existence: %w", err)
	}
	return exists, nil
}

// getElection loads one election row. Returns sql.ErrNoRows untouched
// so callers can map it.
func getElection(dbc *sql.DB, id string) (models.Election, error) {
	var e models.Election
	err := dbc.QueryRow(`
		SELECT id, title, description, start_time, end_time,
		       is_public, is_archived, created_by, created_at
		FROM election
		WHERE id = $1
	`, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
		&e.IsPublic, &e.IsArchived, &e.CreatedBy, &e.CreatedAt,
	)
	return e, err
}
