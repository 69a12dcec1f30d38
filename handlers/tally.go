package handlers

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/abimad123/E-Voting-System-sub001/models"
	"github.com/abimad123/E-Voting-System-sub001/phase"
)

// ComputeResults produces the ranked tally for an election: candidates
// ordered by votes descending (ties broken by name ascending), the
// total vote count, and the winner set.
//
// Winners are all candidates sharing the maximum vote count - a tie is
// surfaced, never broken arbitrarily. An election with zero cast votes
// has no winner even though every candidate trivially ties at zero.
//
// Reads are not linearized with concurrent writes; a results query
// during an active election may observe a slightly stale snapshot.
// Counts only stop moving once the election is completed.
func ComputeResults(dbc *sql.DB, electionID string, now time.Time) (models.ElectionResults, error) {
	election, err := getElection(dbc, electionID)
	if err == sql.ErrNoRows {
		return models.ElectionResults{}, ErrElectionNotFound
	}
	if err != nil {
		return models.ElectionResults{}, fmt.Errorf("failed to query election: %w", err)
	}

	rows, err := dbc.Query(`
		SELECT id, election_id, name, party, description, icon_ref, votes_count
		FROM candidate
		WHERE election_id = $1
		ORDER BY votes_count DESC, name ASC
	`, electionID)
	if err != nil {
		return models.ElectionResults{}, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	totalVotes := 0
	maxVotes := 0
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Party, &c.Description, &c.IconRef, &c.VotesCount); err != nil {
			return models.ElectionResults{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		totalVotes += c.VotesCount
		if c.VotesCount > maxVotes {
			maxVotes = c.VotesCount
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return models.ElectionResults{}, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	winners := []string{}
	if maxVotes > 0 {
		for _, c := range candidates {
			if c.VotesCount == maxVotes {
				winners = append(winners, c.ID)
			}
		}
	}

	return models.ElectionResults{
		Election:   election,
		Phase:      phase.Of(election, now),
		Candidates: candidates,
		TotalVotes: totalVotes,
		Winners:    winners,
	}, nil
}
