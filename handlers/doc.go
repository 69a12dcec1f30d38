/*
Package handlers contains HTTP request handlers and the core voting
engine operations.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ElectionHandler: Election lifecycle (create, end, archive, candidates, listings)
  - VotingHandler: Vote casting and vote status
  - ResultsHandler: Election detail and results retrieval

Handlers are created via constructor functions that accept *sql.DB and Config:

	electionHandler := handlers.NewElectionHandler(db, cfg)

# Vote Admission

The admission sequence is implemented in admission.go:

	receipt, err := AdmitVote(db, voterID, electionID, candidateID, time.Now().UTC())

Checks run in a fixed order, each with its own rejection: voter
approval (ErrNotEligible), election existence (ErrElectionNotFound),
voting window (ErrElectionNotStarted / ErrElectionEnded), candidate
ownership (ErrCandidateNotFound), and duplicate ballots
(ErrAlreadyVoted). Admission itself is a single transaction covering
the vote insert, the candidate tally increment, and the VOTE_CAST
audit entry; the store's unique constraint on (election_id, voter_id)
settles concurrent duplicates.

# Results

Tally computation is implemented in tally.go:

	results, err := ComputeResults(db, electionID, time.Now().UTC())

Candidates are ranked by vote count descending with name as the tie
break; the winner set contains every candidate at the maximum count,
and is empty when no votes were cast.

# Auth

Admin operations require an admin-role principal token in the
X-Auth-Token header. Voting operations require any valid principal
token; eligibility is decided by the stored verification status, not
the token.
*/
package handlers
