package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimad123/E-Voting-System-sub001/models"
	"github.com/abimad123/E-Voting-System-sub001/testutil"
)

func TestComputeResults_NoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminID, _ := testutil.CreateTestUser(t, conn, cfg, models.RoleAdmin, models.VerificationApproved)
	electionID := testutil.CreateTestElection(t, conn, adminID, nil, nil)
	testutil.AddTestCandidate(t, conn, electionID, "Carol")
	testutil.AddTestCandidate(t, conn, electionID, "Alice")

	results, err := ComputeResults(conn, electionID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 0, results.TotalVotes)
	assert.Empty(t, results.Winners, "no winner is declared without a single vote")
	assert.Len(t, results.Candidates, 2)
	// Ties on zero fall back to name order
	assert.Equal(t, "Alice", results.Candidates[0].Name)
	assert.Equal(t, "Carol", results.Candidates[1].Name)
}

func TestComputeResults_NoCandidates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminID, _ := testutil.CreateTestUser(t, conn, cfg, models.RoleAdmin, models.VerificationApproved)
	electionID := testutil.CreateTestElection(t, conn, adminID, nil, nil)

	results, err := ComputeResults(conn, electionID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 0, results.TotalVotes)
	assert.Empty(t, results.Candidates)
	assert.Empty(t, results.Winners)
}

func TestComputeResults_SingleWinner(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminID, _ := testutil.CreateTestUser(t, conn, cfg, models.RoleAdmin, models.VerificationApproved)
	electionID := testutil.CreateTestElection(t, conn, adminID, nil, nil)
	alice := testutil.AddTestCandidate(t, conn, electionID, "Alice")
	bob := testutil.AddTestCandidate(t, conn, electionID, "Bob")
	testutil.SetVotesCount(t, conn, alice, 3)
	testutil.SetVotesCount(t, conn, bob, 1)

	results, err := ComputeResults(conn, electionID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 4, results.TotalVotes)
	assert.Equal(t, []string{alice}, results.Winners)
	require.Len(t, results.Candidates, 2)
	assert.Equal(t, alice, results.Candidates[0].ID)
	assert.Equal(t, 3, results.Candidates[0].VotesCount)
}

func TestComputeResults_TieSurfacesAllLeaders(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminID, _ := testutil.CreateTestUser(t, conn, cfg, models.RoleAdmin, models.VerificationApproved)
	electionID := testutil.CreateTestElection(t, conn, adminID, nil, nil)
	alice := testutil.AddTestCandidate(t, conn, electionID, "Alice")
	bob := testutil.AddTestCandidate(t, conn, electionID, "Bob")
	carol := testutil.AddTestCandidate(t, conn, electionID, "Carol")
	testutil.SetVotesCount(t, conn, alice, 5)
	testutil.SetVotesCount(t, conn, bob, 5)
	testutil.SetVotesCount(t, conn, carol, 3)

	results, err := ComputeResults(conn, electionID, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 13, results.TotalVotes)
	assert.ElementsMatch(t, []string{alice, bob}, results.Winners)
	// Ordering: count descending, then name ascending
	require.Len(t, results.Candidates, 3)
	assert.Equal(t, alice, results.Candidates[0].ID)
	assert.Equal(t, bob, results.Candidates[1].ID)
	assert.Equal(t, carol, results.Candidates[2].ID)
}

func TestComputeResults_CompletedElection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	now := time.Now().UTC()

	adminID, _ := testutil.CreateTestUser(t, conn, cfg, models.RoleAdmin, models.VerificationApproved)
	electionID := testutil.CreateTestElection(t, conn, adminID,
		testutil.TimePtr(now.Add(-2*time.Hour)), testutil.TimePtr(now.Add(-time.Hour)))
	alice := testutil.AddTestCandidate(t, conn, electionID, "Alice")
	testutil.SetVotesCount(t, conn, alice, 2)

	// Results stay fully available after the window closes
	results, err := ComputeResults(conn, electionID, now)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseCompleted, results.Phase)
	assert.Equal(t, 2, results.TotalVotes)
	assert.Equal(t, []string{alice}, results.Winners)
}

func TestComputeResults_ElectionNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := ComputeResults(conn, uuid.NewString(), time.Now().UTC())
	assert.ErrorIs(t, err, ErrElectionNotFound)
}
