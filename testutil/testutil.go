package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abimad123/E-Voting-System-sub001/auth"
	"github.com/abimad123/E-Voting-System-sub001/cliparse"
	"github.com/abimad123/E-Voting-System-sub001/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// Each test gets its own file under t.TempDir, so tests are isolated
// and need no external services. busy_timeout makes concurrent writers
// queue instead of failing, matching how the engine is exercised by
// the concurrency tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "evoting_test.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	conn, err := db.Open("sqlite", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3210,
		DatabaseType:  "sqlite",
		AuthTokenSalt: "test-auth-salt",
	}
}

// CreateTestUser inserts a user account and returns its id and a valid
// principal token for it.
func CreateTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, role, verificationStatus string) (userID, token string) {
	t.Helper()

	userID = uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO user_account (id, display_name, role, verification_status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, "Test User", role, verificationStatus, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID, auth.GenerateUserToken(userID, role, cfg.AuthTokenSalt)
}

// CreateTestElection inserts an election with the given time bounds
// (either may be nil) and returns its id.
func CreateTestElection(t *testing.T, conn *sql.DB, createdBy string, startTime, endTime *time.Time) string {
	t.Helper()

	electionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO election (id, title, description, start_time, end_time, is_public, is_archived, created_by, created_at)
		VALUES ($1, 'Test Election', 'A test election', $2, $3, TRUE, FALSE, $4, $5)
	`, electionID, startTime, endTime, createdBy, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return electionID
}

// AddTestCandidate adds a candidate to an election and returns its id
func AddTestCandidate(t *testing.T, conn *sql.DB, electionID, name string) string {
	t.Helper()

	candidateID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO candidate (id, election_id, name, votes_count)
		VALUES ($1, $2, $3, 0)
	`, candidateID, electionID, name)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// CastTestVote inserts a committed vote directly, including the tally
// increment, bypassing admission checks. For fixture setup only.
func CastTestVote(t *testing.T, conn *sql.DB, electionID, candidateID, voterID string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote (id, election_id, candidate_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, electionID, candidateID, voterID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	_, err = conn.Exec(`UPDATE candidate SET votes_count = votes_count + 1 WHERE id = $1`, candidateID)
	if err != nil {
		t.Fatalf("Failed to increment test tally: %v", err)
	}

	return voteID
}

// SetVotesCount overwrites a candidate's denormalized tally. For
// fixture setup in results tests.
func SetVotesCount(t *testing.T, conn *sql.DB, candidateID string, count int) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE candidate SET votes_count = $1 WHERE id = $2`, count, candidateID); err != nil {
		t.Fatalf("Failed to set votes count: %v", err)
	}
}

// TimePtr returns a pointer to its argument, for optional time bounds
func TimePtr(ts time.Time) *time.Time {
	return &ts
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountAuditEntries returns the number of audit entries with the given
// action tag.
func CountAuditEntries(t *testing.T, conn *sql.DB, action string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM audit_entry WHERE action = $1`, action).Scan(&count); err != nil {
		t.Fatalf("Failed to count audit entries: %v", err)
	}
	return count
}
