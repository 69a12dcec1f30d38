package audit

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimad123/E-Voting-System-sub001/db"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file:"+t.TempDir()+"/audit_test.db")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn))
	return conn
}

func TestRecord(t *testing.T) {
	conn := setupDB(t)
	now := time.Now().UTC()

	actorID := "admin-1"
	err := Record(conn, &actorID, ActionElectionCreated, ElectionDetails{
		ElectionID: "e1",
		Title:      "Board Election",
	}, now)
	require.NoError(t, err)

	var actor, action, details string
	err = conn.QueryRow(`SELECT actor_id, action, details FROM audit_entry`).Scan(&actor, &action, &details)
	require.NoError(t, err)

	assert.Equal(t, "admin-1", actor)
	assert.Equal(t, ActionElectionCreated, action)
	assert.JSONEq(t, `{"election_id":"e1","title":"Board Election"}`, details)
}

func TestRecord_NilActor(t *testing.T) {
	conn := setupDB(t)

	err := Record(conn, nil, ActionElectionEnded, ElectionDetails{ElectionID: "e1"}, time.Now().UTC())
	require.NoError(t, err)

	var actor sql.NullString
	err = conn.QueryRow(`SELECT actor_id FROM audit_entry`).Scan(&actor)
	require.NoError(t, err)
	assert.False(t, actor.Valid)
}

func TestRecord_InsideTransaction(t *testing.T) {
	conn := setupDB(t)

	// An entry written inside a rolled-back transaction must not survive.
	tx, err := conn.Begin()
	require.NoError(t, err)

	require.NoError(t, Record(tx, nil, ActionVoteCast, VoteCastDetails{ElectionID: "e1", CandidateID: "c1"}, time.Now().UTC()))
	require.NoError(t, tx.Rollback())

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM audit_entry`).Scan(&count))
	assert.Equal(t, 0, count)
}

type failingExecer struct{}

func (failingExecer) Exec(query string, args ...any) (sql.Result, error) {
	return nil, errors.New("store unreachable")
}

func TestRecordBestEffort_SwallowsFailure(t *testing.T) {
	// Must not panic or propagate; the primary action goes on.
	RecordBestEffort(failingExecer{}, nil, ActionElectionArchived, ElectionDetails{ElectionID: "e1"}, time.Now().UTC())
}
