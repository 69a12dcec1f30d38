package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.Error(t, err)
}

func TestOpen_Sqlite(t *testing.T) {
	conn, err := Open("sqlite", "file:"+t.TempDir()+"/test.db")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.Ping())
	require.NoError(t, CreateSchema(conn))
	// Idempotent
	require.NoError(t, CreateSchema(conn))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "pq unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "pq other constraint",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "wrapped pq unique violation",
			err:  fmt.Errorf("failed to insert vote: %w", &pq.Error{Code: "23505"}),
			want: true,
		},
		{
			name: "sqlite unique violation",
			err:  errors.New("constraint failed: UNIQUE constraint failed: vote.election_id, vote.voter_id (2067)"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestSchema_VoteUniqueness(t *testing.T) {
	conn, err := Open("sqlite", "file:"+t.TempDir()+"/unique.db")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(conn))

	_, err = conn.Exec(`INSERT INTO user_account (id, display_name, role, verification_status) VALUES ('u1', 'U1', 'voter', 'approved')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO election (id, title, created_by) VALUES ('e1', 'E1', 'u1')`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO candidate (id, election_id, name) VALUES ('c1', 'e1', 'C1')`)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO vote (id, election_id, candidate_id, voter_id) VALUES ('v1', 'e1', 'c1', 'u1')`)
	require.NoError(t, err)

	// Second ballot by the same voter in the same election must be
	// rejected by the store itself.
	_, err = conn.Exec(`INSERT INTO vote (id, election_id, candidate_id, voter_id) VALUES ('v2', 'e1', 'c1', 'u1')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
