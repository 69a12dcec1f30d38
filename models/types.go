package models

import "time"

// Election phase constants
const (
	PhaseUpcoming  = "upcoming"
	PhaseActive    = "active"
	PhaseCompleted = "completed"
)

// Principal role constants
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// Voter verification statuses, written by the external identity provider
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Request types

type CreateElectionRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	IsPublic    bool       `json:"is_public"`
}

type AddCandidateRequest struct {
	Name        string `json:"name"`
	Party       string `json:"party,omitempty"`
	Description string `json:"description,omitempty"`
	IconRef     string `json:"icon_ref,omitempty"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type VoteReceipt struct {
	VoteID      string    `json:"vote_id"`
	ElectionID  string    `json:"election_id"`
	CandidateID string    `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

type VoteStatusResponse struct {
	HasVoted bool `json:"has_voted"`
}

// Domain types

type UserAccount struct {
	ID                 string    `json:"id"`
	DisplayName        string    `json:"display_name"`
	Role               string    `json:"role"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type Election struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	IsPublic    bool       `json:"is_public"`
	IsArchived  bool       `json:"is_archived"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Candidate struct {
	ID          string `json:"id"`
	ElectionID  string `json:"election_id"`
	Name        string `json:"name"`
	Party       string `json:"party,omitempty"`
	Description string `json:"description,omitempty"`
	IconRef     string `json:"icon_ref,omitempty"`
	VotesCount  int    `json:"votes_count"`
}

type Vote struct {
	ID          string    `json:"id"`
	ElectionID  string    `json:"election_id"`
	CandidateID string    `json:"candidate_id"`
	VoterID     string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`
}

type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   *string   `json:"actor_id,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type ElectionWithCandidates struct {
	Election   Election    `json:"election"`
	Phase      string      `json:"phase"`
	Candidates []Candidate `json:"candidates"`
}

type ElectionResults struct {
	Election   Election    `json:"election"`
	Phase      string      `json:"phase"`
	Candidates []Candidate `json:"candidates"`
	TotalVotes int         `json:"total_votes"`
	Winners    []string    `json:"winners"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
