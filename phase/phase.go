package phase

import (
	"time"

	"github.com/abimad123/E-Voting-System-sub001/models"
)

// Of classifies an election's temporal phase at the given instant.
//
// An election is completed once now is strictly past its end time, and
// upcoming while now is strictly before its start time. Everything else,
// including elections with no bounds at all, is active. Completed is
// checked first so that an election with inverted bounds (end before
// start) resolves to completed rather than upcoming and can never
// accept votes.
func Of(e models.Election, now time.Time) string {
	if e.EndTime != nil && now.After(*e.EndTime) {
		return models.PhaseCompleted
	}
	if e.StartTime != nil && now.Before(*e.StartTime) {
		return models.PhaseUpcoming
	}
	return models.PhaseActive
}
