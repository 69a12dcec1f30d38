package phase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abimad123/E-Voting-System-sub001/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestOf(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startTime *time.Time
		endTime   *time.Time
		want      string
	}{
		{
			name: "no bounds is active",
			want: models.PhaseActive,
		},
		{
			name:      "before start is upcoming",
			startTime: timePtr(now.Add(time.Hour)),
			want:      models.PhaseUpcoming,
		},
		{
			name:    "after end is completed",
			endTime: timePtr(now.Add(-time.Hour)),
			want:    models.PhaseCompleted,
		},
		{
			name:      "inside window is active",
			startTime: timePtr(now.Add(-time.Hour)),
			endTime:   timePtr(now.Add(time.Hour)),
			want:      models.PhaseActive,
		},
		{
			name:      "exactly at start is active",
			startTime: timePtr(now),
			endTime:   timePtr(now.Add(time.Hour)),
			want:      models.PhaseActive,
		},
		{
			name:      "exactly at end is active",
			startTime: timePtr(now.Add(-time.Hour)),
			endTime:   timePtr(now),
			want:      models.PhaseActive,
		},
		{
			name:      "only start bound in the past is active",
			startTime: timePtr(now.Add(-time.Hour)),
			want:      models.PhaseActive,
		},
		{
			name:    "only end bound in the future is active",
			endTime: timePtr(now.Add(time.Hour)),
			want:    models.PhaseActive,
		},
		{
			name:      "inverted bounds resolve to completed",
			startTime: timePtr(now.Add(time.Hour)),
			endTime:   timePtr(now.Add(-time.Hour)),
			want:      models.PhaseCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Election{
				ID:        "election-1",
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
			}
			assert.Equal(t, tt.want, Of(e, now))
		})
	}
}

func TestOf_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	e := models.Election{
		StartTime: timePtr(now.Add(-time.Minute)),
		EndTime:   timePtr(now.Add(time.Minute)),
	}

	// Same inputs, same answer - the resolver holds no state.
	for i := 0; i < 3; i++ {
		assert.Equal(t, models.PhaseActive, Of(e, now))
	}
}
