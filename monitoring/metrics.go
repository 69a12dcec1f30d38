package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	votesCast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "votes_cast_total",
			Help: "Total number of committed votes",
		},
	)

	voteRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_rejections_total",
			Help: "Total vote attempts rejected, by reason",
		},
		[]string{"reason"},
	)

	electionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "elections_created_total",
			Help: "Total elections created",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route pattern and status",
		},
		[]string{"pattern", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by route pattern",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"pattern"},
	)
)

// RecordVoteCast counts a committed vote.
func RecordVoteCast() {
	votesCast.Inc()
}

// RecordVoteRejected counts a rejected vote attempt. reason is one of
// the admission rejection kinds (not_eligible, not_found, out_of_window,
// already_voted, internal).
func RecordVoteRejected(reason string) {
	voteRejections.WithLabelValues(reason).Inc()
}

// RecordElectionCreated counts a created election.
func RecordElectionCreated() {
	electionsCreated.Inc()
}

// ObserveRequest records one handled HTTP request under its route
// pattern (not the raw path, to keep label cardinality bounded).
func ObserveRequest(pattern, status string, duration time.Duration) {
	httpRequests.WithLabelValues(pattern, status).Inc()
	httpDuration.WithLabelValues(pattern).Observe(duration.Seconds())
}
