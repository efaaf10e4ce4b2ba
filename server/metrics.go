package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of tourRequests.
const (
	resultOK          = "ok"
	resultBadRequest  = "bad_request"
	resultInvalidNode = "invalid_node"
	resultConflict    = "conflict"
	resultError       = "error"
)

var (
	tourRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourkit_tour_requests_total",
		Help: "Tour requests by result",
	}, []string{"result"})

	tourDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tourkit_tour_duration_seconds",
		Help:    "Time spent solving one tour request",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	})

	degreeViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourkit_degree_violations_total",
		Help: "Multigraph nodes that ended assembly with a degree other than 2",
	})
)
