package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	lifecycleMoves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtd_lifecycle_moves_total",
			Help: "Task status moves made by the lifecycle scans",
		},
		[]string{"from", "to"},
	)
	suggestionRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gtd_suggestion_requests_total",
			Help: "Total suggestion list computations",
		},
	)
)

func init() {
	prometheus.MustRegister(lifecycleMoves)
	prometheus.MustRegister(suggestionRequests)
}
