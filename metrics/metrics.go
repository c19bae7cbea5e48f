// Package metrics holds the prometheus collectors recorded by missions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mission outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Collectors are registered on the default registry by promauto.
var (
	// MissionsTotal counts finished missions by strategy and outcome.
	MissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "terrainpath_missions_total",
			Help: "Total number of missions run",
		},
		[]string{"strategy", "outcome"},
	)

	// MissionDuration measures graph build plus search time of each attempt.
	MissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "terrainpath_mission_duration_seconds",
			Help:    "Duration of missions in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"strategy"},
	)

	// PathEnergy holds the energy of the most recent successful mission.
	PathEnergy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "terrainpath_path_energy",
			Help: "Total energy of the last path found",
		},
		[]string{"strategy"},
	)
)

// ObserveMission records one finished mission.
func ObserveMission(strategy, outcome string, seconds float64, energy int64) {
	MissionsTotal.WithLabelValues(strategy, outcome).Inc()
	MissionDuration.WithLabelValues(strategy).Observe(seconds)
	if outcome == OutcomeOK {
		PathEnergy.WithLabelValues(strategy).Set(float64(energy))
	}
}
