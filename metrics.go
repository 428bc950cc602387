package paperbloom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotWritesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "paperbloom_session",
			Name:      "snapshot_writes_total",
			Help:      "Committed local snapshot writes.",
		},
	)

	snapshotWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "paperbloom_session",
			Name:      "snapshot_write_failures_total",
			Help:      "Local snapshot writes that returned an error.",
		},
	)

	savesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paperbloom_session",
			Name:      "saves_total",
			Help:      "Remote save attempts.",
		},
		[]string{"entity"},
	)

	saveFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paperbloom_session",
			Name:      "save_failures_total",
			Help:      "Remote saves that ended in error.",
		},
		[]string{"entity"},
	)
)
