package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "life_engine_steps_total",
		Help: "Total number of generations computed",
	})

	stepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "life_engine_step_duration_seconds",
		Help:    "Duration of a single generation step",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	backendSwitchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "life_engine_backend_switches_total",
		Help: "Storage backend switches by target backend",
	}, []string{"to"})

	compactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "life_engine_compactions_total",
		Help: "Dense board compaction passes",
	})

	populationGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "life_engine_population",
		Help: "Live cells after the most recent step",
	})

	densityGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "life_engine_density",
		Help: "Population over scanned area after the most recent step",
	})

	slotsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "life_engine_allocated_slots",
		Help: "Cells allocated by the active storage backend",
	})
)
