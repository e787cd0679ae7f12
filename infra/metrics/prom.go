package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/preplab/biosched/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	placements *prometheus.CounterVec
	unplaced   *prometheus.CounterVec
	days       prometheus.Gauge
	volume     prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The metrics server is started separately with StartPromServer.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "biosched_batches_placed_total",
		Help: "Total number of preparation batches placed on the schedule",
	}, []string{"prep", "prep_type"})
	unplaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "biosched_batches_unplaced_total",
		Help: "Total number of preparation batches dropped for lack of an available day",
	}, []string{"prep"})
	days := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "biosched_plan_production_days",
		Help: "Number of distinct production days in the last plan",
	})
	volume := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "biosched_plan_total_volume",
		Help: "Total scheduled volume in the last plan",
	})

	if err := reg.Register(placements); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			placements = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(unplaced); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			unplaced = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(days); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			days = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(volume); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			volume = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{placements: placements, unplaced: unplaced, days: days, volume: volume}, nil
}

// RecordPlacements increments the placement counter per batch.
func (s *PromSink) RecordPlacements(placements []coremetrics.BatchPlacement) error {
	for _, p := range placements {
		s.placements.WithLabelValues(p.Prep, p.Type.String()).Inc()
	}
	return nil
}

// RecordUnplaced increments the dropped-batch counter.
func (s *PromSink) RecordUnplaced(ev coremetrics.UnplacedEvent) error {
	s.unplaced.WithLabelValues(ev.Prep).Inc()
	return nil
}

// RecordPlanSummary updates the last-plan gauges.
func (s *PromSink) RecordPlanSummary(sum coremetrics.PlanSummary) error {
	s.days.Set(float64(sum.Days))
	s.volume.Set(float64(sum.TotalVolume))
	return nil
}
