package metrics

import coremetrics "github.com/preplab/biosched/core/metrics"

// MultiSink fans planning events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlacements forwards placements to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlacements(placements []coremetrics.BatchPlacement) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlacements(placements); err != nil {
			return err
		}
	}
	return nil
}

// RecordUnplaced forwards dropped-batch events.
func (m *MultiSink) RecordUnplaced(ev coremetrics.UnplacedEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.UnplacedRecorder); ok {
			if err := rec.RecordUnplaced(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordPlanSummary forwards plan summaries.
func (m *MultiSink) RecordPlanSummary(sum coremetrics.PlanSummary) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SummaryRecorder); ok {
			if err := rec.RecordPlanSummary(sum); err != nil {
				return err
			}
		}
	}
	return nil
}
