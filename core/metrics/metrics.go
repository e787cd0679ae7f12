package metrics

import (
	"time"

	"github.com/preplab/biosched/core/model"
)

// BatchPlacement represents one batch landing on a production day.
type BatchPlacement struct {
	PlanID string
	Prep   string
	Type   model.PrepType
	Volume int
	Day    time.Time
}

// Sink records batch placements for observability purposes.
type Sink interface {
	RecordPlacements(placements []BatchPlacement) error
}

// UnplacedEvent captures a batch dropped for lack of an available day.
type UnplacedEvent struct {
	PlanID string
	Task   string
	Prep   string
	Volume int
	Time   time.Time
}

// UnplacedRecorder records dropped batches.
type UnplacedRecorder interface {
	RecordUnplaced(ev UnplacedEvent) error
}

// PlanSummary is a snapshot of a completed planning run.
type PlanSummary struct {
	PlanID         string
	GeneratedAt    time.Time
	Days           int
	TotalVolume    int
	UnplacedVolume int
	MeanDayVolume  float64
	MaxDayVolume   float64
}

// SummaryRecorder records plan summaries.
type SummaryRecorder interface {
	RecordPlanSummary(s PlanSummary) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlacements([]BatchPlacement) error { return nil }
func (NopSink) RecordUnplaced(UnplacedEvent) error      { return nil }
func (NopSink) RecordPlanSummary(PlanSummary) error     { return nil }
