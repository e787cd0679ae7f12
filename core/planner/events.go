package planner

import "time"

// Event is the interface satisfied by planner notifications published on
// the event bus.
type Event interface{ isEvent() }

// UnplacedEvent signals a batch that could not be scheduled inside its
// valid window.
type UnplacedEvent struct {
	Task   string
	Prep   string
	Volume int
}

func (UnplacedEvent) isEvent() {}

// PassEvent signals completion of one scheduling pass.
type PassEvent struct {
	Pass string
	Days int
}

func (PassEvent) isEvent() {}

// SummaryEvent signals completion of a full planning run.
type SummaryEvent struct {
	PlanID         string
	GeneratedAt    time.Time
	Days           int
	TotalVolume    int
	UnplacedVolume int
	MeanDayVolume  float64
	MaxDayVolume   float64
}

func (SummaryEvent) isEvent() {}
