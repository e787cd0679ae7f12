package scenarios

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/preplab/biosched/core/metrics"
	"github.com/preplab/biosched/core/planner"
	"github.com/preplab/biosched/infra/logger"
	"github.com/preplab/biosched/infra/metrics"
)

func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sinkIf, err := metrics.NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}
	sink, ok := sinkIf.(*metrics.PromSink)
	if !ok {
		t.Fatalf("expected *metrics.PromSink, got %T", sinkIf)
	}

	p, err := planner.New(planner.Config{}, logger.NopLogger{})
	if err != nil {
		t.Fatalf("planner: %v", err)
	}

	in, err := sc.ToInput()
	if err != nil {
		t.Fatalf("scenario input: %v", err)
	}

	plan, err := p.Plan(in)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	placements := make([]coremetrics.BatchPlacement, 0)
	for _, day := range plan.Schedule.Days() {
		for _, b := range plan.Schedule.On(day) {
			placements = append(placements, coremetrics.BatchPlacement{
				PlanID: plan.ID,
				Prep:   b.Prep,
				Type:   in.Preps[b.Prep].Type,
				Volume: b.Volume,
				Day:    day,
			})
		}
	}
	if err := sink.RecordPlacements(placements); err != nil {
		t.Fatalf("record placements: %v", err)
	}

	if got := plan.Schedule.Len(); got != sc.Expected.Days {
		t.Errorf("scenario %s expected %d days, got %d", sc.Name, sc.Expected.Days, got)
	}
	if got := plan.Schedule.TotalVolume(); got != sc.Expected.TotalVolume {
		t.Errorf("scenario %s expected total volume %d, got %d", sc.Name, sc.Expected.TotalVolume, got)
	}
	if got := len(plan.Unplaced); got != sc.Expected.Unplaced {
		t.Errorf("scenario %s expected %d unplaced batches, got %d", sc.Name, sc.Expected.Unplaced, got)
	}
}
