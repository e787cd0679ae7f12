package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/preplab/biosched/core/model"
)

// Plan is the result of a full planning run: the consolidated schedule,
// the batches that could not be placed and utilization statistics.
type Plan struct {
	ID          string                `json:"id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Schedule    *model.Schedule       `json:"-"`
	Unplaced    []model.UnplacedBatch `json:"unplaced,omitempty"`
	Stats       Utilization           `json:"stats"`
}

// Plan runs the three scheduling passes in order: initial placement,
// forward-fill consolidation and single-day refinement. Each pass consumes
// the previous schedule and produces a fresh one.
func (p *Planner) Plan(in *model.PlanInput) (*Plan, error) {
	initial, unplaced, err := p.Build(in)
	if err != nil {
		return nil, err
	}
	consolidated := p.Consolidate(initial, in.Preps)
	refined := p.Refine(consolidated, in.Preps)

	plan := &Plan{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Schedule:    refined,
		Unplaced:    unplaced,
		Stats:       Utilize(refined),
	}

	unplacedVolume := 0
	for _, u := range unplaced {
		unplacedVolume += u.Volume
	}
	p.publish(SummaryEvent{
		PlanID:         plan.ID,
		GeneratedAt:    plan.GeneratedAt,
		Days:           refined.Len(),
		TotalVolume:    refined.TotalVolume(),
		UnplacedVolume: unplacedVolume,
		MeanDayVolume:  plan.Stats.MeanDayVolume,
		MaxDayVolume:   plan.Stats.MaxDayVolume,
	})
	return plan, nil
}
