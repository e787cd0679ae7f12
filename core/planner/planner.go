package planner

import (
	"fmt"

	"github.com/preplab/biosched/core/calendar"
	"github.com/preplab/biosched/core/logger"
	"github.com/preplab/biosched/core/model"
	"github.com/preplab/biosched/internal/eventbus"
)

// Planner schedules preparation batches against capacity limits.
type Planner struct {
	cfg Config
	log logger.Logger
	bus *eventbus.TypedBus[Event]
}

// New creates a Planner with the given limits.
func New(cfg Config, log logger.Logger) (*Planner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner config: %w", err)
	}
	return &Planner{cfg: cfg, log: log}, nil
}

// SetEventBus attaches a bus on which scheduling events are published.
func (p *Planner) SetEventBus(bus *eventbus.TypedBus[Event]) { p.bus = bus }

func (p *Planner) publish(e Event) {
	if p.bus != nil {
		p.bus.Publish(e)
	}
}

// Build runs the initial placement pass. For every task requirement it
// computes the valid production window, splits the volume into batches and
// places each batch on the latest still-available weekday. Batches with no
// available day are dropped and reported; a preparation missing from the
// metadata aborts the run.
func (p *Planner) Build(in *model.PlanInput) (*model.Schedule, []model.UnplacedBatch, error) {
	sched := model.NewSchedule()
	var unplaced []model.UnplacedBatch

	for _, task := range in.Tasks {
		for _, req := range task.Requirements {
			prep, ok := in.Preps[req.Prep]
			if !ok {
				return nil, nil, fmt.Errorf("task %s: unknown preparation %q", task.Name, req.Prep)
			}

			deadline := calendar.PreviousSafeDay(task.Start)
			earliest := task.Start.Add(-prep.Expiration)
			window := calendar.BusinessDays(earliest, deadline)

			batches := SplitBatches(req.Prep, req.Volume, p.cfg.MaxBatchVolume)
			candidates := AvailableDays(sched, prep.Type, window, in.Preps, p.cfg.MaxPrepsPerDay)

			for _, b := range batches {
				if len(candidates) == 0 {
					p.log.Warnf("no available day for %s batch of %d within window of task %s", b.Prep, b.Volume, task.Name)
					unplaced = append(unplaced, model.UnplacedBatch{Task: task.Name, Prep: b.Prep, Volume: b.Volume})
					p.publish(UnplacedEvent{Task: task.Name, Prep: b.Prep, Volume: b.Volume})
					continue
				}
				// Latest day first: keeps earlier days free for
				// preparations with tighter windows.
				day := candidates[len(candidates)-1]
				candidates = candidates[:len(candidates)-1]
				sched.Add(day, b)
			}
		}
	}

	p.publish(PassEvent{Pass: "placement", Days: sched.Len()})
	return sched, unplaced, nil
}
