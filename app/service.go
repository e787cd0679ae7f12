package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/preplab/biosched/config"
	coremetrics "github.com/preplab/biosched/core/metrics"
	"github.com/preplab/biosched/core/model"
	"github.com/preplab/biosched/core/planner"
	"github.com/preplab/biosched/infra/loader"
	"github.com/preplab/biosched/infra/logger"
	"github.com/preplab/biosched/infra/metrics"
	"github.com/preplab/biosched/infra/notify"
	"github.com/preplab/biosched/internal/eventbus"
	"github.com/preplab/biosched/pkg/export"
)

// planPublisher pushes a finished plan payload to downstream systems.
type planPublisher interface {
	Publish(payload []byte) error
	Close()
}

// Service orchestrates the planner, metric sinks and the plan notifier.
type Service struct {
	Planner *planner.Planner

	cfg      *config.Config
	sink     coremetrics.Sink
	bus      *eventbus.TypedBus[planner.Event]
	events   <-chan planner.Event
	notifier planPublisher
	log      logger.Logger
	drained  chan struct{}
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	p, err := planner.New(cfg.Planner, logger.New("planner"))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	bus := eventbus.NewTyped[planner.Event]()
	p.SetEventBus(bus)

	svc := &Service{
		Planner: p,
		cfg:     cfg,
		sink:    sink,
		bus:     bus,
		events:  bus.Subscribe(),
		log:     logg,
		drained: make(chan struct{}),
	}
	if cfg.Notify.Enabled {
		pub, err := notify.New(cfg.Notify)
		if err != nil {
			return nil, fmt.Errorf("notifier: %w", err)
		}
		svc.notifier = pub
	}
	go svc.consumeEvents()
	return svc, nil
}

// consumeEvents forwards planner events to the metric sinks until the bus
// is closed.
func (s *Service) consumeEvents() {
	defer close(s.drained)
	for ev := range s.events {
		switch e := ev.(type) {
		case planner.UnplacedEvent:
			if rec, ok := s.sink.(coremetrics.UnplacedRecorder); ok {
				if err := rec.RecordUnplaced(coremetrics.UnplacedEvent{
					Task:   e.Task,
					Prep:   e.Prep,
					Volume: e.Volume,
					Time:   time.Now().UTC(),
				}); err != nil {
					s.log.Errorf("record unplaced: %v", err)
				}
			}
		case planner.PassEvent:
			s.log.Debugf("pass %s produced %d days", e.Pass, e.Days)
		case planner.SummaryEvent:
			if rec, ok := s.sink.(coremetrics.SummaryRecorder); ok {
				if err := rec.RecordPlanSummary(coremetrics.PlanSummary{
					PlanID:         e.PlanID,
					GeneratedAt:    e.GeneratedAt,
					Days:           e.Days,
					TotalVolume:    e.TotalVolume,
					UnplacedVolume: e.UnplacedVolume,
					MeanDayVolume:  e.MeanDayVolume,
					MaxDayVolume:   e.MaxDayVolume,
				}); err != nil {
					s.log.Errorf("record summary: %v", err)
				}
			}
		}
	}
}

// PlanOnce loads the input files, runs the planning passes and records the
// resulting placements.
func (s *Service) PlanOnce() (*planner.Plan, *model.PlanInput, error) {
	in, err := loader.Load(s.cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("load input: %w", err)
	}
	plan, err := s.Planner.Plan(in)
	if err != nil {
		return nil, nil, err
	}

	var placements []coremetrics.BatchPlacement
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
	if err := s.sink.RecordPlacements(placements); err != nil {
		s.log.Errorf("record placements: %v", err)
	}

	if s.notifier != nil {
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, plan); err != nil {
			return nil, nil, fmt.Errorf("encode plan: %w", err)
		}
		if err := s.notifier.Publish(buf.Bytes()); err != nil {
			s.log.Errorf("notify: %v", err)
		}
	}
	return plan, in, nil
}

// WriteOutputs renders the plan to the writers configured for the run.
func (s *Service) WriteOutputs(plan *planner.Plan, in *model.PlanInput, jsonPath, csvPath string) error {
	if err := export.WriteCalendar(os.Stdout, plan.Schedule, in.Tasks, in.Preps); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteJSON(f, plan); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, plan.Schedule, in.Preps); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	return nil
}

// Run plans once and then serves metrics until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if _, _, err := s.PlanOnce(); err != nil {
		return err
	}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() {
	s.bus.Close()
	<-s.drained
	if s.notifier != nil {
		s.notifier.Close()
	}
}
