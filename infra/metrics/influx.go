package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/preplab/biosched/core/metrics"
	"github.com/preplab/biosched/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlacements writes one point per placed batch.
func (s *InfluxSink) RecordPlacements(placements []coremetrics.BatchPlacement) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, pl := range placements {
		p := write.NewPointWithMeasurement("prep_batch_placed").
			AddTag("plan_id", pl.PlanID).
			AddTag("prep", pl.Prep).
			AddTag("prep_type", pl.Type.String()).
			AddTag("component", "planner").
			AddField("volume", pl.Volume).
			SetTime(pl.Day)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordUnplaced writes a dropped-batch point.
func (s *InfluxSink) RecordUnplaced(ev coremetrics.UnplacedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("prep_batch_unplaced").
		AddTag("plan_id", ev.PlanID).
		AddTag("task", ev.Task).
		AddTag("prep", ev.Prep).
		AddTag("component", "planner").
		AddField("volume", ev.Volume).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordPlanSummary writes a summary point for the completed run.
func (s *InfluxSink) RecordPlanSummary(sum coremetrics.PlanSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_summary").
		AddTag("plan_id", sum.PlanID).
		AddTag("component", "planner").
		AddField("production_days", sum.Days).
		AddField("total_volume", sum.TotalVolume).
		AddField("unplaced_volume", sum.UnplacedVolume).
		AddField("mean_day_volume", sum.MeanDayVolume).
		AddField("max_day_volume", sum.MaxDayVolume).
		SetTime(sum.GeneratedAt)
	return s.writeAPI.WritePoint(ctx, p)
}
