package planner

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/preplab/biosched/core/model"
)

// Utilization summarises how loaded the production days of a schedule are.
type Utilization struct {
	Days          int     `json:"days"`
	TotalVolume   int     `json:"total_volume"`
	MeanDayVolume float64 `json:"mean_day_volume"`
	MaxDayVolume  float64 `json:"max_day_volume"`
}

// Utilize computes per-day volume statistics for the schedule.
func Utilize(s *model.Schedule) Utilization {
	days := s.Days()
	if len(days) == 0 {
		return Utilization{}
	}
	volumes := make([]float64, len(days))
	for i, day := range days {
		for _, b := range s.On(day) {
			volumes[i] += float64(b.Volume)
		}
	}
	return Utilization{
		Days:          len(days),
		TotalVolume:   s.TotalVolume(),
		MeanDayVolume: stat.Mean(volumes, nil),
		MaxDayVolume:  floats.Max(volumes),
	}
}
