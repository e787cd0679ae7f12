package planner

import "github.com/preplab/biosched/core/model"

// SplitBatches divides a requested volume into batches of at most maxVolume
// units each. A zero volume yields no batches.
func SplitBatches(prep string, total, maxVolume int) []model.Batch {
	var batches []model.Batch
	for total > 0 {
		v := total
		if v > maxVolume {
			v = maxVolume
		}
		batches = append(batches, model.Batch{Prep: prep, Volume: v})
		total -= v
	}
	return batches
}
