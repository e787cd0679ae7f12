package planner

import (
	"time"

	"github.com/preplab/biosched/core/model"
)

// AvailableDays filters candidates to the days that can still accept a
// preparation of the given type. A day qualifies when nothing is scheduled
// on it yet, or when it holds fewer than maxPerDay entries all sharing the
// requested type. Input order is preserved; the schedule is not mutated.
func AvailableDays(s *model.Schedule, prepType model.PrepType, candidates []time.Time, preps map[string]model.Prep, maxPerDay int) []time.Time {
	var available []time.Time
	for _, day := range candidates {
		if !s.Has(day) {
			available = append(available, day)
			continue
		}
		placed := s.On(day)
		if len(placed) >= maxPerDay {
			continue
		}
		sameType := true
		for _, b := range placed {
			p, ok := preps[b.Prep]
			if !ok || p.Type != prepType {
				sameType = false
				break
			}
		}
		if sameType {
			available = append(available, day)
		}
	}
	return available
}
