package planner

import (
	"time"

	"github.com/preplab/biosched/core/model"
)

// prepTotal aggregates every placed batch of one preparation.
type prepTotal struct {
	name     string
	typ      model.PrepType
	volume   int
	earliest time.Time
}

// aggregate folds the schedule into per-preparation totals, visiting days in
// the given order. The returned slice keeps first-seen order; earliest is
// the smallest day a batch of the preparation appeared on.
func aggregate(s *model.Schedule, preps map[string]model.Prep, days []time.Time) []prepTotal {
	var totals []prepTotal
	index := make(map[string]int)
	for _, day := range days {
		for _, b := range s.On(day) {
			i, ok := index[b.Prep]
			if !ok {
				i = len(totals)
				index[b.Prep] = i
				totals = append(totals, prepTotal{name: b.Prep, typ: preps[b.Prep].Type, earliest: day})
			}
			totals[i].volume += b.Volume
			if day.Before(totals[i].earliest) {
				totals[i].earliest = day
			}
		}
	}
	return totals
}

// Consolidate re-packs the schedule to use fewer days. Each preparation's
// total volume is filled forward from its earliest originally-scheduled day
// over calendar days (weekends included), placing as much as fits under the
// per-day count and same-type volume limits before advancing. The input
// schedule is not modified.
func (p *Planner) Consolidate(s *model.Schedule, preps map[string]model.Prep) *model.Schedule {
	out := model.NewSchedule()
	for _, t := range aggregate(s, preps, s.Days()) {
		remaining := t.volume
		day := t.earliest
		for remaining > 0 {
			committed := out.TypeVolumeOn(day, t.typ, preps)
			room := p.cfg.MaxVolumePerDay - committed
			if len(out.On(day)) < p.cfg.MaxPrepsPerDay && room > 0 {
				add := remaining
				if add > room {
					add = room
				}
				out.Add(day, model.Batch{Prep: t.name, Volume: add})
				remaining -= add
			}
			if remaining > 0 {
				day = day.AddDate(0, 0, 1)
			}
		}
	}
	p.publish(PassEvent{Pass: "consolidate", Days: out.Len()})
	return out
}

// Refine re-packs the schedule once more, preferring to land a preparation's
// entire remaining volume on a single day before splitting it. Aggregation
// visits days in ascending date order, so earliest-day ties resolve to the
// earlier date. When a day is already at the entry limit nothing is placed
// there and the preparation moves to the next calendar day.
func (p *Planner) Refine(s *model.Schedule, preps map[string]model.Prep) *model.Schedule {
	out := model.NewSchedule()
	for _, t := range aggregate(s, preps, s.SortedDays()) {
		remaining := t.volume
		day := t.earliest
		for remaining > 0 {
			committed := out.TypeVolumeOn(day, t.typ, preps)
			if len(out.On(day)) < p.cfg.MaxPrepsPerDay && committed+remaining <= p.cfg.MaxVolumePerDay {
				out.Add(day, model.Batch{Prep: t.name, Volume: remaining})
				break
			}
			room := p.cfg.MaxVolumePerDay - committed
			if room > remaining {
				room = remaining
			}
			if room > 0 && len(out.On(day)) < p.cfg.MaxPrepsPerDay {
				out.Add(day, model.Batch{Prep: t.name, Volume: room})
				remaining -= room
			}
			day = day.AddDate(0, 0, 1)
		}
	}
	p.publish(PassEvent{Pass: "refine", Days: out.Len()})
	return out
}
