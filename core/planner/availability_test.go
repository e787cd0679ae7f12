package planner

import (
	"testing"
	"time"

	"github.com/preplab/biosched/core/model"
)

func testPreps() map[string]model.Prep {
	return map[string]model.Prep{
		"MED-1": {Name: "MED-1", Type: model.Media},
		"MED-2": {Name: "MED-2", Type: model.Media},
		"BUF-1": {Name: "BUF-1", Type: model.Buffer},
	}
}

func TestAvailableDaysEmptySchedule(t *testing.T) {
	s := model.NewSchedule()
	candidates := []time.Time{date(2024, 5, 6), date(2024, 5, 7)}
	got := AvailableDays(s, model.Media, candidates, testPreps(), 2)
	if len(got) != 2 {
		t.Fatalf("expected all candidates available, got %v", got)
	}
	if !got[0].Equal(candidates[0]) || !got[1].Equal(candidates[1]) {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestAvailableDaysSameTypeWithRoom(t *testing.T) {
	s := model.NewSchedule()
	d := date(2024, 5, 6)
	s.Add(d, model.Batch{Prep: "MED-1", Volume: 500})
	got := AvailableDays(s, model.Media, []time.Time{d}, testPreps(), 2)
	if len(got) != 1 {
		t.Fatalf("day with one same-type entry should be available")
	}
}

func TestAvailableDaysFullDay(t *testing.T) {
	s := model.NewSchedule()
	d := date(2024, 5, 6)
	s.Add(d, model.Batch{Prep: "MED-1", Volume: 100})
	s.Add(d, model.Batch{Prep: "MED-2", Volume: 100})
	got := AvailableDays(s, model.Media, []time.Time{d}, testPreps(), 2)
	if len(got) != 0 {
		t.Fatalf("day at entry limit should be unavailable")
	}
}

func TestAvailableDaysCrossType(t *testing.T) {
	s := model.NewSchedule()
	d := date(2024, 5, 6)
	s.Add(d, model.Batch{Prep: "BUF-1", Volume: 100})
	got := AvailableDays(s, model.Media, []time.Time{d}, testPreps(), 2)
	if len(got) != 0 {
		t.Fatalf("day with a buffer entry should be unavailable for media")
	}
}
