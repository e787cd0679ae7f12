package model

import (
	"sort"
	"time"
)

// Schedule maps production days to the batches placed on them. Day insertion
// order is preserved alongside the date index: consolidation tie-breaks
// depend on the order in which days first entered the schedule.
type Schedule struct {
	order   []time.Time
	entries map[time.Time][]Batch
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{entries: make(map[time.Time][]Batch)}
}

// Add appends a batch to the given day, registering the day on first use.
func (s *Schedule) Add(day time.Time, b Batch) {
	if _, ok := s.entries[day]; !ok {
		s.order = append(s.order, day)
	}
	s.entries[day] = append(s.entries[day], b)
}

// On returns the batches placed on the given day.
func (s *Schedule) On(day time.Time) []Batch {
	return s.entries[day]
}

// Has reports whether any batch is placed on the given day.
func (s *Schedule) Has(day time.Time) bool {
	_, ok := s.entries[day]
	return ok
}

// Days returns the scheduled days in insertion order.
func (s *Schedule) Days() []time.Time {
	out := make([]time.Time, len(s.order))
	copy(out, s.order)
	return out
}

// SortedDays returns the scheduled days in ascending date order.
func (s *Schedule) SortedDays() []time.Time {
	out := s.Days()
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Len returns the number of distinct production days.
func (s *Schedule) Len() int {
	return len(s.order)
}

// TotalVolume sums the volume of every placed batch.
func (s *Schedule) TotalVolume() int {
	total := 0
	for _, batches := range s.entries {
		for _, b := range batches {
			total += b.Volume
		}
	}
	return total
}

// TypeVolumeOn sums the volume committed to day for preparations of the
// given type.
func (s *Schedule) TypeVolumeOn(day time.Time, typ PrepType, preps map[string]Prep) int {
	total := 0
	for _, b := range s.entries[day] {
		if preps[b.Prep].Type == typ {
			total += b.Volume
		}
	}
	return total
}

// PrepVolume sums the volume placed for a single preparation.
func (s *Schedule) PrepVolume(prep string) int {
	total := 0
	for _, batches := range s.entries {
		for _, b := range batches {
			if b.Prep == prep {
				total += b.Volume
			}
		}
	}
	return total
}
