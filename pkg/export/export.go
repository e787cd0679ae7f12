// Package export renders finished plans as JSON, CSV or a textual calendar.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/preplab/biosched/core/model"
	"github.com/preplab/biosched/core/planner"
)

const dateLayout = "2006-01-02"

// ScheduleEntry is one production day in serialized form.
type ScheduleEntry struct {
	Date    string        `json:"date"`
	Batches []model.Batch `json:"batches"`
}

type planJSON struct {
	ID          string                `json:"id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Schedule    []ScheduleEntry       `json:"schedule"`
	Unplaced    []model.UnplacedBatch `json:"unplaced,omitempty"`
	Stats       planner.Utilization   `json:"stats"`
}

// Entries flattens the schedule into date-sorted serializable entries.
func Entries(s *model.Schedule) []ScheduleEntry {
	days := s.SortedDays()
	entries := make([]ScheduleEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, ScheduleEntry{
			Date:    day.Format(dateLayout),
			Batches: s.On(day),
		})
	}
	return entries
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, plan *planner.Plan) error {
	enc := json.NewEncoder(w)
	return enc.Encode(planJSON{
		ID:          plan.ID,
		GeneratedAt: plan.GeneratedAt,
		Schedule:    Entries(plan.Schedule),
		Unplaced:    plan.Unplaced,
		Stats:       plan.Stats,
	})
}

// WriteCSV writes the schedule to w as date-sorted CSV rows.
func WriteCSV(w io.Writer, s *model.Schedule, preps map[string]model.Prep) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "prep", "volume", "type"}); err != nil {
		return err
	}
	for _, day := range s.SortedDays() {
		for _, b := range s.On(day) {
			rec := []string{
				day.Format(dateLayout),
				b.Prep,
				strconv.Itoa(b.Volume),
				preps[b.Prep].Type.String(),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCalendar writes a per-day textual summary merging scheduled
// preparations with task start dates. Preparation lines precede task lines
// on days that carry both.
func WriteCalendar(w io.Writer, s *model.Schedule, tasks []model.Task, preps map[string]model.Prep) error {
	entries := make(map[time.Time][]string)
	for _, day := range s.SortedDays() {
		for _, b := range s.On(day) {
			line := fmt.Sprintf("Prep: %s %dL (%s)", b.Prep, b.Volume, preps[b.Prep].Type)
			entries[day] = append(entries[day], line)
		}
	}
	for _, task := range tasks {
		entries[task.Start] = append(entries[task.Start], fmt.Sprintf("Task: %s", task.Name))
	}

	days := make([]time.Time, 0, len(entries))
	for day := range entries {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		if _, err := fmt.Fprintf(w, "%s:\n", day.Format(dateLayout)); err != nil {
			return err
		}
		for _, line := range entries[day] {
			if _, err := fmt.Fprintf(w, "  - %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
