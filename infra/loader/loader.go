// Package loader reads the planning workbook tables from CSV files and
// assembles the in-memory input the planner consumes.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/preplab/biosched/core/model"
)

const dateLayout = "2006-01-02"

// Config locates the four input tables.
type Config struct {
	TasksFile        string `json:"tasks_file"`
	RequirementsFile string `json:"requirements_file"`
	PrepsFile        string `json:"preps_file"`
	ExpirationsFile  string `json:"expirations_file"`
}

// SetDefaults applies the conventional file names.
func (c *Config) SetDefaults() {
	if c.TasksFile == "" {
		c.TasksFile = "tasks.csv"
	}
	if c.RequirementsFile == "" {
		c.RequirementsFile = "requirements.csv"
	}
	if c.PrepsFile == "" {
		c.PrepsFile = "preps.csv"
	}
	if c.ExpirationsFile == "" {
		c.ExpirationsFile = "task_expirations.csv"
	}
}

// Load reads every table and assembles the plan input. Task order follows
// the tasks file; requirement order follows the requirements file.
func Load(cfg Config) (*model.PlanInput, error) {
	cfg.SetDefaults()

	requirements, err := loadRequirements(cfg.RequirementsFile)
	if err != nil {
		return nil, err
	}
	tasks, err := loadTasks(cfg.TasksFile, requirements)
	if err != nil {
		return nil, err
	}
	preps, err := loadPreps(cfg.PrepsFile)
	if err != nil {
		return nil, err
	}
	expirations, err := loadExpirations(cfg.ExpirationsFile)
	if err != nil {
		return nil, err
	}

	return &model.PlanInput{
		Tasks:              tasks,
		Preps:              preps,
		ProductExpirations: expirations,
	}, nil
}

// readTable reads a CSV file and validates its header.
func readTable(path string, header ...string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("%s: expected columns %v, got %v", path, header, records[0])
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(records[0][i]), col) {
			return nil, fmt.Errorf("%s: expected columns %v, got %v", path, header, records[0])
		}
	}
	return records[1:], nil
}

func loadTasks(path string, requirements map[string][]model.Requirement) ([]model.Task, error) {
	rows, err := readTable(path, "task", "start_date")
	if err != nil {
		return nil, err
	}
	var tasks []model.Task
	for _, row := range rows {
		name := strings.TrimSpace(row[0])
		start, err := time.Parse(dateLayout, strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("task %s: bad start date: %w", name, err)
		}
		tasks = append(tasks, model.Task{
			Name:         name,
			Start:        start,
			Requirements: requirements[name],
		})
	}
	return tasks, nil
}

func loadRequirements(path string) (map[string][]model.Requirement, error) {
	rows, err := readTable(path, "task", "prep", "volume")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]model.Requirement)
	for _, row := range rows {
		task := strings.TrimSpace(row[0])
		volume, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("task %s: bad volume %q: %w", task, row[2], err)
		}
		if volume < 0 {
			return nil, fmt.Errorf("task %s: negative volume %d", task, volume)
		}
		out[task] = append(out[task], model.Requirement{
			Prep:   strings.TrimSpace(row[1]),
			Volume: volume,
		})
	}
	return out, nil
}

func loadPreps(path string) (map[string]model.Prep, error) {
	rows, err := readTable(path, "prep", "type", "expiration_days")
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Prep)
	for _, row := range rows {
		name := strings.TrimSpace(row[0])
		typ, err := model.ParsePrepType(row[1])
		if err != nil {
			return nil, fmt.Errorf("prep %s: %w", name, err)
		}
		days, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("prep %s: bad expiration %q: %w", name, row[2], err)
		}
		out[name] = model.Prep{
			Name:       name,
			Type:       typ,
			Expiration: time.Duration(days) * 24 * time.Hour,
		}
	}
	return out, nil
}

func loadExpirations(path string) (map[string]time.Duration, error) {
	rows, err := readTable(path, "task", "hold_days")
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Duration)
	for _, row := range rows {
		task := strings.TrimSpace(row[0])
		days, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("task %s: bad hold time %q: %w", task, row[1], err)
		}
		out[task] = time.Duration(days) * 24 * time.Hour
	}
	return out, nil
}
