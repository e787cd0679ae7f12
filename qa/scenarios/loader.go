package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/preplab/biosched/core/model"
)

type PrepDef struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	ExpirationDays int    `yaml:"expiration_days"`
}

func (p PrepDef) ToModel() (model.Prep, error) {
	typ, err := model.ParsePrepType(p.Type)
	if err != nil {
		return model.Prep{}, err
	}
	return model.Prep{
		Name:       p.Name,
		Type:       typ,
		Expiration: time.Duration(p.ExpirationDays) * 24 * time.Hour,
	}, nil
}

type RequirementDef struct {
	Prep   string `yaml:"prep"`
	Volume int    `yaml:"volume"`
}

type TaskDef struct {
	Name         string           `yaml:"name"`
	Start        string           `yaml:"start"`
	Requirements []RequirementDef `yaml:"requirements"`
}

func (t TaskDef) ToModel() (model.Task, error) {
	start, err := time.Parse("2006-01-02", t.Start)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %s: %w", t.Name, err)
	}
	task := model.Task{Name: t.Name, Start: start.UTC()}
	for _, r := range t.Requirements {
		task.Requirements = append(task.Requirements, model.Requirement{Prep: r.Prep, Volume: r.Volume})
	}
	return task, nil
}

type Expected struct {
	Days        int `yaml:"days"`
	TotalVolume int `yaml:"total_volume"`
	Unplaced    int `yaml:"unplaced"`
}

type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Preps       []PrepDef `yaml:"preps"`
	Tasks       []TaskDef `yaml:"tasks"`
	Expected    Expected  `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ToInput converts the scenario definitions into a planner input.
func (sc *Scenario) ToInput() (*model.PlanInput, error) {
	in := &model.PlanInput{Preps: make(map[string]model.Prep, len(sc.Preps))}
	for _, p := range sc.Preps {
		prep, err := p.ToModel()
		if err != nil {
			return nil, fmt.Errorf("prep %s: %w", p.Name, err)
		}
		in.Preps[prep.Name] = prep
	}
	for _, t := range sc.Tasks {
		task, err := t.ToModel()
		if err != nil {
			return nil, err
		}
		in.Tasks = append(in.Tasks, task)
	}
	return in, nil
}
