package model

import "time"

// Requirement is a preparation volume a task needs before it starts.
type Requirement struct {
	Prep   string
	Volume int
}

// Task is a manufacturing event whose start date bounds when its required
// preparations must be ready.
type Task struct {
	Name         string
	Start        time.Time
	Requirements []Requirement
}

// PlanInput bundles the loaded data a planning run consumes. Tasks keep
// their input order; scheduling results depend on it.
type PlanInput struct {
	Tasks []Task
	Preps map[string]Prep
	// ProductExpirations holds per-task hold times. They are loaded with the
	// rest of the workbook but not consulted by the scheduling passes.
	ProductExpirations map[string]time.Duration
}
