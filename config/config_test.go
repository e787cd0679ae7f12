package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
input:
  tasks_file: data/tasks.csv
planner:
  max_batch_volume: 400
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.TasksFile != "data/tasks.csv" {
		t.Fatalf("bad tasks file %q", cfg.Input.TasksFile)
	}
	if cfg.Planner.MaxBatchVolume != 400 {
		t.Fatalf("bad max batch volume %d", cfg.Planner.MaxBatchVolume)
	}
	if cfg.Planner.MaxPrepsPerDay != 2 {
		t.Fatalf("default max preps per day not applied: %d", cfg.Planner.MaxPrepsPerDay)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("bad level %q", cfg.Logging.Level)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"notify":{"enabled":true,"broker":"tcp://broker:1883"}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Notify.Enabled || cfg.Notify.Broker != "tcp://broker:1883" {
		t.Fatalf("bad notify config %+v", cfg.Notify)
	}
	if cfg.Notify.Topic != "biosched/plan" {
		t.Fatalf("default topic not applied: %q", cfg.Notify.Topic)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", `
logging:
  level: info
`)
	t.Setenv("B_LOGGING__LEVEL", "warn")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("env override ignored, got %q", cfg.Logging.Level)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.toml", `level = "info"`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "config.yaml", `
logging:
  level: loud
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
