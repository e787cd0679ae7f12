package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preplab/biosched/core/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		TasksFile: writeFile(t, dir, "tasks.csv",
			"task,start_date\nRun-1,2024-05-15\nRun-2,2024-05-22\n"),
		RequirementsFile: writeFile(t, dir, "requirements.csv",
			"task,prep,volume\nRun-1,MED-1,1300\nRun-1,BUF-1,400\nRun-2,MED-2,600\n"),
		PrepsFile: writeFile(t, dir, "preps.csv",
			"prep,type,expiration_days\nMED-1,Y,10\nMED-2,Media,7\nBUF-1,N,14\n"),
		ExpirationsFile: writeFile(t, dir, "task_expirations.csv",
			"task,hold_days\nRun-1,5\nRun-2,3\n"),
	}
}

func TestLoad(t *testing.T) {
	in, err := Load(testConfig(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(in.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(in.Tasks))
	}
	if in.Tasks[0].Name != "Run-1" || in.Tasks[1].Name != "Run-2" {
		t.Fatalf("task order not preserved: %+v", in.Tasks)
	}
	if !in.Tasks[0].Start.Equal(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bad start date %v", in.Tasks[0].Start)
	}
	reqs := in.Tasks[0].Requirements
	if len(reqs) != 2 || reqs[0].Prep != "MED-1" || reqs[0].Volume != 1300 || reqs[1].Prep != "BUF-1" {
		t.Fatalf("bad requirements %+v", reqs)
	}

	med1 := in.Preps["MED-1"]
	if med1.Type != model.Media || med1.Expiration != 10*24*time.Hour {
		t.Fatalf("bad MED-1 %+v", med1)
	}
	if in.Preps["BUF-1"].Type != model.Buffer {
		t.Fatalf("Y/N flag not parsed: %+v", in.Preps["BUF-1"])
	}

	if in.ProductExpirations["Run-1"] != 5*24*time.Hour {
		t.Fatalf("bad hold time %v", in.ProductExpirations["Run-1"])
	}
}

func TestLoadBadHeader(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.TasksFile = writeFile(t, dir, "tasks.csv", "name,date\nRun-1,2024-05-15\n")
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected header error")
	}
}

func TestLoadBadDate(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.TasksFile = writeFile(t, dir, "tasks.csv", "task,start_date\nRun-1,15/05/2024\n")
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected date error")
	}
}

func TestLoadBadPrepType(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.PrepsFile = writeFile(t, dir, "preps.csv", "prep,type,expiration_days\nMED-1,Solvent,10\n")
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestLoadNegativeVolume(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.RequirementsFile = writeFile(t, dir, "requirements.csv",
		"task,prep,volume\nRun-1,MED-1,-100\n")
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected error for negative volume")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.PrepsFile = filepath.Join(t.TempDir(), "absent.csv")
	if _, err := Load(cfg); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
