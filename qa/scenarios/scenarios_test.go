package scenarios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/preplab/biosched/core/model"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files found")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestToInputBadType(t *testing.T) {
	sc := &Scenario{Preps: []PrepDef{{Name: "X", Type: "frozen"}}}
	if _, err := sc.ToInput(); err == nil {
		t.Fatal("expected error for unknown prep type")
	}
}

func TestToInputBadDate(t *testing.T) {
	sc := &Scenario{Tasks: []TaskDef{{Name: "Run-1", Start: "May 6"}}}
	if _, err := sc.ToInput(); err == nil {
		t.Fatal("expected error for bad start date")
	}
}

func TestToInput(t *testing.T) {
	sc := &Scenario{
		Preps: []PrepDef{{Name: "MED-1", Type: "media", ExpirationDays: 10}},
		Tasks: []TaskDef{{
			Name:         "Run-1",
			Start:        "2024-05-15",
			Requirements: []RequirementDef{{Prep: "MED-1", Volume: 1300}},
		}},
	}
	in, err := sc.ToInput()
	if err != nil {
		t.Fatalf("to input: %v", err)
	}
	if in.Preps["MED-1"].Type != model.Media {
		t.Fatalf("bad prep type %v", in.Preps["MED-1"].Type)
	}
	if len(in.Tasks) != 1 || in.Tasks[0].Requirements[0].Volume != 1300 {
		t.Fatalf("bad tasks %+v", in.Tasks)
	}
}
