package requirements

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
)

func TestDefaultTableCoversNonTerminalLevels(t *testing.T) {
	table := DefaultTable()

	for _, lvl := range level.AllLevels() {
		r, err := table.ForLevel(lvl)
		if err != nil {
			t.Fatalf("ForLevel(%s): %v", lvl, err)
		}
		if lvl == level.C2 {
			if !r.Terminal() {
				t.Error("C2 should be terminal")
			}
			continue
		}
		if len(r.Competencies) == 0 {
			t.Errorf("%s has no required competencies", lvl)
		}
		if r.RequiredOverallAccuracy <= 0 || r.RequiredOverallAccuracy > 1 {
			t.Errorf("%s overall accuracy %v out of range", lvl, r.RequiredOverallAccuracy)
		}
		if r.MinTotalAttempts <= 0 {
			t.Errorf("%s min total attempts %d not positive", lvl, r.MinTotalAttempts)
		}
	}
}

func TestDefaultTableThresholdsEscalate(t *testing.T) {
	table := DefaultTable()
	prev := 0.0
	prevAttempts := 0
	for _, lvl := range []level.Level{level.A1, level.A2, level.B1, level.B2, level.C1} {
		r, _ := table.ForLevel(lvl)
		if r.RequiredOverallAccuracy < prev {
			t.Errorf("%s overall accuracy %v below previous %v", lvl, r.RequiredOverallAccuracy, prev)
		}
		if r.MinTotalAttempts <= prevAttempts {
			t.Errorf("%s min attempts %d not above previous %d", lvl, r.MinTotalAttempts, prevAttempts)
		}
		prev = r.RequiredOverallAccuracy
		prevAttempts = r.MinTotalAttempts
	}
}

func TestForLevelUnknown(t *testing.T) {
	table := DefaultTable()
	_, err := table.ForLevel(level.Level(99))
	if !errors.Is(err, level.ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.json")
	content := `{
		"levels": [
			{
				"level": "A1",
				"competencies": [
					{"mood": "indicative", "tense": "present", "min_accuracy": 0.7, "min_attempts": 10}
				],
				"required_overall_accuracy": 0.6,
				"min_total_attempts": 20
			}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	r, err := table.ForLevel(level.A1)
	if err != nil {
		t.Fatalf("ForLevel: %v", err)
	}
	if len(r.Competencies) != 1 {
		t.Fatalf("competencies = %d, want 1", len(r.Competencies))
	}
	want := competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePresent}
	if r.Competencies[0].Key != want {
		t.Errorf("key = %v, want %v", r.Competencies[0].Key, want)
	}
}

func TestLoadTableRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	// min_accuracy above 1 violates the schema.
	content := `{
		"levels": [
			{
				"level": "A1",
				"competencies": [
					{"mood": "indicative", "tense": "present", "min_accuracy": 7, "min_attempts": 10}
				],
				"required_overall_accuracy": 0.6,
				"min_total_attempts": 20
			}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTable(path); err == nil {
		t.Error("expected schema validation error")
	}
}
