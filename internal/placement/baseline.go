package placement

import (
	"time"

	"github.com/abhisek/conjugo/internal/level"
)

// Baseline is the snapshot a completed placement hands to the profile. Its
// per-competency accuracies seed initial competency stats through the
// regular attempt-recording path.
type Baseline struct {
	DeterminedLevel       level.Level
	PerCompetencyAccuracy map[string]float64
	OverallAccuracy       float64
	Timestamp             time.Time
}

// NewBaseline aggregates a results log into a baseline.
func NewBaseline(determined level.Level, results []Result, at time.Time) *Baseline {
	type tally struct {
		answered int
		correct  int
	}
	byCompetency := make(map[string]*tally)
	totalCorrect := 0
	for _, r := range results {
		t := byCompetency[r.Competency]
		if t == nil {
			t = &tally{}
			byCompetency[r.Competency] = t
		}
		t.answered++
		if r.Correct {
			t.correct++
			totalCorrect++
		}
	}

	b := &Baseline{
		DeterminedLevel:       determined,
		PerCompetencyAccuracy: make(map[string]float64, len(byCompetency)),
		Timestamp:             at,
	}
	for key, t := range byCompetency {
		b.PerCompetencyAccuracy[key] = float64(t.correct) / float64(t.answered)
	}
	if len(results) > 0 {
		b.OverallAccuracy = float64(totalCorrect) / float64(len(results))
	}
	return b
}
