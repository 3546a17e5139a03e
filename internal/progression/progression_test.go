package progression

import (
	"context"
	"testing"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/requirements"
)

type stubReader struct {
	stats map[competency.Key]*competency.Stat
}

func (s *stubReader) Stats(context.Context, string) (map[competency.Key]*competency.Stat, error) {
	return s.stats, nil
}

func (s *stubReader) Analytics(context.Context, string) (*competency.Analytics, error) {
	return &competency.Analytics{}, nil
}

var (
	presentKey   = competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePresent}
	preteriteKey = competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}
)

func testTable() *requirements.Table {
	return requirements.NewTable([]requirements.LevelRequirements{
		{
			Level: level.A1,
			Competencies: []requirements.CompetencyRequirement{
				{Key: presentKey, MinAccuracy: 0.70, MinAttempts: 30},
				{Key: preteriteKey, MinAccuracy: 0.70, MinAttempts: 30},
			},
			RequiredOverallAccuracy: 0.70,
			MinTotalAttempts:        60,
		},
	})
}

// strongStats clears every A1 requirement with margin and enough volume for
// the confidence gate.
func strongStats() map[competency.Key]*competency.Stat {
	return map[competency.Key]*competency.Stat{
		presentKey:   {Attempts: 200, Correct: 196},
		preteriteKey: {Attempts: 180, Correct: 173},
	}
}

func TestEvaluateEligibilityAudit(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	eng := New(&stubReader{stats: strongStats()}, testTable(), profiles, nil)

	elig, err := eng.EvaluateEligibility(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !elig.Evaluation.MeetsRequirements {
		t.Fatalf("evaluation = %+v, want requirements met", elig.Evaluation)
	}
	if elig.NextLevel != level.A2 {
		t.Fatalf("next level = %v, want A2", elig.NextLevel)
	}
	if elig.Confidence < promoteConfidence {
		t.Fatalf("confidence = %v, want >= %v", elig.Confidence, promoteConfidence)
	}
	if !elig.Eligible {
		t.Fatal("expected eligible")
	}
}

func TestEvaluateEligibilitySingleFailingCompetency(t *testing.T) {
	stats := strongStats()
	stats[preteriteKey] = &competency.Stat{Attempts: 29, Correct: 29}
	profiles := profile.NewService(nil, nil, nil, nil)
	eng := New(&stubReader{stats: stats}, testTable(), profiles, nil)

	elig, err := eng.EvaluateEligibility(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if elig.Evaluation.MeetsRequirements {
		t.Fatal("one short competency must fail the hard check")
	}
	var check CompetencyCheck
	for _, c := range elig.Evaluation.Competencies {
		if c.Key == preteriteKey.String() {
			check = c
		}
	}
	if check.Met {
		t.Fatalf("check = %+v, want not met on attempts", check)
	}
}

func TestAttemptPromotionPromotes(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	profiles.SetProgress("u1", 88)
	eng := New(&stubReader{stats: strongStats()}, testTable(), profiles, nil)

	result, err := eng.AttemptPromotion(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Promoted || result.To != level.A2 {
		t.Fatalf("result = %+v, want promotion to A2", result)
	}

	p := profiles.Get("u1")
	if p.Level != level.A2 {
		t.Fatalf("level = %v, want A2", p.Level)
	}
	if p.ProgressPercent != 0 {
		t.Fatalf("progress = %v, want reset to 0", p.ProgressPercent)
	}
	if len(p.History) != 1 || p.History[0].Reason != profile.ReasonAutomaticPromotion {
		t.Fatalf("history = %+v, want one automatic_promotion entry", p.History)
	}
}

func TestAttemptPromotionBlockedByManualOverride(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	ctx := context.Background()
	if err := profiles.SetLevel(ctx, "u1", level.A1, profile.ReasonManual); err != nil {
		t.Fatal(err)
	}
	eng := New(&stubReader{stats: strongStats()}, testTable(), profiles, nil)

	result, err := eng.AttemptPromotion(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Promoted {
		t.Fatal("manual override must block promotion even with thresholds met")
	}
	if profiles.Get("u1").Level != level.A1 {
		t.Fatal("level must not change")
	}
}

func TestAttemptPromotionRequirementsNotMet(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	eng := New(&stubReader{stats: map[competency.Key]*competency.Stat{}}, testTable(), profiles, nil)

	result, err := eng.AttemptPromotion(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Promoted {
		t.Fatal("empty stats must not promote")
	}
	if result.Reason == "" {
		t.Fatal("expected a reason for the refusal")
	}
}

func TestAttemptPromotionTerminalLevel(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	ctx := context.Background()
	if err := profiles.SetLevel(ctx, "u1", level.C2, profile.ReasonSync); err != nil {
		t.Fatal(err)
	}
	eng := New(&stubReader{stats: strongStats()}, testTable(), profiles, nil)

	result, err := eng.AttemptPromotion(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Promoted {
		t.Fatal("no promotion past the terminal level")
	}
}

func TestSuggestAdjustment(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	ctx := context.Background()
	if err := profiles.SetLevel(ctx, "u1", level.B1, profile.ReasonSync); err != nil {
		t.Fatal(err)
	}
	eng := New(&stubReader{stats: map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 40, Correct: 12},
	}}, testTable(), profiles, nil)

	adj, err := eng.SuggestAdjustment(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !adj.Suggested || adj.To != level.A2 {
		t.Fatalf("adjustment = %+v, want demotion to A2", adj)
	}

	// Advisory only: the profile is untouched.
	if profiles.Get("u1").Level != level.B1 {
		t.Fatal("suggestion must not change the level")
	}
}

func TestSuggestAdjustmentNotAtLowestLevel(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	eng := New(&stubReader{stats: map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 40, Correct: 0},
	}}, testTable(), profiles, nil)

	adj, err := eng.SuggestAdjustment(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if adj.Suggested {
		t.Fatal("no demotion suggestion at the lowest level")
	}
}
