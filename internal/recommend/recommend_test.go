package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/evaluator"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/progress"
	"github.com/abhisek/conjugo/internal/requirements"
)

type stubReader struct {
	stats     map[competency.Key]*competency.Stat
	analytics *competency.Analytics
}

func (s *stubReader) Stats(context.Context, string) (map[competency.Key]*competency.Stat, error) {
	return s.stats, nil
}

func (s *stubReader) Analytics(context.Context, string) (*competency.Analytics, error) {
	if s.analytics == nil {
		return &competency.Analytics{}, nil
	}
	return s.analytics, nil
}

var (
	presentKey   = competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePresent}
	preteriteKey = competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}
	futureKey    = competency.Key{Mood: competency.MoodIndicative, Tense: competency.TenseFuture}
	subjKey      = competency.Key{Mood: competency.MoodSubjunctive, Tense: competency.TensePresent}
)

func testTable() *requirements.Table {
	return requirements.NewTable([]requirements.LevelRequirements{
		{
			Level: level.A2,
			Competencies: []requirements.CompetencyRequirement{
				{Key: presentKey, MinAccuracy: 0.70, MinAttempts: 30},
				{Key: preteriteKey, MinAccuracy: 0.70, MinAttempts: 30},
				{Key: futureKey, MinAccuracy: 0.70, MinAttempts: 30},
				{Key: subjKey, MinAccuracy: 0.70, MinAttempts: 30},
			},
			RequiredOverallAccuracy: 0.70,
			MinTotalAttempts:        120,
		},
	})
}

func steadyTimeline(days int, acc float64) []competency.DailyPoint {
	out := make([]competency.DailyPoint, days)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = competency.DailyPoint{Date: base.AddDate(0, 0, i), Accuracy: acc, Attempts: 10}
	}
	return out
}

// newEngine wires a full engine over stub competency data with the profile
// already at A2.
func newEngine(t *testing.T, reader *stubReader) (*Engine, *profile.Service) {
	t.Helper()
	profiles := profile.NewService(nil, nil, nil, nil)
	if err := profiles.SetLevel(context.Background(), "u1", level.A2, profile.ReasonSync); err != nil {
		t.Fatal(err)
	}
	table := testTable()
	eval := evaluator.New(reader, table, nil)
	calc := progress.New(reader, table, eval, profiles, nil)
	return New(profiles, eval, calc, nil), profiles
}

func strongReader() *stubReader {
	return &stubReader{
		stats: map[competency.Key]*competency.Stat{
			presentKey:   {Attempts: 60, Correct: 57},
			preteriteKey: {Attempts: 50, Correct: 46},
			futureKey:    {Attempts: 45, Correct: 41},
			subjKey:      {Attempts: 40, Correct: 37},
		},
		analytics: &competency.Analytics{
			Timeline:          steadyTimeline(6, 0.9),
			AvgResponseTimeMs: 3000,
			Confidence:        90,
		},
	}
}

func TestGenerateCapsAtEight(t *testing.T) {
	eng, _ := newEngine(t, strongReader())

	set, err := eng.Generate(context.Background(), "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if len(set.Recommendations) > maxRecommendations {
		t.Fatalf("got %d recommendations, cap is %d", len(set.Recommendations), maxRecommendations)
	}
	for i := 1; i < len(set.Recommendations); i++ {
		if set.Recommendations[i].Score > set.Recommendations[i-1].Score {
			t.Fatalf("recommendations not sorted by score at %d", i)
		}
	}
}

func TestGenerateLevelUpRequiresStrongEvaluation(t *testing.T) {
	eng, _ := newEngine(t, strongReader())

	set, err := eng.Generate(context.Background(), "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	var found *Recommendation
	for i := range set.Recommendations {
		if set.Recommendations[i].Category == CategoryLevelChange {
			found = &set.Recommendations[i]
		}
	}
	if found == nil {
		t.Fatal("strong user should get a level-change recommendation")
	}
	if found.ID != "level-up-B1" {
		t.Fatalf("id = %q, want level-up-B1", found.ID)
	}
	if found.Priority != PriorityHigh || !found.Actionable {
		t.Fatalf("level-up rec = %+v, want high priority actionable", found)
	}
}

func TestGenerateNoLevelUpForWeakUser(t *testing.T) {
	weak := &stubReader{stats: map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 10, Correct: 5},
	}}
	eng, _ := newEngine(t, weak)

	set, err := eng.Generate(context.Background(), "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range set.Recommendations {
		if r.ID == "level-up-B1" {
			t.Fatal("weak user must not get a level-up recommendation")
		}
	}
}

func TestGenerateCompetencyGapsCappedAtThree(t *testing.T) {
	// Nothing practiced: all four required competencies are missing.
	eng, _ := newEngine(t, &stubReader{stats: map[competency.Key]*competency.Stat{}})

	set, err := eng.Generate(context.Background(), "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	gaps := 0
	var first *Recommendation
	for i := range set.Recommendations {
		if set.Recommendations[i].Category == CategoryCompetencyGap {
			if first == nil {
				first = &set.Recommendations[i]
			}
			gaps++
		}
	}
	if gaps == 0 || gaps > maxGapRecommendations {
		t.Fatalf("gap recommendations = %d, want 1..%d", gaps, maxGapRecommendations)
	}
	if first.Priority != PriorityHigh {
		t.Fatalf("first gap priority = %q, want high", first.Priority)
	}
}

func TestGenerateCooldownSuppressesRepeats(t *testing.T) {
	eng, _ := newEngine(t, strongReader())
	ctx := context.Background()

	first, err := eng.Generate(ctx, "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}

	// A fresh generation within 24h must not repeat any id.
	eng.InvalidateCache()
	second, err := eng.Generate(ctx, "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	shown := make(map[string]bool)
	for _, r := range first.Recommendations {
		shown[r.ID] = true
	}
	for _, r := range second.Recommendations {
		if shown[r.ID] {
			t.Fatalf("id %q repeated within the cooldown window", r.ID)
		}
	}

	// After the window passes the ids may resurface.
	eng.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	eng.InvalidateCache()
	third, err := eng.Generate(ctx, "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(third.Recommendations) == 0 {
		t.Fatal("expected recommendations after cooldown expiry")
	}
}

func TestGenerateUsesCache(t *testing.T) {
	eng, _ := newEngine(t, strongReader())
	ctx := context.Background()

	first, err := eng.Generate(ctx, "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.Generate(ctx, "u1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Fatal("expected cached set")
	}

	// A different options hash is a different cache entry.
	limited, err := eng.Generate(ctx, "u1", Options{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if limited == first {
		t.Fatal("different options must not share a cache entry")
	}
	if len(limited.Recommendations) > 2 {
		t.Fatalf("limit ignored: got %d", len(limited.Recommendations))
	}
}
