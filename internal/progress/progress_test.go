package progress

import (
	"context"
	"math"
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
			RequiredOverallAccuracy: 0.65,
			MinTotalAttempts:        60,
		},
	})
}

func TestComponentWeightsSumToOne(t *testing.T) {
	sum := weightCompetencies + weightMastery + weightCoverage + weightConsistency
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum = %v, want 1", sum)
	}
}

func TestSmoothingBlendsTowardRaw(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	profiles.SetProgress("u1", 70)
	c := New(nil, testTable(), nil, profiles, nil)

	got := c.smooth("u1", level.A1, 90)
	if math.Abs(got-73) > 1e-9 {
		t.Fatalf("smoothed = %v, want 73", got)
	}
	if p := profiles.Get("u1").ProgressPercent; math.Abs(p-73) > 1e-9 {
		t.Fatalf("mirrored percent = %v, want 73", p)
	}
}

func TestSmoothingFloor(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	profiles.SetProgress("u1", 70)
	c := New(nil, testTable(), nil, profiles, nil)

	// 70*0.85 + 0*0.15 = 59.5, below the 5-point drop floor.
	got := c.smooth("u1", level.A1, 0)
	if math.Abs(got-65) > 1e-9 {
		t.Fatalf("smoothed = %v, want floor 65", got)
	}
}

func TestFirstCalculationUnsmoothed(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	c := New(nil, testTable(), nil, profiles, nil)

	if got := c.smooth("u1", level.A1, 42); got != 42 {
		t.Fatalf("first calculation = %v, want raw 42", got)
	}
	if p := profiles.Get("u1").ProgressPercent; p != 42 {
		t.Fatalf("mirrored percent = %v, want 42", p)
	}
}

func TestSmoothingOnlyMirrorsCurrentLevel(t *testing.T) {
	profiles := profile.NewService(nil, nil, nil, nil)
	profiles.SetProgress("u1", 70)
	c := New(nil, testTable(), nil, profiles, nil)

	// Profile level is A1; asking about B1 must not smooth against or
	// overwrite the stored A1 percent.
	if got := c.smooth("u1", level.B1, 90); got != 90 {
		t.Fatalf("off-level calculation = %v, want raw 90", got)
	}
	if p := profiles.Get("u1").ProgressPercent; p != 70 {
		t.Fatalf("stored percent = %v, want untouched 70", p)
	}
}

func TestCompetenciesComponentTiers(t *testing.T) {
	reqs, err := testTable().ForLevel(level.A1)
	if err != nil {
		t.Fatal(err)
	}

	// First competency fully met with saturated score, second untouched.
	stats := map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 30, Correct: 27},
	}
	got := competenciesComponent(reqs, stats)
	if math.Abs(got.Score-50) > 1e-9 {
		t.Fatalf("score = %v, want 50 (one of two at 100)", got.Score)
	}

	// Partial scores stay capped even with perfect accuracy.
	stats = map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 29, Correct: 29},
	}
	got = competenciesComponent(reqs, stats)
	if got.Score > partialScoreCap/2+1e-9 {
		t.Fatalf("partial score = %v, want <= %v", got.Score, partialScoreCap/2)
	}
	if got.Score == 0 {
		t.Fatal("some attempts should score above 0")
	}
}

func TestMasteryComponentBonusAndCap(t *testing.T) {
	reqs, err := testTable().ForLevel(level.A1)
	if err != nil {
		t.Fatal(err)
	}
	stats := map[competency.Key]*competency.Stat{
		presentKey:   {Attempts: 40, Correct: 40},
		preteriteKey: {Attempts: 40, Correct: 40},
	}
	got := masteryComponent(reqs, stats)
	if got.Score != 100 {
		t.Fatalf("mastery = %v, want capped 100", got.Score)
	}

	// 75% weighted accuracy + one met requirement bonus.
	stats = map[competency.Key]*competency.Stat{
		presentKey: {Attempts: 40, Correct: 30},
	}
	got = masteryComponent(reqs, stats)
	if math.Abs(got.Score-80) > 1e-9 {
		t.Fatalf("mastery = %v, want 75 + 5 bonus", got.Score)
	}
}

func TestCoverageComponent(t *testing.T) {
	reqs, err := testTable().ForLevel(level.A1)
	if err != nil {
		t.Fatal(err)
	}
	if got := coverageComponent(reqs, nil); got.Score != 0 {
		t.Fatalf("coverage with no practice = %v, want 0", got.Score)
	}

	stats := map[competency.Key]*competency.Stat{
		presentKey:   {Attempts: 5, Correct: 3},
		preteriteKey: {Attempts: 5, Correct: 3},
	}
	got := coverageComponent(reqs, stats)
	// Full required ratio (70) + 1/4 moods and 2/6 tenses of diversity.
	want := 70.0 + 15.0/4 + 15.0/3
	if math.Abs(got.Score-want) > 1e-9 {
		t.Fatalf("coverage = %v, want %v", got.Score, want)
	}
}

func TestAreasAndMilestones(t *testing.T) {
	stats := map[competency.Key]*competency.Stat{
		presentKey:   {Attempts: 20, Correct: 19},
		preteriteKey: {Attempts: 10, Correct: 4},
		{Mood: competency.MoodSubjunctive, Tense: competency.TensePresent}: {Attempts: 3, Correct: 0},
	}

	strongest := strongestAreas(stats)
	if len(strongest) != 1 || strongest[0].Key != presentKey.String() {
		t.Fatalf("strongest = %+v, want only %s", strongest, presentKey)
	}

	weakest := weakestAreas(stats)
	if len(weakest) != 2 || weakest[0].Key != preteriteKey.String() {
		t.Fatalf("weakest = %+v, want %s first", weakest, preteriteKey)
	}

	ms := milestones([]string{preteriteKey.String()}, weakest, 47)
	if len(ms) != 3 {
		t.Fatalf("milestones = %v, want 3", ms)
	}
}

func TestCalculateMirrorsIntoProfile(t *testing.T) {
	reader := &stubReader{stats: map[competency.Key]*competency.Stat{
		presentKey:   {Attempts: 35, Correct: 30},
		preteriteKey: {Attempts: 12, Correct: 8},
	}}
	profiles := profile.NewService(nil, nil, nil, nil)
	c := New(reader, testTable(), nil, profiles, nil)
	ctx := context.Background()

	report, err := c.Calculate(ctx, "u1", level.A1)
	if err != nil {
		t.Fatal(err)
	}
	if report.OverallPercent <= 0 || report.OverallPercent > 100 {
		t.Fatalf("overall = %v, want in (0, 100]", report.OverallPercent)
	}
	if report.OverallPercent != report.RawPercent {
		t.Fatal("first calculation should be unsmoothed")
	}
	if p := profiles.Get("u1").ProgressPercent; p != report.OverallPercent {
		t.Fatalf("profile percent = %v, want %v", p, report.OverallPercent)
	}
	if len(report.MissingCompetencies) != 1 || report.MissingCompetencies[0] != preteriteKey.String() {
		t.Fatalf("missing = %v, want [%s]", report.MissingCompetencies, preteriteKey)
	}

	// Second call hits the cache.
	again, err := c.Calculate(ctx, "u1", level.A1)
	if err != nil {
		t.Fatal(err)
	}
	if again != report {
		t.Fatal("expected cached report")
	}

	c.InvalidateCache()
	fresh, err := c.Calculate(ctx, "u1", level.A1)
	if err != nil {
		t.Fatal(err)
	}
	if fresh == report {
		t.Fatal("expected fresh report after invalidation")
	}
}

func TestCalculateRejectsUnknownLevel(t *testing.T) {
	c := New(nil, testTable(), nil, nil, nil)
	if _, err := c.Calculate(context.Background(), "u1", level.Level(9)); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
