package evaluator

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/requirements"
)

type stubReader struct {
	stats     map[competency.Key]*competency.Stat
	analytics *competency.Analytics
	err       error
}

func (s *stubReader) Stats(context.Context, string) (map[competency.Key]*competency.Stat, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stats, nil
}

func (s *stubReader) Analytics(context.Context, string) (*competency.Analytics, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analytics, nil
}

func testTable() *requirements.Table {
	return requirements.NewTable([]requirements.LevelRequirements{
		{
			Level: level.A2,
			Competencies: []requirements.CompetencyRequirement{
				{Key: competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePresent}, MinAccuracy: 0.70, MinAttempts: 40},
				{Key: competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}, MinAccuracy: 0.70, MinAttempts: 40},
			},
			RequiredOverallAccuracy: 0.70,
			MinTotalAttempts:        80,
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

func TestWeightsSumToOne(t *testing.T) {
	sum := weightAccuracy + weightConsistency + weightResponseTime + weightCoverage + weightConfidence
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum = %v, want 1", sum)
	}
}

func TestWeightedScoreMidrange(t *testing.T) {
	f := FactorScores{Accuracy: 0.9, Consistency: 0.8, ResponseTime: 0.7, Coverage: 0.6, Confidence: 0.5}
	got := weightedScore(f)
	if math.Abs(got-0.76) > 1e-9 {
		t.Fatalf("weightedScore = %v, want 0.76", got)
	}
	if got >= promoteThreshold || got < demoteThreshold {
		t.Fatalf("score %v should leave the level unchanged", got)
	}
}

func TestAccuracyFactorWeighting(t *testing.T) {
	reqs, err := testTable().ForLevel(level.A2)
	if err != nil {
		t.Fatal(err)
	}

	// One competency fully met, the other short on attempts. The short one
	// contributes 0 but its weight still dilutes the result.
	stats := map[competency.Key]*competency.Stat{
		{Mood: competency.MoodIndicative, Tense: competency.TensePresent}:   {Attempts: 50, Correct: 45},
		{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}: {Attempts: 10, Correct: 10},
	}
	got := accuracyFactor(reqs, stats)
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("accuracyFactor = %v, want 0.5", got)
	}

	// Ratio above the threshold saturates at 1 per competency.
	stats[competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}] = &competency.Stat{Attempts: 40, Correct: 40}
	if got := accuracyFactor(reqs, stats); math.Abs(got-1) > 1e-9 {
		t.Fatalf("accuracyFactor = %v, want 1", got)
	}
}

func TestAccuracyFactorNoRequirements(t *testing.T) {
	reqs := requirements.LevelRequirements{Level: level.C2}
	if got := accuracyFactor(reqs, nil); got != 1 {
		t.Fatalf("accuracyFactor with no requirements = %v, want 1", got)
	}
	if got := coverageFactor(reqs, nil); got != 1 {
		t.Fatalf("coverageFactor with no requirements = %v, want 1", got)
	}
}

func TestConsistencyFactor(t *testing.T) {
	if got := consistencyFactor(steadyTimeline(2, 0.8)); got != 0 {
		t.Fatalf("consistency with 2 points = %v, want 0", got)
	}
	if got := consistencyFactor(steadyTimeline(5, 0.8)); math.Abs(got-1) > 1e-9 {
		t.Fatalf("consistency with flat timeline = %v, want 1", got)
	}

	mixed := steadyTimeline(4, 0.9)
	mixed[1].Accuracy = 0.3
	mixed[3].Accuracy = 0.3
	got := consistencyFactor(mixed)
	if got <= 0 || got >= 1 {
		t.Fatalf("consistency with noisy timeline = %v, want in (0, 1)", got)
	}
}

func TestResponseTimeFactor(t *testing.T) {
	if got := responseTimeFactor(level.A1, 0); got != 0 {
		t.Fatalf("responseTimeFactor with no data = %v, want 0", got)
	}
	if got := responseTimeFactor(level.A1, 4000); got != 1 {
		t.Fatalf("faster than expected = %v, want 1", got)
	}
	got := responseTimeFactor(level.C2, 6000)
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("responseTimeFactor = %v, want 0.5", got)
	}
}

func TestCoverageFactorHalfMinimum(t *testing.T) {
	reqs, err := testTable().ForLevel(level.A2)
	if err != nil {
		t.Fatal(err)
	}
	stats := map[competency.Key]*competency.Stat{
		{Mood: competency.MoodIndicative, Tense: competency.TensePresent}:   {Attempts: 20, Correct: 10},
		{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}: {Attempts: 19, Correct: 19},
	}
	if got := coverageFactor(reqs, stats); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("coverageFactor = %v, want 0.5", got)
	}
}

func TestEvaluatePromotesStrongUser(t *testing.T) {
	reader := &stubReader{
		stats: map[competency.Key]*competency.Stat{
			{Mood: competency.MoodIndicative, Tense: competency.TensePresent}:   {Attempts: 60, Correct: 57},
			{Mood: competency.MoodIndicative, Tense: competency.TensePreterite}: {Attempts: 55, Correct: 50},
		},
		analytics: &competency.Analytics{
			Timeline:          steadyTimeline(6, 0.9),
			AvgResponseTimeMs: 3000,
			Confidence:        90,
		},
	}
	ev := New(reader, testTable(), nil)

	report, err := ev.Evaluate(context.Background(), "u1", level.A2)
	if err != nil {
		t.Fatal(err)
	}
	if report.Score < promoteThreshold {
		t.Fatalf("score = %v, want >= %v", report.Score, promoteThreshold)
	}
	if report.EffectiveLevel != level.B1 {
		t.Fatalf("effective level = %v, want B1", report.EffectiveLevel)
	}
	if report.Fallback {
		t.Fatal("report should not be a fallback")
	}
	if report.Confidence != 1 {
		t.Fatalf("confidence = %v, want 1 with every factor populated", report.Confidence)
	}
}

func TestEvaluateDemotesWeakUser(t *testing.T) {
	reader := &stubReader{
		stats:     map[competency.Key]*competency.Stat{},
		analytics: &competency.Analytics{},
	}
	ev := New(reader, testTable(), nil)

	report, err := ev.Evaluate(context.Background(), "u1", level.A2)
	if err != nil {
		t.Fatal(err)
	}
	if report.EffectiveLevel != level.A1 {
		t.Fatalf("effective level = %v, want A1", report.EffectiveLevel)
	}
	if report.Confidence >= 1 {
		t.Fatalf("confidence = %v, want below 1 with missing data", report.Confidence)
	}
}

func TestEvaluateFallbackOnReaderError(t *testing.T) {
	reader := &stubReader{err: errors.New("db gone")}
	ev := New(reader, testTable(), nil)

	report, err := ev.Evaluate(context.Background(), "u1", level.B1)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Fallback {
		t.Fatal("expected fallback report")
	}
	if report.EffectiveLevel != level.B1 {
		t.Fatalf("fallback effective level = %v, want declared B1", report.EffectiveLevel)
	}
	if report.Factors.Accuracy != 0.5 || report.Confidence != 0.5 {
		t.Fatalf("fallback factors = %+v confidence = %v, want 0.5 defaults", report.Factors, report.Confidence)
	}
}

func TestEvaluateCaches(t *testing.T) {
	reader := &stubReader{
		stats:     map[competency.Key]*competency.Stat{},
		analytics: &competency.Analytics{},
	}
	ev := New(reader, testTable(), nil)
	ctx := context.Background()

	first, err := ev.Evaluate(ctx, "u1", level.A2)
	if err != nil {
		t.Fatal(err)
	}

	// New data does not show up until the cache is invalidated.
	reader.analytics = &competency.Analytics{Timeline: steadyTimeline(6, 0.9), AvgResponseTimeMs: 2000, Confidence: 80}
	second, err := ev.Evaluate(ctx, "u1", level.A2)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Fatal("expected cached report")
	}

	ev.InvalidateCache()
	third, err := ev.Evaluate(ctx, "u1", level.A2)
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Fatal("expected fresh report after invalidation")
	}
	if third.Factors.Consistency == 0 {
		t.Fatal("fresh report should see the new timeline")
	}
}

func TestEvaluateRejectsUnknownLevel(t *testing.T) {
	ev := New(competency.NopReader{}, testTable(), nil)
	if _, err := ev.Evaluate(context.Background(), "u1", level.Level(99)); !errors.Is(err, level.ErrUnknownLevel) {
		t.Fatalf("err = %v, want ErrUnknownLevel", err)
	}
}
