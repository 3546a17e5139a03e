package competency

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	daily    []store.DailyAccuracyPoint
	avgMs    float64
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendLevelEvent(_ context.Context, _ store.LevelEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlacementEvent(_ context.Context, _ store.PlacementEventData) error {
	return nil
}
func (m *mockEventRepo) DailyAccuracy(_ context.Context, _ string, _ int) ([]store.DailyAccuracyPoint, error) {
	return m.daily, nil
}
func (m *mockEventRepo) AverageResponseTime(_ context.Context, _ string) (float64, error) {
	return m.avgMs, nil
}
func (m *mockEventRepo) AttemptCount(_ context.Context, _ string) (int, error) {
	return len(m.attempts), nil
}

func TestRecordAttemptAccumulates(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(nil, repo, nil)
	ctx := context.Background()
	key := Key{Mood: MoodIndicative, Tense: TensePresent}

	svc.RecordAttempt(ctx, "local", Attempt{Key: key, Level: "A1", Correct: true, ResponseTimeMs: 4000})
	st := svc.RecordAttempt(ctx, "local", Attempt{Key: key, Level: "A1", Correct: false, ResponseTimeMs: 6000})

	if st.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", st.Attempts)
	}
	if st.Correct != 1 {
		t.Errorf("correct = %d, want 1", st.Correct)
	}
	if st.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", st.Accuracy())
	}
	if st.AvgResponseTimeMs != 5000 {
		t.Errorf("avg response time = %v, want 5000", st.AvgResponseTimeMs)
	}
	if len(repo.attempts) != 2 {
		t.Errorf("events appended = %d, want 2", len(repo.attempts))
	}
	if repo.attempts[0].Source != "practice" {
		t.Errorf("default source = %q, want practice", repo.attempts[0].Source)
	}
}

func TestStatsIsolatedPerUser(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()
	key := Key{Mood: MoodSubjunctive, Tense: TensePresent}

	svc.RecordAttempt(ctx, "alice", Attempt{Key: key, Level: "B1", Correct: true, ResponseTimeMs: 3000})

	stats, err := svc.Stats(ctx, "bob")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("bob has %d stats, want 0", len(stats))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()
	key := Key{Mood: MoodIndicative, Tense: TensePreterite}

	for i := 0; i < 3; i++ {
		svc.RecordAttempt(ctx, "local", Attempt{Key: key, Level: "A2", Correct: true, ResponseTimeMs: 5000})
	}

	snap := &store.SnapshotData{Competencies: svc.SnapshotData()}
	restored := NewService(snap, nil, nil)

	stats, _ := restored.Stats(ctx, "local")
	st := stats[key]
	if st == nil {
		t.Fatal("expected restored stat")
	}
	if st.Attempts != 3 || st.Correct != 3 {
		t.Errorf("restored = %d/%d, want 3/3", st.Correct, st.Attempts)
	}
	if st.LastPracticedAt.IsZero() {
		t.Error("expected restored LastPracticedAt")
	}
}

func TestAnalyticsConfidence(t *testing.T) {
	repo := &mockEventRepo{
		daily: []store.DailyAccuracyPoint{
			{Date: time.Now().AddDate(0, 0, -1), Accuracy: 0.8, Attempts: 10},
		},
		avgMs: 4500,
	}
	svc := NewService(nil, repo, nil)
	ctx := context.Background()

	a, err := svc.Analytics(ctx, "local")
	if err != nil {
		t.Fatalf("analytics: %v", err)
	}
	if a.Confidence != 0 {
		t.Errorf("confidence with no data = %v, want 0", a.Confidence)
	}
	if len(a.Timeline) != 1 {
		t.Errorf("timeline len = %d, want 1", len(a.Timeline))
	}
	if a.AvgResponseTimeMs != 4500 {
		t.Errorf("avg response = %v, want 4500", a.AvgResponseTimeMs)
	}

	// Saturation: plenty of attempts across many competencies.
	moods := AllMoods()
	for i := 0; i < 8; i++ {
		k := Key{Mood: moods[i%len(moods)], Tense: Tense([]Tense{TensePresent, TensePreterite, TenseImperfect, TenseFuture, TensePerfect, TensePluperfect, TenseAffirmative, TenseSimple}[i])}
		for j := 0; j < 25; j++ {
			svc.RecordAttempt(ctx, "local", Attempt{Key: k, Level: "B1", Correct: true, ResponseTimeMs: 4000})
		}
	}
	a, _ = svc.Analytics(ctx, "local")
	if a.Confidence != 100 {
		t.Errorf("saturated confidence = %v, want 100", a.Confidence)
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	k := Key{Mood: MoodConditional, Tense: TenseSimple}
	parsed, err := ParseKey(k.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != k {
		t.Errorf("round trip = %v, want %v", parsed, k)
	}

	if _, err := ParseKey("no-dot"); err == nil {
		t.Error("expected error for malformed key")
	}
}
