package profile

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/placement"
	"github.com/abhisek/conjugo/internal/store"
)

func TestGetCreatesDefaultProfile(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	p := s.Get("u1")
	if p.Level != level.A1 {
		t.Fatalf("default level = %v, want A1", p.Level)
	}
	if p.ManualOverride || p.HasProgress() {
		t.Fatalf("fresh profile has override=%v hasProgress=%v, want false/false", p.ManualOverride, p.HasProgress())
	}
	if again := s.Get("u1"); again != p {
		t.Fatal("Get should return the same profile instance")
	}
}

func TestSetLevelReasonSemantics(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	ctx := context.Background()

	if err := s.SetLevel(ctx, "u1", level.B1, ReasonManual); err != nil {
		t.Fatal(err)
	}
	p := s.Get("u1")
	if !p.ManualOverride {
		t.Fatal("manual change should set the override flag")
	}
	if len(p.History) != 1 || p.History[0].From != level.A1 || p.History[0].To != level.B1 {
		t.Fatalf("history = %+v, want one A1->B1 entry", p.History)
	}

	// Any non-manual reason clears the override.
	if err := s.SetLevel(ctx, "u1", level.B2, ReasonAutomaticPromotion); err != nil {
		t.Fatal(err)
	}
	if p.ManualOverride {
		t.Fatal("automatic promotion should clear the override flag")
	}
	if p.History[1].Reason != ReasonAutomaticPromotion {
		t.Fatalf("reason = %q, want %q", p.History[1].Reason, ReasonAutomaticPromotion)
	}
}

func TestSetLevelResetsProgress(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	s.SetProgress("u1", 62.5)
	if !s.Get("u1").HasProgress() {
		t.Fatal("expected stored progress")
	}

	if err := s.SetLevel(context.Background(), "u1", level.A2, ReasonSync); err != nil {
		t.Fatal(err)
	}
	p := s.Get("u1")
	if p.ProgressPercent != 0 || p.HasProgress() {
		t.Fatalf("progress after level change = %v (set=%v), want 0/false", p.ProgressPercent, p.HasProgress())
	}
}

func TestSetLevelRejectsBadInput(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	ctx := context.Background()

	if err := s.SetLevel(ctx, "u1", level.Level(42), ReasonManual); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := s.SetLevel(ctx, "u1", level.B1, "whim"); err == nil {
		t.Fatal("expected error for unknown reason")
	}
	if len(s.Get("u1").History) != 0 {
		t.Fatal("rejected calls must not record transitions")
	}
}

func TestSetLevelSameLevelRecordsNoTransition(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	if err := s.SetLevel(context.Background(), "u1", level.A1, ReasonManual); err != nil {
		t.Fatal(err)
	}
	p := s.Get("u1")
	if len(p.History) != 0 {
		t.Fatalf("history = %+v, want empty", p.History)
	}
	if !p.ManualOverride {
		t.Fatal("override flag should still track the reason")
	}
}

func TestApplyBaselineSeedsCompetencies(t *testing.T) {
	comps := competency.NewService(nil, nil, nil)
	s := NewService(nil, comps, nil, nil)
	ctx := context.Background()

	key := competency.Key{Mood: competency.MoodIndicative, Tense: competency.TensePresent}
	results := []placement.Result{
		{QuestionID: "q1", Correct: true, Level: level.A1, ResponseTimeMs: 4000, Competency: key.String()},
		{QuestionID: "q2", Correct: false, Level: level.A1, ResponseTimeMs: 6000, Competency: key.String()},
	}
	b := placement.NewBaseline(level.A2, results, time.Now())

	if err := s.ApplyBaseline(ctx, "u1", b, results); err != nil {
		t.Fatal(err)
	}

	p := s.Get("u1")
	if p.Level != level.A2 {
		t.Fatalf("level = %v, want A2", p.Level)
	}
	if p.Baseline != b {
		t.Fatal("baseline not stored on profile")
	}
	if p.ManualOverride {
		t.Fatal("placement sync must not set the override flag")
	}

	stats, err := comps.Stats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	st, ok := stats[key]
	if !ok {
		t.Fatalf("no stat seeded for %s", key)
	}
	if st.Attempts != 2 || st.Correct != 1 {
		t.Fatalf("seeded stat = %d/%d, want 1/2", st.Correct, st.Attempts)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	ctx := context.Background()

	if err := s.SetLevel(ctx, "u1", level.B1, ReasonManual); err != nil {
		t.Fatal(err)
	}
	s.SetProgress("u1", 41)
	s.Get("u1").Baseline = placement.NewBaseline(level.B1, []placement.Result{
		{QuestionID: "q1", Correct: true, Level: level.B1, Competency: "indicative.preterite"},
	}, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))

	data := &store.SnapshotData{Profiles: s.SnapshotData()}
	restored := NewService(data, nil, nil, nil)

	p := restored.Get("u1")
	if p.Level != level.B1 {
		t.Fatalf("restored level = %v, want B1", p.Level)
	}
	if p.ProgressPercent != 41 || !p.HasProgress() {
		t.Fatalf("restored progress = %v (set=%v), want 41/true", p.ProgressPercent, p.HasProgress())
	}
	if !p.ManualOverride {
		t.Fatal("restored override flag lost")
	}
	if len(p.History) != 1 || p.History[0].Reason != ReasonManual {
		t.Fatalf("restored history = %+v", p.History)
	}
	if p.Baseline == nil || p.Baseline.DeterminedLevel != level.B1 {
		t.Fatalf("restored baseline = %+v", p.Baseline)
	}
	if acc := p.Baseline.PerCompetencyAccuracy["indicative.preterite"]; acc != 1 {
		t.Fatalf("restored baseline accuracy = %v, want 1", acc)
	}
}
