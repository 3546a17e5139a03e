package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profiles: map[string]*ProfileData{
				"local": {UserID: "local", Level: "B1", ProgressPercent: 37.5},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	p := snap.Data.Profiles["local"]
	if p == nil || p.Level != "B1" {
		t.Errorf("profile = %+v, want level B1", p)
	}
}

func TestAppendAttemptEventAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			UserID:  "local",
			Mood:    "indicative",
			Tense:   "present",
			Level:   "A1",
			Correct: i%2 == 0,
			TimeMs:  4000 + i*500,
			Source:  "practice",
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	n, err := repo.AttemptCount(ctx, "local")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if n != 4 {
		t.Errorf("attempt count = %d, want 4", n)
	}

	// Other users see nothing.
	n, err = repo.AttemptCount(ctx, "someone-else")
	if err != nil {
		t.Fatalf("attempt count (other): %v", err)
	}
	if n != 0 {
		t.Errorf("attempt count (other) = %d, want 0", n)
	}
}

func TestAverageResponseTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	avg, err := repo.AverageResponseTime(ctx, "local")
	if err != nil {
		t.Fatalf("average (empty): %v", err)
	}
	if avg != 0 {
		t.Errorf("average (empty) = %v, want 0", avg)
	}

	for _, ms := range []int{3000, 5000} {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			UserID: "local", Mood: "indicative", Tense: "present",
			Level: "A1", Correct: true, TimeMs: ms, Source: "practice",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	avg, err = repo.AverageResponseTime(ctx, "local")
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 4000 {
		t.Errorf("average = %v, want 4000", avg)
	}
}

func TestDailyAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []bool{true, true, false, true}
	for _, correct := range results {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			UserID: "local", Mood: "subjunctive", Tense: "present",
			Level: "B1", Correct: correct, TimeMs: 4200, Source: "practice",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	points, err := repo.DailyAccuracy(ctx, "local", 7)
	if err != nil {
		t.Fatalf("daily accuracy: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1 (all events today)", len(points))
	}
	if points[0].Attempts != 4 {
		t.Errorf("attempts = %d, want 4", points[0].Attempts)
	}
	if points[0].Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", points[0].Accuracy)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
