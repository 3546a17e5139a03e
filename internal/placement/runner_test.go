package placement

import (
	"context"
	"errors"
	"testing"
)

type captureSink struct {
	userID   string
	baseline *Baseline
	results  []Result
}

func (c *captureSink) ApplyBaseline(_ context.Context, userID string, b *Baseline, results []Result) error {
	c.userID = userID
	c.baseline = b
	c.results = results
	return nil
}

func TestRunnerRejectsSecondSession(t *testing.T) {
	r := NewRunner(MustDefaultPool(), nil, nil, nil)
	ctx := context.Background()

	if _, _, err := r.Start(ctx, "local"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, _, err := r.Start(ctx, "local"); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second start err = %v, want ErrSessionActive", err)
	}

	// A different user is unaffected.
	if _, _, err := r.Start(ctx, "other"); err != nil {
		t.Errorf("other user start: %v", err)
	}
}

func TestRunnerAbortAllowsRestart(t *testing.T) {
	r := NewRunner(MustDefaultPool(), nil, nil, nil)
	ctx := context.Background()

	if _, _, err := r.Start(ctx, "local"); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.Abort(ctx, "local")
	if _, _, err := r.Start(ctx, "local"); err != nil {
		t.Errorf("restart after abort: %v", err)
	}
}

func TestRunnerHandsBaselineToSink(t *testing.T) {
	sink := &captureSink{}
	r := NewRunner(MustDefaultPool(), nil, sink, nil)
	ctx := context.Background()

	s, q, err := r.Start(ctx, "local")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Miss everything: the A1 early exit completes the session quickly.
	step := &Step{NextQuestion: q}
	for !step.Completed {
		wrong := step.NextQuestion.Options[0]
		if wrong == step.NextQuestion.Correct {
			wrong = step.NextQuestion.Options[1]
		}
		step, err = r.Submit(ctx, "local", step.NextQuestion.ID, wrong)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if sink.baseline == nil {
		t.Fatal("baseline not delivered to sink")
	}
	if sink.userID != "local" {
		t.Errorf("sink user = %q, want local", sink.userID)
	}
	if sink.baseline.DeterminedLevel != step.DeterminedLevel {
		t.Errorf("baseline level = %s, want %s", sink.baseline.DeterminedLevel, step.DeterminedLevel)
	}

	// Completed sessions no longer accept answers.
	if _, err := r.Submit(ctx, "local", s.ID, "x"); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("submit after complete err = %v, want ErrSessionNotActive", err)
	}
}
