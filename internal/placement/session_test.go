package placement

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/conjugo/internal/level"
)

func testSession(t *testing.T) (*Session, *Question) {
	t.Helper()
	s := NewSession("local", MustDefaultPool())
	q, err := s.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, q
}

// answer submits a correct or incorrect answer to the pending question.
func answer(t *testing.T, s *Session, q *Question, correct bool) *Step {
	t.Helper()
	choice := q.Correct
	if !correct {
		for _, opt := range q.Options {
			if opt != q.Correct {
				choice = opt
				break
			}
		}
	}
	step, err := s.SubmitAnswer(q.ID, choice)
	if err != nil {
		t.Fatalf("submit %q: %v", q.ID, err)
	}
	return step
}

func TestStartServesLowestLevel(t *testing.T) {
	_, q := testSession(t)
	if q.Level != level.A1 {
		t.Errorf("first question level = %s, want A1", q.Level)
	}
}

func TestFastTrackAfterThreeCorrect(t *testing.T) {
	s, q := testSession(t)

	step := answer(t, s, q, true)
	step = answer(t, s, step.NextQuestion, true)
	if step.CurrentEstimate != level.A1 {
		t.Fatalf("estimate after 2 correct = %s, want A1", step.CurrentEstimate)
	}

	step = answer(t, s, step.NextQuestion, true)
	if step.Completed {
		t.Fatal("session completed unexpectedly")
	}
	if step.CurrentEstimate != level.A2 {
		t.Errorf("estimate after 3/3 = %s, want A2 (fast-track)", step.CurrentEstimate)
	}
	if step.NextQuestion.Level != level.A2 {
		t.Errorf("next question level = %s, want A2", step.NextQuestion.Level)
	}
}

func TestNoFastTrackWithEarlyMiss(t *testing.T) {
	s, q := testSession(t)

	// Miss the first, then answer correctly: the opening three are not all
	// correct, so the level must run to exhaustion instead of fast-tracking.
	step := answer(t, s, q, false)
	for i := 0; i < 3; i++ {
		if step.Completed {
			t.Fatalf("completed early at answer %d", i+2)
		}
		if step.CurrentEstimate != level.A1 {
			t.Fatalf("advanced early to %s at answer %d", step.CurrentEstimate, i+2)
		}
		step = answer(t, s, step.NextQuestion, true)
	}

	// Fifth answer exhausts the level budget and promotes.
	step = answer(t, s, step.NextQuestion, true)
	if step.Completed {
		t.Fatal("completed instead of promoting on exhaustion")
	}
	if step.CurrentEstimate != level.A2 {
		t.Errorf("estimate after exhaustion = %s, want A2", step.CurrentEstimate)
	}
}

func TestThreeConsecutiveMissesTerminate(t *testing.T) {
	s, q := testSession(t)

	// Clear A1 by fast-track so the lowest-level early exit cannot fire.
	step := answer(t, s, q, true)
	step = answer(t, s, step.NextQuestion, true)
	step = answer(t, s, step.NextQuestion, true)
	if step.CurrentEstimate != level.A2 {
		t.Fatalf("setup: expected fast-track to A2, got %s", step.CurrentEstimate)
	}

	step = answer(t, s, step.NextQuestion, false)
	if step.Completed {
		t.Fatal("terminated on 1st miss")
	}
	step = answer(t, s, step.NextQuestion, false)
	if step.Completed {
		t.Fatal("terminated on 2nd miss")
	}
	step = answer(t, s, step.NextQuestion, false)
	if !step.Completed {
		t.Fatal("did not terminate on 3rd consecutive miss")
	}
	if step.DeterminedLevel != level.A1 {
		t.Errorf("determined = %s, want A1 (fast-tracked, 3/3)", step.DeterminedLevel)
	}
}

func TestLowestLevelEarlyExit(t *testing.T) {
	s, q := testSession(t)

	step := answer(t, s, q, false)
	step = answer(t, s, step.NextQuestion, true)
	if step.Completed {
		t.Fatal("exited after 2 questions")
	}
	// Third question with second miss: 2 of 3 wrong at A1 ends the session.
	step = answer(t, s, step.NextQuestion, false)
	if !step.Completed {
		t.Fatal("expected lowest-level early exit after 2 misses in 3")
	}
	if step.DeterminedLevel != level.A1 {
		t.Errorf("determined = %s, want A1 default", step.DeterminedLevel)
	}
}

func TestHardCapForcesCompletion(t *testing.T) {
	s, q := testSession(t)

	// C C W C C per level: no fast-track, no 3 consecutive misses, no early
	// exit. Four levels consume the 20-question budget.
	pattern := []bool{true, true, false, true, true}
	step := &Step{NextQuestion: q}
	asked := 0
	for !step.Completed {
		step = answer(t, s, step.NextQuestion, pattern[asked%5])
		asked++
		if asked > MaxTotalQuestions {
			t.Fatalf("session still active after %d questions", asked)
		}
	}
	if asked != MaxTotalQuestions {
		t.Errorf("completed after %d questions, want %d", asked, MaxTotalQuestions)
	}
}

func TestSubmitErrors(t *testing.T) {
	s, q := testSession(t)

	if _, err := s.SubmitAnswer("not-the-pending-id", "x"); !errors.Is(err, ErrQuestionNotPending) {
		t.Errorf("err = %v, want ErrQuestionNotPending", err)
	}

	s.Abort()
	if _, err := s.SubmitAnswer(q.ID, q.Correct); !errors.Is(err, ErrSessionNotActive) {
		t.Errorf("err after abort = %v, want ErrSessionNotActive", err)
	}
}

func TestQuestionsNeverRepeat(t *testing.T) {
	s, q := testSession(t)

	seen := map[string]bool{q.ID: true}
	step := &Step{NextQuestion: q}
	for !step.Completed {
		step = answer(t, s, step.NextQuestion, true)
		if step.NextQuestion != nil {
			if seen[step.NextQuestion.ID] {
				t.Fatalf("question %q served twice", step.NextQuestion.ID)
			}
			seen[step.NextQuestion.ID] = true
		}
	}
}

func TestDetermineLevelHighestFirstScan(t *testing.T) {
	// A1 and A2 fast-tracked 3/3, B1 failed 0/3: B1 is scanned first and
	// fails, A2 qualifies.
	results := []Result{
		{Level: level.A1, Correct: true}, {Level: level.A1, Correct: true}, {Level: level.A1, Correct: true},
		{Level: level.A2, Correct: true}, {Level: level.A2, Correct: true}, {Level: level.A2, Correct: true},
		{Level: level.B1, Correct: false}, {Level: level.B1, Correct: false}, {Level: level.B1, Correct: false},
	}
	passed := map[level.Level]bool{level.A1: true, level.A2: true}

	got := DetermineLevel(results, passed)
	if got != level.A2 {
		t.Errorf("DetermineLevel = %s, want A2", got)
	}

	// Deterministic on the same log.
	if again := DetermineLevel(results, passed); again != got {
		t.Errorf("second run = %s, want %s", again, got)
	}
}

func TestDetermineLevelThinSample(t *testing.T) {
	// One perfect answer at B2 qualifies only if the session advanced past
	// B2 (pool exhaustion case), never when B2 was merely reached.
	results := []Result{
		{Level: level.A2, Correct: true}, {Level: level.A2, Correct: true}, {Level: level.A2, Correct: true},
		{Level: level.B2, Correct: true},
	}

	if got := DetermineLevel(results, map[level.Level]bool{level.A2: true}); got != level.A2 {
		t.Errorf("not passed: DetermineLevel = %s, want A2", got)
	}
	passed := map[level.Level]bool{level.A2: true, level.B2: true}
	if got := DetermineLevel(results, passed); got != level.B2 {
		t.Errorf("passed: DetermineLevel = %s, want B2", got)
	}
}

func TestDetermineLevelDefaultsToLowest(t *testing.T) {
	results := []Result{
		{Level: level.A1, Correct: false}, {Level: level.A1, Correct: false}, {Level: level.A1, Correct: false},
	}
	if got := DetermineLevel(results, nil); got != level.A1 {
		t.Errorf("DetermineLevel = %s, want A1", got)
	}
}

func TestBaselineAggregation(t *testing.T) {
	now := time.Now()
	results := []Result{
		{Competency: "indicative.present", Correct: true},
		{Competency: "indicative.present", Correct: false},
		{Competency: "indicative.preterite", Correct: true},
	}
	b := NewBaseline(level.A2, results, now)

	if b.DeterminedLevel != level.A2 {
		t.Errorf("level = %s, want A2", b.DeterminedLevel)
	}
	if got := b.PerCompetencyAccuracy["indicative.present"]; got != 0.5 {
		t.Errorf("present accuracy = %v, want 0.5", got)
	}
	if got := b.PerCompetencyAccuracy["indicative.preterite"]; got != 1.0 {
		t.Errorf("preterite accuracy = %v, want 1", got)
	}
	if b.OverallAccuracy < 0.66 || b.OverallAccuracy > 0.67 {
		t.Errorf("overall = %v, want 2/3", b.OverallAccuracy)
	}
}

func TestPoolValidation(t *testing.T) {
	base := func() *Question {
		return q("x", level.A1, "indicative", "present", "¿?", "a",
			"", [4]string{"a", "b", "c", "d"})
	}

	if _, err := NewPool([]*Question{base()}); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	bad := base()
	bad.Options = [4]string{"a", "a", "c", "d"}
	if _, err := NewPool([]*Question{bad}); err == nil {
		t.Error("duplicate options accepted")
	}

	bad = base()
	bad.Correct = "z"
	if _, err := NewPool([]*Question{bad}); err == nil {
		t.Error("correct answer outside options accepted")
	}

	if _, err := NewPool([]*Question{base(), base()}); err == nil {
		t.Error("duplicate ids accepted")
	}
}
