package placement

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/conjugo/internal/level"
)

const (
	// QuestionsPerLevel is the most questions asked within one level.
	QuestionsPerLevel = 5
	// FastTrackStreak advances past a level after this many opening correct
	// answers in it.
	FastTrackStreak = 3
	// MaxConsecutiveMisses ends the session outright.
	MaxConsecutiveMisses = 3
	// MaxTotalQuestions caps the whole session.
	MaxTotalQuestions = 20

	// earlyExitMinAsked and earlyExitMisses form the lowest-level early
	// exit: a learner clearly below A1 material stops quickly.
	earlyExitMinAsked = 3
	earlyExitMisses   = 2

	// qualifyAccuracy is the per-level accuracy bar in final determination.
	qualifyAccuracy = 0.70
	// qualifyMinAnswered is the minimum answered questions for a level to
	// qualify the normal way.
	qualifyMinAnswered = 2
)

var (
	// ErrSessionNotActive is returned when answering a session that has
	// completed or been aborted.
	ErrSessionNotActive = errors.New("placement session not active")
	// ErrQuestionNotPending is returned when the submitted question id does
	// not match the question currently awaiting an answer.
	ErrQuestionNotPending = errors.New("question not pending")
	// ErrPoolExhausted is returned from Start when the pool has no
	// questions at the starting level.
	ErrPoolExhausted = errors.New("question pool exhausted")
)

// Result is one graded placement answer, annotated with the question's
// competency for baseline seeding.
type Result struct {
	QuestionID     string
	Chosen         string
	Correct        bool
	Level          level.Level
	ResponseTimeMs int
	Competency     string
}

// Step is what the session reports after each answer: either the next
// question with progress info, or completion with the determined level.
type Step struct {
	Completed       bool
	NextQuestion    *Question
	ProgressPercent float64
	CurrentEstimate level.Level
	DeterminedLevel level.Level
	Results         []Result
	Baseline        *Baseline
}

// Session is one adaptive placement run. It is strictly sequential: one
// pending question at a time, answered via SubmitAnswer.
type Session struct {
	ID     string
	UserID string

	levels   []level.Level
	levelIdx int
	pool     *Pool
	rng      *rand.Rand
	now      func() time.Time

	used    map[string]bool
	pending *Question
	served  time.Time

	consecutiveMisses int
	inLevelAsked      int
	inLevelCorrect    int
	passed            map[level.Level]bool
	results           []Result
	active            bool
}

// NewSession creates a session over pool for userID. The assessment ladder
// runs A1 through C1; C2 is never assigned by placement.
func NewSession(userID string, pool *Pool) *Session {
	return &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		levels: []level.Level{level.A1, level.A2, level.B1, level.B2, level.C1},
		pool:   pool,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:    time.Now,
		used:   make(map[string]bool),
		passed: make(map[level.Level]bool),
	}
}

// Start activates the session and serves the first question.
func (s *Session) Start() (*Question, error) {
	if s.active {
		return nil, fmt.Errorf("start: session already active")
	}
	s.active = true
	q := s.draw(s.currentLevel())
	if q == nil {
		s.active = false
		return nil, fmt.Errorf("%w: level %s", ErrPoolExhausted, s.currentLevel())
	}
	s.serve(q)
	return q, nil
}

// Abort deactivates the session, discarding its state.
func (s *Session) Abort() {
	s.active = false
	s.pending = nil
}

// Active reports whether the session accepts answers.
func (s *Session) Active() bool {
	return s.active
}

// Results returns the per-question log so far.
func (s *Session) Results() []Result {
	return s.results
}

// SubmitAnswer grades the answer to questionID and advances the state
// machine. Submitting to an inactive session or for a question other than
// the pending one is a caller error.
func (s *Session) SubmitAnswer(questionID, choice string) (*Step, error) {
	if !s.active {
		return nil, ErrSessionNotActive
	}
	if s.pending == nil || s.pending.ID != questionID {
		return nil, fmt.Errorf("%w: %q", ErrQuestionNotPending, questionID)
	}

	q := s.pending
	s.pending = nil
	correct := choice == q.Correct
	elapsed := int(s.now().Sub(s.served).Milliseconds())

	s.results = append(s.results, Result{
		QuestionID:     q.ID,
		Chosen:         choice,
		Correct:        correct,
		Level:          q.Level,
		ResponseTimeMs: elapsed,
		Competency:     q.Competency.String(),
	})
	s.inLevelAsked++
	if correct {
		s.inLevelCorrect++
		s.consecutiveMisses = 0
	} else {
		s.consecutiveMisses++
	}

	return s.advance(), nil
}

// advance applies the transition rules after an answer and either serves
// the next question or completes the session.
func (s *Session) advance() *Step {
	// Hard cap across the whole session.
	if len(s.results) >= MaxTotalQuestions {
		return s.complete()
	}

	// Failure termination: three consecutive misses anywhere.
	if s.consecutiveMisses >= MaxConsecutiveMisses {
		return s.complete()
	}

	// Lowest-level early exit.
	if s.levelIdx == 0 && s.inLevelAsked >= earlyExitMinAsked &&
		s.inLevelAsked-s.inLevelCorrect >= earlyExitMisses {
		return s.complete()
	}

	// Fast-track: exactly the opening FastTrackStreak answers all correct.
	if s.inLevelAsked == FastTrackStreak && s.inLevelCorrect == FastTrackStreak {
		return s.advanceLevel()
	}

	// Exhaustion promotion: the level's question budget is spent.
	if s.inLevelAsked >= QuestionsPerLevel {
		return s.advanceLevel()
	}

	q := s.draw(s.currentLevel())
	if q == nil {
		// Nothing left to ask at this level.
		return s.advanceLevel()
	}
	s.serve(q)
	return s.step(q)
}

// advanceLevel moves the pointer up one level, or completes at the top.
func (s *Session) advanceLevel() *Step {
	s.passed[s.currentLevel()] = true
	if s.levelIdx == len(s.levels)-1 {
		return s.complete()
	}
	s.levelIdx++
	s.inLevelAsked = 0
	s.inLevelCorrect = 0

	q := s.draw(s.currentLevel())
	if q == nil {
		return s.advanceLevel()
	}
	s.serve(q)
	return s.step(q)
}

func (s *Session) complete() *Step {
	s.active = false
	s.pending = nil
	determined := DetermineLevel(s.results, s.passed)
	return &Step{
		Completed:       true,
		DeterminedLevel: determined,
		Results:         s.results,
		Baseline:        NewBaseline(determined, s.results, s.now()),
	}
}

func (s *Session) step(next *Question) *Step {
	return &Step{
		NextQuestion:    next,
		ProgressPercent: float64(len(s.results)) / float64(MaxTotalQuestions) * 100,
		CurrentEstimate: s.currentLevel(),
	}
}

func (s *Session) currentLevel() level.Level {
	return s.levels[s.levelIdx]
}

func (s *Session) serve(q *Question) {
	s.pending = q
	s.served = s.now()
	s.used[q.ID] = true
}

// draw picks uniformly at random from the level's unused questions.
func (s *Session) draw(lvl level.Level) *Question {
	var candidates []*Question
	for _, q := range s.pool.ForLevel(lvl) {
		if !s.used[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[s.rng.IntN(len(candidates))]
}

// DetermineLevel scans attempted levels from highest to lowest and returns
// the first that qualifies: at least qualifyMinAnswered answers at
// qualifyAccuracy or better, or a level with fewer answers at 100% that the
// session had already advanced past. The highest-first scan credits a
// learner who cleared low levels and then failed a high one with the
// highest level they cleared. Deterministic for a fixed log and passed set.
func DetermineLevel(results []Result, passed map[level.Level]bool) level.Level {
	type tally struct {
		answered int
		correct  int
	}
	byLevel := make(map[level.Level]*tally)
	for _, r := range results {
		t := byLevel[r.Level]
		if t == nil {
			t = &tally{}
			byLevel[r.Level] = t
		}
		t.answered++
		if r.Correct {
			t.correct++
		}
	}

	levels := level.AllLevels()
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		t := byLevel[lvl]
		if t == nil {
			continue
		}
		accuracy := float64(t.correct) / float64(t.answered)
		if t.answered >= qualifyMinAnswered && accuracy >= qualifyAccuracy {
			return lvl
		}
		// A thinly sampled level counts only when perfect and already
		// advanced past; a single lucky answer at a level reached the
		// normal way never qualifies it.
		if t.answered < qualifyMinAnswered && accuracy == 1.0 && passed[lvl] {
			return lvl
		}
	}
	return level.A1
}
