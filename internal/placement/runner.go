package placement

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/store"
)

// ErrSessionActive is returned from Start while a session is already running
// for the user.
var ErrSessionActive = errors.New("placement session already active")

// BaselineSink receives the baseline of a completed placement. The profile
// service implements it, folding the baseline in through its normal
// attempt-recording path.
type BaselineSink interface {
	ApplyBaseline(ctx context.Context, userID string, b *Baseline, results []Result) error
}

// Runner owns placement sessions, enforcing one active session per user, and
// performs the completion side effects: event logging and baseline handoff.
type Runner struct {
	pool   *Pool
	events store.EventRepo
	sink   BaselineSink
	log    *zap.SugaredLogger

	mu     sync.Mutex
	active map[string]*Session
}

// NewRunner creates a runner over pool. events and sink may be nil; the
// corresponding side effects are then skipped.
func NewRunner(pool *Pool, events store.EventRepo, sink BaselineSink, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{
		pool:   pool,
		events: events,
		sink:   sink,
		log:    log,
		active: make(map[string]*Session),
	}
}

// Start begins a placement session for userID and returns the first
// question. A second concurrent session for the same user is rejected.
func (r *Runner) Start(ctx context.Context, userID string) (*Session, *Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.active[userID]; ok && s.Active() {
		return nil, nil, ErrSessionActive
	}

	s := NewSession(userID, r.pool)
	q, err := s.Start()
	if err != nil {
		return nil, nil, err
	}
	r.active[userID] = s

	r.appendEvent(ctx, store.PlacementEventData{
		UserID:    userID,
		SessionID: s.ID,
		Action:    "start",
	})
	return s, q, nil
}

// Submit forwards an answer to the user's active session. On completion it
// logs the outcome and hands the baseline to the sink.
func (r *Runner) Submit(ctx context.Context, userID, questionID, choice string) (*Step, error) {
	r.mu.Lock()
	s, ok := r.active[userID]
	r.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotActive
	}

	step, err := s.SubmitAnswer(questionID, choice)
	if err != nil {
		return nil, err
	}

	if step.Completed {
		r.mu.Lock()
		delete(r.active, userID)
		r.mu.Unlock()

		correct := 0
		for _, res := range step.Results {
			if res.Correct {
				correct++
			}
		}
		r.appendEvent(ctx, store.PlacementEventData{
			UserID:          userID,
			SessionID:       s.ID,
			Action:          "complete",
			DeterminedLevel: step.DeterminedLevel.String(),
			QuestionsAsked:  len(step.Results),
			CorrectAnswers:  correct,
		})

		if r.sink != nil {
			if err := r.sink.ApplyBaseline(ctx, userID, step.Baseline, step.Results); err != nil {
				r.log.Warnw("apply placement baseline failed", "user", userID, "err", err)
			}
		}
		r.log.Infow("placement complete",
			"user", userID,
			"session", s.ID,
			"level", step.DeterminedLevel,
			"questions", len(step.Results),
		)
	}
	return step, nil
}

// Abort discards the user's active session, if any.
func (r *Runner) Abort(ctx context.Context, userID string) {
	r.mu.Lock()
	s, ok := r.active[userID]
	if ok {
		delete(r.active, userID)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	results := s.Results()
	correct := 0
	for _, res := range results {
		if res.Correct {
			correct++
		}
	}
	s.Abort()
	r.appendEvent(ctx, store.PlacementEventData{
		UserID:         userID,
		SessionID:      s.ID,
		Action:         "abort",
		QuestionsAsked: len(results),
		CorrectAnswers: correct,
	})
}

func (r *Runner) appendEvent(ctx context.Context, data store.PlacementEventData) {
	if r.events == nil {
		return
	}
	if err := r.events.AppendPlacementEvent(ctx, data); err != nil {
		r.log.Warnw("append placement event failed", "session", data.SessionID, "err", err)
	}
}
