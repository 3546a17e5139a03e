package competency

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/store"
)

// Service tracks per-learner competency stats in memory, persisting them via
// snapshots and appending every graded attempt to the event log. It is the
// single write path for attempt data: placement baselines fold in through
// RecordAttempt like any other attempt.
type Service struct {
	users     map[string]map[Key]*Stat
	eventRepo store.EventRepo
	log       *zap.SugaredLogger
}

// NewService creates a competency service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{
		users:     make(map[string]map[Key]*Stat),
		eventRepo: eventRepo,
		log:       log,
	}
	if snap == nil || snap.Competencies == nil {
		return s
	}
	for userID, uc := range snap.Competencies {
		s.users[userID] = loadUserStats(uc)
	}
	return s
}

func loadUserStats(uc *store.UserCompetencyData) map[Key]*Stat {
	stats := make(map[Key]*Stat)
	if uc == nil {
		return stats
	}
	for _, sd := range uc.Stats {
		st := &Stat{
			Attempts:          sd.Attempts,
			Correct:           sd.Correct,
			AvgResponseTimeMs: sd.AvgResponseTimeMs,
		}
		if sd.LastPracticedAt != nil {
			if t, err := time.Parse(time.RFC3339, *sd.LastPracticedAt); err == nil {
				st.LastPracticedAt = t
			}
		}
		stats[Key{Mood: Mood(sd.Mood), Tense: Tense(sd.Tense)}] = st
	}
	return stats
}

func (s *Service) userStats(userID string) map[Key]*Stat {
	stats, ok := s.users[userID]
	if !ok {
		stats = make(map[Key]*Stat)
		s.users[userID] = stats
	}
	return stats
}

// Attempt is one graded answer to fold into a learner's stats.
type Attempt struct {
	Key            Key
	Level          string
	Correct        bool
	ResponseTimeMs int
	SessionID      string // placement session id, empty for practice
	Source         string // "practice" or "placement"
}

// RecordAttempt updates the learner's stat for the attempt's competency and
// appends an attempt event. Event append failure is logged, not returned:
// the in-memory stat update is the authoritative effect.
func (s *Service) RecordAttempt(ctx context.Context, userID string, a Attempt) *Stat {
	stats := s.userStats(userID)
	st, ok := stats[a.Key]
	if !ok {
		st = &Stat{}
		stats[a.Key] = st
	}
	st.record(a.Correct, a.ResponseTimeMs, time.Now())

	if s.eventRepo != nil {
		source := a.Source
		if source == "" {
			source = "practice"
		}
		err := s.eventRepo.AppendAttemptEvent(ctx, store.AttemptEventData{
			UserID:    userID,
			SessionID: a.SessionID,
			Mood:      string(a.Key.Mood),
			Tense:     string(a.Key.Tense),
			Level:     a.Level,
			Correct:   a.Correct,
			TimeMs:    a.ResponseTimeMs,
			Source:    source,
		})
		if err != nil {
			s.log.Warnw("append attempt event failed", "user", userID, "err", err)
		}
	}
	return st
}

// Stats implements Reader. The returned map is a copy; Stat pointers are
// shared and must be treated as read-only by callers.
func (s *Service) Stats(_ context.Context, userID string) (map[Key]*Stat, error) {
	stats := s.users[userID]
	out := make(map[Key]*Stat, len(stats))
	for k, st := range stats {
		out[k] = st
	}
	return out, nil
}

// Analytics implements Reader. The timeline comes from the event log; system
// confidence grows with total attempts and competency breadth, saturating at
// 100 once the learner has 200 attempts across 8 or more competencies.
func (s *Service) Analytics(ctx context.Context, userID string) (*Analytics, error) {
	stats := s.users[userID]

	totalAttempts := 0
	for _, st := range stats {
		totalAttempts += st.Attempts
	}

	a := &Analytics{
		Confidence: confidenceScore(totalAttempts, len(stats)),
	}

	if s.eventRepo != nil {
		points, err := s.eventRepo.DailyAccuracy(ctx, userID, timelineDays)
		if err != nil {
			s.log.Warnw("daily accuracy query failed", "user", userID, "err", err)
		} else {
			a.Timeline = make([]DailyPoint, len(points))
			for i, p := range points {
				a.Timeline[i] = DailyPoint{Date: p.Date, Accuracy: p.Accuracy, Attempts: p.Attempts}
			}
		}

		avg, err := s.eventRepo.AverageResponseTime(ctx, userID)
		if err != nil {
			s.log.Warnw("average response time query failed", "user", userID, "err", err)
		} else {
			a.AvgResponseTimeMs = avg
		}
	}

	return a, nil
}

// timelineDays is the window the consistency factor evaluates over.
const timelineDays = 7

// confidenceScore maps data volume to a 0-100 system confidence.
func confidenceScore(totalAttempts, competencies int) float64 {
	attemptPart := float64(totalAttempts) / 200.0
	if attemptPart > 1 {
		attemptPart = 1
	}
	breadthPart := float64(competencies) / 8.0
	if breadthPart > 1 {
		breadthPart = 1
	}
	return (0.6*attemptPart + 0.4*breadthPart) * 100
}

// SnapshotData exports the current competency state for persistence.
func (s *Service) SnapshotData() map[string]*store.UserCompetencyData {
	out := make(map[string]*store.UserCompetencyData, len(s.users))
	for userID, stats := range s.users {
		uc := &store.UserCompetencyData{Stats: make(map[string]*store.CompetencyStatData, len(stats))}
		for k, st := range stats {
			sd := &store.CompetencyStatData{
				Mood:              string(k.Mood),
				Tense:             string(k.Tense),
				Attempts:          st.Attempts,
				Correct:           st.Correct,
				AvgResponseTimeMs: st.AvgResponseTimeMs,
			}
			if !st.LastPracticedAt.IsZero() {
				ts := st.LastPracticedAt.Format(time.RFC3339)
				sd.LastPracticedAt = &ts
			}
			uc.Stats[k.String()] = sd
		}
		out[userID] = uc
	}
	return out
}
