package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/placement"
	"github.com/abhisek/conjugo/internal/store"
)

// Service manages learner profiles in memory, persisting them via snapshots
// and appending every level transition to the event log. All profile
// mutation in the process goes through this service.
type Service struct {
	profiles     map[string]*Profile
	competencies *competency.Service
	events       store.EventRepo
	log          *zap.SugaredLogger
	now          func() time.Time
}

// NewService creates a profile service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, comps *competency.Service, events store.EventRepo, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	s := &Service{
		profiles:     make(map[string]*Profile),
		competencies: comps,
		events:       events,
		log:          log,
		now:          time.Now,
	}
	if snap == nil || snap.Profiles == nil {
		return s
	}
	for userID, pd := range snap.Profiles {
		if p := loadProfile(userID, pd); p != nil {
			s.profiles[userID] = p
		}
	}
	return s
}

func loadProfile(userID string, pd *store.ProfileData) *Profile {
	if pd == nil {
		return nil
	}
	lvl, err := level.Parse(pd.Level)
	if err != nil {
		lvl = level.A1
	}
	p := &Profile{
		UserID:          userID,
		Level:           lvl,
		ProgressPercent: pd.ProgressPercent,
		ManualOverride:  pd.ManualOverride,
		progressSet:     pd.ProgressPercent > 0,
	}
	if pd.Baseline != nil {
		p.Baseline = loadBaseline(pd.Baseline)
	}
	for _, td := range pd.History {
		from, ferr := level.Parse(td.From)
		to, terr := level.Parse(td.To)
		if ferr != nil || terr != nil {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, td.Timestamp)
		p.History = append(p.History, Transition{From: from, To: to, Reason: td.Reason, Timestamp: ts})
	}
	return p
}

func loadBaseline(bd *store.PlacementBaselineData) *placement.Baseline {
	lvl, err := level.Parse(bd.DeterminedLevel)
	if err != nil {
		return nil
	}
	ts, _ := time.Parse(time.RFC3339, bd.Timestamp)
	b := &placement.Baseline{
		DeterminedLevel:       lvl,
		PerCompetencyAccuracy: make(map[string]float64, len(bd.PerCompetencyAccuracy)),
		OverallAccuracy:       bd.OverallAccuracy,
		Timestamp:             ts,
	}
	for k, v := range bd.PerCompetencyAccuracy {
		b.PerCompetencyAccuracy[k] = v
	}
	return b
}

// Get returns the learner's profile, creating a default one at the lowest
// level on first access.
func (s *Service) Get(userID string) *Profile {
	p, ok := s.profiles[userID]
	if !ok {
		p = &Profile{UserID: userID, Level: level.A1}
		s.profiles[userID] = p
	}
	return p
}

// SetLevel moves the learner to lvl for the given reason. Changing level
// resets stored progress; the manual reason sets the override flag and all
// others clear it. Setting the current level again still updates the
// override flag but records no transition.
func (s *Service) SetLevel(ctx context.Context, userID string, lvl level.Level, reason string) error {
	if !lvl.Valid() {
		return fmt.Errorf("%w: %d", level.ErrUnknownLevel, int(lvl))
	}
	if !ValidReason(reason) {
		return fmt.Errorf("%w: %q", ErrBadReason, reason)
	}

	p := s.Get(userID)
	p.ManualOverride = reason == ReasonManual
	if p.Level == lvl {
		return nil
	}

	from := p.Level
	p.Level = lvl
	p.ProgressPercent = 0
	p.progressSet = false
	p.History = append(p.History, Transition{From: from, To: lvl, Reason: reason, Timestamp: s.now()})

	if s.events != nil {
		err := s.events.AppendLevelEvent(ctx, store.LevelEventData{
			UserID:    userID,
			FromLevel: from.String(),
			ToLevel:   lvl.String(),
			Reason:    reason,
		})
		if err != nil {
			s.log.Warnw("append level event failed", "user", userID, "err", err)
		}
	}
	s.log.Infow("level changed", "user", userID, "from", from, "to", lvl, "reason", reason)
	return nil
}

// SetProgress stores the smoothed progress percent for the learner's
// current level.
func (s *Service) SetProgress(userID string, percent float64) {
	p := s.Get(userID)
	p.ProgressPercent = percent
	p.progressSet = true
}

// ApplyBaseline implements placement.BaselineSink: it moves the learner to
// the determined level, stores the baseline snapshot, and seeds competency
// stats by replaying the placement results through the regular
// attempt-recording path.
func (s *Service) ApplyBaseline(ctx context.Context, userID string, b *placement.Baseline, results []placement.Result) error {
	if err := s.SetLevel(ctx, userID, b.DeterminedLevel, ReasonSync); err != nil {
		return err
	}
	s.Get(userID).Baseline = b

	if s.competencies == nil {
		return nil
	}
	for _, r := range results {
		key, err := competency.ParseKey(r.Competency)
		if err != nil {
			s.log.Warnw("skipping placement result with bad competency key", "user", userID, "key", r.Competency, "err", err)
			continue
		}
		s.competencies.RecordAttempt(ctx, userID, competency.Attempt{
			Key:            key,
			Level:          r.Level.String(),
			Correct:        r.Correct,
			ResponseTimeMs: r.ResponseTimeMs,
			Source:         "placement",
		})
	}
	return nil
}

// SnapshotData exports all profiles for persistence.
func (s *Service) SnapshotData() map[string]*store.ProfileData {
	out := make(map[string]*store.ProfileData, len(s.profiles))
	for userID, p := range s.profiles {
		pd := &store.ProfileData{
			UserID:          userID,
			Level:           p.Level.String(),
			ProgressPercent: p.ProgressPercent,
			ManualOverride:  p.ManualOverride,
		}
		if p.Baseline != nil {
			bd := &store.PlacementBaselineData{
				DeterminedLevel:       p.Baseline.DeterminedLevel.String(),
				PerCompetencyAccuracy: make(map[string]float64, len(p.Baseline.PerCompetencyAccuracy)),
				OverallAccuracy:       p.Baseline.OverallAccuracy,
				Timestamp:             p.Baseline.Timestamp.Format(time.RFC3339),
			}
			for k, v := range p.Baseline.PerCompetencyAccuracy {
				bd.PerCompetencyAccuracy[k] = v
			}
			pd.Baseline = bd
		}
		for _, t := range p.History {
			pd.History = append(pd.History, store.LevelTransitionData{
				From:      t.From.String(),
				To:        t.To.String(),
				Reason:    t.Reason,
				Timestamp: t.Timestamp.Format(time.RFC3339),
			})
		}
		out[userID] = pd
	}
	return out
}
