// Package progression implements the hard, auditable promotion rules. The
// requirement table is checked exactly, unlike the weighted soft model in
// the evaluator package; the two signals stay separate on purpose.
package progression

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/requirements"
)

const (
	// attemptReference is the attempt volume treated as full confidence.
	attemptReference = 300
	// accuracyBaseline is the overall accuracy treated as full confidence.
	accuracyBaseline = 0.80
	// promoteConfidence gates automatic promotion.
	promoteConfidence = 0.85
	// demoteAccuracy is the overall accuracy below which a demotion is
	// suggested.
	demoteAccuracy = 0.50
)

// CompetencyCheck is the audited outcome for one required competency.
type CompetencyCheck struct {
	Key         string  `json:"key"`
	Attempts    int     `json:"attempts"`
	MinAttempts int     `json:"min_attempts"`
	Accuracy    float64 `json:"accuracy"`
	MinAccuracy float64 `json:"min_accuracy"`
	Met         bool    `json:"met"`
}

// Evaluation is the full hard-requirement audit for one level.
type Evaluation struct {
	Competencies       []CompetencyCheck `json:"competencies"`
	OverallAccuracy    float64           `json:"overall_accuracy"`
	OverallAccuracyMet bool              `json:"overall_accuracy_met"`
	TotalAttempts      int               `json:"total_attempts"`
	TotalAttemptsMet   bool              `json:"total_attempts_met"`
	MeetsRequirements  bool              `json:"meets_requirements"`
}

// Eligibility is the result of a promotion eligibility check.
type Eligibility struct {
	UserID       string      `json:"user_id"`
	CurrentLevel level.Level `json:"current_level"`
	NextLevel    level.Level `json:"next_level"`
	Eligible     bool        `json:"eligible"`
	Confidence   float64     `json:"confidence"`
	Evaluation   Evaluation  `json:"evaluation"`
	GeneratedAt  time.Time   `json:"generated_at"`
}

// PromotionResult reports the outcome of a promotion attempt. Reason is a
// short machine-readable explanation when Promoted is false.
type PromotionResult struct {
	Promoted bool        `json:"promoted"`
	From     level.Level `json:"from"`
	To       level.Level `json:"to"`
	Reason   string      `json:"reason,omitempty"`
}

// Adjustment is an advisory level-change suggestion, never auto-applied.
type Adjustment struct {
	Suggested bool        `json:"suggested"`
	To        level.Level `json:"to"`
	Reason    string      `json:"reason,omitempty"`
}

// Engine runs the hard requirement checks and confidence-gated promotion.
type Engine struct {
	reader   competency.Reader
	table    *requirements.Table
	profiles *profile.Service
	log      *zap.SugaredLogger
	now      func() time.Time
}

// New creates a progression engine.
func New(reader competency.Reader, table *requirements.Table, profiles *profile.Service, log *zap.SugaredLogger) *Engine {
	if reader == nil {
		reader = competency.NopReader{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		reader:   reader,
		table:    table,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}
}

// EvaluateEligibility audits the learner's current level against the hard
// requirement table and computes a promotion confidence.
func (e *Engine) EvaluateEligibility(ctx context.Context, userID string) (*Eligibility, error) {
	p := e.profiles.Get(userID)
	out := &Eligibility{
		UserID:       userID,
		CurrentLevel: p.Level,
		NextLevel:    p.Level.Next(),
		GeneratedAt:  e.now(),
	}
	if p.Level.IsTerminal() {
		return out, nil
	}

	reqs, err := e.table.ForLevel(p.Level)
	if err != nil {
		return nil, err
	}
	stats, err := e.reader.Stats(ctx, userID)
	if err != nil {
		e.log.Warnw("competency stats unavailable", "user", userID, "err", err)
		stats = map[competency.Key]*competency.Stat{}
	}

	out.Evaluation = audit(reqs, stats)
	out.Confidence = confidence(reqs, out.Evaluation, stats)
	out.Eligible = out.Evaluation.MeetsRequirements && out.Confidence >= promoteConfidence
	return out, nil
}

// audit checks every hard requirement exactly.
func audit(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) Evaluation {
	ev := Evaluation{}
	totalAttempts, totalCorrect := 0, 0
	allMet := true
	for _, req := range reqs.Competencies {
		check := CompetencyCheck{
			Key:         req.Key.String(),
			MinAttempts: req.MinAttempts,
			MinAccuracy: req.MinAccuracy,
		}
		if stat, ok := stats[req.Key]; ok {
			check.Attempts = stat.Attempts
			check.Accuracy = stat.Accuracy()
			totalAttempts += stat.Attempts
			totalCorrect += stat.Correct
		}
		check.Met = check.Attempts >= req.MinAttempts && check.Accuracy >= req.MinAccuracy
		allMet = allMet && check.Met
		ev.Competencies = append(ev.Competencies, check)
	}

	if totalAttempts > 0 {
		ev.OverallAccuracy = float64(totalCorrect) / float64(totalAttempts)
	}
	ev.OverallAccuracyMet = ev.OverallAccuracy >= reqs.RequiredOverallAccuracy
	ev.TotalAttempts = totalAttempts
	ev.TotalAttemptsMet = totalAttempts >= reqs.MinTotalAttempts
	ev.MeetsRequirements = allMet && ev.OverallAccuracyMet && ev.TotalAttemptsMet
	return ev
}

// confidence blends attempt volume against the reference point, overall
// accuracy against the baseline, and the mean margin by which each
// competency clears its own threshold.
func confidence(reqs requirements.LevelRequirements, ev Evaluation, stats map[competency.Key]*competency.Stat) float64 {
	volume := math.Min(float64(ev.TotalAttempts)/attemptReference, 1)
	accuracy := math.Min(ev.OverallAccuracy/accuracyBaseline, 1)

	var margin float64
	if len(reqs.Competencies) > 0 {
		var sum float64
		for _, req := range reqs.Competencies {
			stat, ok := stats[req.Key]
			if !ok || stat.Attempts == 0 || req.MinAccuracy >= 1 {
				continue
			}
			m := (stat.Accuracy() - req.MinAccuracy) / (1 - req.MinAccuracy)
			sum += math.Max(0, math.Min(1, m))
		}
		margin = sum / float64(len(reqs.Competencies))
	}

	return (volume + accuracy + margin) / 3
}

// AttemptPromotion promotes the learner to the next level when the hard
// requirements are met, confidence clears the gate, and no manual override
// is in place. The transition is recorded with the automatic_promotion
// reason, which also resets stored progress for the new level.
func (e *Engine) AttemptPromotion(ctx context.Context, userID string) (*PromotionResult, error) {
	p := e.profiles.Get(userID)
	result := &PromotionResult{From: p.Level, To: p.Level}

	if p.Level.IsTerminal() {
		result.Reason = "already at the highest level"
		return result, nil
	}
	if p.ManualOverride {
		result.Reason = "manual override in place"
		return result, nil
	}

	elig, err := e.EvaluateEligibility(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !elig.Evaluation.MeetsRequirements {
		result.Reason = "requirements not met"
		return result, nil
	}
	if elig.Confidence < promoteConfidence {
		result.Reason = "confidence below threshold"
		return result, nil
	}

	next := p.Level.Next()
	if err := e.profiles.SetLevel(ctx, userID, next, profile.ReasonAutomaticPromotion); err != nil {
		return nil, err
	}
	result.Promoted = true
	result.To = next
	e.log.Infow("automatic promotion", "user", userID, "from", result.From, "to", next, "confidence", elig.Confidence)
	return result, nil
}

// SuggestAdjustment recommends a demotion when overall accuracy has fallen
// far enough, advisory only.
func (e *Engine) SuggestAdjustment(ctx context.Context, userID string) (*Adjustment, error) {
	p := e.profiles.Get(userID)
	out := &Adjustment{To: p.Level}
	if p.Level == level.A1 {
		return out, nil
	}

	stats, err := e.reader.Stats(ctx, userID)
	if err != nil {
		e.log.Warnw("competency stats unavailable", "user", userID, "err", err)
		return out, nil
	}
	attempts, correct := 0, 0
	for _, stat := range stats {
		attempts += stat.Attempts
		correct += stat.Correct
	}
	if attempts == 0 {
		return out, nil
	}
	if acc := float64(correct) / float64(attempts); acc < demoteAccuracy {
		out.Suggested = true
		out.To = p.Level.Prev()
		out.Reason = "overall accuracy below 50%"
	}
	return out, nil
}
