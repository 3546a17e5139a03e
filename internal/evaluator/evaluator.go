// Package evaluator implements the soft, weighted level-fit model. It is
// probabilistic and advisory; the hard rule-based check lives in the
// progression package and the two are kept deliberately separate.
package evaluator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/requirements"
	"github.com/abhisek/conjugo/internal/ttlcache"
)

// Factor weights. They must sum to 1.0 exactly; see TestWeightsSumToOne.
const (
	weightAccuracy     = 0.35
	weightConsistency  = 0.25
	weightResponseTime = 0.15
	weightCoverage     = 0.15
	weightConfidence   = 0.10
)

// Movement thresholds on the weighted score.
const (
	promoteThreshold = 0.85
	demoteThreshold  = 0.60
)

// minConsistencyPoints is the fewest recent daily points the consistency
// factor needs before it scores above 0.
const minConsistencyPoints = 3

// defaultConfidence substitutes for an absent system confidence signal.
const defaultConfidence = 0.5

// cacheTTL bounds how stale a cached report may be.
const cacheTTL = 5 * time.Minute

// FactorScores holds the five normalized factor values.
type FactorScores struct {
	Accuracy     float64 `json:"accuracy"`
	Consistency  float64 `json:"consistency"`
	ResponseTime float64 `json:"response_time"`
	Coverage     float64 `json:"coverage"`
	Confidence   float64 `json:"confidence"`
}

// Report is the evaluator's output. Confidence reflects data availability
// and is deliberately not the same number as the weighted score that drives
// level movement.
type Report struct {
	DeclaredLevel   level.Level  `json:"declared_level"`
	EffectiveLevel  level.Level  `json:"effective_level"`
	Score           float64      `json:"score"`
	Confidence      float64      `json:"confidence"`
	Stability       float64      `json:"stability"`
	Factors         FactorScores `json:"factors"`
	Recommendations []string     `json:"recommendations"`
	Fallback        bool         `json:"fallback,omitempty"`
	GeneratedAt     time.Time    `json:"generated_at"`
}

// Evaluator computes level-fit reports from competency data. Construct one
// per composition root; it owns its cache rather than sharing process state.
type Evaluator struct {
	reader competency.Reader
	table  *requirements.Table
	cache  *ttlcache.Cache[*Report]
	log    *zap.SugaredLogger
	now    func() time.Time
}

// New creates an evaluator. A nil reader degrades every report to the
// low-confidence fallback.
func New(reader competency.Reader, table *requirements.Table, log *zap.SugaredLogger) *Evaluator {
	if reader == nil {
		reader = competency.NopReader{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Evaluator{
		reader: reader,
		table:  table,
		cache:  ttlcache.New[*Report](cacheTTL),
		log:    log,
		now:    time.Now,
	}
}

// InvalidateCache drops all cached reports. Called on the write path after
// new attempts are recorded.
func (e *Evaluator) InvalidateCache() {
	e.cache.Clear()
}

// Evaluate computes the level-fit report for userID at the declared level.
// An unknown level is a hard error; missing or unavailable data degrades to
// defaults instead.
func (e *Evaluator) Evaluate(ctx context.Context, userID string, declared level.Level) (*Report, error) {
	if !declared.Valid() {
		return nil, fmt.Errorf("%w: %d", level.ErrUnknownLevel, int(declared))
	}

	cacheKey := userID + "|" + declared.String()
	if cached, ok := e.cache.Get(cacheKey); ok {
		return cached, nil
	}

	reqs, err := e.table.ForLevel(declared)
	if err != nil {
		return nil, err
	}

	stats, err := e.reader.Stats(ctx, userID)
	if err != nil {
		e.log.Warnw("competency stats unavailable", "user", userID, "err", err)
		return e.fallback(declared), nil
	}
	analytics, err := e.reader.Analytics(ctx, userID)
	if err != nil {
		e.log.Warnw("analytics unavailable", "user", userID, "err", err)
		return e.fallback(declared), nil
	}

	factors := FactorScores{
		Accuracy:     accuracyFactor(reqs, stats),
		Consistency:  consistencyFactor(analytics.Timeline),
		ResponseTime: responseTimeFactor(declared, analytics.AvgResponseTimeMs),
		Coverage:     coverageFactor(reqs, stats),
		Confidence:   confidenceFactor(analytics.Confidence),
	}

	score := weightedScore(factors)

	effective := declared
	switch {
	case score >= promoteThreshold:
		effective = declared.Next()
	case score < demoteThreshold:
		effective = declared.Prev()
	}

	report := &Report{
		DeclaredLevel:   declared,
		EffectiveLevel:  effective,
		Score:           score,
		Confidence:      dataConfidence(factors),
		Stability:       stability(factors.Consistency, len(stats)),
		Factors:         factors,
		Recommendations: adviceFor(declared, effective, factors),
		GeneratedAt:     e.now(),
	}
	e.cache.Set(cacheKey, report)
	return report, nil
}

// fallback is the degraded report when upstream data cannot be read: every
// factor at 0.5, low confidence, no level movement.
func (e *Evaluator) fallback(declared level.Level) *Report {
	return &Report{
		DeclaredLevel:  declared,
		EffectiveLevel: declared,
		Score:          0.5,
		Confidence:     0.5,
		Stability:      0.5,
		Factors: FactorScores{
			Accuracy: 0.5, Consistency: 0.5, ResponseTime: 0.5,
			Coverage: 0.5, Confidence: 0.5,
		},
		Recommendations: []string{"Practice more so we can evaluate your level."},
		Fallback:        true,
		GeneratedAt:     e.now(),
	}
}
