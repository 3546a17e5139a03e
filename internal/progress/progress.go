// Package progress computes the smoothed 0-100 progress-within-level
// percentage from competency, mastery, coverage and consistency components.
package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/evaluator"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/requirements"
	"github.com/abhisek/conjugo/internal/ttlcache"
)

// Component weights. They must sum to 1.0 exactly.
const (
	weightCompetencies = 0.40
	weightMastery      = 0.30
	weightCoverage     = 0.20
	weightConsistency  = 0.10
)

// Smoothing parameters. A fresh result only moves the displayed percent by
// the smoothing factor, and a single bad session can never drop it by more
// than maxDailyDrop points.
const (
	smoothingFactor = 0.15
	maxDailyDrop    = 5.0
)

// cacheTTL bounds how stale a cached report may be.
const cacheTTL = 2 * time.Minute

// Component is one scored progress component with an explanatory detail.
type Component struct {
	Score  float64 `json:"score"`
	Detail string  `json:"detail"`
}

// Components holds the four weighted progress components, each on a 0-100
// scale.
type Components struct {
	Competencies Component `json:"competencies"`
	Mastery      Component `json:"mastery"`
	Coverage     Component `json:"coverage"`
	Consistency  Component `json:"consistency"`
}

// Area is a competency singled out as notably strong or weak.
type Area struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
	Attempts int     `json:"attempts"`
}

// Report is the calculator's output. OverallPercent is the smoothed value
// that also mirrors into the profile; RawPercent is the unsmoothed sum.
type Report struct {
	Level               level.Level `json:"level"`
	OverallPercent      float64     `json:"overall_percent"`
	RawPercent          float64     `json:"raw_percent"`
	Components          Components  `json:"components"`
	MissingCompetencies []string    `json:"missing_competencies"`
	StrongestAreas      []Area      `json:"strongest_areas"`
	WeakestAreas        []Area      `json:"weakest_areas"`
	NextMilestones      []string    `json:"next_milestones"`
	GeneratedAt         time.Time   `json:"generated_at"`
}

// Calculator computes progress reports. The evaluator supplies the
// consistency component and may be nil, in which case consistency defaults
// to its midpoint.
type Calculator struct {
	reader   competency.Reader
	table    *requirements.Table
	eval     *evaluator.Evaluator
	profiles *profile.Service
	cache    *ttlcache.Cache[*Report]
	log      *zap.SugaredLogger
	now      func() time.Time
}

// New creates a calculator.
func New(reader competency.Reader, table *requirements.Table, eval *evaluator.Evaluator, profiles *profile.Service, log *zap.SugaredLogger) *Calculator {
	if reader == nil {
		reader = competency.NopReader{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Calculator{
		reader:   reader,
		table:    table,
		eval:     eval,
		profiles: profiles,
		cache:    ttlcache.New[*Report](cacheTTL),
		log:      log,
		now:      time.Now,
	}
}

// InvalidateCache drops all cached reports.
func (c *Calculator) InvalidateCache() {
	c.cache.Clear()
}

// Calculate computes the learner's progress within lvl, smooths it against
// the previously stored percent, and mirrors the result into the profile
// when lvl is the learner's current level.
func (c *Calculator) Calculate(ctx context.Context, userID string, lvl level.Level) (*Report, error) {
	if !lvl.Valid() {
		return nil, fmt.Errorf("%w: %d", level.ErrUnknownLevel, int(lvl))
	}

	cacheKey := userID + "|" + lvl.String()
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached, nil
	}

	reqs, err := c.table.ForLevel(lvl)
	if err != nil {
		return nil, err
	}

	stats, err := c.reader.Stats(ctx, userID)
	if err != nil {
		c.log.Warnw("competency stats unavailable", "user", userID, "err", err)
		stats = map[competency.Key]*competency.Stat{}
	}

	comps := Components{
		Competencies: competenciesComponent(reqs, stats),
		Mastery:      masteryComponent(reqs, stats),
		Coverage:     coverageComponent(reqs, stats),
		Consistency:  c.consistencyComponent(ctx, userID, lvl),
	}
	raw := weightCompetencies*comps.Competencies.Score +
		weightMastery*comps.Mastery.Score +
		weightCoverage*comps.Coverage.Score +
		weightConsistency*comps.Consistency.Score

	overall := c.smooth(userID, lvl, raw)

	missing := missingCompetencies(reqs, stats)
	weakest := weakestAreas(stats)
	report := &Report{
		Level:               lvl,
		OverallPercent:      overall,
		RawPercent:          raw,
		Components:          comps,
		MissingCompetencies: missing,
		StrongestAreas:      strongestAreas(stats),
		WeakestAreas:        weakest,
		NextMilestones:      milestones(missing, weakest, overall),
		GeneratedAt:         c.now(),
	}
	c.cache.Set(cacheKey, report)
	return report, nil
}

// consistencyComponent pulls the consistency factor from the level-fit
// evaluator, defaulting to the midpoint when no evaluation is available.
func (c *Calculator) consistencyComponent(ctx context.Context, userID string, lvl level.Level) Component {
	if c.eval == nil {
		return Component{Score: 50, Detail: "No consistency data available yet."}
	}
	report, err := c.eval.Evaluate(ctx, userID, lvl)
	if err != nil || report.Fallback {
		return Component{Score: 50, Detail: "No consistency data available yet."}
	}
	return Component{
		Score:  report.Factors.Consistency * 100,
		Detail: "Day-to-day steadiness of your recent accuracy.",
	}
}

// smooth blends the raw percent with the previously stored value and stores
// the result. The first calculation for a user/level is reported unsmoothed.
func (c *Calculator) smooth(userID string, lvl level.Level, raw float64) float64 {
	raw = clampPercent(raw)
	if c.profiles == nil {
		return raw
	}
	p := c.profiles.Get(userID)
	mirror := p.Level == lvl

	out := raw
	if mirror && p.HasProgress() {
		prev := p.ProgressPercent
		out = prev*(1-smoothingFactor) + raw*smoothingFactor
		if floor := prev - maxDailyDrop; out < floor {
			out = floor
		}
		out = clampPercent(out)
	}
	if mirror {
		c.profiles.SetProgress(userID, out)
	}
	return out
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
