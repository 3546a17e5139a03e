// Package recommend synthesizes prioritized, de-duplicated suggestions from
// the level evaluator, the progress calculator and the learner's profile.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/conjugo/internal/evaluator"
	"github.com/abhisek/conjugo/internal/logging"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/progress"
	"github.com/abhisek/conjugo/internal/ttlcache"
)

// Category is one of the five fixed recommendation categories.
type Category string

const (
	CategoryLevelChange          Category = "level_change"
	CategoryCompetencyGap        Category = "competency_gap"
	CategoryPracticeOptimization Category = "practice_optimization"
	CategoryMotivational         Category = "motivational"
	CategoryMaintenance          Category = "maintenance"
)

// categoryWeight ranks categories against each other in the score formula.
var categoryWeight = map[Category]float64{
	CategoryLevelChange:          1.0,
	CategoryCompetencyGap:        0.9,
	CategoryPracticeOptimization: 0.7,
	CategoryMaintenance:          0.6,
	CategoryMotivational:         0.5,
}

// Priority levels and their score multipliers.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityMultiplier = map[Priority]float64{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Impact levels and their score multipliers.
type Impact string

const (
	ImpactHigh         Impact = "high"
	ImpactMedium       Impact = "medium"
	ImpactLow          Impact = "low"
	ImpactMotivational Impact = "motivational"
)

var impactMultiplier = map[Impact]float64{
	ImpactHigh:         2,
	ImpactMedium:       1.5,
	ImpactLow:          1,
	ImpactMotivational: 0.8,
}

// actionableBoost rewards recommendations the learner can act on directly.
const actionableBoost = 1.2

// maxRecommendations caps the returned list.
const maxRecommendations = 8

// cooldownWindow keeps an already-shown recommendation id from resurfacing.
const cooldownWindow = 24 * time.Hour

// cacheTTL bounds how stale a cached set may be.
const cacheTTL = 10 * time.Minute

// Recommendation is one ranked suggestion. The ID is stable per underlying
// condition and drives both de-duplication and the 24h cooldown.
type Recommendation struct {
	ID              string            `json:"id"`
	Category        Category          `json:"category"`
	Priority        Priority          `json:"priority"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Actionable      bool              `json:"actionable"`
	Actions         []string          `json:"actions,omitempty"`
	EstimatedImpact Impact            `json:"estimated_impact"`
	Score           float64           `json:"score"`
	Data            map[string]string `json:"data,omitempty"`
}

// Set is the ranked output of one Generate call.
type Set struct {
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// Options tune a Generate call. The zero value means the full list.
type Options struct {
	// Limit caps the result below the hard maximum when positive.
	Limit int
}

func (o Options) limit() int {
	if o.Limit > 0 && o.Limit < maxRecommendations {
		return o.Limit
	}
	return maxRecommendations
}

func (o Options) hash() string {
	return fmt.Sprintf("l%d", o.limit())
}

// Engine generates recommendation sets.
type Engine struct {
	profiles *profile.Service
	eval     *evaluator.Evaluator
	calc     *progress.Calculator
	cache    *ttlcache.Cache[*Set]
	log      *zap.SugaredLogger
	now      func() time.Time

	mu    sync.Mutex
	shown map[string]time.Time // userID|id -> last shown
}

// New creates a recommendation engine.
func New(profiles *profile.Service, eval *evaluator.Evaluator, calc *progress.Calculator, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		profiles: profiles,
		eval:     eval,
		calc:     calc,
		cache:    ttlcache.New[*Set](cacheTTL),
		log:      log,
		now:      time.Now,
		shown:    make(map[string]time.Time),
	}
}

// InvalidateCache drops all cached sets. The cooldown map is not a cache
// and survives invalidation.
func (e *Engine) InvalidateCache() {
	e.cache.Clear()
}

// Generate produces the ranked recommendation set for the learner: category
// rules emit candidates, each is scored, then the list is sorted, de-duped,
// cooldown-filtered and truncated.
func (e *Engine) Generate(ctx context.Context, userID string, opts Options) (*Set, error) {
	cacheKey := userID + "|" + opts.hash()
	if cached, ok := e.cache.Get(cacheKey); ok {
		return cached, nil
	}

	p := e.profiles.Get(userID)

	var evalReport *evaluator.Report
	if e.eval != nil {
		r, err := e.eval.Evaluate(ctx, userID, p.Level)
		if err != nil {
			e.log.Warnw("evaluation unavailable for recommendations", "user", userID, "err", err)
		} else {
			evalReport = r
		}
	}
	var progReport *progress.Report
	if e.calc != nil {
		r, err := e.calc.Calculate(ctx, userID, p.Level)
		if err != nil {
			e.log.Warnw("progress unavailable for recommendations", "user", userID, "err", err)
		} else {
			progReport = r
		}
	}

	candidates := e.candidates(p, evalReport, progReport)
	for i := range candidates {
		candidates[i].Score = score(candidates[i])
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})

	final := e.filter(userID, candidates, opts.limit())

	set := &Set{UserID: userID, Recommendations: final, GeneratedAt: e.now()}
	e.cache.Set(cacheKey, set)
	return set, nil
}

func score(r Recommendation) float64 {
	s := categoryWeight[r.Category] * priorityMultiplier[r.Priority] * impactMultiplier[r.EstimatedImpact]
	if r.Actionable {
		s *= actionableBoost
	}
	return s
}

// filter de-duplicates by id, drops ids shown within the cooldown window,
// truncates, and records the survivors as shown.
func (e *Engine) filter(userID string, candidates []Recommendation, limit int) []Recommendation {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	seen := make(map[string]bool)
	out := make([]Recommendation, 0, limit)
	for _, r := range candidates {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		if shownAt, ok := e.shown[userID+"|"+r.ID]; ok && now.Sub(shownAt) < cooldownWindow {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	for _, r := range out {
		e.shown[userID+"|"+r.ID] = now
	}
	return out
}
