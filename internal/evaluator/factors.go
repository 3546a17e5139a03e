package evaluator

import (
	"math"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/requirements"
)

// accuracyFactor is the attempt-weighted accuracy across the level's
// required competencies. Each competency's ratio is capped at 1 relative to
// its own threshold, and a competency without its minimum attempts
// contributes 0 while still counting toward the weight total. A level with
// no requirements scores 1; there is nothing left to demonstrate.
func accuracyFactor(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) float64 {
	if len(reqs.Competencies) == 0 {
		return 1
	}
	var weighted, totalWeight float64
	for _, req := range reqs.Competencies {
		weight := float64(req.MinAttempts)
		totalWeight += weight
		stat, ok := stats[req.Key]
		if !ok || stat.Attempts < req.MinAttempts {
			continue
		}
		ratio := stat.Accuracy() / req.MinAccuracy
		weighted += weight * math.Min(ratio, 1)
	}
	if totalWeight == 0 {
		return 1
	}
	return weighted / totalWeight
}

// consistencyFactor measures how steady the last week's per-day accuracy
// has been: 1 minus the normalized standard deviation of the daily points.
// Fewer than minConsistencyPoints points means no signal, which scores 0.
func consistencyFactor(timeline []competency.DailyPoint) float64 {
	if len(timeline) < minConsistencyPoints {
		return 0
	}
	accs := make([]float64, 0, len(timeline))
	var sum float64
	for _, p := range timeline {
		if p.Attempts == 0 {
			continue
		}
		accs = append(accs, p.Accuracy)
		sum += p.Accuracy
	}
	if len(accs) < minConsistencyPoints {
		return 0
	}
	mean := sum / float64(len(accs))
	var variance float64
	for _, acc := range accs {
		d := acc - mean
		variance += d * d
	}
	variance /= float64(len(accs))
	// 0.5 is the largest possible stddev for values in [0,1].
	normalized := math.Sqrt(variance) / 0.5
	return clamp01(1 - normalized)
}

// responseTimeFactor compares the user's average response time against the
// expectation for the declared level. Faster than expected saturates at 1;
// no recorded responses score 0.
func responseTimeFactor(declared level.Level, avgMs float64) float64 {
	if avgMs <= 0 {
		return 0
	}
	expected := float64(declared.ExpectedResponseTimeMs())
	return math.Min(expected/avgMs, 1)
}

// coverageFactor is the fraction of required competencies the user has
// meaningfully engaged with, where meaningful means at least half the
// required minimum attempts.
func coverageFactor(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) float64 {
	if len(reqs.Competencies) == 0 {
		return 1
	}
	var engaged int
	for _, req := range reqs.Competencies {
		threshold := (req.MinAttempts + 1) / 2
		if stat, ok := stats[req.Key]; ok && stat.Attempts >= threshold {
			engaged++
		}
	}
	return float64(engaged) / float64(len(reqs.Competencies))
}

// confidenceFactor maps the 0-100 analytics confidence onto 0-1, defaulting
// when the signal is absent.
func confidenceFactor(score float64) float64 {
	if score <= 0 {
		return defaultConfidence
	}
	return clamp01(score / 100)
}

// weightedScore folds the five factors into the single score that drives
// level movement.
func weightedScore(f FactorScores) float64 {
	return weightAccuracy*f.Accuracy +
		weightConsistency*f.Consistency +
		weightResponseTime*f.ResponseTime +
		weightCoverage*f.Coverage +
		weightConfidence*f.Confidence
}

// dataConfidence blends factor availability into the report confidence: a
// factor that produced a real signal counts as 1, a silent one as 0.5,
// combined with the same weights as the score itself.
func dataConfidence(f FactorScores) float64 {
	avail := func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0.5
	}
	return weightAccuracy*avail(f.Accuracy) +
		weightConsistency*avail(f.Consistency) +
		weightResponseTime*avail(f.ResponseTime) +
		weightCoverage*avail(f.Coverage) +
		weightConfidence*avail(f.Confidence)
}

// stability blends day-to-day consistency with breadth of practice.
func stability(consistency float64, practiced int) float64 {
	breadth := math.Min(float64(practiced)/8, 1)
	return 0.6*consistency + 0.4*breadth
}

// adviceFor produces the short human-readable notes attached to a report.
// The full recommendation engine lives elsewhere; these are one-liners.
func adviceFor(declared, effective level.Level, f FactorScores) []string {
	var out []string
	switch {
	case effective > declared:
		out = append(out, "You are performing above your level; consider moving up.")
	case effective < declared:
		out = append(out, "Your results suggest reviewing material at this level.")
	}
	if f.Accuracy == 0 {
		out = append(out, "Practice the competencies required for your level.")
	}
	if f.Consistency == 0 {
		out = append(out, "Practice on more days to build a consistent record.")
	}
	if f.Coverage < 0.5 {
		out = append(out, "Broaden your practice across more moods and tenses.")
	}
	if len(out) == 0 {
		out = append(out, "Keep practicing at your current level.")
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
