package recommend

import (
	"fmt"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/evaluator"
	"github.com/abhisek/conjugo/internal/profile"
	"github.com/abhisek/conjugo/internal/progress"
)

// levelChangeConfidence is the evaluation confidence a level-up
// recommendation requires.
const levelChangeConfidence = 0.85

// maxGapRecommendations caps competency-gap suggestions per set.
const maxGapRecommendations = 3

// candidates runs every category rule. Reports may be nil; the rules that
// depend on them are then skipped.
func (e *Engine) candidates(p *profile.Profile, eval *evaluator.Report, prog *progress.Report) []Recommendation {
	var out []Recommendation
	out = append(out, levelChangeRules(p, eval)...)
	out = append(out, competencyGapRules(prog)...)
	out = append(out, practiceOptimizationRules(eval)...)
	out = append(out, motivationalRules(prog)...)
	out = append(out, maintenanceRules(prog)...)
	return out
}

func levelChangeRules(p *profile.Profile, eval *evaluator.Report) []Recommendation {
	if eval == nil || eval.Fallback {
		return nil
	}
	switch {
	case eval.EffectiveLevel > eval.DeclaredLevel && eval.Confidence >= levelChangeConfidence:
		to := eval.EffectiveLevel
		return []Recommendation{{
			ID:              "level-up-" + to.String(),
			Category:        CategoryLevelChange,
			Priority:        PriorityHigh,
			Title:           fmt.Sprintf("Ready for %s", to.DisplayName()),
			Description:     fmt.Sprintf("Your recent results look stronger than %s. Try moving up to %s.", eval.DeclaredLevel.DisplayName(), to.DisplayName()),
			Actionable:      true,
			Actions:         []string{fmt.Sprintf("Set your level to %s", to)},
			EstimatedImpact: ImpactHigh,
		}}
	case eval.EffectiveLevel < eval.DeclaredLevel:
		to := eval.EffectiveLevel
		return []Recommendation{{
			ID:              "level-review-" + to.String(),
			Category:        CategoryLevelChange,
			Priority:        PriorityMedium,
			Title:           "Consider reviewing earlier material",
			Description:     fmt.Sprintf("Your results at %s have been shaky. Some %s review could help.", eval.DeclaredLevel.DisplayName(), to.DisplayName()),
			Actionable:      true,
			Actions:         []string{fmt.Sprintf("Practice %s material", to)},
			EstimatedImpact: ImpactMedium,
		}}
	}
	return nil
}

func competencyGapRules(prog *progress.Report) []Recommendation {
	if prog == nil {
		return nil
	}
	missing := prog.MissingCompetencies
	if len(missing) > maxGapRecommendations {
		missing = missing[:maxGapRecommendations]
	}
	out := make([]Recommendation, 0, len(missing))
	for i, raw := range missing {
		name := raw
		if key, err := competency.ParseKey(raw); err == nil {
			name = key.DisplayName()
		}
		priority := PriorityMedium
		if i == 0 {
			priority = PriorityHigh
		}
		out = append(out, Recommendation{
			ID:              "gap-" + raw,
			Category:        CategoryCompetencyGap,
			Priority:        priority,
			Title:           fmt.Sprintf("Work on %s", name),
			Description:     fmt.Sprintf("%s is still below the bar for %s.", name, prog.Level.DisplayName()),
			Actionable:      true,
			Actions:         []string{fmt.Sprintf("Practice %s", name)},
			EstimatedImpact: ImpactHigh,
			Data:            map[string]string{"competency": raw},
		})
	}
	return out
}

func practiceOptimizationRules(eval *evaluator.Report) []Recommendation {
	if eval == nil || eval.Fallback {
		return nil
	}
	var out []Recommendation
	if eval.Factors.ResponseTime > 0 && eval.Factors.ResponseTime < 0.5 {
		out = append(out, Recommendation{
			ID:              "optimize-speed",
			Category:        CategoryPracticeOptimization,
			Priority:        PriorityMedium,
			Title:           "Build up your answer speed",
			Description:     "You answer correctly but slowly. Timed drills can make conjugations automatic.",
			Actionable:      true,
			Actions:         []string{"Run a timed practice session"},
			EstimatedImpact: ImpactMedium,
		})
	}
	if eval.Factors.Consistency == 0 {
		out = append(out, Recommendation{
			ID:              "optimize-regularity",
			Category:        CategoryPracticeOptimization,
			Priority:        PriorityMedium,
			Title:           "Practice a little every day",
			Description:     "Short daily sessions beat occasional long ones for retention.",
			Actionable:      true,
			Actions:         []string{"Practice at least once a day this week"},
			EstimatedImpact: ImpactMedium,
		})
	}
	return out
}

func motivationalRules(prog *progress.Report) []Recommendation {
	if prog == nil {
		return nil
	}
	switch {
	case prog.OverallPercent >= 70:
		return []Recommendation{{
			ID:              "motivate-almost-there",
			Category:        CategoryMotivational,
			Priority:        PriorityLow,
			Title:           "Almost there",
			Description:     fmt.Sprintf("You are %.0f%% of the way through %s. Keep it up.", prog.OverallPercent, prog.Level.DisplayName()),
			EstimatedImpact: ImpactMotivational,
		}}
	case prog.OverallPercent > 0 && prog.OverallPercent < 30:
		return []Recommendation{{
			ID:              "motivate-getting-started",
			Category:        CategoryMotivational,
			Priority:        PriorityLow,
			Title:           "Every session counts",
			Description:     "Progress early in a level is the slowest part. Small steps add up.",
			EstimatedImpact: ImpactMotivational,
		}}
	}
	return nil
}

func maintenanceRules(prog *progress.Report) []Recommendation {
	if prog == nil || len(prog.StrongestAreas) == 0 {
		return nil
	}
	area := prog.StrongestAreas[0]
	return []Recommendation{{
		ID:              "maintain-" + area.Key,
		Category:        CategoryMaintenance,
		Priority:        PriorityLow,
		Title:           fmt.Sprintf("Keep %s sharp", area.Name),
		Description:     "Strong skills fade without occasional review.",
		Actionable:      true,
		Actions:         []string{fmt.Sprintf("Do a quick %s refresher", area.Name)},
		EstimatedImpact: ImpactLow,
		Data:            map[string]string{"competency": area.Key},
	}}
}
