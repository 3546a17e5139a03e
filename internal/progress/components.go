package progress

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/requirements"
)

// attemptBonusCap limits how much extra-attempt volume can inflate a single
// competency's score.
const attemptBonusCap = 2.0

// partialScoreCap bounds the score of a required competency that has some
// attempts but not yet its required minimum.
const partialScoreCap = 60.0

// masteryBonusPerMet is the flat bonus added to the mastery component for
// each required competency already meeting its threshold.
const masteryBonusPerMet = 5.0

// Coverage component split: practiced-count ratio worth up to 70 points,
// mood/tense diversity worth up to 30.
const (
	coverageRatioCap     = 70.0
	coverageDiversityCap = 30.0
)

// competenciesComponent averages per-required-competency scores. A
// competency with its minimum attempts scores on accuracy ratio times an
// attempt bonus; one with some attempts gets a capped partial score; one
// never practiced scores 0.
func competenciesComponent(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) Component {
	if len(reqs.Competencies) == 0 {
		return Component{Score: 100, Detail: "No further competencies required at this level."}
	}
	var sum float64
	met := 0
	for _, req := range reqs.Competencies {
		stat, ok := stats[req.Key]
		switch {
		case !ok || stat.Attempts == 0:
			// contributes 0
		case stat.Attempts >= req.MinAttempts:
			ratio := stat.Accuracy() / req.MinAccuracy
			bonus := math.Min(float64(stat.Attempts)/float64(req.MinAttempts), attemptBonusCap)
			sum += math.Min(ratio*bonus, 1) * 100
			met++
		default:
			ratio := stat.Accuracy() / req.MinAccuracy
			partial := ratio * float64(stat.Attempts) / float64(req.MinAttempts) * 100
			sum += math.Min(partial, partialScoreCap)
		}
	}
	score := sum / float64(len(reqs.Competencies))
	return Component{
		Score:  score,
		Detail: fmt.Sprintf("%d of %d required competencies at full score.", met, len(reqs.Competencies)),
	}
}

// masteryComponent is the attempt-weighted accuracy across every practiced
// competency, with a flat bonus per required competency already meeting its
// threshold.
func masteryComponent(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) Component {
	var weighted float64
	totalAttempts := 0
	for _, stat := range stats {
		weighted += stat.Accuracy() * float64(stat.Attempts)
		totalAttempts += stat.Attempts
	}
	var score float64
	if totalAttempts > 0 {
		score = weighted / float64(totalAttempts) * 100
	}

	met := 0
	for _, req := range reqs.Competencies {
		if stat, ok := stats[req.Key]; ok && meets(req, stat) {
			met++
		}
	}
	score = math.Min(score+float64(met)*masteryBonusPerMet, 100)
	return Component{
		Score:  score,
		Detail: fmt.Sprintf("Weighted accuracy across %d practiced competencies.", len(stats)),
	}
}

// coverageComponent rewards practicing the level's required competencies
// plus a diversity bonus for spreading practice across moods and tenses.
func coverageComponent(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) Component {
	var ratioPart float64
	if len(reqs.Competencies) == 0 {
		ratioPart = coverageRatioCap
	} else {
		practiced := 0
		for _, req := range reqs.Competencies {
			if stat, ok := stats[req.Key]; ok && stat.Attempts > 0 {
				practiced++
			}
		}
		ratioPart = math.Min(float64(practiced)/float64(len(reqs.Competencies)), 1) * coverageRatioCap
	}

	moods := make(map[competency.Mood]bool)
	tenses := make(map[competency.Tense]bool)
	for k, stat := range stats {
		if stat.Attempts > 0 {
			moods[k.Mood] = true
			tenses[k.Tense] = true
		}
	}
	diversity := math.Min(float64(len(moods))/4, 1)*coverageDiversityCap/2 +
		math.Min(float64(len(tenses))/6, 1)*coverageDiversityCap/2

	return Component{
		Score:  ratioPart + diversity,
		Detail: fmt.Sprintf("Practicing %d moods and %d tenses.", len(moods), len(tenses)),
	}
}

func meets(req requirements.CompetencyRequirement, stat *competency.Stat) bool {
	return stat.Attempts >= req.MinAttempts && stat.Accuracy() >= req.MinAccuracy
}

// missingCompetencies lists required competencies still below threshold.
func missingCompetencies(reqs requirements.LevelRequirements, stats map[competency.Key]*competency.Stat) []string {
	var out []string
	for _, req := range reqs.Competencies {
		stat, ok := stats[req.Key]
		if !ok || !meets(req, stat) {
			out = append(out, req.Key.String())
		}
	}
	return out
}

// strongestAreas returns up to three well-established strong competencies.
func strongestAreas(stats map[competency.Key]*competency.Stat) []Area {
	var areas []Area
	for k, stat := range stats {
		if stat.Attempts >= 10 && stat.Accuracy() >= 0.85 {
			areas = append(areas, Area{Key: k.String(), Name: k.DisplayName(), Accuracy: stat.Accuracy(), Attempts: stat.Attempts})
		}
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Accuracy != areas[j].Accuracy {
			return areas[i].Accuracy > areas[j].Accuracy
		}
		return areas[i].Key < areas[j].Key
	})
	return truncate(areas, 3)
}

// weakestAreas returns up to three practiced-but-weak competencies.
func weakestAreas(stats map[competency.Key]*competency.Stat) []Area {
	var areas []Area
	for k, stat := range stats {
		if stat.Attempts >= 5 {
			areas = append(areas, Area{Key: k.String(), Name: k.DisplayName(), Accuracy: stat.Accuracy(), Attempts: stat.Attempts})
		}
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Accuracy != areas[j].Accuracy {
			return areas[i].Accuracy < areas[j].Accuracy
		}
		return areas[i].Key < areas[j].Key
	})
	return truncate(areas, 3)
}

func truncate(areas []Area, n int) []Area {
	if len(areas) > n {
		return areas[:n]
	}
	return areas
}

// milestones generates up to three concrete next steps.
func milestones(missing []string, weakest []Area, overall float64) []string {
	var out []string
	if len(missing) > 0 {
		if key, err := competency.ParseKey(missing[0]); err == nil {
			out = append(out, fmt.Sprintf("Master %s to close a required competency.", key.DisplayName()))
		} else {
			out = append(out, fmt.Sprintf("Master %s to close a required competency.", missing[0]))
		}
	}
	if next := (math.Floor(overall/10) + 1) * 10; next <= 100 {
		out = append(out, fmt.Sprintf("Reach %d%% overall progress.", int(next)))
	}
	if len(weakest) > 0 && weakest[0].Accuracy < 0.80 {
		out = append(out, fmt.Sprintf("Bring %s up to 80%% accuracy.", weakest[0].Name))
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
