package requirements

import (
	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
)

func key(m competency.Mood, t competency.Tense) competency.Key {
	return competency.Key{Mood: m, Tense: t}
}

// DefaultTable returns the built-in curriculum requirements. C2 has no entry:
// it is the terminal level.
func DefaultTable() *Table {
	return NewTable([]LevelRequirements{
		{
			Level: level.A1,
			Competencies: []CompetencyRequirement{
				{Key: key(competency.MoodIndicative, competency.TensePresent), MinAccuracy: 0.70, MinAttempts: 20},
			},
			RequiredOverallAccuracy: 0.65,
			MinTotalAttempts:        30,
		},
		{
			Level: level.A2,
			Competencies: []CompetencyRequirement{
				{Key: key(competency.MoodIndicative, competency.TensePresent), MinAccuracy: 0.75, MinAttempts: 30},
				{Key: key(competency.MoodIndicative, competency.TensePreterite), MinAccuracy: 0.65, MinAttempts: 20},
				{Key: key(competency.MoodIndicative, competency.TenseFuture), MinAccuracy: 0.60, MinAttempts: 15},
			},
			RequiredOverallAccuracy: 0.70,
			MinTotalAttempts:        80,
		},
		{
			Level: level.B1,
			Competencies: []CompetencyRequirement{
				{Key: key(competency.MoodIndicative, competency.TensePreterite), MinAccuracy: 0.72, MinAttempts: 30},
				{Key: key(competency.MoodIndicative, competency.TenseImperfect), MinAccuracy: 0.70, MinAttempts: 25},
				{Key: key(competency.MoodSubjunctive, competency.TensePresent), MinAccuracy: 0.60, MinAttempts: 15},
				{Key: key(competency.MoodImperative, competency.TenseAffirmative), MinAccuracy: 0.65, MinAttempts: 15},
			},
			RequiredOverallAccuracy: 0.72,
			MinTotalAttempts:        150,
		},
		{
			Level: level.B2,
			Competencies: []CompetencyRequirement{
				{Key: key(competency.MoodSubjunctive, competency.TensePresent), MinAccuracy: 0.72, MinAttempts: 30},
				{Key: key(competency.MoodConditional, competency.TenseSimple), MinAccuracy: 0.70, MinAttempts: 20},
				{Key: key(competency.MoodImperative, competency.TenseNegative), MinAccuracy: 0.68, MinAttempts: 15},
				{Key: key(competency.MoodIndicative, competency.TensePerfect), MinAccuracy: 0.72, MinAttempts: 20},
			},
			RequiredOverallAccuracy: 0.75,
			MinTotalAttempts:        250,
		},
		{
			Level: level.C1,
			Competencies: []CompetencyRequirement{
				{Key: key(competency.MoodSubjunctive, competency.TenseImperfect), MinAccuracy: 0.72, MinAttempts: 25},
				{Key: key(competency.MoodSubjunctive, competency.TensePerfect), MinAccuracy: 0.70, MinAttempts: 20},
				{Key: key(competency.MoodIndicative, competency.TensePluperfect), MinAccuracy: 0.74, MinAttempts: 20},
				{Key: key(competency.MoodConditional, competency.TensePerfect), MinAccuracy: 0.70, MinAttempts: 15},
			},
			RequiredOverallAccuracy: 0.80,
			MinTotalAttempts:        400,
		},
	})
}
