// Package requirements holds the hard per-level progression requirements.
// The table is static configuration: the app ships a default curriculum and
// can load an external override validated against a JSON schema.
package requirements

import (
	"fmt"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
)

// CompetencyRequirement is the minimum bar one competency must clear before
// the learner can leave a level.
type CompetencyRequirement struct {
	Key         competency.Key
	MinAccuracy float64
	MinAttempts int
}

// LevelRequirements bundles everything required to complete one level.
// C2 is terminal and carries no requirements.
type LevelRequirements struct {
	Level                   level.Level
	Competencies            []CompetencyRequirement
	RequiredOverallAccuracy float64
	MinTotalAttempts        int
}

// Terminal reports whether the level has nothing further to require.
func (r LevelRequirements) Terminal() bool {
	return len(r.Competencies) == 0 && r.MinTotalAttempts == 0
}

// Table maps levels to their requirements.
type Table struct {
	byLevel map[level.Level]LevelRequirements
}

// NewTable builds a table from explicit per-level requirements.
func NewTable(reqs []LevelRequirements) *Table {
	byLevel := make(map[level.Level]LevelRequirements, len(reqs))
	for _, r := range reqs {
		byLevel[r.Level] = r
	}
	return &Table{byLevel: byLevel}
}

// ForLevel returns the requirements for lvl. An unknown level is a caller
// bug and surfaces level.ErrUnknownLevel.
func (t *Table) ForLevel(lvl level.Level) (LevelRequirements, error) {
	if !lvl.Valid() {
		return LevelRequirements{}, fmt.Errorf("%w: %d", level.ErrUnknownLevel, int(lvl))
	}
	r, ok := t.byLevel[lvl]
	if !ok {
		// Levels absent from the table (C2) are terminal.
		return LevelRequirements{Level: lvl}, nil
	}
	return r, nil
}
