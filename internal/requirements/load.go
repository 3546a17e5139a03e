package requirements

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/schemavalidate"
)

// tableSchema validates externally supplied requirement tables before use.
var tableSchema = &schemavalidate.Schema{
	Name: "level-requirements",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"levels": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type": "string",
							"enum": []any{"A1", "A2", "B1", "B2", "C1", "C2"},
						},
						"competencies": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"mood":         map[string]any{"type": "string"},
									"tense":        map[string]any{"type": "string"},
									"min_accuracy": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
									"min_attempts": map[string]any{"type": "integer", "minimum": 0},
								},
								"required":             []any{"mood", "tense", "min_accuracy", "min_attempts"},
								"additionalProperties": false,
							},
						},
						"required_overall_accuracy": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"min_total_attempts":        map[string]any{"type": "integer", "minimum": 0},
					},
					"required":             []any{"level", "competencies", "required_overall_accuracy", "min_total_attempts"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"levels"},
		"additionalProperties": false,
	},
}

type tableFile struct {
	Levels []levelEntry `json:"levels"`
}

type levelEntry struct {
	Level                   string            `json:"level"`
	Competencies            []competencyEntry `json:"competencies"`
	RequiredOverallAccuracy float64           `json:"required_overall_accuracy"`
	MinTotalAttempts        int               `json:"min_total_attempts"`
}

type competencyEntry struct {
	Mood        string  `json:"mood"`
	Tense       string  `json:"tense"`
	MinAccuracy float64 `json:"min_accuracy"`
	MinAttempts int     `json:"min_attempts"`
}

// LoadTable reads and validates a requirement table from a JSON file.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read requirements: %w", err)
	}

	if err := schemavalidate.Validate(tableSchema, raw); err != nil {
		return nil, fmt.Errorf("validate requirements: %w", err)
	}

	var file tableFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse requirements: %w", err)
	}

	reqs := make([]LevelRequirements, 0, len(file.Levels))
	for _, e := range file.Levels {
		lvl, err := level.Parse(e.Level)
		if err != nil {
			return nil, err
		}
		r := LevelRequirements{
			Level:                   lvl,
			RequiredOverallAccuracy: e.RequiredOverallAccuracy,
			MinTotalAttempts:        e.MinTotalAttempts,
		}
		for _, c := range e.Competencies {
			r.Competencies = append(r.Competencies, CompetencyRequirement{
				Key:         competency.Key{Mood: competency.Mood(c.Mood), Tense: competency.Tense(c.Tense)},
				MinAccuracy: c.MinAccuracy,
				MinAttempts: c.MinAttempts,
			})
		}
		reqs = append(reqs, r)
	}
	return NewTable(reqs), nil
}
