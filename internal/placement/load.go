package placement

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/schemavalidate"
)

// poolSchema validates externally authored question pools. The structural
// invariants (exactly 4 unique options, correct among them) are enforced a
// second time by NewPool, so hand-edited files fail fast either way.
var poolSchema = &schemavalidate.Schema{
	Name: "placement-pool",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"level":  map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1", "B2", "C1"}},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string", "minLength": 1},
							"minItems":    4,
							"maxItems":    4,
							"uniqueItems": true,
						},
						"correct":     map[string]any{"type": "string", "minLength": 1},
						"explanation": map[string]any{"type": "string"},
						"mood":        map[string]any{"type": "string", "minLength": 1},
						"tense":       map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"id", "level", "prompt", "options", "correct", "mood", "tense"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

type poolFile struct {
	Questions []questionEntry `json:"questions"`
}

type questionEntry struct {
	ID          string   `json:"id"`
	Level       string   `json:"level"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
	Mood        string   `json:"mood"`
	Tense       string   `json:"tense"`
}

// LoadPool reads and validates a question pool from a JSON file.
func LoadPool(path string) (*Pool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	if err := schemavalidate.Validate(poolSchema, raw); err != nil {
		return nil, fmt.Errorf("validate pool: %w", err)
	}

	var file poolFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse pool: %w", err)
	}

	questions := make([]*Question, 0, len(file.Questions))
	for _, e := range file.Questions {
		lvl, err := level.Parse(e.Level)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", e.ID, err)
		}
		q := &Question{
			ID:          e.ID,
			Prompt:      e.Prompt,
			Correct:     e.Correct,
			Explanation: e.Explanation,
			Competency:  competency.Key{Mood: competency.Mood(e.Mood), Tense: competency.Tense(e.Tense)},
			Level:       lvl,
		}
		copy(q.Options[:], e.Options)
		questions = append(questions, q)
	}
	return NewPool(questions)
}
