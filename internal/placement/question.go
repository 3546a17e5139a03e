// Package placement implements the adaptive placement assessment: a
// session-scoped state machine that estimates a learner's level from
// scratch, without historical data.
package placement

import (
	"errors"
	"fmt"

	"github.com/abhisek/conjugo/internal/competency"
	"github.com/abhisek/conjugo/internal/level"
)

// Question is one multiple-choice placement item. The authoring invariants
// (exactly 4 options, correct among them, no duplicates) are checked by
// Pool validation on load.
type Question struct {
	ID          string         `json:"id"`
	Prompt      string         `json:"prompt"`
	Options     [4]string      `json:"options"`
	Correct     string         `json:"correct"`
	Explanation string         `json:"explanation"`
	Competency  competency.Key `json:"competency"`
	Level       level.Level    `json:"-"`
}

// Pool holds the per-level question pools the assessment draws from.
type Pool struct {
	byLevel map[level.Level][]*Question
}

// NewPool builds a pool from questions, validating each item.
func NewPool(questions []*Question) (*Pool, error) {
	p := &Pool{byLevel: make(map[level.Level][]*Question)}
	seen := make(map[string]bool)
	for _, q := range questions {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true
		p.byLevel[q.Level] = append(p.byLevel[q.Level], q)
	}
	return p, nil
}

// ForLevel returns the questions at lvl.
func (p *Pool) ForLevel(lvl level.Level) []*Question {
	return p.byLevel[lvl]
}

func validateQuestion(q *Question) error {
	if q.ID == "" {
		return errors.New("question with empty id")
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %q: empty prompt", q.ID)
	}
	correctFound := false
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %q: empty option %d", q.ID, i)
		}
		for j := i + 1; j < len(q.Options); j++ {
			if opt == q.Options[j] {
				return fmt.Errorf("question %q: duplicate option %q", q.ID, opt)
			}
		}
		if opt == q.Correct {
			correctFound = true
		}
	}
	if !correctFound {
		return fmt.Errorf("question %q: correct answer %q not among options", q.ID, q.Correct)
	}
	if q.Competency.Mood == "" || q.Competency.Tense == "" {
		return fmt.Errorf("question %q: missing competency key", q.ID)
	}
	if !q.Level.Valid() {
		return fmt.Errorf("question %q: invalid level", q.ID)
	}
	return nil
}
