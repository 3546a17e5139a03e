// Package level defines the CEFR proficiency levels and their ordering.
package level

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level identifier cannot be parsed.
// Callers passing levels programmatically should treat this as a bug.
var ErrUnknownLevel = errors.New("unknown level")

// Level is one of the six ordered CEFR proficiency levels.
type Level int

const (
	A1 Level = iota
	A2
	B1
	B2
	C1
	C2
)

// AllLevels returns the levels in ascending order.
func AllLevels() []Level {
	return []Level{A1, A2, B1, B2, C1, C2}
}

// Parse converts a level identifier ("A1".."C2", case-insensitive) to a Level.
func Parse(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A1":
		return A1, nil
	case "A2":
		return A2, nil
	case "B1":
		return B1, nil
	case "B2":
		return B2, nil
	case "C1":
		return C1, nil
	case "C2":
		return C2, nil
	}
	return A1, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) String() string {
	switch l {
	case A1:
		return "A1"
	case A2:
		return "A2"
	case B1:
		return "B1"
	case B2:
		return "B2"
	case C1:
		return "C1"
	case C2:
		return "C2"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// DisplayName returns a human-readable name for the level.
func (l Level) DisplayName() string {
	switch l {
	case A1:
		return "Beginner"
	case A2:
		return "Elementary"
	case B1:
		return "Intermediate"
	case B2:
		return "Upper Intermediate"
	case C1:
		return "Advanced"
	case C2:
		return "Mastery"
	default:
		return l.String()
	}
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= A1 && l <= C2
}

// Next returns the level above l, saturating at C2.
func (l Level) Next() Level {
	if l >= C2 {
		return C2
	}
	return l + 1
}

// Prev returns the level below l, saturating at A1.
func (l Level) Prev() Level {
	if l <= A1 {
		return A1
	}
	return l - 1
}

// IsTerminal reports whether there is no level above l.
func (l Level) IsTerminal() bool {
	return l == C2
}

// ExpectedResponseTimeMs returns the response time expected of a learner at
// this level, decreasing monotonically from 8000ms at A1 to 3000ms at C2.
func (l Level) ExpectedResponseTimeMs() int {
	switch l {
	case A1:
		return 8000
	case A2:
		return 7000
	case B1:
		return 6000
	case B2:
		return 5000
	case C1:
		return 4000
	case C2:
		return 3000
	default:
		return 8000
	}
}
