// Package competency tracks per-(mood, tense) conjugation skill data.
package competency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadKey is returned when a competency key string cannot be parsed.
var ErrBadKey = errors.New("malformed competency key")

// Mood is a grammatical mood.
type Mood string

const (
	MoodIndicative  Mood = "indicative"
	MoodSubjunctive Mood = "subjunctive"
	MoodImperative  Mood = "imperative"
	MoodConditional Mood = "conditional"
)

// Tense is a grammatical tense.
type Tense string

const (
	TensePresent       Tense = "present"
	TensePreterite     Tense = "preterite"
	TenseImperfect     Tense = "imperfect"
	TenseFuture        Tense = "future"
	TensePerfect       Tense = "perfect"
	TensePluperfect    Tense = "pluperfect"
	TenseAffirmative   Tense = "affirmative"
	TenseNegative      Tense = "negative"
	TenseSimple        Tense = "simple"
)

// AllMoods returns the moods in display order.
func AllMoods() []Mood {
	return []Mood{MoodIndicative, MoodSubjunctive, MoodImperative, MoodConditional}
}

// Key identifies one grammatical skill area: a (mood, tense) pair.
type Key struct {
	Mood  Mood  `json:"mood"`
	Tense Tense `json:"tense"`
}

// String returns the canonical "mood.tense" form, used as a map key and
// in persisted snapshots.
func (k Key) String() string {
	return string(k.Mood) + "." + string(k.Tense)
}

// DisplayName returns a human-readable name, e.g. "Subjunctive Present".
func (k Key) DisplayName() string {
	title := func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
	return title(string(k.Mood)) + " " + title(string(k.Tense))
}

// ParseKey parses the canonical "mood.tense" form back into a Key.
func ParseKey(s string) (Key, error) {
	mood, tense, ok := strings.Cut(s, ".")
	if !ok || mood == "" || tense == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return Key{Mood: Mood(mood), Tense: Tense(tense)}, nil
}
