// Package profile owns the per-learner level profile: current level,
// progress percent, manual override flag, placement baseline and the
// append-only transition history.
package profile

import (
	"errors"
	"time"

	"github.com/abhisek/conjugo/internal/level"
	"github.com/abhisek/conjugo/internal/placement"
)

// Level transition reasons. Only a manual change sets the override flag;
// every other reason clears it.
const (
	ReasonManual             = "manual"
	ReasonAutomaticPromotion = "automatic_promotion"
	ReasonSync               = "sync"
	ReasonReset              = "reset"
)

// ErrBadReason reports a transition reason outside the fixed set.
var ErrBadReason = errors.New("profile: unknown transition reason")

// ValidReason reports whether reason is one of the fixed transition reasons.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonManual, ReasonAutomaticPromotion, ReasonSync, ReasonReset:
		return true
	}
	return false
}

// Transition is one entry in a profile's history log.
type Transition struct {
	From      level.Level
	To        level.Level
	Reason    string
	Timestamp time.Time
}

// Profile is a learner's long-lived level state. Profiles are created
// lazily, one per learner, and only mutated through the Service.
type Profile struct {
	UserID          string
	Level           level.Level
	ProgressPercent float64
	ManualOverride  bool
	Baseline        *placement.Baseline
	History         []Transition

	// progressSet distinguishes "no progress computed yet" from a real 0,
	// so the first progress calculation skips smoothing.
	progressSet bool
}

// HasProgress reports whether a progress percent has ever been stored for
// the profile's current level.
func (p *Profile) HasProgress() bool {
	return p.progressSet
}
