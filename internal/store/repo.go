package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full persisted state at a point in time:
// every learner's level profile and accumulated competency stats.
type SnapshotData struct {
	Version      int                            `json:"version"`
	Profiles     map[string]*ProfileData        `json:"profiles,omitempty"`
	Competencies map[string]*UserCompetencyData `json:"competencies,omitempty"`
}

// ProfileData is the serialized form of a learner's level profile.
type ProfileData struct {
	UserID          string                 `json:"user_id"`
	Level           string                 `json:"level"`
	ProgressPercent float64                `json:"progress_percent"`
	ManualOverride  bool                   `json:"manual_override"`
	Baseline        *PlacementBaselineData `json:"baseline,omitempty"`
	History         []LevelTransitionData  `json:"history,omitempty"`
}

// PlacementBaselineData is the serialized placement baseline snapshot.
type PlacementBaselineData struct {
	DeterminedLevel       string             `json:"determined_level"`
	PerCompetencyAccuracy map[string]float64 `json:"per_competency_accuracy"`
	OverallAccuracy       float64            `json:"overall_accuracy"`
	Timestamp             string             `json:"timestamp"`
}

// LevelTransitionData is one entry in a profile's append-only history.
type LevelTransitionData struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

// UserCompetencyData holds one learner's competency stats, keyed by the
// canonical "mood.tense" form.
type UserCompetencyData struct {
	Stats map[string]*CompetencyStatData `json:"stats"`
}

// CompetencyStatData is the serialized form of one competency stat.
type CompetencyStatData struct {
	Mood              string  `json:"mood"`
	Tense             string  `json:"tense"`
	Attempts          int     `json:"attempts"`
	Correct           int     `json:"correct"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	LastPracticedAt   *string `json:"last_practiced_at,omitempty"`
}

// Snapshot represents a point-in-time capture of persisted state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures a single graded attempt.
type AttemptEventData struct {
	UserID    string
	SessionID string // placement session UUID, empty for regular practice
	Mood      string
	Tense     string
	Level     string
	Correct   bool
	TimeMs    int
	Source    string // "practice" or "placement"
}

// LevelEventData captures a level transition.
type LevelEventData struct {
	UserID    string
	FromLevel string
	ToLevel   string
	Reason    string
}

// PlacementEventData captures a placement session lifecycle event.
type PlacementEventData struct {
	UserID          string
	SessionID       string
	Action          string // "start", "complete", or "abort"
	DeterminedLevel string
	QuestionsAsked  int
	CorrectAnswers  int
}

// DailyAccuracyPoint is aggregate attempt accuracy for one calendar day.
type DailyAccuracyPoint struct {
	Date     time.Time
	Accuracy float64
	Attempts int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records a graded attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendLevelEvent records a level transition.
	AppendLevelEvent(ctx context.Context, data LevelEventData) error

	// AppendPlacementEvent records a placement session lifecycle event.
	AppendPlacementEvent(ctx context.Context, data PlacementEventData) error

	// DailyAccuracy returns per-day accuracy for the last `days` days,
	// oldest first. Days without attempts are omitted.
	DailyAccuracy(ctx context.Context, userID string, days int) ([]DailyAccuracyPoint, error)

	// AverageResponseTime returns the mean response time in milliseconds
	// across a learner's attempts, or 0 with no attempts.
	AverageResponseTime(ctx context.Context, userID string) (float64, error)

	// AttemptCount returns the total number of recorded attempts.
	AttemptCount(ctx context.Context, userID string) (int, error)
}
