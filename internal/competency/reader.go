package competency

import "context"

// Reader is the read capability the evaluation engines depend on. It is an
// explicit optional dependency: engines constructed with a nil Reader use
// NopReader and degrade to low-confidence defaults instead of failing.
type Reader interface {
	// Stats returns the learner's per-competency stats. The returned map
	// must not be mutated by callers.
	Stats(ctx context.Context, userID string) (map[Key]*Stat, error)

	// Analytics returns the learner's aggregate performance signals.
	Analytics(ctx context.Context, userID string) (*Analytics, error)
}

// NopReader is the null Reader: no stats, no analytics.
type NopReader struct{}

func (NopReader) Stats(context.Context, string) (map[Key]*Stat, error) {
	return map[Key]*Stat{}, nil
}

func (NopReader) Analytics(context.Context, string) (*Analytics, error) {
	return &Analytics{}, nil
}
