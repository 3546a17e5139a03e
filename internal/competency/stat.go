package competency

import "time"

// Stat holds accumulated attempt data for one competency. Stats are only
// ever accumulated, never deleted.
type Stat struct {
	Attempts          int
	Correct           int
	AvgResponseTimeMs float64
	LastPracticedAt   time.Time
}

// Accuracy returns the correct/attempts ratio, or 0 with no attempts.
func (s *Stat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// record folds one attempt into the stat, keeping a running average of
// response time.
func (s *Stat) record(correct bool, responseTimeMs int, at time.Time) {
	total := s.AvgResponseTimeMs*float64(s.Attempts) + float64(responseTimeMs)
	s.Attempts++
	if correct {
		s.Correct++
	}
	s.AvgResponseTimeMs = total / float64(s.Attempts)
	if at.After(s.LastPracticedAt) {
		s.LastPracticedAt = at
	}
}

// DailyPoint is one day of aggregate practice accuracy.
type DailyPoint struct {
	Date     time.Time
	Accuracy float64
	Attempts int
}

// Analytics is the higher-level signal bundle consumed by the evaluators.
type Analytics struct {
	// Timeline holds recent per-day accuracy, oldest first.
	Timeline []DailyPoint
	// AvgResponseTimeMs is the mean response time across all recent attempts.
	AvgResponseTimeMs float64
	// Confidence is the system's 0-100 confidence in its own estimates.
	Confidence float64
}
