package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/conjugo/ent"
	"github.com/abhisek/conjugo/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetMood(data.Mood).
		SetTense(data.Tense).
		SetLevel(data.Level).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetSource(data.Source)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) DailyAccuracy(ctx context.Context, userID string, days int) ([]DailyAccuracyPoint, error) {
	since := time.Now().AddDate(0, 0, -days)
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.TimestampGTE(since),
		).
		Order(ent.Asc(attemptevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query daily accuracy: %w", err)
	}

	type bucket struct {
		attempts int
		correct  int
	}
	byDay := make(map[time.Time]*bucket)
	for _, e := range events {
		day := e.Timestamp.UTC().Truncate(24 * time.Hour)
		b := byDay[day]
		if b == nil {
			b = &bucket{}
			byDay[day] = b
		}
		b.attempts++
		if e.Correct {
			b.correct++
		}
	}

	points := make([]DailyAccuracyPoint, 0, len(byDay))
	for day, b := range byDay {
		points = append(points, DailyAccuracyPoint{
			Date:     day,
			Accuracy: float64(b.correct) / float64(b.attempts),
			Attempts: b.attempts,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

func (r *eventRepo) AverageResponseTime(ctx context.Context, userID string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query response times: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	total := 0
	for _, e := range events {
		total += e.TimeMs
	}
	return float64(total) / float64(len(events)), nil
}

func (r *eventRepo) AttemptCount(ctx context.Context, userID string) (int, error) {
	n, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
