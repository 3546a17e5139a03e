package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlacementEvent(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PlacementEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionsAsked(data.QuestionsAsked).
		SetCorrectAnswers(data.CorrectAnswers)

	if data.DeterminedLevel != "" {
		builder = builder.SetDeterminedLevel(data.DeterminedLevel)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}
