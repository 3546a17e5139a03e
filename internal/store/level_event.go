package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLevelEvent(ctx context.Context, data LevelEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LevelEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save level event: %w", err)
	}
	return nil
}
