package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single graded conjugation attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Comment("Placement session UUID, empty for regular practice"),
		field.String("mood").
			NotEmpty().
			Comment("Grammatical mood of the item"),
		field.String("tense").
			NotEmpty().
			Comment("Grammatical tense of the item"),
		field.String("level").
			NotEmpty().
			Comment("CEFR level the item was drawn from"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.String("source").
			NotEmpty().
			Comment("practice or placement"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mood", "tense"),
		index.Fields("correct"),
	}
}
