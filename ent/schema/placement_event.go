package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlacementEvent records the lifecycle of a placement assessment session.
type PlacementEvent struct {
	ent.Schema
}

func (PlacementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlacementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping placement attempts"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abort"),
		field.String("determined_level").
			Optional().
			Comment("Final level (on complete only)"),
		field.Int("questions_asked").
			Default(0).
			Comment("Total questions served (on complete/abort)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on complete/abort)"),
	}
}

func (PlacementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
