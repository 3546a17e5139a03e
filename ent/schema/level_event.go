package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LevelEvent records a level transition (manual set, automatic promotion,
// sync, or reset).
type LevelEvent struct {
	ent.Schema
}

func (LevelEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LevelEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("from_level").
			NotEmpty().
			Comment("Level before the transition"),
		field.String("to_level").
			NotEmpty().
			Comment("Level after the transition"),
		field.String("reason").
			NotEmpty().
			Comment("manual, automatic_promotion, sync, or reset"),
	}
}

func (LevelEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reason"),
	}
}
