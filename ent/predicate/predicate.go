// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LevelEvent is the predicate function for levelevent builders.
type LevelEvent func(*sql.Selector)

// PlacementEvent is the predicate function for placementevent builders.
type PlacementEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
