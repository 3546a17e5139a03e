// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "mood", Type: field.TypeString},
		{Name: "tense", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_mood_tense",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5], AttemptEventsColumns[6]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[8]},
			},
		},
	}
	// LevelEventsColumns holds the columns for the "level_events" table.
	LevelEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeString},
		{Name: "to_level", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// LevelEventsTable holds the schema information for the "level_events" table.
	LevelEventsTable = &schema.Table{
		Name:       "level_events",
		Columns:    LevelEventsColumns,
		PrimaryKey: []*schema.Column{LevelEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "levelevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[1]},
			},
			{
				Name:    "levelevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[2]},
			},
			{
				Name:    "levelevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[3]},
			},
			{
				Name:    "levelevent_reason",
				Unique:  false,
				Columns: []*schema.Column{LevelEventsColumns[6]},
			},
		},
	}
	// PlacementEventsColumns holds the columns for the "placement_events" table.
	PlacementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "determined_level", Type: field.TypeString, Nullable: true},
		{Name: "questions_asked", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
	}
	// PlacementEventsTable holds the schema information for the "placement_events" table.
	PlacementEventsTable = &schema.Table{
		Name:       "placement_events",
		Columns:    PlacementEventsColumns,
		PrimaryKey: []*schema.Column{PlacementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "placementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[1]},
			},
			{
				Name:    "placementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[2]},
			},
			{
				Name:    "placementevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[3]},
			},
			{
				Name:    "placementevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[4]},
			},
			{
				Name:    "placementevent_action",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LevelEventsTable,
		PlacementEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
