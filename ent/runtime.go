// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/conjugo/ent/attemptevent"
	"github.com/abhisek/conjugo/ent/levelevent"
	"github.com/abhisek/conjugo/ent/placementevent"
	"github.com/abhisek/conjugo/ent/schema"
	"github.com/abhisek/conjugo/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventMixinFields0[2].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescMood is the schema descriptor for mood field.
	attempteventDescMood := attempteventFields[1].Descriptor()
	// attemptevent.MoodValidator is a validator for the "mood" field. It is called by the builders before save.
	attemptevent.MoodValidator = attempteventDescMood.Validators[0].(func(string) error)
	// attempteventDescTense is the schema descriptor for tense field.
	attempteventDescTense := attempteventFields[2].Descriptor()
	// attemptevent.TenseValidator is a validator for the "tense" field. It is called by the builders before save.
	attemptevent.TenseValidator = attempteventDescTense.Validators[0].(func(string) error)
	// attempteventDescLevel is the schema descriptor for level field.
	attempteventDescLevel := attempteventFields[3].Descriptor()
	// attemptevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	attemptevent.LevelValidator = attempteventDescLevel.Validators[0].(func(string) error)
	// attempteventDescSource is the schema descriptor for source field.
	attempteventDescSource := attempteventFields[6].Descriptor()
	// attemptevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	attemptevent.SourceValidator = attempteventDescSource.Validators[0].(func(string) error)
	leveleventMixin := schema.LevelEvent{}.Mixin()
	leveleventMixinFields0 := leveleventMixin[0].Fields()
	_ = leveleventMixinFields0
	leveleventFields := schema.LevelEvent{}.Fields()
	_ = leveleventFields
	// leveleventDescTimestamp is the schema descriptor for timestamp field.
	leveleventDescTimestamp := leveleventMixinFields0[1].Descriptor()
	// levelevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	levelevent.DefaultTimestamp = leveleventDescTimestamp.Default.(func() time.Time)
	// leveleventDescUserID is the schema descriptor for user_id field.
	leveleventDescUserID := leveleventMixinFields0[2].Descriptor()
	// levelevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	levelevent.UserIDValidator = leveleventDescUserID.Validators[0].(func(string) error)
	// leveleventDescFromLevel is the schema descriptor for from_level field.
	leveleventDescFromLevel := leveleventFields[0].Descriptor()
	// levelevent.FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	levelevent.FromLevelValidator = leveleventDescFromLevel.Validators[0].(func(string) error)
	// leveleventDescToLevel is the schema descriptor for to_level field.
	leveleventDescToLevel := leveleventFields[1].Descriptor()
	// levelevent.ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	levelevent.ToLevelValidator = leveleventDescToLevel.Validators[0].(func(string) error)
	// leveleventDescReason is the schema descriptor for reason field.
	leveleventDescReason := leveleventFields[2].Descriptor()
	// levelevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	levelevent.ReasonValidator = leveleventDescReason.Validators[0].(func(string) error)
	placementeventMixin := schema.PlacementEvent{}.Mixin()
	placementeventMixinFields0 := placementeventMixin[0].Fields()
	_ = placementeventMixinFields0
	placementeventFields := schema.PlacementEvent{}.Fields()
	_ = placementeventFields
	// placementeventDescTimestamp is the schema descriptor for timestamp field.
	placementeventDescTimestamp := placementeventMixinFields0[1].Descriptor()
	// placementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	placementevent.DefaultTimestamp = placementeventDescTimestamp.Default.(func() time.Time)
	// placementeventDescUserID is the schema descriptor for user_id field.
	placementeventDescUserID := placementeventMixinFields0[2].Descriptor()
	// placementevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	placementevent.UserIDValidator = placementeventDescUserID.Validators[0].(func(string) error)
	// placementeventDescSessionID is the schema descriptor for session_id field.
	placementeventDescSessionID := placementeventFields[0].Descriptor()
	// placementevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	placementevent.SessionIDValidator = placementeventDescSessionID.Validators[0].(func(string) error)
	// placementeventDescAction is the schema descriptor for action field.
	placementeventDescAction := placementeventFields[1].Descriptor()
	// placementevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	placementevent.ActionValidator = placementeventDescAction.Validators[0].(func(string) error)
	// placementeventDescQuestionsAsked is the schema descriptor for questions_asked field.
	placementeventDescQuestionsAsked := placementeventFields[3].Descriptor()
	// placementevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	placementevent.DefaultQuestionsAsked = placementeventDescQuestionsAsked.Default.(int)
	// placementeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	placementeventDescCorrectAnswers := placementeventFields[4].Descriptor()
	// placementevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	placementevent.DefaultCorrectAnswers = placementeventDescCorrectAnswers.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
