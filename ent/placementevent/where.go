// Code generated by ent, DO NOT EDIT.

package placementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAction, v))
}

// DeterminedLevel applies equality check predicate on the "determined_level" field. It's identical to DeterminedLevelEQ.
func DeterminedLevel(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldDeterminedLevel, v))
}

// QuestionsAsked applies equality check predicate on the "questions_asked" field. It's identical to QuestionsAskedEQ.
func QuestionsAsked(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldAction, v))
}

// DeterminedLevelEQ applies the EQ predicate on the "determined_level" field.
func DeterminedLevelEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldDeterminedLevel, v))
}

// DeterminedLevelNEQ applies the NEQ predicate on the "determined_level" field.
func DeterminedLevelNEQ(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldDeterminedLevel, v))
}

// DeterminedLevelIn applies the In predicate on the "determined_level" field.
func DeterminedLevelIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldDeterminedLevel, vs...))
}

// DeterminedLevelNotIn applies the NotIn predicate on the "determined_level" field.
func DeterminedLevelNotIn(vs ...string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldDeterminedLevel, vs...))
}

// DeterminedLevelGT applies the GT predicate on the "determined_level" field.
func DeterminedLevelGT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldDeterminedLevel, v))
}

// DeterminedLevelGTE applies the GTE predicate on the "determined_level" field.
func DeterminedLevelGTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldDeterminedLevel, v))
}

// DeterminedLevelLT applies the LT predicate on the "determined_level" field.
func DeterminedLevelLT(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldDeterminedLevel, v))
}

// DeterminedLevelLTE applies the LTE predicate on the "determined_level" field.
func DeterminedLevelLTE(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldDeterminedLevel, v))
}

// DeterminedLevelContains applies the Contains predicate on the "determined_level" field.
func DeterminedLevelContains(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContains(FieldDeterminedLevel, v))
}

// DeterminedLevelHasPrefix applies the HasPrefix predicate on the "determined_level" field.
func DeterminedLevelHasPrefix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasPrefix(FieldDeterminedLevel, v))
}

// DeterminedLevelHasSuffix applies the HasSuffix predicate on the "determined_level" field.
func DeterminedLevelHasSuffix(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldHasSuffix(FieldDeterminedLevel, v))
}

// DeterminedLevelIsNil applies the IsNil predicate on the "determined_level" field.
func DeterminedLevelIsNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIsNull(FieldDeterminedLevel))
}

// DeterminedLevelNotNil applies the NotNil predicate on the "determined_level" field.
func DeterminedLevelNotNil() predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotNull(FieldDeterminedLevel))
}

// DeterminedLevelEqualFold applies the EqualFold predicate on the "determined_level" field.
func DeterminedLevelEqualFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEqualFold(FieldDeterminedLevel, v))
}

// DeterminedLevelContainsFold applies the ContainsFold predicate on the "determined_level" field.
func DeterminedLevelContainsFold(v string) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldContainsFold(FieldDeterminedLevel, v))
}

// QuestionsAskedEQ applies the EQ predicate on the "questions_asked" field.
func QuestionsAskedEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedNEQ applies the NEQ predicate on the "questions_asked" field.
func QuestionsAskedNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldQuestionsAsked, v))
}

// QuestionsAskedIn applies the In predicate on the "questions_asked" field.
func QuestionsAskedIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedNotIn applies the NotIn predicate on the "questions_asked" field.
func QuestionsAskedNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldQuestionsAsked, vs...))
}

// QuestionsAskedGT applies the GT predicate on the "questions_asked" field.
func QuestionsAskedGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldQuestionsAsked, v))
}

// QuestionsAskedGTE applies the GTE predicate on the "questions_asked" field.
func QuestionsAskedGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldQuestionsAsked, v))
}

// QuestionsAskedLT applies the LT predicate on the "questions_asked" field.
func QuestionsAskedLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldQuestionsAsked, v))
}

// QuestionsAskedLTE applies the LTE predicate on the "questions_asked" field.
func QuestionsAskedLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldQuestionsAsked, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlacementEvent) predicate.PlacementEvent {
	return predicate.PlacementEvent(sql.NotPredicates(p))
}
