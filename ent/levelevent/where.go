// Code generated by ent, DO NOT EDIT.

package levelevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/conjugo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldUserID, v))
}

// FromLevel applies equality check predicate on the "from_level" field. It's identical to FromLevelEQ.
func FromLevel(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldFromLevel, v))
}

// ToLevel applies equality check predicate on the "to_level" field. It's identical to ToLevelEQ.
func ToLevel(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldToLevel, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContainsFold(FieldUserID, v))
}

// FromLevelEQ applies the EQ predicate on the "from_level" field.
func FromLevelEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldFromLevel, v))
}

// FromLevelNEQ applies the NEQ predicate on the "from_level" field.
func FromLevelNEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldFromLevel, v))
}

// FromLevelIn applies the In predicate on the "from_level" field.
func FromLevelIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldFromLevel, vs...))
}

// FromLevelNotIn applies the NotIn predicate on the "from_level" field.
func FromLevelNotIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldFromLevel, vs...))
}

// FromLevelGT applies the GT predicate on the "from_level" field.
func FromLevelGT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldFromLevel, v))
}

// FromLevelGTE applies the GTE predicate on the "from_level" field.
func FromLevelGTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldFromLevel, v))
}

// FromLevelLT applies the LT predicate on the "from_level" field.
func FromLevelLT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldFromLevel, v))
}

// FromLevelLTE applies the LTE predicate on the "from_level" field.
func FromLevelLTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldFromLevel, v))
}

// FromLevelContains applies the Contains predicate on the "from_level" field.
func FromLevelContains(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContains(FieldFromLevel, v))
}

// FromLevelHasPrefix applies the HasPrefix predicate on the "from_level" field.
func FromLevelHasPrefix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasPrefix(FieldFromLevel, v))
}

// FromLevelHasSuffix applies the HasSuffix predicate on the "from_level" field.
func FromLevelHasSuffix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasSuffix(FieldFromLevel, v))
}

// FromLevelEqualFold applies the EqualFold predicate on the "from_level" field.
func FromLevelEqualFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEqualFold(FieldFromLevel, v))
}

// FromLevelContainsFold applies the ContainsFold predicate on the "from_level" field.
func FromLevelContainsFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContainsFold(FieldFromLevel, v))
}

// ToLevelEQ applies the EQ predicate on the "to_level" field.
func ToLevelEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldToLevel, v))
}

// ToLevelNEQ applies the NEQ predicate on the "to_level" field.
func ToLevelNEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldToLevel, v))
}

// ToLevelIn applies the In predicate on the "to_level" field.
func ToLevelIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldToLevel, vs...))
}

// ToLevelNotIn applies the NotIn predicate on the "to_level" field.
func ToLevelNotIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldToLevel, vs...))
}

// ToLevelGT applies the GT predicate on the "to_level" field.
func ToLevelGT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldToLevel, v))
}

// ToLevelGTE applies the GTE predicate on the "to_level" field.
func ToLevelGTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldToLevel, v))
}

// ToLevelLT applies the LT predicate on the "to_level" field.
func ToLevelLT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldToLevel, v))
}

// ToLevelLTE applies the LTE predicate on the "to_level" field.
func ToLevelLTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldToLevel, v))
}

// ToLevelContains applies the Contains predicate on the "to_level" field.
func ToLevelContains(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContains(FieldToLevel, v))
}

// ToLevelHasPrefix applies the HasPrefix predicate on the "to_level" field.
func ToLevelHasPrefix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasPrefix(FieldToLevel, v))
}

// ToLevelHasSuffix applies the HasSuffix predicate on the "to_level" field.
func ToLevelHasSuffix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasSuffix(FieldToLevel, v))
}

// ToLevelEqualFold applies the EqualFold predicate on the "to_level" field.
func ToLevelEqualFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEqualFold(FieldToLevel, v))
}

// ToLevelContainsFold applies the ContainsFold predicate on the "to_level" field.
func ToLevelContainsFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContainsFold(FieldToLevel, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.LevelEvent {
	return predicate.LevelEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LevelEvent) predicate.LevelEvent {
	return predicate.LevelEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LevelEvent) predicate.LevelEvent {
	return predicate.LevelEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LevelEvent) predicate.LevelEvent {
	return predicate.LevelEvent(sql.NotPredicates(p))
}
