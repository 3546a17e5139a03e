// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/placementevent"
	"github.com/abhisek/conjugo/ent/predicate"
)

// PlacementEventUpdate is the builder for updating PlacementEvent entities.
type PlacementEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlacementEventMutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdate) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlacementEventUpdate) SetSessionID(v string) *PlacementEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableSessionID(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PlacementEventUpdate) SetAction(v string) *PlacementEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableAction(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDeterminedLevel sets the "determined_level" field.
func (_u *PlacementEventUpdate) SetDeterminedLevel(v string) *PlacementEventUpdate {
	_u.mutation.SetDeterminedLevel(v)
	return _u
}

// SetNillableDeterminedLevel sets the "determined_level" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableDeterminedLevel(v *string) *PlacementEventUpdate {
	if v != nil {
		_u.SetDeterminedLevel(*v)
	}
	return _u
}

// ClearDeterminedLevel clears the value of the "determined_level" field.
func (_u *PlacementEventUpdate) ClearDeterminedLevel() *PlacementEventUpdate {
	_u.mutation.ClearDeterminedLevel()
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *PlacementEventUpdate) SetQuestionsAsked(v int) *PlacementEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableQuestionsAsked(v *int) *PlacementEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *PlacementEventUpdate) AddQuestionsAsked(v int) *PlacementEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *PlacementEventUpdate) SetCorrectAnswers(v int) *PlacementEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *PlacementEventUpdate) SetNillableCorrectAnswers(v *int) *PlacementEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *PlacementEventUpdate) AddCorrectAnswers(v int) *PlacementEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdate) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlacementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlacementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := placementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := placementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(placementevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(placementevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeterminedLevel(); ok {
		_spec.SetField(placementevent.FieldDeterminedLevel, field.TypeString, value)
	}
	if _u.mutation.DeterminedLevelCleared() {
		_spec.ClearField(placementevent.FieldDeterminedLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(placementevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(placementevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(placementevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(placementevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlacementEventUpdateOne is the builder for updating a single PlacementEvent entity.
type PlacementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlacementEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PlacementEventUpdateOne) SetSessionID(v string) *PlacementEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableSessionID(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PlacementEventUpdateOne) SetAction(v string) *PlacementEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableAction(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetDeterminedLevel sets the "determined_level" field.
func (_u *PlacementEventUpdateOne) SetDeterminedLevel(v string) *PlacementEventUpdateOne {
	_u.mutation.SetDeterminedLevel(v)
	return _u
}

// SetNillableDeterminedLevel sets the "determined_level" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableDeterminedLevel(v *string) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetDeterminedLevel(*v)
	}
	return _u
}

// ClearDeterminedLevel clears the value of the "determined_level" field.
func (_u *PlacementEventUpdateOne) ClearDeterminedLevel() *PlacementEventUpdateOne {
	_u.mutation.ClearDeterminedLevel()
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *PlacementEventUpdateOne) SetQuestionsAsked(v int) *PlacementEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableQuestionsAsked(v *int) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *PlacementEventUpdateOne) AddQuestionsAsked(v int) *PlacementEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *PlacementEventUpdateOne) SetCorrectAnswers(v int) *PlacementEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *PlacementEventUpdateOne) SetNillableCorrectAnswers(v *int) *PlacementEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *PlacementEventUpdateOne) AddCorrectAnswers(v int) *PlacementEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_u *PlacementEventUpdateOne) Mutation() *PlacementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlacementEventUpdate builder.
func (_u *PlacementEventUpdateOne) Where(ps ...predicate.PlacementEvent) *PlacementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlacementEventUpdateOne) Select(field string, fields ...string) *PlacementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlacementEvent entity.
func (_u *PlacementEventUpdateOne) Save(ctx context.Context) (*PlacementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) SaveX(ctx context.Context) *PlacementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlacementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlacementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlacementEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := placementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := placementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PlacementEventUpdateOne) sqlSave(ctx context.Context) (_node *PlacementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(placementevent.Table, placementevent.Columns, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlacementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, placementevent.FieldID)
		for _, f := range fields {
			if !placementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != placementevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(placementevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(placementevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeterminedLevel(); ok {
		_spec.SetField(placementevent.FieldDeterminedLevel, field.TypeString, value)
	}
	if _u.mutation.DeterminedLevelCleared() {
		_spec.ClearField(placementevent.FieldDeterminedLevel, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(placementevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(placementevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(placementevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(placementevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	_node = &PlacementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{placementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
