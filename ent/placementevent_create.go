// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/placementevent"
)

// PlacementEventCreate is the builder for creating a PlacementEvent entity.
type PlacementEventCreate struct {
	config
	mutation *PlacementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlacementEventCreate) SetSequence(v int64) *PlacementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlacementEventCreate) SetTimestamp(v time.Time) *PlacementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableTimestamp(v *time.Time) *PlacementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PlacementEventCreate) SetUserID(v string) *PlacementEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PlacementEventCreate) SetSessionID(v string) *PlacementEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PlacementEventCreate) SetAction(v string) *PlacementEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDeterminedLevel sets the "determined_level" field.
func (_c *PlacementEventCreate) SetDeterminedLevel(v string) *PlacementEventCreate {
	_c.mutation.SetDeterminedLevel(v)
	return _c
}

// SetNillableDeterminedLevel sets the "determined_level" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableDeterminedLevel(v *string) *PlacementEventCreate {
	if v != nil {
		_c.SetDeterminedLevel(*v)
	}
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *PlacementEventCreate) SetQuestionsAsked(v int) *PlacementEventCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableQuestionsAsked(v *int) *PlacementEventCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *PlacementEventCreate) SetCorrectAnswers(v int) *PlacementEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *PlacementEventCreate) SetNillableCorrectAnswers(v *int) *PlacementEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// Mutation returns the PlacementEventMutation object of the builder.
func (_c *PlacementEventCreate) Mutation() *PlacementEventMutation {
	return _c.mutation
}

// Save creates the PlacementEvent in the database.
func (_c *PlacementEventCreate) Save(ctx context.Context) (*PlacementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlacementEventCreate) SaveX(ctx context.Context) *PlacementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlacementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := placementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := placementevent.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := placementevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlacementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlacementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlacementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlacementEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := placementevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PlacementEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := placementevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PlacementEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := placementevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlacementEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "PlacementEvent.questions_asked"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "PlacementEvent.correct_answers"`)}
	}
	return nil
}

func (_c *PlacementEventCreate) sqlSave(ctx context.Context) (*PlacementEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlacementEventCreate) createSpec() (*PlacementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlacementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(placementevent.Table, sqlgraph.NewFieldSpec(placementevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(placementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(placementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(placementevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(placementevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(placementevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.DeterminedLevel(); ok {
		_spec.SetField(placementevent.FieldDeterminedLevel, field.TypeString, value)
		_node.DeterminedLevel = value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(placementevent.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(placementevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	return _node, _spec
}

// PlacementEventCreateBulk is the builder for creating many PlacementEvent entities in bulk.
type PlacementEventCreateBulk struct {
	config
	err      error
	builders []*PlacementEventCreate
}

// Save creates the PlacementEvent entities in the database.
func (_c *PlacementEventCreateBulk) Save(ctx context.Context) ([]*PlacementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlacementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlacementEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlacementEventCreateBulk) SaveX(ctx context.Context) []*PlacementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlacementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlacementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
