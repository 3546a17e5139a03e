// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/levelevent"
)

// LevelEventCreate is the builder for creating a LevelEvent entity.
type LevelEventCreate struct {
	config
	mutation *LevelEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LevelEventCreate) SetSequence(v int64) *LevelEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LevelEventCreate) SetTimestamp(v time.Time) *LevelEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LevelEventCreate) SetNillableTimestamp(v *time.Time) *LevelEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LevelEventCreate) SetUserID(v string) *LevelEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFromLevel sets the "from_level" field.
func (_c *LevelEventCreate) SetFromLevel(v string) *LevelEventCreate {
	_c.mutation.SetFromLevel(v)
	return _c
}

// SetToLevel sets the "to_level" field.
func (_c *LevelEventCreate) SetToLevel(v string) *LevelEventCreate {
	_c.mutation.SetToLevel(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LevelEventCreate) SetReason(v string) *LevelEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the LevelEventMutation object of the builder.
func (_c *LevelEventCreate) Mutation() *LevelEventMutation {
	return _c.mutation
}

// Save creates the LevelEvent in the database.
func (_c *LevelEventCreate) Save(ctx context.Context) (*LevelEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelEventCreate) SaveX(ctx context.Context) *LevelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := levelevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LevelEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LevelEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LevelEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := levelevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromLevel(); !ok {
		return &ValidationError{Name: "from_level", err: errors.New(`ent: missing required field "LevelEvent.from_level"`)}
	}
	if v, ok := _c.mutation.FromLevel(); ok {
		if err := levelevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.from_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToLevel(); !ok {
		return &ValidationError{Name: "to_level", err: errors.New(`ent: missing required field "LevelEvent.to_level"`)}
	}
	if v, ok := _c.mutation.ToLevel(); ok {
		if err := levelevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.to_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "LevelEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := levelevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *LevelEventCreate) sqlSave(ctx context.Context) (*LevelEvent, error) {
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

func (_c *LevelEventCreate) createSpec() (*LevelEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LevelEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(levelevent.Table, sqlgraph.NewFieldSpec(levelevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(levelevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(levelevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(levelevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FromLevel(); ok {
		_spec.SetField(levelevent.FieldFromLevel, field.TypeString, value)
		_node.FromLevel = value
	}
	if value, ok := _c.mutation.ToLevel(); ok {
		_spec.SetField(levelevent.FieldToLevel, field.TypeString, value)
		_node.ToLevel = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(levelevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// LevelEventCreateBulk is the builder for creating many LevelEvent entities in bulk.
type LevelEventCreateBulk struct {
	config
	err      error
	builders []*LevelEventCreate
}

// Save creates the LevelEvent entities in the database.
func (_c *LevelEventCreateBulk) Save(ctx context.Context) ([]*LevelEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LevelEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelEventMutation)
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
func (_c *LevelEventCreateBulk) SaveX(ctx context.Context) []*LevelEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
