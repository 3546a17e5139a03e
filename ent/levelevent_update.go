// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/conjugo/ent/levelevent"
	"github.com/abhisek/conjugo/ent/predicate"
)

// LevelEventUpdate is the builder for updating LevelEvent entities.
type LevelEventUpdate struct {
	config
	hooks    []Hook
	mutation *LevelEventMutation
}

// Where appends a list predicates to the LevelEventUpdate builder.
func (_u *LevelEventUpdate) Where(ps ...predicate.LevelEvent) *LevelEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *LevelEventUpdate) SetFromLevel(v string) *LevelEventUpdate {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *LevelEventUpdate) SetNillableFromLevel(v *string) *LevelEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *LevelEventUpdate) SetToLevel(v string) *LevelEventUpdate {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *LevelEventUpdate) SetNillableToLevel(v *string) *LevelEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LevelEventUpdate) SetReason(v string) *LevelEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LevelEventUpdate) SetNillableReason(v *string) *LevelEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the LevelEventMutation object of the builder.
func (_u *LevelEventUpdate) Mutation() *LevelEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelEventUpdate) check() error {
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := levelevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := levelevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.to_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := levelevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelevent.Table, levelevent.Columns, sqlgraph.NewFieldSpec(levelevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(levelevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(levelevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(levelevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelEventUpdateOne is the builder for updating a single LevelEvent entity.
type LevelEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelEventMutation
}

// SetFromLevel sets the "from_level" field.
func (_u *LevelEventUpdateOne) SetFromLevel(v string) *LevelEventUpdateOne {
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *LevelEventUpdateOne) SetNillableFromLevel(v *string) *LevelEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *LevelEventUpdateOne) SetToLevel(v string) *LevelEventUpdateOne {
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *LevelEventUpdateOne) SetNillableToLevel(v *string) *LevelEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *LevelEventUpdateOne) SetReason(v string) *LevelEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *LevelEventUpdateOne) SetNillableReason(v *string) *LevelEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the LevelEventMutation object of the builder.
func (_u *LevelEventUpdateOne) Mutation() *LevelEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelEventUpdate builder.
func (_u *LevelEventUpdateOne) Where(ps ...predicate.LevelEvent) *LevelEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelEventUpdateOne) Select(field string, fields ...string) *LevelEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LevelEvent entity.
func (_u *LevelEventUpdateOne) Save(ctx context.Context) (*LevelEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelEventUpdateOne) SaveX(ctx context.Context) *LevelEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelEventUpdateOne) check() error {
	if v, ok := _u.mutation.FromLevel(); ok {
		if err := levelevent.FromLevelValidator(v); err != nil {
			return &ValidationError{Name: "from_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.from_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToLevel(); ok {
		if err := levelevent.ToLevelValidator(v); err != nil {
			return &ValidationError{Name: "to_level", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.to_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := levelevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "LevelEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelEventUpdateOne) sqlSave(ctx context.Context) (_node *LevelEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelevent.Table, levelevent.Columns, sqlgraph.NewFieldSpec(levelevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LevelEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, levelevent.FieldID)
		for _, f := range fields {
			if !levelevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != levelevent.FieldID {
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
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(levelevent.FieldFromLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(levelevent.FieldToLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(levelevent.FieldReason, field.TypeString, value)
	}
	_node = &LevelEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
