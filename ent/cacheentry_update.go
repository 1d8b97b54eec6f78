// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhvu/wordvault/ent/cacheentry"
	"github.com/minhvu/wordvault/ent/predicate"
)

// CacheEntryUpdate is the builder for updating CacheEntry entities.
type CacheEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CacheEntryMutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdate) Where(ps ...predicate.CacheEntry) *CacheEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDirection sets the "direction" field.
func (_u *CacheEntryUpdate) SetDirection(v string) *CacheEntryUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableDirection(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *CacheEntryUpdate) SetTerm(v string) *CacheEntryUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableTerm(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CacheEntryUpdate) SetPayload(v map[string]interface{}) *CacheEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdate) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CacheEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CacheEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CacheEntryUpdate) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := cacheentry.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := cacheentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.term": %w`, err)}
		}
	}
	return nil
}

func (_u *CacheEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(cacheentry.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(cacheentry.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(cacheentry.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CacheEntryUpdateOne is the builder for updating a single CacheEntry entity.
type CacheEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CacheEntryMutation
}

// SetDirection sets the "direction" field.
func (_u *CacheEntryUpdateOne) SetDirection(v string) *CacheEntryUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableDirection(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *CacheEntryUpdateOne) SetTerm(v string) *CacheEntryUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableTerm(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CacheEntryUpdateOne) SetPayload(v map[string]interface{}) *CacheEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdateOne) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdateOne) Where(ps ...predicate.CacheEntry) *CacheEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CacheEntryUpdateOne) Select(field string, fields ...string) *CacheEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CacheEntry entity.
func (_u *CacheEntryUpdateOne) Save(ctx context.Context) (*CacheEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) SaveX(ctx context.Context) *CacheEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CacheEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CacheEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Direction(); ok {
		if err := cacheentry.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := cacheentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.term": %w`, err)}
		}
	}
	return nil
}

func (_u *CacheEntryUpdateOne) sqlSave(ctx context.Context) (_node *CacheEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CacheEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cacheentry.FieldID)
		for _, f := range fields {
			if !cacheentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cacheentry.FieldID {
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
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(cacheentry.FieldDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(cacheentry.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(cacheentry.FieldPayload, field.TypeJSON, value)
	}
	_node = &CacheEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
