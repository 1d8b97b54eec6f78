// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhvu/wordvault/ent/cacheentry"
)

// CacheEntryCreate is the builder for creating a CacheEntry entity.
type CacheEntryCreate struct {
	config
	mutation *CacheEntryMutation
	hooks    []Hook
}

// SetDirection sets the "direction" field.
func (_c *CacheEntryCreate) SetDirection(v string) *CacheEntryCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *CacheEntryCreate) SetTerm(v string) *CacheEntryCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CacheEntryCreate) SetPayload(v map[string]interface{}) *CacheEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CacheEntryCreate) SetCreatedAt(v time.Time) *CacheEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableCreatedAt(v *time.Time) *CacheEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_c *CacheEntryCreate) Mutation() *CacheEntryMutation {
	return _c.mutation
}

// Save creates the CacheEntry in the database.
func (_c *CacheEntryCreate) Save(ctx context.Context) (*CacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CacheEntryCreate) SaveX(ctx context.Context) *CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CacheEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cacheentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CacheEntryCreate) check() error {
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "CacheEntry.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := cacheentry.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "CacheEntry.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := cacheentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "CacheEntry.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CacheEntry.created_at"`)}
	}
	return nil
}

func (_c *CacheEntryCreate) sqlSave(ctx context.Context) (*CacheEntry, error) {
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

func (_c *CacheEntryCreate) createSpec() (*CacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cacheentry.Table, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(cacheentry.FieldDirection, field.TypeString, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(cacheentry.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(cacheentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cacheentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CacheEntryCreateBulk is the builder for creating many CacheEntry entities in bulk.
type CacheEntryCreateBulk struct {
	config
	err      error
	builders []*CacheEntryCreate
}

// Save creates the CacheEntry entities in the database.
func (_c *CacheEntryCreateBulk) Save(ctx context.Context) ([]*CacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CacheEntryMutation)
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
func (_c *CacheEntryCreateBulk) SaveX(ctx context.Context) []*CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
