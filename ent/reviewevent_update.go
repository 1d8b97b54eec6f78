// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhvu/wordvault/ent/predicate"
	"github.com/minhvu/wordvault/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdate) SetCardID(v string) *ReviewEventUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCardID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReviewEventUpdate) SetSuccess(v bool) *ReviewEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSuccess(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *ReviewEventUpdate) SetLevelBefore(v int) *ReviewEventUpdate {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableLevelBefore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *ReviewEventUpdate) AddLevelBefore(v int) *ReviewEventUpdate {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ReviewEventUpdate) SetLevelAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableLevelAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ReviewEventUpdate) AddLevelAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdate) SetNextReview(v int64) *ReviewEventUpdate {
	_u.mutation.ResetNextReview()
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableNextReview(v *int64) *ReviewEventUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// AddNextReview adds value to the "next_review" field.
func (_u *ReviewEventUpdate) AddNextReview(v int64) *ReviewEventUpdate {
	_u.mutation.AddNextReview(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.card_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reviewevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(reviewevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(reviewevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextReview(); ok {
		_spec.AddField(reviewevent.FieldNextReview, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdateOne) SetCardID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCardID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReviewEventUpdateOne) SetSuccess(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSuccess(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *ReviewEventUpdateOne) SetLevelBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableLevelBefore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *ReviewEventUpdateOne) AddLevelBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *ReviewEventUpdateOne) SetLevelAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableLevelAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *ReviewEventUpdateOne) AddLevelAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdateOne) SetNextReview(v int64) *ReviewEventUpdateOne {
	_u.mutation.ResetNextReview()
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableNextReview(v *int64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// AddNextReview adds value to the "next_review" field.
func (_u *ReviewEventUpdateOne) AddNextReview(v int64) *ReviewEventUpdateOne {
	_u.mutation.AddNextReview(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := reviewevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.card_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reviewevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(reviewevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(reviewevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(reviewevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextReview(); ok {
		_spec.AddField(reviewevent.FieldNextReview, field.TypeInt64, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
