// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/minhvu/wordvault/ent/card"
	"github.com/minhvu/wordvault/ent/predicate"
	"github.com/minhvu/wordvault/internal/vocab"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWord sets the "word" field.
func (_u *CardUpdate) SetWord(v string) *CardUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *CardUpdate) SetNillableWord(v *string) *CardUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetPhonetic sets the "phonetic" field.
func (_u *CardUpdate) SetPhonetic(v string) *CardUpdate {
	_u.mutation.SetPhonetic(v)
	return _u
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePhonetic(v *string) *CardUpdate {
	if v != nil {
		_u.SetPhonetic(*v)
	}
	return _u
}

// SetMnemonic sets the "mnemonic" field.
func (_u *CardUpdate) SetMnemonic(v string) *CardUpdate {
	_u.mutation.SetMnemonic(v)
	return _u
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_u *CardUpdate) SetNillableMnemonic(v *string) *CardUpdate {
	if v != nil {
		_u.SetMnemonic(*v)
	}
	return _u
}

// SetMeanings sets the "meanings" field.
func (_u *CardUpdate) SetMeanings(v []vocab.Meaning) *CardUpdate {
	_u.mutation.SetMeanings(v)
	return _u
}

// AppendMeanings appends value to the "meanings" field.
func (_u *CardUpdate) AppendMeanings(v []vocab.Meaning) *CardUpdate {
	_u.mutation.AppendMeanings(v)
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CardUpdate) SetExamples(v []vocab.Example) *CardUpdate {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CardUpdate) AppendExamples(v []vocab.Example) *CardUpdate {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CardUpdate) ClearExamples() *CardUpdate {
	_u.mutation.ClearExamples()
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *CardUpdate) SetSynonyms(v []string) *CardUpdate {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *CardUpdate) AppendSynonyms(v []string) *CardUpdate {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// ClearSynonyms clears the value of the "synonyms" field.
func (_u *CardUpdate) ClearSynonyms() *CardUpdate {
	_u.mutation.ClearSynonyms()
	return _u
}

// SetAntonyms sets the "antonyms" field.
func (_u *CardUpdate) SetAntonyms(v []string) *CardUpdate {
	_u.mutation.SetAntonyms(v)
	return _u
}

// AppendAntonyms appends value to the "antonyms" field.
func (_u *CardUpdate) AppendAntonyms(v []string) *CardUpdate {
	_u.mutation.AppendAntonyms(v)
	return _u
}

// ClearAntonyms clears the value of the "antonyms" field.
func (_u *CardUpdate) ClearAntonyms() *CardUpdate {
	_u.mutation.ClearAntonyms()
	return _u
}

// SetSrsLevel sets the "srs_level" field.
func (_u *CardUpdate) SetSrsLevel(v int) *CardUpdate {
	_u.mutation.ResetSrsLevel()
	_u.mutation.SetSrsLevel(v)
	return _u
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_u *CardUpdate) SetNillableSrsLevel(v *int) *CardUpdate {
	if v != nil {
		_u.SetSrsLevel(*v)
	}
	return _u
}

// AddSrsLevel adds value to the "srs_level" field.
func (_u *CardUpdate) AddSrsLevel(v int) *CardUpdate {
	_u.mutation.AddSrsLevel(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdate) SetNextReview(v int64) *CardUpdate {
	_u.mutation.ResetNextReview()
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdate) SetNillableNextReview(v *int64) *CardUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// AddNextReview adds value to the "next_review" field.
func (_u *CardUpdate) AddNextReview(v int64) *CardUpdate {
	_u.mutation.AddNextReview(v)
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := card.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "Card.word": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(card.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phonetic(); ok {
		_spec.SetField(card.FieldPhonetic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mnemonic(); ok {
		_spec.SetField(card.FieldMnemonic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meanings(); ok {
		_spec.SetField(card.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldMeanings, value)
		})
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(card.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(card.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldSynonyms, value)
		})
	}
	if _u.mutation.SynonymsCleared() {
		_spec.ClearField(card.FieldSynonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Antonyms(); ok {
		_spec.SetField(card.FieldAntonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAntonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAntonyms, value)
		})
	}
	if _u.mutation.AntonymsCleared() {
		_spec.ClearField(card.FieldAntonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.SrsLevel(); ok {
		_spec.SetField(card.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSrsLevel(); ok {
		_spec.AddField(card.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextReview(); ok {
		_spec.AddField(card.FieldNextReview, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetWord sets the "word" field.
func (_u *CardUpdateOne) SetWord(v string) *CardUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableWord(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetPhonetic sets the "phonetic" field.
func (_u *CardUpdateOne) SetPhonetic(v string) *CardUpdateOne {
	_u.mutation.SetPhonetic(v)
	return _u
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePhonetic(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPhonetic(*v)
	}
	return _u
}

// SetMnemonic sets the "mnemonic" field.
func (_u *CardUpdateOne) SetMnemonic(v string) *CardUpdateOne {
	_u.mutation.SetMnemonic(v)
	return _u
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableMnemonic(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetMnemonic(*v)
	}
	return _u
}

// SetMeanings sets the "meanings" field.
func (_u *CardUpdateOne) SetMeanings(v []vocab.Meaning) *CardUpdateOne {
	_u.mutation.SetMeanings(v)
	return _u
}

// AppendMeanings appends value to the "meanings" field.
func (_u *CardUpdateOne) AppendMeanings(v []vocab.Meaning) *CardUpdateOne {
	_u.mutation.AppendMeanings(v)
	return _u
}

// SetExamples sets the "examples" field.
func (_u *CardUpdateOne) SetExamples(v []vocab.Example) *CardUpdateOne {
	_u.mutation.SetExamples(v)
	return _u
}

// AppendExamples appends value to the "examples" field.
func (_u *CardUpdateOne) AppendExamples(v []vocab.Example) *CardUpdateOne {
	_u.mutation.AppendExamples(v)
	return _u
}

// ClearExamples clears the value of the "examples" field.
func (_u *CardUpdateOne) ClearExamples() *CardUpdateOne {
	_u.mutation.ClearExamples()
	return _u
}

// SetSynonyms sets the "synonyms" field.
func (_u *CardUpdateOne) SetSynonyms(v []string) *CardUpdateOne {
	_u.mutation.SetSynonyms(v)
	return _u
}

// AppendSynonyms appends value to the "synonyms" field.
func (_u *CardUpdateOne) AppendSynonyms(v []string) *CardUpdateOne {
	_u.mutation.AppendSynonyms(v)
	return _u
}

// ClearSynonyms clears the value of the "synonyms" field.
func (_u *CardUpdateOne) ClearSynonyms() *CardUpdateOne {
	_u.mutation.ClearSynonyms()
	return _u
}

// SetAntonyms sets the "antonyms" field.
func (_u *CardUpdateOne) SetAntonyms(v []string) *CardUpdateOne {
	_u.mutation.SetAntonyms(v)
	return _u
}

// AppendAntonyms appends value to the "antonyms" field.
func (_u *CardUpdateOne) AppendAntonyms(v []string) *CardUpdateOne {
	_u.mutation.AppendAntonyms(v)
	return _u
}

// ClearAntonyms clears the value of the "antonyms" field.
func (_u *CardUpdateOne) ClearAntonyms() *CardUpdateOne {
	_u.mutation.ClearAntonyms()
	return _u
}

// SetSrsLevel sets the "srs_level" field.
func (_u *CardUpdateOne) SetSrsLevel(v int) *CardUpdateOne {
	_u.mutation.ResetSrsLevel()
	_u.mutation.SetSrsLevel(v)
	return _u
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableSrsLevel(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetSrsLevel(*v)
	}
	return _u
}

// AddSrsLevel adds value to the "srs_level" field.
func (_u *CardUpdateOne) AddSrsLevel(v int) *CardUpdateOne {
	_u.mutation.AddSrsLevel(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdateOne) SetNextReview(v int64) *CardUpdateOne {
	_u.mutation.ResetNextReview()
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableNextReview(v *int64) *CardUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// AddNextReview adds value to the "next_review" field.
func (_u *CardUpdateOne) AddNextReview(v int64) *CardUpdateOne {
	_u.mutation.AddNextReview(v)
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := card.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "Card.word": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(card.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phonetic(); ok {
		_spec.SetField(card.FieldPhonetic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mnemonic(); ok {
		_spec.SetField(card.FieldMnemonic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meanings(); ok {
		_spec.SetField(card.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldMeanings, value)
		})
	}
	if value, ok := _u.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExamples(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldExamples, value)
		})
	}
	if _u.mutation.ExamplesCleared() {
		_spec.ClearField(card.FieldExamples, field.TypeJSON)
	}
	if value, ok := _u.mutation.Synonyms(); ok {
		_spec.SetField(card.FieldSynonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSynonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldSynonyms, value)
		})
	}
	if _u.mutation.SynonymsCleared() {
		_spec.ClearField(card.FieldSynonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Antonyms(); ok {
		_spec.SetField(card.FieldAntonyms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAntonyms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAntonyms, value)
		})
	}
	if _u.mutation.AntonymsCleared() {
		_spec.ClearField(card.FieldAntonyms, field.TypeJSON)
	}
	if value, ok := _u.mutation.SrsLevel(); ok {
		_spec.SetField(card.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSrsLevel(); ok {
		_spec.AddField(card.FieldSrsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextReview(); ok {
		_spec.AddField(card.FieldNextReview, field.TypeInt64, value)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
