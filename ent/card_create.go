// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/minhvu/wordvault/ent/card"
	"github.com/minhvu/wordvault/internal/vocab"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *CardCreate) SetCardID(v string) *CardCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetWord sets the "word" field.
func (_c *CardCreate) SetWord(v string) *CardCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetPhonetic sets the "phonetic" field.
func (_c *CardCreate) SetPhonetic(v string) *CardCreate {
	_c.mutation.SetPhonetic(v)
	return _c
}

// SetNillablePhonetic sets the "phonetic" field if the given value is not nil.
func (_c *CardCreate) SetNillablePhonetic(v *string) *CardCreate {
	if v != nil {
		_c.SetPhonetic(*v)
	}
	return _c
}

// SetMnemonic sets the "mnemonic" field.
func (_c *CardCreate) SetMnemonic(v string) *CardCreate {
	_c.mutation.SetMnemonic(v)
	return _c
}

// SetNillableMnemonic sets the "mnemonic" field if the given value is not nil.
func (_c *CardCreate) SetNillableMnemonic(v *string) *CardCreate {
	if v != nil {
		_c.SetMnemonic(*v)
	}
	return _c
}

// SetMeanings sets the "meanings" field.
func (_c *CardCreate) SetMeanings(v []vocab.Meaning) *CardCreate {
	_c.mutation.SetMeanings(v)
	return _c
}

// SetExamples sets the "examples" field.
func (_c *CardCreate) SetExamples(v []vocab.Example) *CardCreate {
	_c.mutation.SetExamples(v)
	return _c
}

// SetSynonyms sets the "synonyms" field.
func (_c *CardCreate) SetSynonyms(v []string) *CardCreate {
	_c.mutation.SetSynonyms(v)
	return _c
}

// SetAntonyms sets the "antonyms" field.
func (_c *CardCreate) SetAntonyms(v []string) *CardCreate {
	_c.mutation.SetAntonyms(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v int64) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetSrsLevel sets the "srs_level" field.
func (_c *CardCreate) SetSrsLevel(v int) *CardCreate {
	_c.mutation.SetSrsLevel(v)
	return _c
}

// SetNillableSrsLevel sets the "srs_level" field if the given value is not nil.
func (_c *CardCreate) SetNillableSrsLevel(v *int) *CardCreate {
	if v != nil {
		_c.SetSrsLevel(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *CardCreate) SetNextReview(v int64) *CardCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *CardCreate) SetNillableNextReview(v *int64) *CardCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.Phonetic(); !ok {
		v := card.DefaultPhonetic
		_c.mutation.SetPhonetic(v)
	}
	if _, ok := _c.mutation.Mnemonic(); !ok {
		v := card.DefaultMnemonic
		_c.mutation.SetMnemonic(v)
	}
	if _, ok := _c.mutation.SrsLevel(); !ok {
		v := card.DefaultSrsLevel
		_c.mutation.SetSrsLevel(v)
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		v := card.DefaultNextReview
		_c.mutation.SetNextReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "Card.card_id"`)}
	}
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "Card.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := card.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "Card.word": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phonetic(); !ok {
		return &ValidationError{Name: "phonetic", err: errors.New(`ent: missing required field "Card.phonetic"`)}
	}
	if _, ok := _c.mutation.Mnemonic(); !ok {
		return &ValidationError{Name: "mnemonic", err: errors.New(`ent: missing required field "Card.mnemonic"`)}
	}
	if _, ok := _c.mutation.Meanings(); !ok {
		return &ValidationError{Name: "meanings", err: errors.New(`ent: missing required field "Card.meanings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.SrsLevel(); !ok {
		return &ValidationError{Name: "srs_level", err: errors.New(`ent: missing required field "Card.srs_level"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "Card.next_review"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
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

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(card.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Phonetic(); ok {
		_spec.SetField(card.FieldPhonetic, field.TypeString, value)
		_node.Phonetic = value
	}
	if value, ok := _c.mutation.Mnemonic(); ok {
		_spec.SetField(card.FieldMnemonic, field.TypeString, value)
		_node.Mnemonic = value
	}
	if value, ok := _c.mutation.Meanings(); ok {
		_spec.SetField(card.FieldMeanings, field.TypeJSON, value)
		_node.Meanings = value
	}
	if value, ok := _c.mutation.Examples(); ok {
		_spec.SetField(card.FieldExamples, field.TypeJSON, value)
		_node.Examples = value
	}
	if value, ok := _c.mutation.Synonyms(); ok {
		_spec.SetField(card.FieldSynonyms, field.TypeJSON, value)
		_node.Synonyms = value
	}
	if value, ok := _c.mutation.Antonyms(); ok {
		_spec.SetField(card.FieldAntonyms, field.TypeJSON, value)
		_node.Antonyms = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SrsLevel(); ok {
		_spec.SetField(card.FieldSrsLevel, field.TypeInt, value)
		_node.SrsLevel = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeInt64, value)
		_node.NextReview = value
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
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
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
