// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhvu/wordvault/ent/card"
	"github.com/minhvu/wordvault/internal/vocab"
)

// Card is the model entity for the Card schema.
type Card struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Application-level UUID
	CardID string `json:"card_id,omitempty"`
	// The headword as saved
	Word string `json:"word,omitempty"`
	// IPA transcription
	Phonetic string `json:"phonetic,omitempty"`
	// Memory aid, may be empty
	Mnemonic string `json:"mnemonic,omitempty"`
	// Senses in display order; at least one
	Meanings []vocab.Meaning `json:"meanings,omitempty"`
	// Example sentences with translations
	Examples []vocab.Example `json:"examples,omitempty"`
	// Synonyms holds the value of the "synonyms" field.
	Synonyms []string `json:"synonyms,omitempty"`
	// Antonyms holds the value of the "antonyms" field.
	Antonyms []string `json:"antonyms,omitempty"`
	// Epoch milliseconds when the card was saved
	CreatedAt int64 `json:"created_at,omitempty"`
	// Current spaced repetition level, 0 (new) through 5
	SrsLevel int `json:"srs_level,omitempty"`
	// Epoch milliseconds of the next due review; 0 means never scheduled
	NextReview   int64 `json:"next_review,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Card) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case card.FieldMeanings, card.FieldExamples, card.FieldSynonyms, card.FieldAntonyms:
			values[i] = new([]byte)
		case card.FieldID, card.FieldCreatedAt, card.FieldSrsLevel, card.FieldNextReview:
			values[i] = new(sql.NullInt64)
		case card.FieldCardID, card.FieldWord, card.FieldPhonetic, card.FieldMnemonic:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Card fields.
func (_m *Card) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case card.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case card.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case card.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case card.FieldPhonetic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phonetic", values[i])
			} else if value.Valid {
				_m.Phonetic = value.String
			}
		case card.FieldMnemonic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mnemonic", values[i])
			} else if value.Valid {
				_m.Mnemonic = value.String
			}
		case card.FieldMeanings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meanings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meanings); err != nil {
					return fmt.Errorf("unmarshal field meanings: %w", err)
				}
			}
		case card.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case card.FieldSynonyms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field synonyms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Synonyms); err != nil {
					return fmt.Errorf("unmarshal field synonyms: %w", err)
				}
			}
		case card.FieldAntonyms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field antonyms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Antonyms); err != nil {
					return fmt.Errorf("unmarshal field antonyms: %w", err)
				}
			}
		case card.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		case card.FieldSrsLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field srs_level", values[i])
			} else if value.Valid {
				_m.SrsLevel = int(value.Int64)
			}
		case card.FieldNextReview:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Card.
// This includes values selected through modifiers, order, etc.
func (_m *Card) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Card.
// Note that you need to call Card.Unwrap() before calling this method if this Card
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Card) Update() *CardUpdateOne {
	return NewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Card entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Card) Unwrap() *Card {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Card is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Card) String() string {
	var builder strings.Builder
	builder.WriteString("Card(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("phonetic=")
	builder.WriteString(_m.Phonetic)
	builder.WriteString(", ")
	builder.WriteString("mnemonic=")
	builder.WriteString(_m.Mnemonic)
	builder.WriteString(", ")
	builder.WriteString("meanings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meanings))
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	builder.WriteString("synonyms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synonyms))
	builder.WriteString(", ")
	builder.WriteString("antonyms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Antonyms))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteString(", ")
	builder.WriteString("srs_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SrsLevel))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextReview))
	builder.WriteByte(')')
	return builder.String()
}

// Cards is a parsable slice of Card.
type Cards []*Card
