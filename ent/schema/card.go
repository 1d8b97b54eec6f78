package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/minhvu/wordvault/internal/vocab"
)

// Card is a saved vocabulary card with its scheduling state.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			Unique().
			Immutable().
			Comment("Application-level UUID"),
		field.String("word").
			NotEmpty().
			Comment("The headword as saved"),
		field.String("phonetic").
			Default("").
			Comment("IPA transcription"),
		field.String("mnemonic").
			Default("").
			Comment("Memory aid, may be empty"),
		field.JSON("meanings", []vocab.Meaning{}).
			Comment("Senses in display order; at least one"),
		field.JSON("examples", []vocab.Example{}).
			Optional().
			Comment("Example sentences with translations"),
		field.JSON("synonyms", []string{}).
			Optional(),
		field.JSON("antonyms", []string{}).
			Optional(),
		field.Int64("created_at").
			Immutable().
			Comment("Epoch milliseconds when the card was saved"),
		field.Int("srs_level").
			Default(0).
			Comment("Current spaced repetition level, 0 (new) through 5"),
		field.Int64("next_review").
			Default(0).
			Comment("Epoch milliseconds of the next due review; 0 means never scheduled"),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word"),
		index.Fields("next_review"),
		index.Fields("created_at"),
	}
}
