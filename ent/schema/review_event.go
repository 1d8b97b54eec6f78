package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single rating of a card during study.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Comment("Card that was rated"),
		field.Bool("success").
			Comment("Whether the learner marked the card as remembered"),
		field.Int("level_before").
			Comment("SRS level before the rating"),
		field.Int("level_after").
			Comment("SRS level after the rating"),
		field.Int64("next_review").
			Comment("Epoch milliseconds of the review scheduled by this rating"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("timestamp"),
		index.Fields("success"),
	}
}
