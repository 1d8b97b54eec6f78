package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry stores a lookup response so repeated lookups of the same
// term skip the AI provider.
type CacheEntry struct {
	ent.Schema
}

func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("direction").
			NotEmpty().
			Comment("Translation direction: en-vi or vi-en"),
		field.String("term").
			NotEmpty().
			Comment("Normalized (lowercased, trimmed) lookup term"),
		field.JSON("payload", map[string]any{}).
			Comment("The structured word entry as returned by the provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("direction", "term").
			Unique(),
	}
}
