// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "direction", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_direction_term",
				Unique:  true,
				Columns: []*schema.Column{CacheEntriesColumns[1], CacheEntriesColumns[2]},
			},
		},
	}
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "word", Type: field.TypeString},
		{Name: "phonetic", Type: field.TypeString, Default: ""},
		{Name: "mnemonic", Type: field.TypeString, Default: ""},
		{Name: "meanings", Type: field.TypeJSON},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "synonyms", Type: field.TypeJSON, Nullable: true},
		{Name: "antonyms", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "srs_level", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeInt64, Default: 0},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_word",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[2]},
			},
			{
				Name:    "card_next_review",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[11]},
			},
			{
				Name:    "card_created_at",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[9]},
			},
		},
	}
	// LlmEventsColumns holds the columns for the "llm_events" table.
	LlmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmEventsTable holds the schema information for the "llm_events" table.
	LlmEventsTable = &schema.Table{
		Name:       "llm_events",
		Columns:    LlmEventsColumns,
		PrimaryKey: []*schema.Column{LlmEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[1]},
			},
			{
				Name:    "llmevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[3]},
			},
			{
				Name:    "llmevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[9]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "level_before", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "next_review", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[6]},
			},
			{
				Name:    "reviewevent_success",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheEntriesTable,
		CardsTable,
		LlmEventsTable,
		ReviewEventsTable,
	}
)

func init() {
}
