// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/minhvu/wordvault/ent/cacheentry"
	"github.com/minhvu/wordvault/ent/card"
	"github.com/minhvu/wordvault/ent/llmevent"
	"github.com/minhvu/wordvault/ent/reviewevent"
	"github.com/minhvu/wordvault/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescDirection is the schema descriptor for direction field.
	cacheentryDescDirection := cacheentryFields[0].Descriptor()
	// cacheentry.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	cacheentry.DirectionValidator = cacheentryDescDirection.Validators[0].(func(string) error)
	// cacheentryDescTerm is the schema descriptor for term field.
	cacheentryDescTerm := cacheentryFields[1].Descriptor()
	// cacheentry.TermValidator is a validator for the "term" field. It is called by the builders before save.
	cacheentry.TermValidator = cacheentryDescTerm.Validators[0].(func(string) error)
	// cacheentryDescCreatedAt is the schema descriptor for created_at field.
	cacheentryDescCreatedAt := cacheentryFields[3].Descriptor()
	// cacheentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	cacheentry.DefaultCreatedAt = cacheentryDescCreatedAt.Default.(func() time.Time)
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescWord is the schema descriptor for word field.
	cardDescWord := cardFields[1].Descriptor()
	// card.WordValidator is a validator for the "word" field. It is called by the builders before save.
	card.WordValidator = cardDescWord.Validators[0].(func(string) error)
	// cardDescPhonetic is the schema descriptor for phonetic field.
	cardDescPhonetic := cardFields[2].Descriptor()
	// card.DefaultPhonetic holds the default value on creation for the phonetic field.
	card.DefaultPhonetic = cardDescPhonetic.Default.(string)
	// cardDescMnemonic is the schema descriptor for mnemonic field.
	cardDescMnemonic := cardFields[3].Descriptor()
	// card.DefaultMnemonic holds the default value on creation for the mnemonic field.
	card.DefaultMnemonic = cardDescMnemonic.Default.(string)
	// cardDescSrsLevel is the schema descriptor for srs_level field.
	cardDescSrsLevel := cardFields[9].Descriptor()
	// card.DefaultSrsLevel holds the default value on creation for the srs_level field.
	card.DefaultSrsLevel = cardDescSrsLevel.Default.(int)
	// cardDescNextReview is the schema descriptor for next_review field.
	cardDescNextReview := cardFields[10].Descriptor()
	// card.DefaultNextReview holds the default value on creation for the next_review field.
	card.DefaultNextReview = cardDescNextReview.Default.(int64)
	llmeventFields := schema.LLMEvent{}.Fields()
	_ = llmeventFields
	// llmeventDescInputTokens is the schema descriptor for input_tokens field.
	llmeventDescInputTokens := llmeventFields[3].Descriptor()
	// llmevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmevent.DefaultInputTokens = llmeventDescInputTokens.Default.(int)
	// llmeventDescOutputTokens is the schema descriptor for output_tokens field.
	llmeventDescOutputTokens := llmeventFields[4].Descriptor()
	// llmevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmevent.DefaultOutputTokens = llmeventDescOutputTokens.Default.(int)
	// llmeventDescLatencyMs is the schema descriptor for latency_ms field.
	llmeventDescLatencyMs := llmeventFields[5].Descriptor()
	// llmevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmevent.DefaultLatencyMs = llmeventDescLatencyMs.Default.(int64)
	// llmeventDescErrorMessage is the schema descriptor for error_message field.
	llmeventDescErrorMessage := llmeventFields[7].Descriptor()
	// llmevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmevent.DefaultErrorMessage = llmeventDescErrorMessage.Default.(string)
	// llmeventDescTimestamp is the schema descriptor for timestamp field.
	llmeventDescTimestamp := llmeventFields[8].Descriptor()
	// llmevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmevent.DefaultTimestamp = llmeventDescTimestamp.Default.(func() time.Time)
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[0].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventFields[5].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
}
