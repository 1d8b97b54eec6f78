// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CacheEntry is the predicate function for cacheentry builders.
type CacheEntry func(*sql.Selector)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// LLMEvent is the predicate function for llmevent builders.
type LLMEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)
