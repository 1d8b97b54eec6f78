// Code generated by ent, DO NOT EDIT.

package card

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldPhonetic holds the string denoting the phonetic field in the database.
	FieldPhonetic = "phonetic"
	// FieldMnemonic holds the string denoting the mnemonic field in the database.
	FieldMnemonic = "mnemonic"
	// FieldMeanings holds the string denoting the meanings field in the database.
	FieldMeanings = "meanings"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldSynonyms holds the string denoting the synonyms field in the database.
	FieldSynonyms = "synonyms"
	// FieldAntonyms holds the string denoting the antonyms field in the database.
	FieldAntonyms = "antonyms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSrsLevel holds the string denoting the srs_level field in the database.
	FieldSrsLevel = "srs_level"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// Table holds the table name of the card in the database.
	Table = "cards"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldCardID,
	FieldWord,
	FieldPhonetic,
	FieldMnemonic,
	FieldMeanings,
	FieldExamples,
	FieldSynonyms,
	FieldAntonyms,
	FieldCreatedAt,
	FieldSrsLevel,
	FieldNextReview,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefaultPhonetic holds the default value on creation for the "phonetic" field.
	DefaultPhonetic string
	// DefaultMnemonic holds the default value on creation for the "mnemonic" field.
	DefaultMnemonic string
	// DefaultSrsLevel holds the default value on creation for the "srs_level" field.
	DefaultSrsLevel int
	// DefaultNextReview holds the default value on creation for the "next_review" field.
	DefaultNextReview int64
)

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByPhonetic orders the results by the phonetic field.
func ByPhonetic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhonetic, opts...).ToFunc()
}

// ByMnemonic orders the results by the mnemonic field.
func ByMnemonic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMnemonic, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySrsLevel orders the results by the srs_level field.
func BySrsLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrsLevel, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}
