// Code generated by ent, DO NOT EDIT.

package card

import (
	"entgo.io/ent/dialect/sql"
	"github.com/minhvu/wordvault/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCardID, v))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldWord, v))
}

// Phonetic applies equality check predicate on the "phonetic" field. It's identical to PhoneticEQ.
func Phonetic(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPhonetic, v))
}

// Mnemonic applies equality check predicate on the "mnemonic" field. It's identical to MnemonicEQ.
func Mnemonic(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldMnemonic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// SrsLevel applies equality check predicate on the "srs_level" field. It's identical to SrsLevelEQ.
func SrsLevel(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSrsLevel, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v int64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldCardID, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldWord, v))
}

// PhoneticEQ applies the EQ predicate on the "phonetic" field.
func PhoneticEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPhonetic, v))
}

// PhoneticNEQ applies the NEQ predicate on the "phonetic" field.
func PhoneticNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPhonetic, v))
}

// PhoneticIn applies the In predicate on the "phonetic" field.
func PhoneticIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPhonetic, vs...))
}

// PhoneticNotIn applies the NotIn predicate on the "phonetic" field.
func PhoneticNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPhonetic, vs...))
}

// PhoneticGT applies the GT predicate on the "phonetic" field.
func PhoneticGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPhonetic, v))
}

// PhoneticGTE applies the GTE predicate on the "phonetic" field.
func PhoneticGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPhonetic, v))
}

// PhoneticLT applies the LT predicate on the "phonetic" field.
func PhoneticLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPhonetic, v))
}

// PhoneticLTE applies the LTE predicate on the "phonetic" field.
func PhoneticLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPhonetic, v))
}

// PhoneticContains applies the Contains predicate on the "phonetic" field.
func PhoneticContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldPhonetic, v))
}

// PhoneticHasPrefix applies the HasPrefix predicate on the "phonetic" field.
func PhoneticHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldPhonetic, v))
}

// PhoneticHasSuffix applies the HasSuffix predicate on the "phonetic" field.
func PhoneticHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldPhonetic, v))
}

// PhoneticEqualFold applies the EqualFold predicate on the "phonetic" field.
func PhoneticEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldPhonetic, v))
}

// PhoneticContainsFold applies the ContainsFold predicate on the "phonetic" field.
func PhoneticContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldPhonetic, v))
}

// MnemonicEQ applies the EQ predicate on the "mnemonic" field.
func MnemonicEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldMnemonic, v))
}

// MnemonicNEQ applies the NEQ predicate on the "mnemonic" field.
func MnemonicNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldMnemonic, v))
}

// MnemonicIn applies the In predicate on the "mnemonic" field.
func MnemonicIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldMnemonic, vs...))
}

// MnemonicNotIn applies the NotIn predicate on the "mnemonic" field.
func MnemonicNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldMnemonic, vs...))
}

// MnemonicGT applies the GT predicate on the "mnemonic" field.
func MnemonicGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldMnemonic, v))
}

// MnemonicGTE applies the GTE predicate on the "mnemonic" field.
func MnemonicGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldMnemonic, v))
}

// MnemonicLT applies the LT predicate on the "mnemonic" field.
func MnemonicLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldMnemonic, v))
}

// MnemonicLTE applies the LTE predicate on the "mnemonic" field.
func MnemonicLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldMnemonic, v))
}

// MnemonicContains applies the Contains predicate on the "mnemonic" field.
func MnemonicContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldMnemonic, v))
}

// MnemonicHasPrefix applies the HasPrefix predicate on the "mnemonic" field.
func MnemonicHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldMnemonic, v))
}

// MnemonicHasSuffix applies the HasSuffix predicate on the "mnemonic" field.
func MnemonicHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldMnemonic, v))
}

// MnemonicEqualFold applies the EqualFold predicate on the "mnemonic" field.
func MnemonicEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldMnemonic, v))
}

// MnemonicContainsFold applies the ContainsFold predicate on the "mnemonic" field.
func MnemonicContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldMnemonic, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldExamples))
}

// SynonymsIsNil applies the IsNil predicate on the "synonyms" field.
func SynonymsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldSynonyms))
}

// SynonymsNotNil applies the NotNil predicate on the "synonyms" field.
func SynonymsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldSynonyms))
}

// AntonymsIsNil applies the IsNil predicate on the "antonyms" field.
func AntonymsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldAntonyms))
}

// AntonymsNotNil applies the NotNil predicate on the "antonyms" field.
func AntonymsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldAntonyms))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// SrsLevelEQ applies the EQ predicate on the "srs_level" field.
func SrsLevelEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSrsLevel, v))
}

// SrsLevelNEQ applies the NEQ predicate on the "srs_level" field.
func SrsLevelNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldSrsLevel, v))
}

// SrsLevelIn applies the In predicate on the "srs_level" field.
func SrsLevelIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldSrsLevel, vs...))
}

// SrsLevelNotIn applies the NotIn predicate on the "srs_level" field.
func SrsLevelNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldSrsLevel, vs...))
}

// SrsLevelGT applies the GT predicate on the "srs_level" field.
func SrsLevelGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldSrsLevel, v))
}

// SrsLevelGTE applies the GTE predicate on the "srs_level" field.
func SrsLevelGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldSrsLevel, v))
}

// SrsLevelLT applies the LT predicate on the "srs_level" field.
func SrsLevelLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldSrsLevel, v))
}

// SrsLevelLTE applies the LTE predicate on the "srs_level" field.
func SrsLevelLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldSrsLevel, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v int64) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v int64) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...int64) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...int64) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v int64) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v int64) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v int64) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v int64) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldNextReview, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
