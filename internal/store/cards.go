package store

import (
	"context"
	"fmt"
	"os"

	"github.com/minhvu/wordvault/ent"
	"github.com/minhvu/wordvault/ent/card"
	"github.com/minhvu/wordvault/internal/vocab"
)

// CardRepo persists vocabulary cards. Implements deck.Persister.
type CardRepo struct {
	client *ent.Client
}

// LoadCards returns every stored card. Rows that cannot be mapped are
// skipped with a warning so one bad row never blocks startup.
func (r *CardRepo) LoadCards(ctx context.Context) ([]*vocab.Card, error) {
	rows, err := r.client.Card.Query().
		Order(ent.Asc(card.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	cards := make([]*vocab.Card, 0, len(rows))
	for _, row := range rows {
		c := fromRow(row)
		if c.Word == "" || len(c.Meanings) == 0 {
			fmt.Fprintf(os.Stderr, "warning: skipping unusable card %s\n", row.CardID)
			continue
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// SaveCard upserts a card keyed by its application ID.
func (r *CardRepo) SaveCard(ctx context.Context, c *vocab.Card) error {
	existing, err := r.client.Card.Query().
		Where(card.CardID(c.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query card %s: %w", c.ID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetWord(c.Word).
			SetPhonetic(c.Phonetic).
			SetMnemonic(c.Mnemonic).
			SetMeanings(c.Meanings).
			SetExamples(c.Examples).
			SetSynonyms(c.Synonyms).
			SetAntonyms(c.Antonyms).
			SetSrsLevel(c.SRSLevel).
			SetNextReview(c.NextReview).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update card %s: %w", c.ID, err)
		}
		return nil
	}

	_, err = r.client.Card.Create().
		SetCardID(c.ID).
		SetWord(c.Word).
		SetPhonetic(c.Phonetic).
		SetMnemonic(c.Mnemonic).
		SetMeanings(c.Meanings).
		SetExamples(c.Examples).
		SetSynonyms(c.Synonyms).
		SetAntonyms(c.Antonyms).
		SetCreatedAt(c.CreatedAt).
		SetSrsLevel(c.SRSLevel).
		SetNextReview(c.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create card %s: %w", c.ID, err)
	}
	return nil
}

// DeleteCard removes a card by its application ID. Deleting a missing
// card is not an error.
func (r *CardRepo) DeleteCard(ctx context.Context, id string) error {
	_, err := r.client.Card.Delete().
		Where(card.CardID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete card %s: %w", id, err)
	}
	return nil
}

func fromRow(row *ent.Card) *vocab.Card {
	return &vocab.Card{
		ID:         row.CardID,
		Word:       row.Word,
		Phonetic:   row.Phonetic,
		Mnemonic:   row.Mnemonic,
		Meanings:   row.Meanings,
		Examples:   row.Examples,
		Synonyms:   row.Synonyms,
		Antonyms:   row.Antonyms,
		CreatedAt:  row.CreatedAt,
		SRSLevel:   row.SrsLevel,
		NextReview: row.NextReview,
	}
}
