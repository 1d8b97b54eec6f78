// Package deck owns the card collection: it is the only writer of card
// scheduling state and the only path to persistence.
package deck

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/minhvu/wordvault/internal/srs"
	"github.com/minhvu/wordvault/internal/vocab"
)

// ErrDuplicateWord is returned when adding a word already in the deck
// (case-insensitive).
var ErrDuplicateWord = errors.New("word already in deck")

// ErrCardNotFound is returned for operations on unknown card IDs.
var ErrCardNotFound = errors.New("card not found")

// Persister is the storage port. Load failures for individual cards are
// the persister's concern (fail-open); the deck only sees valid cards.
type Persister interface {
	LoadCards(ctx context.Context) ([]*vocab.Card, error)
	SaveCard(ctx context.Context, c *vocab.Card) error
	DeleteCard(ctx context.Context, id string) error
}

// ReviewRecorder receives a record of every rating, for history and
// stats. Optional; failures are non-fatal.
type ReviewRecorder interface {
	AppendReview(ctx context.Context, cardID string, success bool, levelBefore, levelAfter int, nextReview int64) error
}

// Deck is the in-memory card collection backed by a Persister.
type Deck struct {
	cards  []*vocab.Card
	byWord map[string]*vocab.Card

	persister Persister
	recorder  ReviewRecorder
	newID     func() string
}

// Option configures a Deck.
type Option func(*Deck)

// WithIDGenerator overrides the card ID generator (tests pin IDs here).
func WithIDGenerator(gen func() string) Option {
	return func(d *Deck) { d.newID = gen }
}

// WithReviewRecorder attaches a rating history sink.
func WithReviewRecorder(r ReviewRecorder) Option {
	return func(d *Deck) { d.recorder = r }
}

// New creates an empty deck over the given persister.
func New(p Persister, opts ...Option) *Deck {
	d := &Deck{
		byWord:    make(map[string]*vocab.Card),
		persister: p,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load replaces the in-memory collection with the persisted one, ordered
// by creation time. Cards whose scheduling fields are missing are
// defaulted: level 0, next review now (due immediately).
func (d *Deck) Load(ctx context.Context, now int64) error {
	cards, err := d.persister.LoadCards(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt < cards[j].CreatedAt
	})

	d.cards = d.cards[:0]
	d.byWord = make(map[string]*vocab.Card, len(cards))
	for _, c := range cards {
		if c.Word == "" {
			continue
		}
		if c.SRSLevel < 0 {
			c.SRSLevel = 0
		}
		if c.NextReview == 0 {
			c.NextReview = now
		}
		key := strings.ToLower(c.Word)
		if _, dup := d.byWord[key]; dup {
			continue
		}
		d.cards = append(d.cards, c)
		d.byWord[key] = c
	}
	return nil
}

// Add creates a card from a lookup payload and persists it. The word must
// not already exist in the deck (case-insensitive).
func (d *Deck) Add(ctx context.Context, p vocab.Payload, now int64) (*vocab.Card, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key := strings.ToLower(strings.TrimSpace(p.Word))
	if _, exists := d.byWord[key]; exists {
		return nil, fmt.Errorf("%q: %w", p.Word, ErrDuplicateWord)
	}

	c := &vocab.Card{
		ID:         d.newID(),
		Word:       strings.TrimSpace(p.Word),
		Phonetic:   p.Phonetic,
		Mnemonic:   p.Mnemonic,
		Meanings:   p.Meanings,
		Examples:   p.Examples,
		Synonyms:   p.Synonyms,
		Antonyms:   p.Antonyms,
		CreatedAt:  now,
		SRSLevel:   0,
		NextReview: now,
	}

	if err := d.persister.SaveCard(ctx, c); err != nil {
		return nil, fmt.Errorf("save card: %w", err)
	}

	d.cards = append(d.cards, c)
	d.byWord[key] = c
	return c, nil
}

// Remove deletes a card by ID.
func (d *Deck) Remove(ctx context.Context, id string) error {
	idx := -1
	for i, c := range d.cards {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCardNotFound
	}

	c := d.cards[idx]
	if err := d.persister.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	d.cards = append(d.cards[:idx], d.cards[idx+1:]...)
	delete(d.byWord, strings.ToLower(c.Word))
	return nil
}

// Rate applies a review outcome to exactly the matching card and
// persists it. All other cards are untouched.
func (d *Deck) Rate(ctx context.Context, id string, success bool, now int64) error {
	c := d.Find(id)
	if c == nil {
		return ErrCardNotFound
	}

	before := c.SRSLevel
	res := srs.Rate(c.SRSLevel, success, now)
	c.SRSLevel = res.Level
	c.NextReview = res.NextReview

	if err := d.persister.SaveCard(ctx, c); err != nil {
		return fmt.Errorf("save rated card: %w", err)
	}

	if d.recorder != nil {
		// History is best effort.
		_ = d.recorder.AppendReview(ctx, c.ID, success, before, c.SRSLevel, c.NextReview)
	}
	return nil
}

// Find returns the card with the given ID, or nil.
func (d *Deck) Find(id string) *vocab.Card {
	for _, c := range d.cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindWord returns the card for a word (case-insensitive), or nil.
func (d *Deck) FindWord(word string) *vocab.Card {
	return d.byWord[strings.ToLower(strings.TrimSpace(word))]
}

// Cards returns the collection in stable creation order. The returned
// slice is a copy; the cards themselves are shared.
func (d *Deck) Cards() []*vocab.Card {
	out := make([]*vocab.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Due returns the cards due at the given time, in collection order.
func (d *Deck) Due(now int64) []*vocab.Card {
	return srs.Due(d.cards, now)
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int { return len(d.cards) }
