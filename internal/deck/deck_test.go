package deck

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/minhvu/wordvault/internal/srs"
	"github.com/minhvu/wordvault/internal/vocab"
)

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	cards   map[string]*vocab.Card
	saves   int
	deletes int
	saveErr error
}

func newMemPersister() *memPersister {
	return &memPersister{cards: make(map[string]*vocab.Card)}
}

func (m *memPersister) LoadCards(_ context.Context) ([]*vocab.Card, error) {
	var out []*vocab.Card
	for _, c := range m.cards {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (m *memPersister) SaveCard(_ context.Context, c *vocab.Card) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cc := *c
	m.cards[c.ID] = &cc
	return nil
}

func (m *memPersister) DeleteCard(_ context.Context, id string) error {
	m.deletes++
	delete(m.cards, id)
	return nil
}

type memRecorder struct {
	reviews []string
}

func (m *memRecorder) AppendReview(_ context.Context, cardID string, success bool, levelBefore, levelAfter int, nextReview int64) error {
	m.reviews = append(m.reviews, fmt.Sprintf("%s:%v:%d->%d", cardID, success, levelBefore, levelAfter))
	return nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func payload(word string) vocab.Payload {
	return vocab.Payload{
		Word: word,
		Meanings: []vocab.Meaning{
			{PartOfSpeech: "noun", Vietnamese: "nghĩa", Definition: "a " + word},
		},
	}
}

func TestAddAssignsIdentityAndSchedule(t *testing.T) {
	p := newMemPersister()
	d := New(p, WithIDGenerator(sequentialIDs()))

	now := int64(1_000)
	c, err := d.Add(context.Background(), payload("cat"), now)
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != "id-1" || c.CreatedAt != now || c.SRSLevel != 0 || c.NextReview != now {
		t.Fatalf("card = %+v", c)
	}
	if p.saves != 1 {
		t.Fatalf("saves = %d, want 1", p.saves)
	}

	// A fresh card is due immediately.
	if len(d.Due(now)) != 1 {
		t.Fatal("fresh card not due")
	}
}

func TestAddRejectsDuplicateWordCaseInsensitive(t *testing.T) {
	d := New(newMemPersister(), WithIDGenerator(sequentialIDs()))
	ctx := context.Background()

	if _, err := d.Add(ctx, payload("Cat"), 1); err != nil {
		t.Fatal(err)
	}
	_, err := d.Add(ctx, payload("cAT"), 2)
	if !errors.Is(err, ErrDuplicateWord) {
		t.Fatalf("err = %v, want ErrDuplicateWord", err)
	}
	if d.Len() != 1 {
		t.Fatalf("len = %d", d.Len())
	}
}

func TestAddRejectsInvalidPayload(t *testing.T) {
	d := New(newMemPersister())
	_, err := d.Add(context.Background(), vocab.Payload{Word: "x"}, 1)
	if !errors.Is(err, vocab.ErrInvalidCardData) {
		t.Fatalf("err = %v, want ErrInvalidCardData", err)
	}
}

func TestRateMutatesOnlyTheMatchingCard(t *testing.T) {
	p := newMemPersister()
	rec := &memRecorder{}
	d := New(p, WithIDGenerator(sequentialIDs()), WithReviewRecorder(rec))
	ctx := context.Background()

	a, _ := d.Add(ctx, payload("alpha"), 100)
	b, _ := d.Add(ctx, payload("beta"), 100)

	now := int64(5_000)
	if err := d.Rate(ctx, a.ID, true, now); err != nil {
		t.Fatal(err)
	}

	if a.SRSLevel != 1 || a.NextReview != now+srs.DayMillis {
		t.Fatalf("rated card = level %d next %d", a.SRSLevel, a.NextReview)
	}
	if b.SRSLevel != 0 || b.NextReview != 100 {
		t.Fatal("rating touched another card")
	}

	// Persisted write-through.
	if p.cards[a.ID].SRSLevel != 1 {
		t.Fatal("rating not persisted")
	}
	if len(rec.reviews) != 1 || rec.reviews[0] != a.ID+":true:0->1" {
		t.Fatalf("reviews = %v", rec.reviews)
	}
}

func TestRateUnknownCard(t *testing.T) {
	d := New(newMemPersister())
	err := d.Rate(context.Background(), "nope", true, 1)
	if !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestRemove(t *testing.T) {
	p := newMemPersister()
	d := New(p, WithIDGenerator(sequentialIDs()))
	ctx := context.Background()

	c, _ := d.Add(ctx, payload("cat"), 1)
	if err := d.Remove(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 0 || d.FindWord("cat") != nil {
		t.Fatal("card still present after remove")
	}
	if p.deletes != 1 {
		t.Fatalf("deletes = %d", p.deletes)
	}

	// The word can be re-added afterwards.
	if _, err := d.Add(ctx, payload("cat"), 2); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsSchedulingFields(t *testing.T) {
	p := newMemPersister()
	p.cards["old"] = &vocab.Card{
		ID:        "old",
		Word:      "legacy",
		Meanings:  []vocab.Meaning{{Vietnamese: "cũ"}},
		CreatedAt: 10,
	}
	p.cards["bad"] = &vocab.Card{ID: "bad"} // no word: skipped

	d := New(p)
	now := int64(9_999)
	if err := d.Load(context.Background(), now); err != nil {
		t.Fatal(err)
	}

	if d.Len() != 1 {
		t.Fatalf("len = %d, want 1", d.Len())
	}
	c := d.FindWord("legacy")
	if c == nil {
		t.Fatal("legacy card missing")
	}
	if c.SRSLevel != 0 || c.NextReview != now {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestLoadOrdersByCreation(t *testing.T) {
	p := newMemPersister()
	for i, w := range []string{"third", "first", "second"} {
		created := []int64{30, 10, 20}[i]
		p.cards[w] = &vocab.Card{
			ID: w, Word: w, CreatedAt: created,
			Meanings: []vocab.Meaning{{Vietnamese: w}},
		}
	}

	d := New(p)
	if err := d.Load(context.Background(), 100); err != nil {
		t.Fatal(err)
	}
	got := d.Cards()
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got[i].Word != w {
			t.Fatalf("order = [%s %s %s], want %v", got[0].Word, got[1].Word, got[2].Word, want)
		}
	}
}

func TestRateSaveFailureLeavesErrorToCaller(t *testing.T) {
	p := newMemPersister()
	d := New(p, WithIDGenerator(sequentialIDs()))
	ctx := context.Background()

	c, _ := d.Add(ctx, payload("cat"), 1)
	p.saveErr = errors.New("disk full")

	if err := d.Rate(ctx, c.ID, true, 2); err == nil {
		t.Fatal("expected save error to propagate")
	}
}
