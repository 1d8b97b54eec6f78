package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/minhvu/wordvault/internal/llm"
	"github.com/minhvu/wordvault/internal/lookup"
	"github.com/minhvu/wordvault/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCard(id, word string) *vocab.Card {
	return &vocab.Card{
		ID:   id,
		Word: word,
		Meanings: []vocab.Meaning{
			{PartOfSpeech: "noun", Vietnamese: "nghĩa", Definition: "a meaning"},
		},
		CreatedAt:  1000,
		SRSLevel:   1,
		NextReview: 0,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCardRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()

	c := testCard("id-1", "cat")
	c.Examples = []vocab.Example{{Sentence: "The cat sat.", Translation: "Con mèo ngồi."}}
	if err := repo.SaveCard(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	cards, err := repo.LoadCards(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("loaded %d cards, want 1", len(cards))
	}
	got := cards[0]
	if got.ID != "id-1" || got.Word != "cat" || got.CreatedAt != 1000 {
		t.Fatalf("card = %+v", got)
	}
	if len(got.Examples) != 1 || got.Examples[0].Sentence != "The cat sat." {
		t.Fatalf("examples = %+v", got.Examples)
	}
}

func TestSaveCardUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()

	c := testCard("id-1", "cat")
	if err := repo.SaveCard(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	c.SRSLevel = 3
	c.NextReview = 5000
	if err := repo.SaveCard(ctx, c); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	cards, err := repo.LoadCards(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("loaded %d cards, want 1 after upsert", len(cards))
	}
	if cards[0].SRSLevel != 3 || cards[0].NextReview != 5000 {
		t.Fatalf("card = %+v", cards[0])
	}
}

func TestDeleteCard(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()

	if err := repo.SaveCard(ctx, testCard("id-1", "cat")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.DeleteCard(ctx, "id-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Deleting again is a no-op.
	if err := repo.DeleteCard(ctx, "id-1"); err != nil {
		t.Fatalf("re-delete: %v", err)
	}

	cards, err := repo.LoadCards(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("loaded %d cards, want 0", len(cards))
	}
}

func TestCacheRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cache()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, lookup.EnglishToVietnamese, "cat")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("unexpected cache hit")
	}

	payload := &vocab.Payload{
		Word:     "cat",
		Meanings: []vocab.Meaning{{Vietnamese: "con mèo", Definition: "a feline"}},
	}
	if err := repo.Put(ctx, lookup.EnglishToVietnamese, "cat", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := repo.Get(ctx, lookup.EnglishToVietnamese, "cat")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Word != "cat" || got.Meanings[0].Vietnamese != "con mèo" {
		t.Fatalf("payload = %+v", got)
	}

	// The other direction is an independent namespace.
	_, ok, err = repo.Get(ctx, lookup.VietnameseToEnglish, "cat")
	if err != nil {
		t.Fatalf("get other direction: %v", err)
	}
	if ok {
		t.Fatal("cache hit leaked across directions")
	}
}

func TestCachePutReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cache()
	ctx := context.Background()

	first := &vocab.Payload{Word: "cat", Meanings: []vocab.Meaning{{Vietnamese: "mèo"}}}
	second := &vocab.Payload{Word: "cat", Meanings: []vocab.Meaning{{Vietnamese: "con mèo"}}}
	if err := repo.Put(ctx, lookup.EnglishToVietnamese, "cat", first); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, lookup.EnglishToVietnamese, "cat", second); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	got, ok, err := repo.Get(ctx, lookup.EnglishToVietnamese, "cat")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Meanings[0].Vietnamese != "con mèo" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestReviewEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	if err := repo.AppendReview(ctx, "id-1", true, 1, 2, 9000); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendReview(ctx, "id-1", false, 2, 1, 9000); err != nil {
		t.Fatalf("append: %v", err)
	}

	stats, err := repo.ReviewCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if stats.Total != 2 || stats.Successes != 1 || stats.Last7Days != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	err := repo.AppendLLMEvent(ctx, llm.EventData{
		Provider:     "anthropic",
		Model:        "test-model",
		Purpose:      "lookup-en-vi",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    15,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("events = %d, want 1", n)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "custom", "vault.db")
	t.Setenv("WORDVAULT_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}
