package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/minhvu/wordvault/internal/llm"
	"github.com/minhvu/wordvault/internal/vocab"
)

type memCache struct {
	entries map[string]*vocab.Payload
	getErr  error
	putErr  error
	puts    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*vocab.Payload)}
}

func (m *memCache) key(dir Direction, term string) string {
	return string(dir) + ":" + term
}

func (m *memCache) Get(_ context.Context, dir Direction, term string) (*vocab.Payload, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	p, ok := m.entries[m.key(dir, term)]
	return p, ok, nil
}

func (m *memCache) Put(_ context.Context, dir Direction, term string, payload *vocab.Payload) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.entries[m.key(dir, term)] = payload
	return nil
}

const catEntry = `{
	"word": "cat",
	"phonetic": "/kaet/",
	"mnemonic": "",
	"meanings": [{"part_of_speech": "noun", "vietnamese": "con mèo", "definition": "a small domesticated feline"}],
	"examples": [{"sentence": "The cat sat.", "translation": "Con mèo ngồi."}],
	"synonyms": [],
	"antonyms": []
}`

func TestLookupCallsProviderAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(catEntry)})
	cache := newMemCache()
	svc := NewService(mock, cache, DefaultConfig())

	got, err := svc.Lookup(context.Background(), "  Cat ", EnglishToVietnamese)
	if err != nil {
		t.Fatal(err)
	}
	if got.Word != "cat" || len(got.Meanings) != 1 {
		t.Fatalf("payload = %+v", got)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}
	// Normalized key.
	if _, ok := cache.entries["en-vi:cat"]; !ok {
		t.Fatalf("cache keys = %v", cache.entries)
	}

	// The prompt should carry the normalized term.
	if len(mock.Calls) != 1 || !strings.Contains(mock.Calls[0].Prompt, `"cat"`) {
		t.Fatalf("calls = %+v", mock.Calls)
	}
}

func TestLookupCacheHitShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider() // would fail if called
	cache := newMemCache()
	cache.entries["en-vi:cat"] = &vocab.Payload{
		Word:     "cat",
		Meanings: []vocab.Meaning{{Vietnamese: "con mèo"}},
	}
	svc := NewService(mock, cache, DefaultConfig())

	got, err := svc.Lookup(context.Background(), "cat", EnglishToVietnamese)
	if err != nil {
		t.Fatal(err)
	}
	if got.Word != "cat" {
		t.Fatalf("payload = %+v", got)
	}
	if mock.CallCount() != 0 {
		t.Fatal("provider called despite cache hit")
	}
}

func TestLookupDirectionsHaveIndependentCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(catEntry)})
	cache := newMemCache()
	cache.entries["en-vi:cat"] = &vocab.Payload{
		Word:     "cat",
		Meanings: []vocab.Meaning{{Vietnamese: "con mèo"}},
	}
	svc := NewService(mock, cache, DefaultConfig())

	// The reverse direction misses the en-vi entry and hits the provider.
	if _, err := svc.Lookup(context.Background(), "cat", VietnameseToEnglish); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLookupCacheFailuresAreNonFatal(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(catEntry)})
	cache := newMemCache()
	cache.getErr = errors.New("storage exhausted")
	cache.putErr = errors.New("storage exhausted")
	svc := NewService(mock, cache, DefaultConfig())

	got, err := svc.Lookup(context.Background(), "cat", EnglishToVietnamese)
	if err != nil {
		t.Fatal(err)
	}
	if got.Word != "cat" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestLookupProviderFailureMapsToNotFound(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, nil, DefaultConfig())

	_, err := svc.Lookup(context.Background(), "cat", EnglishToVietnamese)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupInvalidPayloadMapsToNotFound(t *testing.T) {
	// Parseable JSON but no meanings.
	empty := `{"word": "cat", "phonetic": "", "mnemonic": "", "meanings": [], "examples": [], "synonyms": [], "antonyms": []}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(empty)})
	svc := NewService(mock, nil, DefaultConfig())

	_, err := svc.Lookup(context.Background(), "cat", EnglishToVietnamese)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupEmptyTerm(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, nil, DefaultConfig())

	_, err := svc.Lookup(context.Background(), "   ", EnglishToVietnamese)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("provider called for empty term")
	}
}

func TestDirectionToggle(t *testing.T) {
	if EnglishToVietnamese.Toggle() != VietnameseToEnglish {
		t.Fatal("en-vi toggle")
	}
	if VietnameseToEnglish.Toggle() != EnglishToVietnamese {
		t.Fatal("vi-en toggle")
	}
}
