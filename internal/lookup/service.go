// Package lookup turns a word into a structured dictionary entry through
// the AI provider, with a read-through response cache per translation
// direction.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/minhvu/wordvault/internal/llm"
	"github.com/minhvu/wordvault/internal/vocab"
)

// Direction selects the translation direction. Each direction has an
// independent cache namespace.
type Direction string

const (
	EnglishToVietnamese Direction = "en-vi"
	VietnameseToEnglish Direction = "vi-en"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == EnglishToVietnamese {
		return VietnameseToEnglish
	}
	return EnglishToVietnamese
}

// ErrNotFound is the single user-facing failure for a lookup: network
// errors, provider failures, and unusable payloads all map to it.
var ErrNotFound = errors.New("word not found")

// Cache is the persistent response cache port, keyed by normalized term
// within a direction namespace. Implemented by the store.
type Cache interface {
	Get(ctx context.Context, dir Direction, term string) (*vocab.Payload, bool, error)
	Put(ctx context.Context, dir Direction, term string, payload *vocab.Payload) error
}

// Config tunes the lookup request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard lookup tuning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.3,
	}
}

// Service performs word lookups through the provider.
type Service struct {
	provider llm.Provider
	cache    Cache
	config   Config
}

// NewService creates a lookup Service. The cache may be nil.
func NewService(provider llm.Provider, cache Cache, cfg Config) *Service {
	return &Service{provider: provider, cache: cache, config: cfg}
}

// NormalizeTerm produces the cache key form of a term.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Lookup resolves a term to a dictionary entry: cache first, then the
// provider. Cache failures are logged and ignored; provider failures and
// unusable payloads surface as ErrNotFound.
func (s *Service) Lookup(ctx context.Context, term string, dir Direction) (*vocab.Payload, error) {
	key := NormalizeTerm(term)
	if key == "" {
		return nil, ErrNotFound
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, dir, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: lookup cache read failed: %v\n", err)
		} else if ok {
			return cached, nil
		}
	}

	ctx = llm.WithPurpose(ctx, "lookup-"+string(dir))
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(key, dir),
		Schema:      WordSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var payload vocab.Payload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrNotFound, err)
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, dir, key, &payload); err != nil {
			fmt.Fprintf(os.Stderr, "warning: lookup cache write failed: %v\n", err)
		}
	}

	return &payload, nil
}
