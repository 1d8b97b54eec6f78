package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minhvu/wordvault/ent"
	"github.com/minhvu/wordvault/ent/cacheentry"
	"github.com/minhvu/wordvault/internal/lookup"
	"github.com/minhvu/wordvault/internal/vocab"
)

// CacheRepo is the persistent lookup response cache. Implements
// lookup.Cache.
type CacheRepo struct {
	client *ent.Client
}

// Get returns the cached entry for (dir, term), if any.
func (r *CacheRepo) Get(ctx context.Context, dir lookup.Direction, term string) (*vocab.Payload, bool, error) {
	row, err := r.client.CacheEntry.Query().
		Where(
			cacheentry.Direction(string(dir)),
			cacheentry.Term(term),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache entry: %w", err)
	}

	// Round-trip through JSON to get the typed payload back out of the
	// generic column.
	raw, err := json.Marshal(row.Payload)
	if err != nil {
		return nil, false, fmt.Errorf("marshal cached payload: %w", err)
	}
	var payload vocab.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached payload: %w", err)
	}
	return &payload, true, nil
}

// Put stores or replaces the entry for (dir, term).
func (r *CacheRepo) Put(ctx context.Context, dir lookup.Direction, term string, payload *vocab.Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	// Replace any existing entry so a re-lookup refreshes the cache.
	_, err = r.client.CacheEntry.Delete().
		Where(
			cacheentry.Direction(string(dir)),
			cacheentry.Term(term),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("evict cache entry: %w", err)
	}

	_, err = r.client.CacheEntry.Create().
		SetDirection(string(dir)).
		SetTerm(term).
		SetPayload(generic).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cache entry: %w", err)
	}
	return nil
}
