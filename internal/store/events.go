package store

import (
	"context"
	"fmt"
	"time"

	"github.com/minhvu/wordvault/ent"
	"github.com/minhvu/wordvault/ent/reviewevent"
	"github.com/minhvu/wordvault/internal/llm"
)

// EventRepo appends and aggregates review and model request events.
// Implements deck.ReviewRecorder and llm.EventSink.
type EventRepo struct {
	client *ent.Client
}

// AppendReview records a single card rating.
func (r *EventRepo) AppendReview(ctx context.Context, cardID string, success bool, levelBefore, levelAfter int, nextReview int64) error {
	_, err := r.client.ReviewEvent.Create().
		SetCardID(cardID).
		SetSuccess(success).
		SetLevelBefore(levelBefore).
		SetLevelAfter(levelAfter).
		SetNextReview(nextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

// AppendLLMEvent records a model request.
func (r *EventRepo) AppendLLMEvent(ctx context.Context, data llm.EventData) error {
	_, err := r.client.LLMEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save model request event: %w", err)
	}
	return nil
}

// ReviewStats summarizes recorded ratings.
type ReviewStats struct {
	Total     int
	Successes int
	Last7Days int
}

// ReviewCounts aggregates all recorded ratings.
func (r *EventRepo) ReviewCounts(ctx context.Context) (ReviewStats, error) {
	var stats ReviewStats
	var err error

	stats.Total, err = r.client.ReviewEvent.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count reviews: %w", err)
	}
	stats.Successes, err = r.client.ReviewEvent.Query().
		Where(reviewevent.Success(true)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count successful reviews: %w", err)
	}
	cutoff := time.Now().AddDate(0, 0, -7)
	stats.Last7Days, err = r.client.ReviewEvent.Query().
		Where(reviewevent.TimestampGTE(cutoff)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count recent reviews: %w", err)
	}
	return stats, nil
}
