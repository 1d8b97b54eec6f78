package srs

import "github.com/minhvu/wordvault/internal/vocab"

// Result is the updated scheduling state produced by a rating.
type Result struct {
	Level      int
	NextReview int64
}

// Rate maps a card's current level and a review outcome to its next
// scheduling state. Success climbs one level (capped at MaxLevel) and
// schedules the review after that level's interval. Failure resets to
// level 1 and schedules for tomorrow, regardless of the prior level.
func Rate(level int, success bool, now int64) Result {
	if success {
		next := level + 1
		if next > MaxLevel {
			next = MaxLevel
		}
		return Result{
			Level:      next,
			NextReview: now + int64(Intervals[next-1])*DayMillis,
		}
	}
	return Result{
		Level:      1,
		NextReview: now + DayMillis,
	}
}

// IsDue reports whether a card is due at the given time. A card with no
// scheduled review (never rated) is always due.
func IsDue(c *vocab.Card, now int64) bool {
	return c.NextReview == 0 || c.NextReview <= now
}

// Due filters the collection down to cards due at the given time,
// preserving the input order.
func Due(cards []*vocab.Card, now int64) []*vocab.Card {
	var due []*vocab.Card
	for _, c := range cards {
		if IsDue(c, now) {
			due = append(due, c)
		}
	}
	return due
}
