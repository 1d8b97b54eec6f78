package srs

import (
	"testing"

	"github.com/minhvu/wordvault/internal/vocab"
)

func TestRateSuccessClimbsOneLevel(t *testing.T) {
	now := int64(1_700_000_000_000)

	tests := []struct {
		level     int
		wantLevel int
		wantDays  int64
	}{
		{0, 1, 1},
		{1, 2, 3},
		{2, 3, 7},
		{3, 4, 14},
		{4, 5, 30},
		{5, 5, 30}, // capped at the ceiling
	}

	for _, tt := range tests {
		got := Rate(tt.level, true, now)
		if got.Level != tt.wantLevel {
			t.Errorf("Rate(%d, success): level = %d, want %d", tt.level, got.Level, tt.wantLevel)
		}
		want := now + tt.wantDays*DayMillis
		if got.NextReview != want {
			t.Errorf("Rate(%d, success): nextReview = %d, want %d", tt.level, got.NextReview, want)
		}
	}
}

func TestRateFailureResetsToLevelOne(t *testing.T) {
	now := int64(1_700_000_000_000)

	for level := 0; level <= MaxLevel; level++ {
		got := Rate(level, false, now)
		if got.Level != 1 {
			t.Errorf("Rate(%d, failure): level = %d, want 1", level, got.Level)
		}
		if got.NextReview != now+DayMillis {
			t.Errorf("Rate(%d, failure): nextReview = %d, want %d", level, got.NextReview, now+DayMillis)
		}
	}
}

func TestRateScenario(t *testing.T) {
	start := int64(1_000_000)

	r1 := Rate(0, true, start)
	if r1.Level != 1 || r1.NextReview != start+DayMillis {
		t.Fatalf("first success: got %+v", r1)
	}

	r2 := Rate(r1.Level, true, r1.NextReview)
	if r2.Level != 2 || r2.NextReview != r1.NextReview+3*DayMillis {
		t.Fatalf("second success: got %+v", r2)
	}

	r3 := Rate(r2.Level, false, r2.NextReview)
	if r3.Level != 1 || r3.NextReview != r2.NextReview+DayMillis {
		t.Fatalf("failure after level 2: got %+v", r3)
	}
}

func TestDueFiltersAndPreservesOrder(t *testing.T) {
	now := int64(5_000_000)

	a := &vocab.Card{ID: "a", NextReview: now - 1}
	b := &vocab.Card{ID: "b", NextReview: now + 1000}
	c := &vocab.Card{ID: "c"} // never scheduled

	due := Due([]*vocab.Card{a, b, c}, now)
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].ID != "a" || due[1].ID != "c" {
		t.Errorf("due order = [%s %s], want [a c]", due[0].ID, due[1].ID)
	}
}

func TestDueBoundary(t *testing.T) {
	now := int64(42)
	exact := &vocab.Card{ID: "x", NextReview: now}

	due := Due([]*vocab.Card{exact}, now)
	if len(due) != 1 {
		t.Errorf("card due exactly now should be included, got %d cards", len(due))
	}
}

func TestDueEmptyCollection(t *testing.T) {
	if got := Due(nil, 0); len(got) != 0 {
		t.Errorf("Due(nil) = %v, want empty", got)
	}
}
