package study

import (
	"math/rand/v2"
	"testing"

	"github.com/minhvu/wordvault/internal/quiz"
	"github.com/minhvu/wordvault/internal/vocab"
)

type recordingRater struct {
	ids       []string
	successes []bool
	times     []int64
}

func (r *recordingRater) Rate(id string, success bool, now int64) error {
	r.ids = append(r.ids, id)
	r.successes = append(r.successes, success)
	r.times = append(r.times, now)
	return nil
}

func cards(ids ...string) []*vocab.Card {
	out := make([]*vocab.Card, len(ids))
	for i, id := range ids {
		out[i] = &vocab.Card{
			ID:   id,
			Word: id,
			Meanings: []vocab.Meaning{
				{Vietnamese: "nghĩa " + id},
			},
		}
	}
	return out
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestReviewModeKeepsInputOrder(t *testing.T) {
	in := cards("a", "b", "c")
	s := NewSession(in, true, testRand(), nil)

	for i, c := range s.Queue() {
		if c.ID != in[i].ID {
			t.Fatalf("queue[%d] = %s, want %s", i, c.ID, in[i].ID)
		}
	}
}

func TestShuffleModeIsAPermutation(t *testing.T) {
	in := cards("a", "b", "c", "d", "e", "f", "g", "h")
	s := NewSession(in, false, testRand(), nil)

	if s.Len() != len(in) {
		t.Fatalf("queue length changed: %d", s.Len())
	}
	seen := map[string]bool{}
	for _, c := range s.Queue() {
		seen[c.ID] = true
	}
	if len(seen) != len(in) {
		t.Fatal("shuffle lost or duplicated cards")
	}
	// The input slice must not be reordered.
	if in[0].ID != "a" || in[7].ID != "h" {
		t.Fatal("NewSession mutated the input slice")
	}
}

func TestFlipOnlyInFlashcardMode(t *testing.T) {
	s := NewSession(cards("a"), true, nil, nil)

	s.Flip()
	if !s.Flipped() {
		t.Fatal("flip did nothing in flashcard mode")
	}

	s.SwitchMode(ModeQuiz)
	s.Flip()
	if s.Flipped() {
		t.Fatal("flip should be a no-op in quiz mode")
	}
}

func TestAdvanceIsTwoStep(t *testing.T) {
	s := NewSession(cards("a", "b"), true, nil, nil)
	s.Flip()

	if got := s.BeginAdvance(); got != AdvanceDeferred {
		t.Fatalf("BeginAdvance = %v, want deferred", got)
	}
	if s.Flipped() {
		t.Fatal("flip not reset by BeginAdvance")
	}
	if s.Position() != 0 {
		t.Fatal("pointer moved before CompleteAdvance")
	}

	s.CompleteAdvance()
	if s.Position() != 1 {
		t.Fatalf("position = %d, want 1", s.Position())
	}
}

func TestAdvanceFinishesReviewQueue(t *testing.T) {
	s := NewSession(cards("a"), true, nil, nil)
	if got := s.BeginAdvance(); got != AdvanceFinished {
		t.Fatalf("BeginAdvance at end of review queue = %v, want finished", got)
	}
}

func TestAdvanceWrapsShuffleQueue(t *testing.T) {
	s := NewSession(cards("a", "b"), false, testRand(), nil)
	s.BeginAdvance()
	s.CompleteAdvance()
	if s.Position() != 1 {
		t.Fatalf("position = %d, want 1", s.Position())
	}

	if got := s.BeginAdvance(); got != AdvanceDeferred {
		t.Fatalf("BeginAdvance at end of shuffle queue = %v, want deferred", got)
	}
	s.CompleteAdvance()
	if s.Position() != 0 {
		t.Fatalf("shuffle queue did not wrap: position = %d", s.Position())
	}
}

func TestAdvanceBlockedByUnsubmittedQuiz(t *testing.T) {
	s := NewSession(cards("a", "b"), true, nil, nil)
	s.SwitchMode(ModeQuiz)
	s.SetQuestion(quiz.Question{Kind: quiz.SelectWord, CorrectAnswer: "a"})

	if got := s.BeginAdvance(); got != AdvanceBlocked {
		t.Fatalf("BeginAdvance with unsubmitted quiz = %v, want blocked", got)
	}
	if s.Position() != 0 {
		t.Fatal("blocked advance moved the pointer")
	}

	s.SubmitAnswer("a")
	if got := s.BeginAdvance(); got != AdvanceDeferred {
		t.Fatalf("BeginAdvance after submit = %v, want deferred", got)
	}
}

func TestRetreat(t *testing.T) {
	s := NewSession(cards("a", "b"), true, nil, nil)

	s.Retreat()
	if s.Position() != 0 {
		t.Fatal("retreat below first card")
	}

	s.BeginAdvance()
	s.CompleteAdvance()
	s.Flip()
	s.Retreat()
	if s.Position() != 0 || s.Flipped() {
		t.Fatalf("retreat: position=%d flipped=%v", s.Position(), s.Flipped())
	}
}

func TestRetreatNotBlockedByQuiz(t *testing.T) {
	s := NewSession(cards("a", "b"), false, testRand(), nil)
	s.BeginAdvance()
	s.CompleteAdvance()
	s.SwitchMode(ModeQuiz)
	s.SetQuestion(quiz.Question{CorrectAnswer: "x"})

	s.Retreat()
	if s.Position() != 0 {
		t.Fatal("retreat blocked by unsubmitted quiz")
	}
	if s.Question() != nil {
		t.Fatal("retreat kept stale quiz state")
	}
}

func TestRateDelegatesAndAdvances(t *testing.T) {
	rater := &recordingRater{}
	s := NewSession(cards("a", "b"), true, nil, rater)

	out, err := s.Rate(true, 12345)
	if err != nil {
		t.Fatal(err)
	}
	if out != AdvanceDeferred {
		t.Fatalf("Rate outcome = %v, want deferred", out)
	}
	if len(rater.ids) != 1 || rater.ids[0] != "a" || !rater.successes[0] || rater.times[0] != 12345 {
		t.Fatalf("rater saw %v %v %v", rater.ids, rater.successes, rater.times)
	}
}

func TestRateOnEmptyQueueIsNoop(t *testing.T) {
	rater := &recordingRater{}
	s := NewSession(nil, true, nil, rater)

	out, err := s.Rate(true, 1)
	if err != nil || out != AdvanceBlocked {
		t.Fatalf("Rate on empty queue: out=%v err=%v", out, err)
	}
	if len(rater.ids) != 0 {
		t.Fatal("rater called for empty queue")
	}
	if s.BeginAdvance() != AdvanceBlocked {
		t.Fatal("advance on empty queue should be blocked")
	}
	s.Retreat()
	s.Flip()
	s.CompleteAdvance()
}

func TestQueueImmutableUnderTraversal(t *testing.T) {
	in := cards("a", "b", "c")
	s := NewSession(in, true, nil, &recordingRater{})

	order := func() []string {
		var ids []string
		for _, c := range s.Queue() {
			ids = append(ids, c.ID)
		}
		return ids
	}
	before := order()

	s.BeginAdvance()
	s.CompleteAdvance()
	s.Retreat()
	s.Rate(false, 1)
	s.CompleteAdvance()

	after := order()
	if len(before) != len(after) {
		t.Fatal("queue membership changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("queue order changed")
		}
	}
}

func TestSwitchModeResetsQuizState(t *testing.T) {
	s := NewSession(cards("a"), true, nil, nil)
	s.SwitchMode(ModeQuiz)
	s.SetQuestion(quiz.Question{CorrectAnswer: "a"})
	s.SwitchMode(ModeFlashcard)

	if s.Question() != nil {
		t.Fatal("mode switch kept quiz state")
	}
	if s.Mode() != ModeFlashcard {
		t.Fatalf("mode = %v", s.Mode())
	}
}
