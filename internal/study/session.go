// Package study drives a single review or shuffle session over an ordered
// queue of cards: positional traversal, flip state, interaction mode, and
// the per-card quiz question. All card mutation flows through the injected
// rater; the session never writes scheduling state itself.
package study

import (
	"math/rand/v2"

	"github.com/minhvu/wordvault/internal/quiz"
	"github.com/minhvu/wordvault/internal/vocab"
)

// Mode selects how the current card is presented.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeQuiz      Mode = "quiz"
)

// AdvanceOutcome reports what BeginAdvance decided.
type AdvanceOutcome int

const (
	// AdvanceBlocked means the move was refused (unsubmitted quiz answer
	// or empty queue). No state changed.
	AdvanceBlocked AdvanceOutcome = iota

	// AdvanceDeferred means the flip was reset and the pointer move is
	// pending; the caller must invoke CompleteAdvance after the reset has
	// been observed (the UI's transition delay).
	AdvanceDeferred

	// AdvanceFinished means a review-mode queue was completed; the
	// session is over and the caller should discard it.
	AdvanceFinished
)

// Rater applies a review outcome to the card with the given ID.
// The deck implements this.
type Rater interface {
	Rate(id string, success bool, now int64) error
}

// RaterFunc adapts a function to the Rater interface.
type RaterFunc func(id string, success bool, now int64) error

// Rate calls f.
func (f RaterFunc) Rate(id string, success bool, now int64) error {
	return f(id, success, now)
}

// Session is the state machine for one study pass over a queue.
type Session struct {
	queue      []*vocab.Card
	reviewMode bool

	position int
	flipped  bool
	mode     Mode

	question    *quiz.Question
	pendingWrap bool

	rater Rater
}

// NewSession builds a session over the given cards. In review mode the
// queue keeps the input order (the due set); otherwise the whole
// collection is traversed in a fresh random permutation. The queue is
// fixed for the session's lifetime.
func NewSession(cards []*vocab.Card, reviewMode bool, rng *rand.Rand, rater Rater) *Session {
	queue := make([]*vocab.Card, len(cards))
	copy(queue, cards)

	if !reviewMode {
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	}

	return &Session{
		queue:      queue,
		reviewMode: reviewMode,
		mode:       ModeFlashcard,
		rater:      rater,
	}
}

// Queue returns the session's card order.
func (s *Session) Queue() []*vocab.Card { return s.queue }

// Len returns the queue length.
func (s *Session) Len() int { return len(s.queue) }

// Position returns the zero-based queue pointer.
func (s *Session) Position() int { return s.position }

// Flipped reports whether the current flashcard shows its back.
func (s *Session) Flipped() bool { return s.flipped }

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// ReviewMode reports whether the session traverses the due set once.
func (s *Session) ReviewMode() bool { return s.reviewMode }

// Current returns the card under the pointer, or nil for an empty queue.
func (s *Session) Current() *vocab.Card {
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[s.position]
}

// Question returns the active quiz question, or nil.
func (s *Session) Question() *quiz.Question { return s.question }

// SetQuestion installs a freshly generated question for the current card.
func (s *Session) SetQuestion(q quiz.Question) {
	s.question = &q
}

// SubmitAnswer grades the active question. No-op without one.
func (s *Session) SubmitAnswer(answer string) {
	if s.question == nil {
		return
	}
	graded := s.question.Submit(answer)
	s.question = &graded
}

// Flip toggles the flashcard face. Quiz mode ignores it.
func (s *Session) Flip() {
	if s.mode != ModeFlashcard || len(s.queue) == 0 {
		return
	}
	s.flipped = !s.flipped
}

// BeginAdvance starts the two-step forward move: refuse while a quiz
// question is unanswered, otherwise reset the flip and quiz state and
// leave the pointer move to CompleteAdvance. At the end of the queue a
// review session finishes; a shuffle session schedules a wrap to the
// first card.
func (s *Session) BeginAdvance() AdvanceOutcome {
	if len(s.queue) == 0 {
		return AdvanceBlocked
	}
	if s.mode == ModeQuiz && s.question != nil && !s.question.Submitted {
		return AdvanceBlocked
	}

	atEnd := s.position >= len(s.queue)-1
	if atEnd && s.reviewMode {
		return AdvanceFinished
	}

	s.flipped = false
	s.question = nil
	s.pendingWrap = atEnd
	return AdvanceDeferred
}

// CompleteAdvance applies the deferred pointer move.
func (s *Session) CompleteAdvance() {
	if len(s.queue) == 0 {
		return
	}
	if s.pendingWrap {
		s.position = 0
		s.pendingWrap = false
		return
	}
	if s.position < len(s.queue)-1 {
		s.position++
	}
}

// Retreat steps back one card. The pointer never goes below the first
// card. Unlike advancing, retreating is never blocked by quiz state.
func (s *Session) Retreat() {
	if s.position == 0 {
		return
	}
	s.position--
	s.flipped = false
	s.question = nil
	s.pendingWrap = false
}

// Rate records a review outcome for the current card through the rater
// and begins an advance. The only path that mutates persistent card
// state during a session.
func (s *Session) Rate(success bool, now int64) (AdvanceOutcome, error) {
	current := s.Current()
	if current == nil {
		return AdvanceBlocked, nil
	}
	if err := s.rater.Rate(current.ID, success, now); err != nil {
		return AdvanceBlocked, err
	}
	// A rating counts as answering: clear any blocking quiz state so the
	// advance goes through.
	s.question = nil
	return s.BeginAdvance(), nil
}

// SwitchMode toggles between flashcard and quiz presentation, dropping
// any in-flight quiz state. Always permitted.
func (s *Session) SwitchMode(mode Mode) {
	s.mode = mode
	s.flipped = false
	s.question = nil
}
