// Package session is the study screen: it drives a study.Session over
// either the due set (review) or the whole deck (shuffle), in flashcard
// or quiz presentation.
package session

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/quiz"
	"github.com/minhvu/wordvault/internal/router"
	"github.com/minhvu/wordvault/internal/screen"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/study"
	"github.com/minhvu/wordvault/internal/ui/layout"
	"github.com/minhvu/wordvault/internal/vocab"
)

const transitionDelay = 200 * time.Millisecond

// SessionScreen presents one study pass over a card queue.
type SessionScreen struct {
	session *study.Session
	gen     *quiz.Generator
	deck    *deck.Deck
	speaker *speech.Speaker

	choice   choiceState
	input    inputState
	notice   string
	finished bool
	moving   bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a study screen. In review mode the cards are the due set
// and are traversed once in order; otherwise the whole deck is shuffled
// and the queue wraps.
func New(cards []*vocab.Card, reviewMode bool, d *deck.Deck, speaker *speech.Speaker) *SessionScreen {
	rater := study.RaterFunc(func(id string, success bool, now int64) error {
		return d.Rate(context.Background(), id, success, now)
	})
	return &SessionScreen{
		session: study.NewSession(cards, reviewMode, nil, rater),
		gen:     quiz.New(nil),
		deck:    d,
		speaker: speaker,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceTickMsg:
		s.session.CompleteAdvance()
		s.moving = false
		if s.session.Mode() == study.ModeQuiz {
			s.newQuestion()
		}
		return s, nil

	case noticeExpiredMsg:
		s.notice = ""
		return s, nil

	case spokenMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.moving {
		return s, nil
	}

	key := msg.String()

	// Quiz answering takes priority over navigation keys while a
	// question is open.
	if s.session.Mode() == study.ModeQuiz && s.session.Question() != nil && !s.session.Question().Submitted {
		if handled, cmd := s.handleQuizKey(msg); handled {
			return s, cmd
		}
	}

	switch key {
	case "space":
		s.session.Flip()
	case "right", "l", "n":
		return s.advance()
	case "left", "h":
		s.session.Retreat()
		if s.session.Mode() == study.ModeQuiz {
			s.newQuestion()
		}
	case "m", "ctrl+t":
		return s.toggleMode()
	case "p":
		return s, s.speakCmd()
	case "g":
		return s.rate(true)
	case "a":
		return s.rate(false)
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// handleQuizKey routes keys to the active question's component. Returns
// handled=false for keys that should fall through to navigation.
func (s *SessionScreen) handleQuizKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	q := s.session.Question()

	if q.Kind == quiz.FillInBlank {
		switch msg.String() {
		case "enter":
			answer := s.input.field.Value()
			s.session.SubmitAnswer(answer)
			s.input.field.Submit(s.session.Question().IsCorrect)
			return true, nil
		case "ctrl+t":
			// Mode toggle stays reachable while the field has focus.
			return false, nil
		}
		var cmd tea.Cmd
		s.input.field, cmd = s.input.field.Update(msg)
		return true, cmd
	}

	switch msg.String() {
	case "up", "down", "k", "j", "1", "2", "3", "4":
		s.choice.field, _ = s.choice.field.Update(msg)
		return true, nil
	case "enter":
		s.choice.field, _ = s.choice.field.Update(msg)
		if s.choice.field.Submitted {
			s.session.SubmitAnswer(s.choice.field.Options[s.choice.field.ChosenIndex])
		}
		return true, nil
	}
	return false, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	switch s.session.BeginAdvance() {
	case study.AdvanceBlocked:
		return s, s.flashNotice("Answer the question first")
	case study.AdvanceFinished:
		s.finished = true
		return s, nil
	case study.AdvanceDeferred:
		s.moving = true
		return s, tea.Tick(transitionDelay, func(time.Time) tea.Msg {
			return advanceTickMsg{}
		})
	}
	return s, nil
}

func (s *SessionScreen) rate(success bool) (screen.Screen, tea.Cmd) {
	outcome, err := s.session.Rate(success, time.Now().UnixMilli())
	if err != nil {
		return s, s.flashNotice(fmt.Sprintf("Could not save rating: %v", err))
	}
	switch outcome {
	case study.AdvanceFinished:
		s.finished = true
		return s, nil
	case study.AdvanceDeferred:
		s.moving = true
		return s, tea.Tick(transitionDelay, func(time.Time) tea.Msg {
			return advanceTickMsg{}
		})
	}
	return s, nil
}

func (s *SessionScreen) toggleMode() (screen.Screen, tea.Cmd) {
	if s.session.Mode() == study.ModeFlashcard {
		s.session.SwitchMode(study.ModeQuiz)
		s.newQuestion()
	} else {
		s.session.SwitchMode(study.ModeFlashcard)
	}
	return s, nil
}

// newQuestion generates a question for the current card and prepares the
// matching input component.
func (s *SessionScreen) newQuestion() {
	current := s.session.Current()
	if current == nil {
		return
	}
	q, err := s.gen.Generate(current, s.deck.Cards())
	if err != nil {
		// Card unusable for quizzing; fall back to the flashcard face.
		s.session.SwitchMode(study.ModeFlashcard)
		return
	}
	s.session.SetQuestion(q)
	s.syncQuestionState()
}

// syncQuestionState rebuilds the answer components for the session's
// active question, if any.
func (s *SessionScreen) syncQuestionState() {
	q := s.session.Question()
	if q == nil {
		return
	}
	if q.Kind == quiz.FillInBlank {
		s.input.reset(q)
		return
	}
	s.choice.reset(q)
}

func (s *SessionScreen) speakCmd() tea.Cmd {
	current := s.session.Current()
	if current == nil || s.speaker == nil || !s.speaker.Available() {
		return nil
	}
	word := current.Word
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.speaker.Speak(ctx, word)
		return spokenMsg{}
	}
}

func (s *SessionScreen) flashNotice(text string) tea.Cmd {
	s.notice = text
	return tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (s *SessionScreen) Title() string {
	if s.session.ReviewMode() {
		return "Review"
	}
	return "Study"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.finished {
		return []layout.KeyHint{{Key: "Any key", Description: "Back"}}
	}
	if s.session.Mode() == study.ModeQuiz {
		if q := s.session.Question(); q != nil && q.Kind == quiz.FillInBlank && !q.Submitted {
			return []layout.KeyHint{
				{Key: "Type", Description: "Answer"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Ctrl+T", Description: "Flashcards"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "←→", Description: "Navigate"},
			{Key: "m", Description: "Flashcards"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Navigate"},
		{Key: "g/a", Description: "Got it / Again"},
		{Key: "m", Description: "Quiz"},
		{Key: "p", Description: "Speak"},
		{Key: "Esc", Description: "Back"},
	}
}
