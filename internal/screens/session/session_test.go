package session

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/quiz"
	"github.com/minhvu/wordvault/internal/router"
	"github.com/minhvu/wordvault/internal/study"
	"github.com/minhvu/wordvault/internal/vocab"
)

type nopPersister struct{}

func (nopPersister) LoadCards(context.Context) ([]*vocab.Card, error) { return nil, nil }
func (nopPersister) SaveCard(context.Context, *vocab.Card) error     { return nil }
func (nopPersister) DeleteCard(context.Context, string) error        { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeck(t *testing.T, words ...string) *deck.Deck {
	t.Helper()
	d := deck.New(nopPersister{})
	for i, w := range words {
		payload := vocab.Payload{
			Word: w,
			Meanings: []vocab.Meaning{
				{PartOfSpeech: "noun", Vietnamese: "nghĩa " + w, Definition: "definition of " + w},
			},
		}
		if _, err := d.Add(context.Background(), payload, int64(1000+i)); err != nil {
			t.Fatalf("add %s: %v", w, err)
		}
	}
	return d
}

func testScreen(t *testing.T, reviewMode bool, words ...string) *SessionScreen {
	t.Helper()
	d := testDeck(t, words...)
	return New(d.Cards(), reviewMode, d, nil)
}

func TestSpaceFlipsFlashcard(t *testing.T) {
	s := testScreen(t, true, "cat", "dog")

	s.Update(keyPress(' '))
	if !s.session.Flipped() {
		t.Fatal("card not flipped after space")
	}
	s.Update(keyPress(' '))
	if s.session.Flipped() {
		t.Fatal("card still flipped after second space")
	}
}

func TestAdvanceIsTwoStep(t *testing.T) {
	s := testScreen(t, true, "cat", "dog", "sun")

	s.Update(specialKey(tea.KeyRight))
	if !s.moving {
		t.Fatal("expected transition after advance key")
	}
	if s.session.Position() != 0 {
		t.Fatal("pointer moved before the transition tick")
	}

	s.Update(advanceTickMsg{})
	if s.session.Position() != 1 {
		t.Fatalf("position = %d after tick, want 1", s.session.Position())
	}
	if s.moving {
		t.Fatal("still transitioning after tick")
	}
}

func TestReviewCompletion(t *testing.T) {
	s := testScreen(t, true, "cat")

	s.Update(specialKey(tea.KeyRight))
	if !s.finished {
		t.Fatal("single-card review did not finish on advance")
	}

	// Any key pops back to the previous screen.
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("no command after key on finished screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestRateAdvances(t *testing.T) {
	s := testScreen(t, true, "cat", "dog")
	card := s.session.Current()

	s.Update(keyPress('g'))
	if card.SRSLevel != 1 {
		t.Fatalf("level = %d after success rating, want 1", card.SRSLevel)
	}
	if !s.moving {
		t.Fatal("rating did not begin an advance")
	}
}

func TestQuizBlocksAdvanceUntilAnswered(t *testing.T) {
	s := testScreen(t, true, "cat", "dog", "sun", "map", "run")

	s.Update(keyPress('m'))
	if s.session.Mode() != study.ModeQuiz {
		t.Fatal("mode switch did not enter quiz")
	}
	if s.session.Question() == nil {
		t.Fatal("no question generated on quiz switch")
	}

	s.Update(specialKey(tea.KeyRight))
	if s.session.Position() != 0 || s.moving {
		t.Fatal("advance went through with an unanswered question")
	}
	if s.notice == "" {
		t.Fatal("no notice shown for blocked advance")
	}
}

func TestQuizAnswerThenAdvance(t *testing.T) {
	s := testScreen(t, true, "cat", "dog", "sun", "map", "run")
	s.Update(keyPress('m'))

	s.Update(specialKey(tea.KeyEnter))
	q := s.session.Question()
	if q == nil || !q.Submitted {
		t.Fatalf("question not submitted after enter: %+v", q)
	}

	s.Update(specialKey(tea.KeyRight))
	if !s.moving {
		t.Fatal("advance blocked after the question was answered")
	}
}

func TestRetreatNeverBlocked(t *testing.T) {
	s := testScreen(t, true, "cat", "dog", "sun", "map", "run")

	s.Update(specialKey(tea.KeyRight))
	s.Update(advanceTickMsg{})
	s.Update(keyPress('m')) // open an unanswered question

	s.Update(specialKey(tea.KeyLeft))
	if s.session.Position() != 0 {
		t.Fatalf("position = %d after retreat, want 0", s.session.Position())
	}
}

// openFillInQuestion forces a fill-in-the-blank question onto the current
// card, bypassing the generator's random variant pick.
func openFillInQuestion(t *testing.T, s *SessionScreen) {
	t.Helper()
	s.session.SwitchMode(study.ModeQuiz)
	s.session.SetQuestion(quiz.Question{
		Kind:          quiz.FillInBlank,
		Prompt:        "The ____ sat on the mat",
		CorrectAnswer: s.session.Current().Word,
	})
	s.syncQuestionState()
}

func TestFillInTypingKeepsQuizMode(t *testing.T) {
	s := testScreen(t, true, "mat", "dog")
	openFillInQuestion(t, s)

	for _, r := range "mat" {
		s.Update(keyPress(r))
	}
	if s.session.Mode() != study.ModeQuiz {
		t.Fatal("typing left quiz mode")
	}
	if got := s.input.field.Value(); got != "mat" {
		t.Fatalf("field value = %q, want %q", got, "mat")
	}

	s.Update(specialKey(tea.KeyEnter))
	q := s.session.Question()
	if q == nil || !q.Submitted || !q.IsCorrect {
		t.Fatalf("question after submit = %+v", q)
	}
}

func TestFillInArrowsStayInField(t *testing.T) {
	s := testScreen(t, true, "cat", "dog")
	s.Update(specialKey(tea.KeyRight))
	s.Update(advanceTickMsg{})
	openFillInQuestion(t, s)

	s.Update(specialKey(tea.KeyLeft))
	if s.session.Position() != 1 {
		t.Fatalf("position = %d after left arrow in open question, want 1", s.session.Position())
	}

	// Once the answer is in, keys route to navigation again.
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('m'))
	if s.session.Mode() != study.ModeFlashcard {
		t.Fatal("mode toggle unavailable after submission")
	}
}

func TestCtrlTTogglesDuringFillIn(t *testing.T) {
	s := testScreen(t, true, "cat", "dog")
	openFillInQuestion(t, s)

	s.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	if s.session.Mode() != study.ModeFlashcard {
		t.Fatal("ctrl+t did not switch back to flashcards")
	}
}

func TestTitleByMode(t *testing.T) {
	review := testScreen(t, true, "cat")
	if review.Title() != "Review" {
		t.Fatalf("title = %q", review.Title())
	}
	shuffle := testScreen(t, false, "cat")
	if shuffle.Title() != "Study" {
		t.Fatalf("title = %q", shuffle.Title())
	}
}

func TestViewShowsPosition(t *testing.T) {
	s := testScreen(t, true, "cat", "dog")
	view := s.View(100, 30)
	want := fmt.Sprintf("Card %d of %d", 1, 2)
	if !strings.Contains(view, want) {
		t.Fatalf("view missing %q", want)
	}
}
