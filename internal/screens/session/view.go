package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minhvu/wordvault/internal/quiz"
	"github.com/minhvu/wordvault/internal/study"
	"github.com/minhvu/wordvault/internal/ui/components"
	"github.com/minhvu/wordvault/internal/ui/theme"
	"github.com/minhvu/wordvault/internal/vocab"
)

// choiceState holds the multiple-choice component for select questions.
type choiceState struct {
	field components.MultiChoice
}

func (c *choiceState) reset(q *quiz.Question) {
	correct := 0
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			correct = i
			break
		}
	}
	c.field = components.NewMultiChoice(q.Prompt, q.Options, correct)
}

// inputState holds the free-text field for fill-in-the-blank questions.
type inputState struct {
	field components.TextInput
}

func (i *inputState) reset(_ *quiz.Question) {
	i.field = components.NewTextInput("type the missing word", 64)
}

func (s *SessionScreen) View(width, height int) string {
	if s.finished {
		return s.finishedView(width, height)
	}

	current := s.session.Current()
	if current == nil {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("Nothing to study."))
	}

	var body string
	if s.session.Mode() == study.ModeQuiz && s.session.Question() != nil {
		body = s.quizView(width)
	} else {
		body = s.cardView(current, width)
	}

	position := theme.Hint.Render(
		fmt.Sprintf("Card %d of %d", s.session.Position()+1, s.session.Len()))
	bar := components.NewProgressBar("",
		float64(s.session.Position()+1)/float64(s.session.Len()), false, 40).View()

	sections := []string{position, bar, "", body}
	if s.notice != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.notice))
	}

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

// cardView renders the flashcard face: front is the word, back is the
// full entry.
func (s *SessionScreen) cardView(c *vocab.Card, width int) string {
	cardWidth := width - 20
	if cardWidth > 70 {
		cardWidth = 70
	}
	if cardWidth < 30 {
		cardWidth = 30
	}
	card := theme.Card.Width(cardWidth)

	if !s.session.Flipped() {
		front := theme.Title.Render(c.Word)
		if c.Phonetic != "" {
			front += "\n" + theme.Phonetic.Render(c.Phonetic)
		}
		front += "\n\n" + theme.Hint.Render("space to flip")
		return card.Render(front)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(c.Word))
	if c.Phonetic != "" {
		b.WriteString("\n" + theme.Phonetic.Render(c.Phonetic))
	}
	b.WriteString("\n")
	for _, m := range c.Meanings {
		b.WriteString("\n" + theme.Vietnamese.Render(m.Vietnamese))
		if m.PartOfSpeech != "" {
			b.WriteString(theme.Hint.Render(" (" + m.PartOfSpeech + ")"))
		}
		if m.Definition != "" {
			b.WriteString("\n" + theme.Body.Render("  "+m.Definition))
		}
	}
	if len(c.Examples) > 0 {
		ex := c.Examples[0]
		b.WriteString("\n\n" + theme.Body.Render(ex.Sentence))
		if ex.Translation != "" {
			b.WriteString("\n" + theme.Hint.Render(ex.Translation))
		}
	}
	if c.Mnemonic != "" {
		b.WriteString("\n\n" + theme.Hint.Render("💡 "+c.Mnemonic))
	}
	b.WriteString("\n\n" + theme.Hint.Render(fmt.Sprintf("Level %d", c.SRSLevel)))

	return card.Render(b.String())
}

func (s *SessionScreen) quizView(width int) string {
	q := s.session.Question()

	var body string
	if q.Kind == quiz.FillInBlank {
		body = theme.Body.Render(q.Prompt) + "\n\n" + s.input.field.View()
		if q.Submitted {
			body += "\n\n" + s.gradeLine(q)
		}
	} else {
		body = s.choice.field.View()
		if q.Submitted {
			body += "\n" + s.gradeLine(q)
		}
	}

	cardWidth := width - 12
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 30 {
		cardWidth = 30
	}
	return theme.Card.Width(cardWidth).Render(body)
}

func (s *SessionScreen) gradeLine(q *quiz.Question) string {
	if q.IsCorrect {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Not quite. It was: " + q.CorrectAnswer)
}

func (s *SessionScreen) finishedView(width, height int) string {
	msg := theme.Title.Render("Review complete!") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("You went through %d cards.", s.session.Len())) + "\n\n" +
		theme.Hint.Render("Press any key to go back")
	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}
