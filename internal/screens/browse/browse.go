// Package browse is the card collection screen: scroll through saved
// cards, inspect them, delete them, and run typing practice against the
// similarity scorer.
package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/screen"
	"github.com/minhvu/wordvault/internal/similarity"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/ui/components"
	"github.com/minhvu/wordvault/internal/ui/layout"
	"github.com/minhvu/wordvault/internal/ui/theme"
	"github.com/minhvu/wordvault/internal/vocab"
)

// deletedMsg reports the outcome of a card removal.
type deletedMsg struct {
	word string
	err  error
}

// spokenMsg signals that a pronunciation command finished.
type spokenMsg struct{}

type uiState int

const (
	stateList uiState = iota
	stateConfirmDelete
	stateTyping
)

// BrowseScreen lists the saved cards.
type BrowseScreen struct {
	deck    *deck.Deck
	speaker *speech.Speaker

	selected int
	state    uiState

	typing      components.TextInput
	typingScore int
	typingDone  bool

	status  string
	isError bool
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates the browse screen.
func New(d *deck.Deck, speaker *speech.Speaker) *BrowseScreen {
	return &BrowseScreen{deck: d, speaker: speaker}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) current() *vocab.Card {
	cards := b.deck.Cards()
	if len(cards) == 0 {
		return nil
	}
	if b.selected >= len(cards) {
		b.selected = len(cards) - 1
	}
	return cards[b.selected]
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deletedMsg:
		if msg.err != nil {
			b.setStatus(fmt.Sprintf("Could not delete: %v", msg.err), true)
		} else {
			b.setStatus(fmt.Sprintf("Deleted %q", msg.word), false)
		}
		return b, nil

	case spokenMsg:
		return b, nil

	case tea.KeyMsg:
		switch b.state {
		case stateConfirmDelete:
			return b.handleConfirmKey(msg)
		case stateTyping:
			return b.handleTypingKey(msg)
		}
		return b.handleListKey(msg)
	}

	return b, nil
}

func (b *BrowseScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
		b.status = ""
	case "down", "j":
		if b.selected < b.deck.Len()-1 {
			b.selected++
		}
		b.status = ""
	case "d":
		if b.current() != nil {
			b.state = stateConfirmDelete
		}
	case "t":
		if b.current() != nil {
			b.state = stateTyping
			b.typing = components.NewTextInput("type the word from memory", 64)
			b.typingDone = false
			b.typingScore = 0
			return b, b.typing.Init()
		}
	case "p":
		return b, b.speakCmd()
	}
	return b, nil
}

func (b *BrowseScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		b.state = stateList
		card := b.current()
		if card == nil {
			return b, nil
		}
		d := b.deck
		id, word := card.ID, card.Word
		return b, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return deletedMsg{word: word, err: d.Remove(ctx, id)}
		}
	case "n", "esc":
		b.state = stateList
	}
	return b, nil
}

func (b *BrowseScreen) handleTypingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.state = stateList
		return b, nil
	case "enter":
		card := b.current()
		if card == nil {
			b.state = stateList
			return b, nil
		}
		if b.typingDone {
			// Second enter starts a fresh attempt.
			b.typing.Reset()
			b.typingDone = false
			return b, nil
		}
		b.typingScore = similarity.Score(b.typing.Value(), card.Word)
		b.typing.Submit(b.typingScore == 100)
		b.typingDone = true
		return b, nil
	}
	var cmd tea.Cmd
	b.typing, cmd = b.typing.Update(msg)
	return b, cmd
}

func (b *BrowseScreen) speakCmd() tea.Cmd {
	card := b.current()
	if card == nil || b.speaker == nil || !b.speaker.Available() {
		return nil
	}
	word := card.Word
	speaker := b.speaker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		speaker.Speak(ctx, word)
		return spokenMsg{}
	}
}

func (b *BrowseScreen) setStatus(text string, isErr bool) {
	b.status = text
	b.isError = isErr
}

func (b *BrowseScreen) View(width, height int) string {
	cards := b.deck.Cards()
	if len(cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("No cards yet. Look up a word to get started."))
	}

	listHeight := height / 2
	if listHeight < 5 {
		listHeight = 5
	}
	list := b.listView(cards, listHeight)

	var detail string
	switch b.state {
	case stateConfirmDelete:
		detail = theme.Incorrect.Render(
			fmt.Sprintf("Delete %q? (y/n)", cards[b.selected].Word))
	case stateTyping:
		detail = b.typingView(cards[b.selected])
	default:
		detail = b.detailView(cards[b.selected], width)
	}

	sections := []string{list, "", detail}
	if b.status != "" {
		style := theme.Correct
		if b.isError {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(b.status))
	}

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Top).
		PaddingTop(1).
		Render(strings.Join(sections, "\n"))
}

// listView renders a window of the card list around the selection.
func (b *BrowseScreen) listView(cards []*vocab.Card, maxRows int) string {
	start := 0
	if b.selected >= maxRows {
		start = b.selected - maxRows + 1
	}
	end := start + maxRows
	if end > len(cards) {
		end = len(cards)
	}

	var rows []string
	for i := start; i < end; i++ {
		c := cards[i]
		label := c.Word
		if m := c.FirstMeaning(); m != nil {
			label += theme.Hint.Render("  " + m.Vietnamese)
		}
		label += theme.Hint.Render(fmt.Sprintf("  L%d", c.SRSLevel))
		if i == b.selected {
			rows = append(rows, theme.Selected.Render("▸ "+label))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+label))
		}
	}
	header := theme.Subtitle.Render(fmt.Sprintf("%d cards", len(cards)))
	return header + "\n\n" + strings.Join(rows, "\n")
}

func (b *BrowseScreen) detailView(c *vocab.Card, width int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Word))
	if c.Phonetic != "" {
		sb.WriteString("  " + theme.Phonetic.Render(c.Phonetic))
	}
	for _, m := range c.Meanings {
		sb.WriteString("\n" + theme.Vietnamese.Render(m.Vietnamese))
		if m.Definition != "" {
			sb.WriteString(theme.Body.Render("  " + m.Definition))
		}
	}
	if len(c.Examples) > 0 {
		sb.WriteString("\n" + theme.Hint.Render(c.Examples[0].Sentence))
	}
	sb.WriteString("\n" + theme.Hint.Render(nextReviewLabel(c)))

	cardWidth := width - 12
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 30 {
		cardWidth = 30
	}
	return theme.Card.Width(cardWidth).Render(sb.String())
}

func (b *BrowseScreen) typingView(c *vocab.Card) string {
	prompt := "?"
	if m := c.FirstMeaning(); m != nil {
		prompt = m.Vietnamese
	}
	s := theme.Body.Render("Type the word for: ") + theme.Vietnamese.Render(prompt) +
		"\n\n" + b.typing.View()
	if b.typingDone {
		style := theme.Incorrect
		if b.typingScore >= 80 {
			style = theme.Correct
		}
		s += "\n\n" + style.Render(fmt.Sprintf("Similarity: %d%%", b.typingScore))
		if b.typingScore < 100 {
			s += "\n" + theme.Hint.Render("The word was: "+c.Word)
		}
		s += "\n" + theme.Hint.Render("enter to retry, esc to stop")
	}
	return s
}

func nextReviewLabel(c *vocab.Card) string {
	if c.NextReview == 0 {
		return "Review: not scheduled"
	}
	t := time.UnixMilli(c.NextReview)
	if t.Before(time.Now()) {
		return "Review: due now"
	}
	return "Review: " + t.Format("2006-01-02")
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	switch b.state {
	case stateConfirmDelete:
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "n", Description: "Keep"},
		}
	case stateTyping:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "t", Description: "Type practice"},
		{Key: "p", Description: "Speak"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}
