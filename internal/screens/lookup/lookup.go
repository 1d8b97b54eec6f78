// Package lookup is the dictionary screen: type a term, fetch its entry
// through the AI provider, and optionally save it as a card.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/wordvault/internal/deck"
	lookupsvc "github.com/minhvu/wordvault/internal/lookup"
	"github.com/minhvu/wordvault/internal/screen"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/ui/components"
	"github.com/minhvu/wordvault/internal/ui/layout"
	"github.com/minhvu/wordvault/internal/ui/theme"
	"github.com/minhvu/wordvault/internal/vocab"
)

// resultMsg carries a finished lookup back to the screen. The sequence
// number identifies which request it answers; stale results are dropped.
type resultMsg struct {
	seq     int
	payload *vocab.Payload
	err     error
}

// savedMsg reports the outcome of saving the shown entry as a card.
type savedMsg struct {
	word string
	err  error
}

// spokenMsg signals that the speech command ran.
type spokenMsg struct{}

// LookupScreen lets the user query the dictionary and save results.
type LookupScreen struct {
	svc     *lookupsvc.Service
	deck    *deck.Deck
	speaker *speech.Speaker

	input     components.TextInput
	direction lookupsvc.Direction

	seq     int
	loading bool
	payload *vocab.Payload
	status  string
	isError bool
}

var _ screen.Screen = (*LookupScreen)(nil)
var _ screen.KeyHintProvider = (*LookupScreen)(nil)

// New creates the lookup screen.
func New(svc *lookupsvc.Service, d *deck.Deck, speaker *speech.Speaker) *LookupScreen {
	return &LookupScreen{
		svc:       svc,
		deck:      d,
		speaker:   speaker,
		input:     components.NewTextInput("enter a word", 64),
		direction: lookupsvc.EnglishToVietnamese,
	}
}

func (l *LookupScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LookupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		if msg.seq != l.seq {
			// Answer to an abandoned request.
			return l, nil
		}
		l.loading = false
		if msg.err != nil {
			l.payload = nil
			l.setStatus(l.lookupErrorText(msg.err), true)
			return l, nil
		}
		l.payload = msg.payload
		l.status = ""
		return l, nil

	case savedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, deck.ErrDuplicateWord) {
				l.setStatus(fmt.Sprintf("%q is already in your deck", msg.word), true)
			} else {
				l.setStatus(fmt.Sprintf("Could not save: %v", msg.err), true)
			}
			return l, nil
		}
		l.setStatus(fmt.Sprintf("Saved %q", msg.word), false)
		return l, nil

	case spokenMsg:
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return l, l.lookupCmd()
		case "tab":
			l.direction = l.direction.Toggle()
			l.payload = nil
			l.status = ""
			return l, nil
		case "ctrl+s":
			return l, l.saveCmd()
		case "ctrl+l":
			return l, l.speakCmd()
		}
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LookupScreen) lookupCmd() tea.Cmd {
	term := strings.TrimSpace(l.input.Value())
	if term == "" {
		return nil
	}
	l.seq++
	l.loading = true
	l.payload = nil
	l.status = ""

	seq := l.seq
	dir := l.direction
	svc := l.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		payload, err := svc.Lookup(ctx, term, dir)
		return resultMsg{seq: seq, payload: payload, err: err}
	}
}

func (l *LookupScreen) saveCmd() tea.Cmd {
	if l.payload == nil {
		return nil
	}
	payload := *l.payload
	d := l.deck
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := d.Add(ctx, payload, time.Now().UnixMilli())
		return savedMsg{word: payload.Word, err: err}
	}
}

func (l *LookupScreen) speakCmd() tea.Cmd {
	if l.payload == nil || l.speaker == nil || !l.speaker.Available() {
		return nil
	}
	word := l.payload.Word
	speaker := l.speaker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		speaker.Speak(ctx, word)
		return spokenMsg{}
	}
}

func (l *LookupScreen) lookupErrorText(err error) string {
	if errors.Is(err, lookupsvc.ErrNotFound) {
		return "No entry found. Check the spelling and try again."
	}
	return fmt.Sprintf("Lookup failed: %v", err)
}

func (l *LookupScreen) setStatus(text string, isErr bool) {
	l.status = text
	l.isError = isErr
}

func (l *LookupScreen) View(width, height int) string {
	var sections []string

	dirLabel := "English → Vietnamese"
	if l.direction == lookupsvc.VietnameseToEnglish {
		dirLabel = "Vietnamese → English"
	}
	sections = append(sections,
		theme.Subtitle.Render(dirLabel+"  (tab to switch)"),
		"",
		l.input.View(),
	)

	switch {
	case l.loading:
		sections = append(sections, "", theme.Hint.Render("Looking up..."))
	case l.payload != nil:
		sections = append(sections, "", l.entryView(width))
	}

	if l.status != "" {
		style := theme.Correct
		if l.isError {
			style = theme.Incorrect
		}
		sections = append(sections, "", style.Render(l.status))
	}

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(sections, "\n"))
}

func (l *LookupScreen) entryView(width int) string {
	p := l.payload

	var b strings.Builder
	b.WriteString(theme.Title.Render(p.Word))
	if p.Phonetic != "" {
		b.WriteString("\n" + theme.Phonetic.Render(p.Phonetic))
	}
	b.WriteString("\n")
	for _, m := range p.Meanings {
		b.WriteString("\n" + theme.Vietnamese.Render(m.Vietnamese))
		if m.PartOfSpeech != "" {
			b.WriteString(theme.Hint.Render(" (" + m.PartOfSpeech + ")"))
		}
		if m.Definition != "" {
			b.WriteString("\n" + theme.Body.Render("  "+m.Definition))
		}
	}
	for i, ex := range p.Examples {
		if i >= 2 {
			break
		}
		b.WriteString("\n\n" + theme.Body.Render(ex.Sentence))
		if ex.Translation != "" {
			b.WriteString("\n" + theme.Hint.Render(ex.Translation))
		}
	}
	if len(p.Synonyms) > 0 {
		b.WriteString("\n\n" + theme.Hint.Render("Synonyms: "+strings.Join(p.Synonyms, ", ")))
	}
	if len(p.Antonyms) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Antonyms: "+strings.Join(p.Antonyms, ", ")))
	}
	if p.Mnemonic != "" {
		b.WriteString("\n" + theme.Hint.Render("💡 "+p.Mnemonic))
	}

	cardWidth := width - 12
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 30 {
		cardWidth = 30
	}
	return theme.Card.Width(cardWidth).Render(b.String())
}

func (l *LookupScreen) Title() string {
	return "Look Up"
}

func (l *LookupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Look up"},
		{Key: "Tab", Description: "Direction"},
	}
	if l.payload != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Save card"})
		if l.speaker != nil && l.speaker.Available() {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "Speak"})
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}
