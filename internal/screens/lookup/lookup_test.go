package lookup

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/vocab"
)

type nopPersister struct{}

func (nopPersister) LoadCards(context.Context) ([]*vocab.Card, error) { return nil, nil }
func (nopPersister) SaveCard(context.Context, *vocab.Card) error     { return nil }
func (nopPersister) DeleteCard(context.Context, string) error        { return nil }

func testPayload() *vocab.Payload {
	return &vocab.Payload{
		Word:     "cat",
		Phonetic: "/kæt/",
		Meanings: []vocab.Meaning{
			{PartOfSpeech: "noun", Vietnamese: "con mèo", Definition: "a small domesticated feline"},
		},
		Synonyms: []string{"kitten"},
		Antonyms: []string{"dog"},
	}
}

func testLookupScreen(speaker *speech.Speaker) *LookupScreen {
	return New(nil, deck.New(nopPersister{}), speaker)
}

func TestSpeakNeedsResultAndSpeaker(t *testing.T) {
	l := testLookupScreen(speech.NewWithBinary("true"))
	if cmd := l.speakCmd(); cmd != nil {
		t.Fatal("speak command before any result was shown")
	}

	l = testLookupScreen(nil)
	l.payload = testPayload()
	if cmd := l.speakCmd(); cmd != nil {
		t.Fatal("speak command without a speaker")
	}
}

func TestCtrlLSpeaksShownWord(t *testing.T) {
	l := testLookupScreen(speech.NewWithBinary("true"))
	l.payload = testPayload()

	_, cmd := l.Update(tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("ctrl+l produced no command")
	}
	if _, ok := cmd().(spokenMsg); !ok {
		t.Fatal("speak command did not report back")
	}
}

func TestEntryViewListsRelatedWords(t *testing.T) {
	l := testLookupScreen(nil)
	l.payload = testPayload()

	view := l.entryView(100)
	for _, want := range []string{"Synonyms: kitten", "Antonyms: dog"} {
		if !strings.Contains(view, want) {
			t.Fatalf("entry view missing %q", want)
		}
	}
}
