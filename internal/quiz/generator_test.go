package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/minhvu/wordvault/internal/vocab"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func makeCard(id, word, meaning string, examples ...string) *vocab.Card {
	c := &vocab.Card{
		ID:   id,
		Word: word,
		Meanings: []vocab.Meaning{
			{PartOfSpeech: "noun", Vietnamese: meaning, Definition: "def of " + word},
		},
	}
	for _, s := range examples {
		c.Examples = append(c.Examples, vocab.Example{Sentence: s})
	}
	return c
}

func makePool(n int) []*vocab.Card {
	pool := make([]*vocab.Card, 0, n)
	words := []string{"apple", "banana", "cherry", "durian", "elder", "fig", "grape"}
	for i := 0; i < n && i < len(words); i++ {
		pool = append(pool, makeCard(words[i], words[i], "nghĩa "+words[i]))
	}
	return pool
}

func TestGenerateRejectsCardWithoutMeanings(t *testing.T) {
	g := New(testRand())
	_, err := g.Generate(&vocab.Card{ID: "x", Word: "x"}, nil)
	if !errors.Is(err, vocab.ErrInvalidCardData) {
		t.Fatalf("err = %v, want ErrInvalidCardData", err)
	}
}

func TestGenerateNeverPicksFillInBlankWithoutExamples(t *testing.T) {
	g := New(testRand())
	card := makeCard("c1", "cat", "con mèo")

	for i := 0; i < 50; i++ {
		q, err := g.Generate(card, makePool(5))
		if err != nil {
			t.Fatal(err)
		}
		if q.Kind == FillInBlank {
			t.Fatal("fill-in-blank generated for a card without examples")
		}
	}
}

func TestSelectOptionsIntegrity(t *testing.T) {
	g := New(testRand())
	card := makeCard("c1", "cat", "con mèo")
	pool := append(makePool(6), card)

	for i := 0; i < 50; i++ {
		q, err := g.Generate(card, pool)
		if err != nil {
			t.Fatal(err)
		}
		if len(q.Options) != OptionCount {
			t.Fatalf("len(options) = %d, want %d", len(q.Options), OptionCount)
		}

		correct := 0
		seen := map[string]int{}
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				correct++
			}
			seen[opt]++
		}
		if correct != 1 {
			t.Fatalf("correct answer appears %d times in %v", correct, q.Options)
		}
		for opt, n := range seen {
			if n > 1 && opt != PlaceholderOption {
				t.Fatalf("duplicate option %q in %v", opt, q.Options)
			}
		}

		// The current card's own values must not appear as distractors.
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				continue
			}
			if q.Kind == SelectWord && strings.EqualFold(opt, card.Word) {
				t.Fatalf("own word used as distractor: %v", q.Options)
			}
		}
	}
}

func TestSmallPoolPadsWithPlaceholder(t *testing.T) {
	g := New(testRand())
	card := makeCard("c1", "cat", "con mèo")
	pool := []*vocab.Card{card, makeCard("c2", "dog", "con chó")}

	for i := 0; i < 20; i++ {
		q, err := g.Generate(card, pool)
		if err != nil {
			t.Fatal(err)
		}
		if len(q.Options) != OptionCount {
			t.Fatalf("len(options) = %d, want %d", len(q.Options), OptionCount)
		}
		placeholders := 0
		for _, opt := range q.Options {
			if opt == PlaceholderOption {
				placeholders++
			}
		}
		if placeholders != 2 {
			t.Fatalf("placeholders = %d, want 2 (options %v)", placeholders, q.Options)
		}
	}
}

func TestFillInBlankUsesExample(t *testing.T) {
	g := New(testRand())
	card := makeCard("c1", "cat", "con mèo", "The cat sat on the mat.")

	var q Question
	for i := 0; i < 100; i++ {
		got, err := g.Generate(card, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got.Kind == FillInBlank {
			q = got
			break
		}
	}
	if q.Kind != FillInBlank {
		t.Fatal("fill-in-blank never generated for a card with examples")
	}
	if q.Prompt != "The "+BlankMarker+" sat on the mat." {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.CorrectAnswer != "cat" {
		t.Errorf("correct answer = %q, want cat", q.CorrectAnswer)
	}
	if len(q.Options) != 0 {
		t.Errorf("fill-in-blank should have no options, got %v", q.Options)
	}
}

func TestBlankWord(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		word     string
		want     string
	}{
		{"whole word replaced", "The cat sat", "cat", "The ____ sat"},
		{"partial word untouched", "The cats sat on the mat", "cat", "The cats sat on the mat"},
		{"case insensitive", "Cat naps are short", "cat", "____ naps are short"},
		{"multiple occurrences", "cat meets cat", "cat", "____ meets ____"},
		{"empty word", "unchanged", "", "unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlankWord(tt.sentence, tt.word); got != tt.want {
				t.Errorf("BlankWord(%q, %q) = %q, want %q", tt.sentence, tt.word, got, tt.want)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	q := Question{Kind: SelectWord, CorrectAnswer: "cat"}

	graded := q.Submit("  CAT ")
	if !graded.Submitted || !graded.IsCorrect {
		t.Fatalf("case-insensitive trimmed answer should be correct: %+v", graded)
	}
	if graded.UserAnswer != "  CAT " {
		t.Errorf("user answer not recorded: %q", graded.UserAnswer)
	}

	wrong := q.Submit("dog")
	if wrong.IsCorrect {
		t.Error("wrong answer graded correct")
	}

	// Re-submission is a no-op.
	again := graded.Submit("dog")
	if !again.IsCorrect || again.UserAnswer != "  CAT " {
		t.Errorf("re-submission mutated state: %+v", again)
	}
}

func TestSelectWordPromptAndAnswer(t *testing.T) {
	g := New(testRand())
	card := makeCard("c1", "cat", "con mèo")
	pool := makePool(5)

	for i := 0; i < 100; i++ {
		q, err := g.Generate(card, pool)
		if err != nil {
			t.Fatal(err)
		}
		switch q.Kind {
		case SelectWord:
			if q.Prompt != "con mèo" || q.CorrectAnswer != "cat" {
				t.Fatalf("select_word: prompt=%q answer=%q", q.Prompt, q.CorrectAnswer)
			}
			return
		case SelectMeaning:
			if q.Prompt != "cat" || q.CorrectAnswer != "con mèo" {
				t.Fatalf("select_meaning: prompt=%q answer=%q", q.Prompt, q.CorrectAnswer)
			}
		}
	}
	t.Fatal("select_word never generated")
}
