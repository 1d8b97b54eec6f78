// Package quiz derives multiple-choice and fill-in-the-blank questions
// from a card and a distractor pool (the rest of the deck).
package quiz

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/minhvu/wordvault/internal/vocab"
)

// BlankMarker replaces the target word in fill-in-the-blank sentences.
const BlankMarker = "____"

// Generator builds quiz questions using an injected random source so
// tests can pin the sequence.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng falls back to a PCG source seeded
// from the global generator.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate derives one question for the card. The variant is chosen
// uniformly from the select types, plus fill-in-the-blank when the card
// has at least one example. Cards without meanings are rejected.
func (g *Generator) Generate(card *vocab.Card, pool []*vocab.Card) (Question, error) {
	if card == nil || card.FirstMeaning() == nil {
		return Question{}, fmt.Errorf("generate quiz: %w", vocab.ErrInvalidCardData)
	}

	kinds := []Kind{SelectMeaning, SelectWord}
	if len(card.Examples) > 0 {
		kinds = append(kinds, FillInBlank)
	}

	switch kinds[g.rng.IntN(len(kinds))] {
	case FillInBlank:
		return g.fillInBlank(card), nil
	case SelectWord:
		return g.selectWord(card, pool), nil
	default:
		return g.selectMeaning(card, pool), nil
	}
}

func (g *Generator) selectMeaning(card *vocab.Card, pool []*vocab.Card) Question {
	correct := card.FirstMeaning().Vietnamese
	distractors := g.sampleDistractors(card, pool, func(c *vocab.Card) string {
		if m := c.FirstMeaning(); m != nil {
			return m.Vietnamese
		}
		return ""
	}, correct)

	return Question{
		Kind:          SelectMeaning,
		Prompt:        card.Word,
		CorrectAnswer: correct,
		Options:       g.buildOptions(correct, distractors),
	}
}

func (g *Generator) selectWord(card *vocab.Card, pool []*vocab.Card) Question {
	correct := card.Word
	distractors := g.sampleDistractors(card, pool, func(c *vocab.Card) string {
		return c.Word
	}, correct)

	return Question{
		Kind:          SelectWord,
		Prompt:        card.FirstMeaning().Vietnamese,
		CorrectAnswer: correct,
		Options:       g.buildOptions(correct, distractors),
	}
}

func (g *Generator) fillInBlank(card *vocab.Card) Question {
	ex := card.Examples[g.rng.IntN(len(card.Examples))]
	return Question{
		Kind:          FillInBlank,
		Prompt:        BlankWord(ex.Sentence, card.Word),
		CorrectAnswer: card.Word,
	}
}

// sampleDistractors draws up to OptionCount-1 distinct values from the
// pool without replacement, excluding the current card, empty values,
// and duplicates of the correct answer.
func (g *Generator) sampleDistractors(card *vocab.Card, pool []*vocab.Card, value func(*vocab.Card) string, correct string) []string {
	candidates := make([]string, 0, len(pool))
	seen := map[string]bool{strings.ToLower(correct): true}
	for _, c := range pool {
		if c.ID == card.ID {
			continue
		}
		v := value(c)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		candidates = append(candidates, v)
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > OptionCount-1 {
		candidates = candidates[:OptionCount-1]
	}
	return candidates
}

// buildOptions assembles the final shuffled option set of exactly
// OptionCount entries, padding with the placeholder when needed.
func (g *Generator) buildOptions(correct string, distractors []string) []string {
	options := append([]string{correct}, distractors...)
	for len(options) < OptionCount {
		options = append(options, PlaceholderOption)
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// BlankWord replaces every case-insensitive whole-word occurrence of word
// in sentence with the blank marker. Partial matches are left alone.
func BlankWord(sentence, word string) string {
	if word == "" {
		return sentence
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return sentence
	}
	return re.ReplaceAllString(sentence, BlankMarker)
}
