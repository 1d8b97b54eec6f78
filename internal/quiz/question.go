package quiz

import "strings"

// Kind identifies the question variant.
type Kind string

const (
	// SelectMeaning shows the word and asks for its meaning.
	SelectMeaning Kind = "select_meaning"

	// SelectWord shows a meaning and asks for the word.
	SelectWord Kind = "select_word"

	// FillInBlank shows an example sentence with the word blanked out.
	FillInBlank Kind = "fill_in_blank"
)

// OptionCount is the fixed size of a multiple-choice option set.
const OptionCount = 4

// PlaceholderOption pads option sets when the distractor pool is too small.
const PlaceholderOption = "----"

// Question is the ephemeral state of one quiz item. It is discarded when
// the session moves to another card or switches mode.
type Question struct {
	Kind          Kind
	Prompt        string
	CorrectAnswer string

	// Options is populated for the select variants only; always exactly
	// OptionCount entries containing the correct answer once.
	Options []string

	UserAnswer string
	IsCorrect  bool
	Submitted  bool
}

// Submit grades an answer and returns the submitted question. Grading is
// advisory: it never touches the card store. Submitting twice is a no-op.
func (q Question) Submit(answer string) Question {
	if q.Submitted {
		return q
	}
	q.UserAnswer = answer
	q.IsCorrect = strings.EqualFold(
		strings.TrimSpace(answer),
		strings.TrimSpace(q.CorrectAnswer),
	)
	q.Submitted = true
	return q
}
