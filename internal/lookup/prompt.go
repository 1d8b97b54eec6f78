package lookup

import "fmt"

const systemPrompt = `You are a bilingual English-Vietnamese dictionary for a vocabulary learner.
Given a word or short phrase, produce a complete dictionary entry as JSON.
Keep definitions concise and example sentences natural and everyday.
If the input is misspelled, define the most likely intended word and use
its corrected form in the "word" field.`

// buildPrompt renders the user message for a lookup in the given
// direction.
func buildPrompt(term string, dir Direction) string {
	if dir == VietnameseToEnglish {
		return fmt.Sprintf(
			"Look up the Vietnamese word or phrase %q and give its English equivalent as the entry word, with Vietnamese renderings per sense.",
			term,
		)
	}
	return fmt.Sprintf("Look up the English word or phrase %q.", term)
}
