package vocab

import "encoding/json"

// Meaning is one sense of a word: part of speech, the Vietnamese rendering,
// and an English definition.
type Meaning struct {
	PartOfSpeech string `json:"part_of_speech"`
	Vietnamese   string `json:"vietnamese"`
	Definition   string `json:"definition"`
}

// Example is a usage sentence with its translation.
type Example struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// UnmarshalJSON accepts both the current object form and the legacy
// persisted form, where an example was a bare sentence string.
func (e *Example) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Sentence = s
		e.Translation = ""
		return nil
	}

	type plain Example
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Example(p)
	return nil
}

// Payload is the content of a card as returned by the lookup service:
// everything except identity and scheduling state.
type Payload struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Mnemonic string    `json:"mnemonic,omitempty"`
	Meanings []Meaning `json:"meanings"`
	Examples []Example `json:"examples"`
	Synonyms []string  `json:"synonyms,omitempty"`
	Antonyms []string  `json:"antonyms,omitempty"`
}

// Validate checks the payload has the fields every consumer relies on.
func (p *Payload) Validate() error {
	if p.Word == "" {
		return ErrInvalidCardData
	}
	if len(p.Meanings) == 0 {
		return ErrInvalidCardData
	}
	return nil
}

// Card is the unit of learning content. The deck is the sole writer of
// SRSLevel and NextReview; everything else is immutable after creation.
type Card struct {
	ID       string    `json:"id"`
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Mnemonic string    `json:"mnemonic,omitempty"`
	Meanings []Meaning `json:"meanings"`
	Examples []Example `json:"examples"`
	Synonyms []string  `json:"synonyms,omitempty"`
	Antonyms []string  `json:"antonyms,omitempty"`

	// CreatedAt is the creation time in epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// SRSLevel is the spaced repetition level, 0 (new) through 5.
	SRSLevel int `json:"srs_level"`

	// NextReview is the next scheduled review in epoch milliseconds.
	// Zero means never scheduled, which counts as due.
	NextReview int64 `json:"next_review"`
}

// FirstMeaning returns the card's primary meaning, or nil if it has none.
func (c *Card) FirstMeaning() *Meaning {
	if len(c.Meanings) == 0 {
		return nil
	}
	return &c.Meanings[0]
}

// Payload returns the card content without identity or scheduling state.
func (c *Card) Payload() Payload {
	return Payload{
		Word:     c.Word,
		Phonetic: c.Phonetic,
		Mnemonic: c.Mnemonic,
		Meanings: c.Meanings,
		Examples: c.Examples,
		Synonyms: c.Synonyms,
		Antonyms: c.Antonyms,
	}
}
