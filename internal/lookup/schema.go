package lookup

import "github.com/minhvu/wordvault/internal/llm"

// WordSchema defines the JSON schema for lookup responses.
var WordSchema = &llm.Schema{
	Name:        "word-entry",
	Description: "A dictionary entry for a single word, with Vietnamese renderings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "The canonical form of the word being defined",
			},
			"phonetic": map[string]any{
				"type":        "string",
				"description": "IPA transcription, e.g. /kæt/",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A short memory aid for the word. Empty string if none comes to mind.",
			},
			"meanings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"part_of_speech": map[string]any{
							"type":        "string",
							"description": "noun, verb, adjective, ...",
						},
						"vietnamese": map[string]any{
							"type":        "string",
							"description": "The Vietnamese rendering of this sense",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "A concise English definition of this sense",
						},
					},
					"required":             []any{"part_of_speech", "vietnamese", "definition"},
					"additionalProperties": false,
				},
				"description": "One entry per distinct sense, most common first. At least one.",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sentence": map[string]any{
							"type":        "string",
							"description": "A natural example sentence using the word",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "Vietnamese translation of the sentence",
						},
					},
					"required":             []any{"sentence", "translation"},
					"additionalProperties": false,
				},
				"description": "Two or three example sentences. May be empty for rare words.",
			},
			"synonyms": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Close synonyms, if any",
			},
			"antonyms": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Antonyms, if any",
			},
		},
		"required":             []any{"word", "phonetic", "mnemonic", "meanings", "examples", "synonyms", "antonyms"},
		"additionalProperties": false,
	},
}
