package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{"type": "string"},
				"meanings": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "object"},
				},
			},
			"required":             []any{"word", "meanings"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"word": "cat", "meanings": [{}]}`, false},
		{"missing required field", `{"word": "cat"}`, true},
		{"empty meanings", `{"word": "cat", "meanings": []}`, true},
		{"extra field", `{"word": "cat", "meanings": [{}], "x": 1}`, true},
		{"wrong type", `{"word": 7, "meanings": [{}]}`, true},
		{"not JSON", `word: cat`, true},
	}

	schema := testSchema("validate-word")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(schema, json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				var invalid *ErrInvalidResponse
				assert.True(t, errors.As(err, &invalid), "want *ErrInvalidResponse, got %T", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateResponseNilSchemaSkips(t *testing.T) {
	require.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestCompiledSchemaCached(t *testing.T) {
	schema := testSchema("validate-cached")

	first, err := compiledSchema(schema)
	require.NoError(t, err)
	second, err := compiledSchema(schema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
