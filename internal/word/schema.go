package word

const schemaName = "generate_word"

// ResultSchema is the JSON schema bound to the completion request. Strict
// structured outputs require additionalProperties=false, every property
// listed as required, and no array length keywords (minItems/maxItems are
// rejected under strict mode) — the two-example arity is carried by the
// prompt and enforced by validate.
func ResultSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "The generated word",
			},
			"pronunciation": map[string]any{
				"type":        "string",
				"description": "Pronunciation guide in IPA format",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "One-sentence poetic definition",
			},
			"etymology": map[string]any{
				"type":        "string",
				"description": "Breakdown of word roots and origins",
			},
			"examples": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly two example sentences using the word",
			},
		},
		"required": []string{"word", "pronunciation", "definition", "etymology", "examples"},
	}
}
