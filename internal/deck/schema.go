package deck

// deckSchema is the JSON Schema for deck documents, used by Lint. It checks
// document shape only; cross-field rules such as answer range and id
// uniqueness are enforced separately because JSON Schema cannot express them.
var deckSchema = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"formatVersion": map[string]any{
			"type": "string",
		},
		"title": map[string]any{
			"type": "string",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
					"category": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"question": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"code": map[string]any{
						"type": "string",
					},
					"codeLanguage": map[string]any{
						"type": "string",
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"maxItems": 4,
						"items": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"correctAnswer": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
				},
				"required":             []any{"id", "question", "options", "correctAnswer"},
				"additionalProperties": false,
			},
		},
		"categoryOrder": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}
