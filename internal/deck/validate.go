package deck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "quizdeck://deck.schema.json"

// Lint checks a deck document for authoring mistakes and returns one finding
// per problem. A nil slice means the deck is clean. The error return is for
// lint machinery failures only; a broken document is reported as findings,
// not as an error.
func Lint(data []byte) ([]string, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("document is not valid JSON: %v", err)}, nil
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	var findings []string
	if err := schema.Validate(doc); err != nil {
		findings = append(findings, fmt.Sprintf("schema: %v", err))
	}

	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		// Shape is too far off for the cross-field checks to run; the
		// schema findings above already say what is wrong.
		return findings, nil
	}
	if err := checkFormatVersion(d.FormatVersion); err != nil {
		findings = append(findings, err.Error())
	}
	findings = append(findings, lintQuestions(d.Questions)...)
	findings = append(findings, lintCategoryOrder(&d)...)
	return findings, nil
}

// compiledSchema compiles the deck schema. The schema literal is Go data, so
// it round-trips through JSON to get the exact number representation the
// validator expects.
func compiledSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(deckSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal deck schema: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse deck schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add deck schema: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile deck schema: %w", err)
	}
	return schema, nil
}

// lintQuestions enforces the rules JSON Schema cannot express: id uniqueness
// and answer index range.
func lintQuestions(qs []Question) []string {
	var findings []string
	seen := make(map[int]int, len(qs))
	for i, q := range qs {
		if first, dup := seen[q.ID]; dup {
			findings = append(findings, fmt.Sprintf("questions[%d]: id %d already used by questions[%d]", i, q.ID, first))
		} else {
			seen[q.ID] = i
		}
		if len(q.Options) > 0 && (q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options)) {
			findings = append(findings, fmt.Sprintf("questions[%d]: correctAnswer %d out of range for %d options", i, q.CorrectAnswer, len(q.Options)))
		}
	}
	return findings
}

// lintCategoryOrder flags precedence entries that are duplicated or that
// match no question. Both are legal at runtime (duplicates collapse, absent
// entries drop out) but almost always indicate a typo in the deck file.
func lintCategoryOrder(d *Deck) []string {
	present := make(map[string]bool, len(d.Questions))
	for _, q := range d.Questions {
		present[NormalizeCategory(q.Category)] = true
	}
	var findings []string
	seen := make(map[string]bool, len(d.CategoryOrder))
	for i, c := range d.CategoryOrder {
		if seen[c] {
			findings = append(findings, fmt.Sprintf("categoryOrder[%d]: %q listed more than once", i, c))
			continue
		}
		seen[c] = true
		if !present[c] {
			findings = append(findings, fmt.Sprintf("categoryOrder[%d]: no question has category %q", i, c))
		}
	}
	return findings
}
