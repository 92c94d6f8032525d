// Package deck loads and models the static question dataset.
//
// A deck is an immutable JSON document: an ordered list of multiple-choice
// questions plus an optional category precedence list. Decks never change
// during a session; everything derived from them (categories, display IDs,
// filtered views) is computed by the catalog package.
package deck

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// FallbackCategory is assigned to questions whose source record carries no
// category.
const FallbackCategory = "Other"

// supportedMajor is the deck format major version this build understands.
const supportedMajor = "v1"

// ErrVersion indicates a deck declares a format version this build cannot
// read.
var ErrVersion = errors.New("unsupported deck format version")

// Question is a single multiple-choice question as it appears in a deck.
// Options are lettered A-D positionally; a deck may supply fewer than four.
type Question struct {
	ID            int      `json:"id"`
	Category      string   `json:"category,omitempty"`
	Text          string   `json:"question"`
	Code          string   `json:"code,omitempty"`
	CodeLanguage  string   `json:"codeLanguage,omitempty"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Deck is a parsed question dataset.
type Deck struct {
	FormatVersion string     `json:"formatVersion,omitempty"`
	Title         string     `json:"title,omitempty"`
	Questions     []Question `json:"questions"`
	CategoryOrder []string   `json:"categoryOrder,omitempty"`
}

//go:embed data/go-basics.json
var defaultDeckJSON []byte

var defaultDeck *Deck

func init() {
	d, err := Parse(defaultDeckJSON)
	if err != nil {
		panic(fmt.Sprintf("deck: embedded default deck: %v", err))
	}
	defaultDeck = d
}

// Default returns the deck embedded in the binary.
func Default() *Deck {
	return defaultDeck
}

// Parse decodes a deck document, checks its format version, and normalizes
// every question. Entries that are shaped wrong beyond what decoding catches
// (duplicate ids, out-of-range answers) are a dataset precondition violation,
// not a parse error; `quizdeck check` flags them at authoring time.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if err := checkFormatVersion(d.FormatVersion); err != nil {
		return nil, err
	}
	d.Normalize()
	return &d, nil
}

// LoadFile reads and parses a deck from disk.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Normalize fills in the fallback category on every question that has none.
// After normalization each question carries a non-empty category, so the
// filtering and ordering layers never see the optional-field shape.
func (d *Deck) Normalize() {
	for i := range d.Questions {
		d.Questions[i].Category = NormalizeCategory(d.Questions[i].Category)
	}
}

// NormalizeCategory maps an absent category to the fallback.
func NormalizeCategory(c string) string {
	if c == "" {
		return FallbackCategory
	}
	return c
}

// Len returns the number of questions in the deck.
func (d *Deck) Len() int {
	return len(d.Questions)
}

// checkFormatVersion accepts an absent version and any version with the
// supported major. The field is plain semver without the "v" prefix.
func checkFormatVersion(v string) error {
	if v == "" {
		return nil
	}
	canon := "v" + strings.TrimPrefix(v, "v")
	if !semver.IsValid(canon) {
		return fmt.Errorf("%w: %q is not a valid version", ErrVersion, v)
	}
	if semver.Major(canon) != supportedMajor {
		return fmt.Errorf("%w: deck declares %s, this build reads %s.x", ErrVersion, v, supportedMajor)
	}
	return nil
}
