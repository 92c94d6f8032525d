package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestParseNormalizesCategories(t *testing.T) {
	doc := `{
		"questions": [
			{"id": 1, "category": "Sync", "question": "a", "options": ["x"], "correctAnswer": 0},
			{"id": 2, "question": "b", "options": ["x"], "correctAnswer": 0}
		]
	}`
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := d.Questions[0].Category; got != "Sync" {
		t.Errorf("questions[0].Category = %q, want Sync", got)
	}
	if got := d.Questions[1].Category; got != FallbackCategory {
		t.Errorf("questions[1].Category = %q, want %q", got, FallbackCategory)
	}
}

func TestParseFormatVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"absent", "", false},
		{"current", "1.0.0", false},
		{"newer minor", "1.7.2", false},
		{"newer major", "2.0.0", true},
		{"not a version", "latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"questions":[{"id":1,"question":"q","options":["a"],"correctAnswer":0}]}`
			if tt.version != "" {
				doc = fmt.Sprintf(`{"formatVersion":%q,"questions":[{"id":1,"question":"q","options":["a"],"correctAnswer":0}]}`, tt.version)
			}
			_, err := Parse([]byte(doc))
			if tt.wantErr {
				if !errors.Is(err, ErrVersion) {
					t.Fatalf("Parse = %v, want ErrVersion", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
		})
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("Parse accepted invalid JSON")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	doc := `{"questions":[{"id":9,"question":"q","options":["a","b"],"correctAnswer":1}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if d.Len() != 1 || d.Questions[0].ID != 9 {
		t.Errorf("unexpected deck contents: %+v", d.Questions)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadFile succeeded on a missing file")
	}
}

func TestDefaultDeck(t *testing.T) {
	d := Default()
	if d.Len() == 0 {
		t.Fatal("default deck is empty")
	}
	for i, q := range d.Questions {
		if q.Category == "" {
			t.Errorf("questions[%d] has no category after normalization", i)
		}
	}

	findings, err := Lint(defaultDeckJSON)
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if len(findings) != 0 {
		t.Errorf("embedded deck has lint findings: %v", findings)
	}
}
