package components

import (
	"strings"

	"github.com/quizdeck/quizdeck/internal/deck"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// RenderQuestionText styles the backtick-delimited inline code spans of a
// question's text.
func RenderQuestionText(text string) string {
	var b strings.Builder
	for _, seg := range deck.SplitInline(text) {
		if seg.Code {
			b.WriteString(theme.InlineCode.Render(seg.Text))
		} else {
			b.WriteString(theme.Body.Render(seg.Text))
		}
	}
	return b.String()
}

// RenderCodeBlock renders a question's code sample under its language label.
func RenderCodeBlock(code, language string, width int) string {
	label := theme.CodeLabel.Render(deck.LanguageLabel(language))
	block := theme.CodeBlock.Width(width).Render(code)
	return label + "\n" + block
}
