package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Minimum terminal size the screens are designed against.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// bar wraps one line of chrome in the bordered card shared by the header
// and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, center and right cells across innerWidth, keeping
// at least one space between cells when the terminal is narrow.
func spread(left, center, right string, innerWidth int) string {
	lw := lipgloss.Width(left)
	cw := lipgloss.Width(center)
	rw := lipgloss.Width(right)

	gapL := (innerWidth-cw)/2 - lw
	if gapL < 1 {
		gapL = 1
	}
	gapR := innerWidth - lw - gapL - cw - rw
	if gapR < 1 {
		gapR = 1
	}
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader renders the application header bar: app name on the left,
// the active screen title centered, reveal progress on the right.
func RenderHeader(title string, revealed, total, width int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  QuizDeck")

	screenTitle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	progress := lipgloss.NewStyle().
		Foreground(theme.Success).
		Render(fmt.Sprintf("✓ %d/%d", revealed, total))

	innerWidth := width - 4 // border and padding
	if innerWidth < 0 {
		innerWidth = 0
	}
	return bar(spread(name, screenTitle, progress, innerWidth), width)
}

// RenderFooter renders the footer bar listing the active key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderMinSizeMessage fills the window with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small.\n\nQuizDeck needs at least %d x %d.\nCurrent size: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderFrame stacks header, content and footer, stretching the content
// area to fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	inner := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if inner < 0 {
		inner = 0
	}
	body := lipgloss.NewStyle().
		Width(width).
		Height(inner).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
