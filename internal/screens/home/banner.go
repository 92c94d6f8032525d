package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Block-letter title. Every row is exactly 61 cells wide so centered
// alignment shifts all rows together.
var bannerFull = strings.Join([]string{
	` ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗██╗  ██╗`,
	`██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝`,
	`██║   ██║██║   ██║██║  ███╔╝ ██║  ██║█████╗  ██║     █████╔╝ `,
	`██║▄▄ ██║██║   ██║██║ ███╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗ `,
	`╚██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗╚██████╗██║  ██╗`,
	` ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`,
}, "\n")

const bannerCompact = "Q · U · I · Z · D · E · C · K"

// contentWidth returns the uniform inner width used for all home sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so the banner stays intact without stretching the boxes
	if w > 66 {
		w = 66
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := bannerFull
	if compact {
		title = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderSubtitle renders the deck title under the banner.
func renderSubtitle(title string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(title)
}

// renderStatsBar renders deck stats in a bordered box matching content width.
func renderStatsBar(questions, categories, percent, cw int, compact bool) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	categoryStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	revealStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			questionStyle.Render(fmt.Sprintf("★%d", questions)),
			categoryStyle.Render(fmt.Sprintf("◆%d", categories)),
			revealStyle.Render(fmt.Sprintf("✓%d%%", percent)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			questionStyle.Render(fmt.Sprintf("★ %d QUESTIONS", questions)),
			categoryStyle.Render(fmt.Sprintf("◆ %d CATEGORIES", categories)),
			revealStyle.Render(fmt.Sprintf("✓ %d%% REVEALED", percent)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderHomeMenu renders each menu item as a fixed-width button.
func renderHomeMenu(items []string, selected, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderHomeFrame wraps content in a double-border frame, centered
// vertically and horizontally within the given dimensions.
func renderHomeFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
