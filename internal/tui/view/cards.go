package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/headline-cli/internal/news"
	"github.com/glabrego/headline-cli/internal/render/summary"
	tuitheme "github.com/glabrego/headline-cli/internal/tui/theme"
)

const (
	cardTitleLines   = 2
	cardSummaryLines = 3
	heroSummaryLines = 4

	// CardHeight is the rendered height of a grid card, borders included.
	CardHeight = cardTitleLines + 1 + cardSummaryLines + 2

	minCardWidth = 28
)

// Columns is how many cards fit side by side in width cells.
func Columns(width int) int {
	switch {
	case width >= 3*minCardWidth+24:
		return 3
	case width >= 2*minCardWidth+12:
		return 2
	default:
		return 1
	}
}

// CardWidth splits width evenly between columns.
func CardWidth(width, columns int) int {
	if columns < 1 {
		columns = 1
	}
	w := width / columns
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// HeroCard renders the featured article across the full width.
func HeroCard(a news.Article, width int, active bool, th tuitheme.Theme) string {
	inner := max(10, width-4)
	lines := make([]string, 0, 8)
	for _, line := range summary.Wrap(a.DisplayTitle(), inner) {
		lines = append(lines, th.HeroTitle.Render(line))
	}
	if meta := metaLine(a, inner, th); meta != "" {
		lines = append(lines, meta)
	}
	for _, line := range summary.Lines(a.Summary, inner, heroSummaryLines) {
		lines = append(lines, th.CardSummary.Render(line))
	}
	if img := strings.TrimSpace(a.Image); img != "" {
		lines = append(lines, th.ImageLabel.Render(truncate("Image "+img, inner)))
	}
	style := th.HeroBorder
	if active {
		style = th.HeroActive
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Card renders one grid card. Every card has the same height so rows line up.
func Card(a news.Article, width int, active bool, th tuitheme.Theme) string {
	inner := max(10, width-4)
	lines := make([]string, 0, CardHeight)

	title := summary.Wrap(a.DisplayTitle(), inner)
	if len(title) > cardTitleLines {
		title = title[:cardTitleLines]
		title[cardTitleLines-1] = truncate(title[cardTitleLines-1]+"…", inner)
	}
	for len(title) < cardTitleLines {
		title = append(title, "")
	}
	for _, line := range title {
		lines = append(lines, th.CardTitle.Render(line))
	}
	lines = append(lines, metaLine(a, inner, th))

	body := summary.Lines(a.Summary, inner, cardSummaryLines)
	for len(body) < cardSummaryLines {
		body = append(body, "")
	}
	for _, line := range body {
		lines = append(lines, th.CardSummary.Render(line))
	}

	style := th.Card
	if active {
		style = th.CardActive
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Grid lays cards out in rows of columns.
func Grid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	rows := make([]string, 0, (len(cards)+columns-1)/columns)
	for i := 0; i < len(cards); i += columns {
		end := min(i+columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func metaLine(a news.Article, width int, th tuitheme.Theme) string {
	parts := make([]string, 0, 2)
	if label := a.CategoryLabel(); label != "" {
		parts = append(parts, th.CategoryTag(label))
	}
	if date := a.DateLabel(); date != "" {
		parts = append(parts, th.CardDate.Render(date))
	}
	return ansi.Truncate(strings.Join(parts, " "), width, "…")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
