package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Section    lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	ActiveLine lipgloss.Style

	Ticker      lipgloss.Style
	TickerLabel lipgloss.Style

	HeroBorder   lipgloss.Style
	HeroActive   lipgloss.Style
	HeroTitle    lipgloss.Style
	Card         lipgloss.Style
	CardActive   lipgloss.Style
	CardTitle    lipgloss.Style
	CardSummary  lipgloss.Style
	CardDate     lipgloss.Style
	ImageLabel   lipgloss.Style
	categoryTags []lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpSky := lipgloss.Color("#89dceb")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay0 := lipgloss.Color("#6c7086")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface2 := lipgloss.Color("#585b70")
	cpCrust := lipgloss.Color("#11111b")

	tag := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(cpCrust).Background(c).Padding(0, 1)
	}

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),

		Ticker:      lipgloss.NewStyle().Foreground(cpText).Background(cpSurface0),
		TickerLabel: lipgloss.NewStyle().Bold(true).Foreground(cpCrust).Background(cpRed).Padding(0, 1),

		HeroBorder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(cpMauve).Padding(0, 1),
		HeroActive: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(cpLavender).Padding(0, 1),
		HeroTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cpSurface2).Padding(0, 1),
		CardActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cpLavender).Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpLavender),
		CardSummary: lipgloss.NewStyle().
			Foreground(cpSubtext0),
		CardDate:   lipgloss.NewStyle().Foreground(cpOverlay0).Italic(true),
		ImageLabel: lipgloss.NewStyle().Foreground(cpMauve).Faint(true).Italic(true),
		categoryTags: []lipgloss.Style{
			tag(cpBlue), tag(cpGreen), tag(cpPeach), tag(cpYellow), tag(cpSky), tag(cpMauve),
		},
	}
}

// CategoryTag renders label in a colour picked from the category name, so
// the same category always gets the same colour.
func (t Theme) CategoryTag(label string) string {
	label = strings.TrimSpace(label)
	if label == "" || len(t.categoryTags) == 0 {
		return ""
	}
	sum := 0
	for _, r := range strings.ToUpper(label) {
		sum += int(r)
	}
	return t.categoryTags[sum%len(t.categoryTags)].Render(label)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
