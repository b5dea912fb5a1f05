package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tuiactions "github.com/glabrego/headline-cli/internal/tui/actions"
	tuistate "github.com/glabrego/headline-cli/internal/tui/state"
	"github.com/glabrego/headline-cli/internal/tui/view"
)

const (
	tickerRow    = 1
	bodyTop      = 5
	chromeHeight = bodyTop + 3
	defaultWidth = 80
)

func cardRowHeight() int {
	return view.CardHeight
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) columns() int {
	return view.Columns(m.contentWidth())
}

// bodyLayout is the rendered hero and grid plus where each part sits.
type bodyLayout struct {
	lines      []string
	heroHeight int
	gridTop    int
	columns    int
	cardWidth  int
	start, end int
}

func (m Model) layout() bodyLayout {
	width := m.contentWidth()
	featured, ok := m.paging.Featured()
	if !ok {
		return bodyLayout{}
	}

	hero := view.HeroCard(featured, width, m.cursor == 0, m.theme)
	l := bodyLayout{
		heroHeight: lipgloss.Height(hero),
		columns:    view.Columns(width),
	}
	l.cardWidth = view.CardWidth(width, l.columns)
	l.lines = strings.Split(hero, "\n")

	visible := m.paging.Visible()
	if len(visible) > 0 {
		cards := make([]string, len(visible))
		for i, a := range visible {
			cards[i] = view.Card(a, l.cardWidth, m.cursor == i+1, m.theme)
		}
		l.lines = append(l.lines, "")
		l.gridTop = len(l.lines)
		l.lines = append(l.lines, strings.Split(view.Grid(cards, l.columns), "\n")...)
	}

	focus := l.heroHeight / 2
	if m.cursor > 0 {
		row := (m.cursor - 1) / l.columns
		focus = l.gridTop + row*view.CardHeight + view.CardHeight/2
	}
	height := 0
	if m.height > 0 {
		height = max(3, m.height-chromeHeight)
	}
	l.start, l.end = tuistate.CenteredWindow(len(l.lines), focus, height)
	return l
}

// articleAt maps a body click to a selectable index, or -1.
func (l bodyLayout) articleAt(x, y int, cards int) int {
	line := l.start + y - bodyTop
	if y < bodyTop || line < 0 || line >= l.end {
		return -1
	}
	if line < l.heroHeight {
		return 0
	}
	if l.gridTop == 0 || line < l.gridTop || l.cardWidth <= 0 {
		return -1
	}
	row := (line - l.gridTop) / view.CardHeight
	col := x / l.cardWidth
	if col >= l.columns {
		return -1
	}
	idx := row*l.columns + col
	if idx >= cards {
		return -1
	}
	return idx + 1
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.columns())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.columns())
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Ticker activations navigate and stop here.
	if msg.Y == tickerRow {
		col := msg.X - view.TickerPrefixWidth(m.theme)
		item, ok := m.engine.Track().ItemAt(m.nowFn(), col)
		if !ok || item.Target == "" {
			return m, nil
		}
		return m, m.dispatch(tuiactions.Interaction{
			Kind:   tuiactions.InteractNavigate,
			Target: item.Target,
			Title:  item.Text,
		})
	}

	idx := m.layout().articleAt(msg.X, msg.Y, len(m.paging.Visible()))
	if idx < 0 {
		return m, nil
	}
	m.cursor = idx
	return m.interact(tuiactions.InteractNavigate, "")
}

func (m Model) View() string {
	th := m.theme
	width := m.contentWidth()
	var b strings.Builder

	mode := m.paging.Mode().String()
	b.WriteString(th.Title.Render("Headline") + " " + th.ModePill.Render(mode))
	b.WriteString("\n")

	frameWidth := max(0, width-view.TickerPrefixWidth(th))
	b.WriteString(view.TickerRow(m.engine.Track().Frame(m.nowFn(), frameWidth), th))
	b.WriteString("\n")

	b.WriteString(view.Toolbar(m.searching))
	b.WriteString("\n")
	if m.searching || m.paging.Query() != "" {
		b.WriteString(m.search.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && m.paging.SourceTotal() == 0:
		b.WriteString(m.spinner.View() + " Loading articles...\n")
	case m.selectable() == 0:
		b.WriteString(view.EmptyState(m.paging.Query()))
		b.WriteString("\n")
	default:
		l := m.layout()
		b.WriteString(strings.Join(l.lines[l.start:l.end], "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(view.Message(m.loading, m.spinner.View(), m.status, m.warning, th))
	b.WriteString("\n")
	b.WriteString(view.Footer(view.FooterInput{
		Query:   m.paging.Query(),
		Page:    m.paging.Page(),
		Shown:   len(m.paging.Visible()),
		Total:   max(0, m.paging.Total()-1),
		HasMore: m.paging.HasMore(),
		Source:  string(m.source),
	}, th))
	b.WriteString("\n")
	return b.String()
}
