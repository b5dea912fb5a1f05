package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/headline-cli/internal/tui/theme"
)

// TickerLabel prefixes the scrolling headline row.
const TickerLabel = "LATEST"

func Toolbar(searching bool) string {
	if searching {
		return "type to filter | enter/esc: done | ctrl+l: clear"
	}
	return "←/→ move | enter open | / search | n more | c collapse | h home | X/F/W/T share | y copy | r refresh | q quit"
}

type FooterInput struct {
	Query   string
	Page    int
	Shown   int
	Total   int
	HasMore bool
	Source  string
}

func Footer(in FooterInput, th tuitheme.Theme) string {
	mode := "all"
	if in.Query != "" {
		mode = "search"
	}
	parts := []string{
		th.MetaLabel.Render("mode") + " " + th.MetaValue.Render(mode),
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d", in.Page)),
		th.MetaValue.Render(fmt.Sprintf("%d of %d shown", in.Shown, in.Total)),
	}
	if in.Query != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q", in.Query)))
	}
	if in.HasMore {
		parts = append(parts, th.MetaValue.Render("n for more"))
	}
	if in.Source != "" && in.Source != "feed" {
		parts = append(parts, th.StateWarn.Render(in.Source))
	}
	return strings.Join(parts, " • ")
}

// Message is the status line: spinner while loading, then the toast, the
// warning or "Ready".
func Message(loading bool, spinner, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	label := th.StateIdle.Render("state")
	switch {
	case loading:
		state = "loading"
		label = th.StateLoad.Render("state")
	case warning != "":
		state = "warning"
		label = th.StateWarn.Render("state")
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if warning != "" {
		main = warning
	}
	if loading && spinner != "" {
		main = spinner + " " + main
	}
	return fmt.Sprintf("%s: %s | %s", label, state, th.MetaValue.Render(main))
}

// TickerPrefixWidth is the number of columns before the scrolling frame.
func TickerPrefixWidth(th tuitheme.Theme) int {
	return ansi.StringWidth(th.TickerLabel.Render(TickerLabel)) + 1
}

// TickerRow renders the label followed by frame, which must already be cut
// to the remaining width.
func TickerRow(frame string, th tuitheme.Theme) string {
	return th.TickerLabel.Render(TickerLabel) + " " + th.Ticker.Render(frame)
}

// EmptyState is shown when there is nothing to list.
func EmptyState(query string) string {
	if query != "" {
		return fmt.Sprintf("No articles match %q. Press ctrl+l to clear the search.", query)
	}
	return "No articles available right now. Press r to try again."
}
