package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/headline-cli/internal/app"
	"github.com/glabrego/headline-cli/internal/debounce"
	"github.com/glabrego/headline-cli/internal/logging"
	"github.com/glabrego/headline-cli/internal/news"
	"github.com/glabrego/headline-cli/internal/share"
	"github.com/glabrego/headline-cli/internal/ticker"
	tuiactions "github.com/glabrego/headline-cli/internal/tui/actions"
	"github.com/glabrego/headline-cli/internal/tui/platform"
	tuistate "github.com/glabrego/headline-cli/internal/tui/state"
	tuitheme "github.com/glabrego/headline-cli/internal/tui/theme"
)

const (
	searchDebounceID = "search"
	searchDelay      = 300 * time.Millisecond
	frameInterval    = 80 * time.Millisecond
	statusTTL        = 3 * time.Second
)

type Service = tuiactions.Service

type clearStatusMsg struct {
	id int
}

type frameTickMsg time.Time

// Options carries the settings the model needs from configuration.
type Options struct {
	BaseURL       string
	PageSize      int
	TickerStart   int
	TickerEnd     int
	Ticker        ticker.Config
	ShareEncoding share.Encoding
	// Now overrides the clock used for the ticker animation.
	Now func() time.Time
	// Measurer overrides how ticker blocks are measured.
	Measurer ticker.Measurer
}

type Model struct {
	service Service
	opts    Options
	theme   tuitheme.Theme
	keys    keyMap

	paging tuistate.Paging
	cursor int

	engine *ticker.Engine
	nowFn  func() time.Time

	search         textinput.Model
	searching      bool
	searchDebounce debounce.Debouncer

	spinner spinner.Model
	sinks   tuiactions.Sinks

	width    int
	height   int
	loading  bool
	loaded   bool
	source   app.Source
	warning  string
	status   string
	statusID int
	err      error
}

func NewModel(service Service, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Measurer == nil {
		opts.Measurer = ticker.CellMeasurer{}
	}
	if opts.ShareEncoding == "" {
		opts.ShareEncoding = share.EncodingPercent
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search headlines"
	search.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	engine := ticker.NewEngine(ticker.NewTrack(opts.Measurer, opts.Now), opts.Ticker)
	engine.OnContentChanged(nil)

	return Model{
		service:        service,
		opts:           opts,
		theme:          tuitheme.Default(),
		keys:           defaultKeyMap(),
		paging:         tuistate.NewPaging(opts.PageSize),
		engine:         engine,
		nowFn:          opts.Now,
		search:         search,
		searchDebounce: debounce.New(searchDebounceID, searchDelay),
		spinner:        sp,
		sinks: tuiactions.Sinks{
			Open:     platform.OpenInBrowser,
			Copy:     platform.CopyToClipboard,
			Encoding: opts.ShareEncoding,
		},
		loading: service != nil,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameTick()}
	if m.service != nil {
		cmds = append(cmds,
			tuiactions.LoadCachedCmd(m.service),
			tuiactions.LoadCmd(m.service, "startup"),
			m.spinner.Tick,
		)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, msg.Width-4)
		return m, m.engine.OnResize()
	case debounce.FiredMsg:
		if msg.ID == searchDebounceID {
			if m.searchDebounce.Fired(msg) {
				m.applySearch(m.search.Value())
			}
			return m, nil
		}
		m.engine.HandleFired(msg)
		return m, nil
	case frameTickMsg:
		return m, frameTick()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	case tuiactions.CacheLoadedMsg:
		if m.loaded || len(msg.Articles) == 0 {
			return m, nil
		}
		m.source = app.SourceCache
		m.applyArticles(msg.Articles)
		return m, nil
	case tuiactions.CacheErrorMsg:
		logging.Warn("cache read failed", "err", msg.Err)
		return m, nil
	case tuiactions.LoadSuccessMsg:
		m.loading = false
		m.loaded = true
		m.err = nil
		m.source = msg.Result.Source
		m.applyArticles(msg.Result.Articles)
		m.warning = ""
		if msg.Result.FetchErr != nil {
			m.warning = fallbackWarning(msg.Result)
			return m, nil
		}
		return m.setStatus(fmt.Sprintf("Loaded %d articles in %s", len(msg.Result.Articles), msg.Duration.Round(time.Millisecond)))
	case tuiactions.LoadErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.warning = "Load failed: " + msg.Err.Error()
		return m, nil
	case tuiactions.LoadBusyMsg:
		return m, nil
	case tuiactions.ActionSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status)
	case tuiactions.ActionErrorMsg:
		m.err = msg.Err
		return m.setStatus("Error: " + msg.Err.Error())
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, network := range share.Networks {
		if key.Matches(msg, m.keys.Share[network]) {
			return m.interact(tuiactions.InteractShare, network)
		}
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageStep())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageStep())
	case key.Matches(msg, m.keys.Open):
		return m.interact(tuiactions.InteractNavigate, "")
	case key.Matches(msg, m.keys.Copy):
		return m.interact(tuiactions.InteractCopyLink, "")
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Clear), key.Matches(msg, m.keys.Home):
		m.searchDebounce.Cancel()
		m.search.SetValue("")
		m.paging.Reset()
		m.cursor = 0
	case key.Matches(msg, m.keys.More):
		if !m.paging.LoadMore() {
			return m.setStatus("No more articles")
		}
	case key.Matches(msg, m.keys.Collapse):
		m.paging.Collapse()
		m.clampCursor()
	case key.Matches(msg, m.keys.Reload):
		if m.service == nil || m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(tuiactions.LoadCmd(m.service, "manual"), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		m.searchDebounce.Cancel()
		m.applySearch(m.search.Value())
		return m, nil
	case "ctrl+l":
		m.search.SetValue("")
		m.searchDebounce.Cancel()
		m.applySearch("")
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.searchDebounce.Trigger())
}

func (m *Model) applySearch(query string) {
	m.paging.Search(query)
	m.cursor = 0
}

// applyArticles installs a new collection and refreshes the ticker from the
// configured slice of the unfiltered articles.
func (m *Model) applyArticles(all []news.Article) {
	m.paging.SetArticles(all)
	m.clampCursor()
	m.engine.OnContentChanged(ticker.HeadlinesFrom(all, m.opts.TickerStart, m.opts.TickerEnd, m.opts.BaseURL))
}

// selectable is the hero plus the visible grid cards.
func (m Model) selectable() int {
	if _, ok := m.paging.Featured(); !ok {
		return 0
	}
	return 1 + len(m.paging.Visible())
}

func (m Model) selected() (news.Article, bool) {
	if m.cursor == 0 {
		return m.paging.Featured()
	}
	visible := m.paging.Visible()
	if m.cursor-1 < len(visible) {
		return visible[m.cursor-1], true
	}
	return news.Article{}, false
}

func (m *Model) moveCursor(delta int) {
	m.cursor = tuistate.ClampCursor(m.cursor+delta, m.selectable())
}

func (m *Model) clampCursor() {
	m.cursor = tuistate.ClampCursor(m.cursor, m.selectable())
}

func (m Model) pageStep() int {
	rows := tuistate.PageStep(m.height, m.status != "" || m.warning != "") / cardRowHeight()
	return max(1, rows) * m.columns()
}

// interact resolves the selected article into an Interaction of kind.
func (m Model) interact(kind tuiactions.InteractionKind, network share.Network) (tea.Model, tea.Cmd) {
	article, ok := m.selected()
	if !ok {
		return m, nil
	}
	return m, m.dispatch(tuiactions.Interaction{
		Kind:    kind,
		Target:  article.URL(m.opts.BaseURL),
		Title:   article.DisplayTitle(),
		Network: network,
	})
}

func (m Model) dispatch(in tuiactions.Interaction) tea.Cmd {
	logging.Debug("interaction", "kind", in.Kind, "target", in.Target, "network", in.Network)
	return tuiactions.Dispatch(in, m.sinks)
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, statusTTL)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func fallbackWarning(result app.LoadResult) string {
	switch result.Source {
	case app.SourceCache:
		return fmt.Sprintf("Feed unavailable, showing %d cached articles", len(result.Articles))
	default:
		return "Feed unavailable and nothing cached yet"
	}
}
