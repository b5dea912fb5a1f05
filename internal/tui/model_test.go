package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/headline-cli/internal/app"
	"github.com/glabrego/headline-cli/internal/news"
	"github.com/glabrego/headline-cli/internal/share"
	"github.com/glabrego/headline-cli/internal/ticker"
	tuiactions "github.com/glabrego/headline-cli/internal/tui/actions"
	"github.com/glabrego/headline-cli/internal/tui/view"
)

const baseURL = "https://news.example/"

type fakeService struct {
	result app.LoadResult
	err    error
	cached []news.Article
}

func (f fakeService) Load(context.Context) (app.LoadResult, error) {
	return f.result, f.err
}

func (f fakeService) ListCached(context.Context) ([]news.Article, error) {
	return f.cached, nil
}

type sinkRecorder struct {
	opened []string
	copied []string
}

func numbered(n int) []news.Article {
	out := make([]news.Article, n)
	for i := range out {
		out[i] = news.Article{
			Title:    fmt.Sprintf("Story %02d", i),
			Summary:  fmt.Sprintf("Summary of story %02d", i),
			Category: "world",
			Filename: fmt.Sprintf("story-%02d.html", i),
		}
	}
	return out
}

func newTestModel(t *testing.T, svc Service) (Model, *sinkRecorder) {
	t.Helper()
	now := time.Date(2026, 2, 11, 16, 0, 0, 0, time.UTC)
	m := NewModel(svc, Options{
		BaseURL:       baseURL,
		PageSize:      12,
		TickerStart:   13,
		TickerEnd:     24,
		Ticker:        ticker.DefaultConfig(),
		ShareEncoding: share.EncodingPercent,
		Now:           func() time.Time { return now },
	})
	rec := &sinkRecorder{}
	m.sinks.Open = func(s string) error {
		rec.opened = append(rec.opened, s)
		return nil
	}
	m.sinks.Copy = func(s string) error {
		rec.copied = append(rec.copied, s)
		return nil
	}
	return m, rec
}

func loaded(t *testing.T, articles []news.Article) (Model, *sinkRecorder) {
	t.Helper()
	m, rec := newTestModel(t, fakeService{})
	updated, _ := m.Update(tuiactions.LoadSuccessMsg{
		Result: app.LoadResult{Articles: articles, Source: app.SourceFeed},
		Source: "startup",
	})
	return updated.(Model), rec
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModel_InitialTickerShowsPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if got := ansi.Strip(m.View()); !strings.Contains(got, ticker.Placeholder) {
		t.Fatalf("expected placeholder in ticker row, got:\n%s", got)
	}
}

func TestModel_LoadPopulatesHeroGridAndTicker(t *testing.T) {
	m, _ := loaded(t, numbered(30))

	if m.loading {
		t.Fatal("expected loading to stop")
	}
	items := m.engine.Track().Items()
	if len(items) != 11 || items[0].Text != "Story 13" || items[10].Text != "Story 23" {
		t.Fatalf("unexpected ticker items: %+v", items)
	}
	if items[0].Target != baseURL+"articles/story-13.html" {
		t.Fatalf("unexpected ticker target: %q", items[0].Target)
	}

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if !strings.Contains(lines[tickerRow], "Story 13 • Story 14") {
		t.Fatalf("expected ticker row to start at Story 13, got %q", lines[tickerRow])
	}
	body := strings.Join(lines[bodyTop:], "\n")
	for _, want := range []string{"Story 00", "Story 01", "Story 12"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body, got:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Story 13") {
		t.Fatalf("expected grid to stop at the first page, got:\n%s", body)
	}
}

func TestModel_SearchIsDebouncedAndResetsPage(t *testing.T) {
	articles := numbered(30)
	articles[0].Title = "Delhi Air Quality Hits Severe"
	articles[20].Summary = "Smog returns to delhi"
	m, _ := loaded(t, articles)

	m, _ = press(t, m, "n")
	if m.paging.Page() != 2 {
		t.Fatalf("expected page 2, got %d", m.paging.Page())
	}

	m, _ = press(t, m, "/", "d")
	stale := m.searchDebounce.Current()
	m, _ = press(t, m, "e", "l", "h", "i")
	if m.paging.Query() != "" {
		t.Fatalf("expected query to wait for the debounce, got %q", m.paging.Query())
	}

	updated, _ := m.Update(stale)
	m = updated.(Model)
	if m.paging.Query() != "" {
		t.Fatalf("expected stale firing to be ignored, got %q", m.paging.Query())
	}

	updated, _ = m.Update(m.searchDebounce.Current())
	m = updated.(Model)
	if m.paging.Query() != "delhi" || m.paging.Page() != 1 || m.paging.Total() != 2 {
		t.Fatalf("unexpected search state: query=%q page=%d total=%d", m.paging.Query(), m.paging.Page(), m.paging.Total())
	}
	featured, _ := m.paging.Featured()
	if featured.Title != "Delhi Air Quality Hits Severe" {
		t.Fatalf("unexpected featured article: %+v", featured)
	}
}

func TestModel_EnterAppliesSearchImmediately(t *testing.T) {
	articles := numbered(5)
	articles[3].Title = "Global Climate Summit Ends"
	m, _ := loaded(t, articles)

	m, _ = press(t, m, "/", "s", "u", "m", "m", "i", "t")
	pending := m.searchDebounce.Current()
	m, _ = press(t, m, "enter")
	if m.searching {
		t.Fatal("expected search input to close")
	}
	if m.paging.Query() != "summit" || m.paging.Total() != 1 {
		t.Fatalf("unexpected search state: query=%q total=%d", m.paging.Query(), m.paging.Total())
	}

	m.search.SetValue("other")
	updated, _ := m.Update(pending)
	if updated.(Model).paging.Query() != "summit" {
		t.Fatal("expected the pending firing to be canceled by enter")
	}
	m.search.SetValue("summit")

	m, _ = press(t, m, "h")
	if m.paging.Mode().String() != "idle" || m.paging.Total() != 5 {
		t.Fatalf("expected home to reset the search, got mode=%s total=%d", m.paging.Mode(), m.paging.Total())
	}
}

func TestModel_LoadMoreAndCollapse(t *testing.T) {
	m, _ := loaded(t, numbered(30))

	m, _ = press(t, m, "n")
	if got := len(m.paging.Visible()); got != 24 {
		t.Fatalf("expected 24 grid cards after load more, got %d", got)
	}
	for i := 0; i < 20; i++ {
		m, _ = press(t, m, "right")
	}
	if m.cursor != 20 {
		t.Fatalf("expected cursor 20, got %d", m.cursor)
	}

	m, _ = press(t, m, "c")
	if got := len(m.paging.Visible()); got != 12 {
		t.Fatalf("expected 12 grid cards after collapse, got %d", got)
	}
	if m.cursor != 12 {
		t.Fatalf("expected cursor clamped to last card, got %d", m.cursor)
	}

	m, _ = press(t, m, "n", "n", "n")
	if m.paging.HasMore() {
		t.Fatal("expected all articles revealed")
	}
	if m.status != "No more articles" {
		t.Fatalf("expected end-of-list status, got %q", m.status)
	}
}

func TestModel_TickerClickNavigatesWithoutOpeningCard(t *testing.T) {
	m, rec := loaded(t, numbered(30))
	prefix := view.TickerPrefixWidth(m.theme)

	updated, cmd := m.Update(click(prefix+2, tickerRow))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(tuiactions.ActionSuccessMsg); !ok {
		t.Fatal("expected navigation to succeed")
	}
	if len(rec.opened) != 1 || rec.opened[0] != baseURL+"articles/story-13.html" {
		t.Fatalf("unexpected navigation: %v", rec.opened)
	}
	if updated.(Model).cursor != 0 {
		t.Fatalf("ticker click must not select a card, cursor=%d", updated.(Model).cursor)
	}

	// The separator between headlines is not a link.
	if _, cmd := m.Update(click(prefix+len("Story 13")+1, tickerRow)); cmd != nil {
		t.Fatal("expected no command for a click on the separator")
	}
}

func TestModel_CardClickOpensArticle(t *testing.T) {
	m, rec := loaded(t, numbered(3))

	_, cmd := m.Update(click(4, bodyTop+1))
	if cmd == nil {
		t.Fatal("expected a navigation command for the hero")
	}
	cmd()
	if len(rec.opened) != 1 || rec.opened[0] != baseURL+"articles/story-00.html" {
		t.Fatalf("unexpected navigation: %v", rec.opened)
	}
}

func TestModel_ResizeBurstRebuildsOnce(t *testing.T) {
	m, _ := loaded(t, numbered(30))
	before := m.engine.Rebuilds()

	var cmds []tea.Cmd
	for _, w := range []int{60, 70, 90} {
		updated, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: 40})
		m = updated.(Model)
		cmds = append(cmds, cmd)
	}
	for _, cmd := range cmds {
		updated, _ := m.Update(cmd())
		m = updated.(Model)
	}

	if got := m.engine.Rebuilds() - before; got != 1 {
		t.Fatalf("expected one rebuild after a resize burst, got %d", got)
	}
	if items := m.engine.Track().Items(); len(items) != 11 {
		t.Fatalf("expected resize to keep ticker items, got %d", len(items))
	}
}

func TestModel_FetchFailureShowsEmptyState(t *testing.T) {
	m, _ := newTestModel(t, fakeService{})
	updated, _ := m.Update(tuiactions.LoadSuccessMsg{Result: app.LoadResult{
		Articles: []news.Article{},
		Source:   app.SourceEmpty,
		FetchErr: errors.New("offline"),
	}})
	m = updated.(Model)

	got := ansi.Strip(m.View())
	for _, want := range []string{"No articles available", "Feed unavailable", ticker.Placeholder} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, got)
		}
	}
}

func TestModel_CacheShownUntilFeedArrives(t *testing.T) {
	m, _ := newTestModel(t, fakeService{})

	updated, _ := m.Update(tuiactions.CacheLoadedMsg{Articles: numbered(3)})
	m = updated.(Model)
	if m.source != app.SourceCache || m.paging.Total() != 3 {
		t.Fatalf("expected cached articles, got source=%s total=%d", m.source, m.paging.Total())
	}

	updated, _ = m.Update(tuiactions.LoadSuccessMsg{Result: app.LoadResult{Articles: numbered(5), Source: app.SourceFeed}})
	m = updated.(Model)
	updated, _ = m.Update(tuiactions.CacheLoadedMsg{Articles: numbered(2)})
	m = updated.(Model)
	if m.source != app.SourceFeed || m.paging.Total() != 5 {
		t.Fatalf("expected feed articles to win, got source=%s total=%d", m.source, m.paging.Total())
	}
}

func TestModel_ReloadIgnoredWhileLoading(t *testing.T) {
	m, _ := newTestModel(t, fakeService{})
	if _, cmd := press(t, m, "r"); cmd != nil {
		t.Fatal("expected no reload while the first load is in flight")
	}

	updated, _ := m.Update(tuiactions.LoadSuccessMsg{Result: app.LoadResult{Articles: numbered(2), Source: app.SourceFeed}})
	m = updated.(Model)
	m, cmd := press(t, m, "r")
	if cmd == nil || !m.loading {
		t.Fatal("expected reload to start")
	}
}

func TestModel_ShareAndCopyKeys(t *testing.T) {
	m, rec := loaded(t, numbered(2))

	_, cmd := press(t, m, "W")
	msg, ok := cmd().(tuiactions.ActionSuccessMsg)
	if !ok || msg.Status != "Shared on WhatsApp" {
		t.Fatalf("unexpected share result: %#v", msg)
	}
	if len(rec.opened) != 1 || !strings.HasPrefix(rec.opened[0], "https://wa.me/?text=Story%2000%20-%20") {
		t.Fatalf("unexpected share intent: %v", rec.opened)
	}

	_, cmd = press(t, m, "y")
	cmd()
	if len(rec.copied) != 1 || rec.copied[0] != baseURL+"articles/story-00.html" {
		t.Fatalf("unexpected copied link: %v", rec.copied)
	}
}

func TestModel_StatusToastClears(t *testing.T) {
	m, _ := newTestModel(t, nil)

	updated, cmd := m.Update(tuiactions.ActionSuccessMsg{Status: "Link copied to clipboard"})
	if cmd == nil {
		t.Fatal("expected clear-status command")
	}
	m = updated.(Model)
	stale := clearStatusMsg{id: m.statusID - 1}
	updated, _ = m.Update(stale)
	if updated.(Model).status == "" {
		t.Fatal("expected stale clear to be ignored")
	}
	updated, _ = m.Update(clearStatusMsg{id: m.statusID})
	if updated.(Model).status != "" {
		t.Fatal("expected status to clear")
	}
}

func TestModel_HandlesAllActionMessageTypes(t *testing.T) {
	m, _ := loaded(t, numbered(3))
	msgs := []tea.Msg{
		tuiactions.LoadErrorMsg{Err: errors.New("boom"), Source: "manual"},
		tuiactions.LoadBusyMsg{},
		tuiactions.CacheErrorMsg{Err: errors.New("locked")},
		tuiactions.ActionErrorMsg{Err: errors.New("no browser")},
		frameTickMsg(time.Now()),
	}
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("expected Model after %T, got %T", msg, updated)
		}
		m = next
	}
	if m.err == nil || !strings.Contains(m.status, "no browser") {
		t.Fatalf("expected action error surfaced, got err=%v status=%q", m.err, m.status)
	}
}
