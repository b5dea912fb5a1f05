package ticker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/headline-cli/internal/debounce"
	"github.com/glabrego/headline-cli/internal/logging"
)

// ResizeDelay is the quiet period after the last resize before re-measuring.
const ResizeDelay = 250 * time.Millisecond

// Engine keeps the current items of a track and re-synchronizes the track
// when content changes or the viewport is resized.
type Engine struct {
	track    *Track
	cfg      Config
	items    []HeadlineItem
	resize   debounce.Debouncer
	rebuilds int
}

func NewEngine(track *Track, cfg Config) *Engine {
	return &Engine{
		track:  track,
		cfg:    cfg,
		resize: debounce.New("ticker-resize", ResizeDelay),
	}
}

func (e *Engine) Track() *Track {
	return e.track
}

// OnContentChanged rebuilds the track from scratch with items.
func (e *Engine) OnContentChanged(items []HeadlineItem) {
	e.items = append([]HeadlineItem(nil), items...)
	e.rebuild()
}

// OnResize schedules a debounced rebuild with the current items.
func (e *Engine) OnResize() tea.Cmd {
	return e.resize.Trigger()
}

// HandleFired rebuilds when msg is the latest resize firing and reports
// whether it did.
func (e *Engine) HandleFired(msg debounce.FiredMsg) bool {
	if !e.resize.Fired(msg) {
		return false
	}
	e.rebuild()
	return true
}

// Rebuilds counts completed rebuilds.
func (e *Engine) Rebuilds() int {
	return e.rebuilds
}

func (e *Engine) rebuild() {
	if e.track == nil {
		return
	}
	Rebuild(e.track, e.items, e.cfg)
	e.rebuilds++
	p := e.track.Params()
	logging.Debug("ticker rebuilt", "items", len(e.items), "block_width", p.BlockWidth, "duration", p.Duration)
}
