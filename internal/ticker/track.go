package ticker

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// AnimationParams is what the renderer needs to drive the loop: translate
// from 0 to -BlockWidth over Duration, then start over.
type AnimationParams struct {
	BlockWidth int
	Duration   time.Duration
}

type span struct {
	start, end int
	item       int
}

// Track is the container the marquee is rendered into.
type Track struct {
	measurer Measurer
	now      func() time.Time

	items  []HeadlineItem
	blocks [2]string
	spans  []span
	params AnimationParams

	epoch    time.Time
	running  bool
	hidden   bool
	restarts int
}

func NewTrack(measurer Measurer, now func() time.Time) *Track {
	if measurer == nil {
		measurer = CellMeasurer{}
	}
	if now == nil {
		now = time.Now
	}
	return &Track{measurer: measurer, now: now}
}

// Rebuild replaces the track content with two identical blocks of items,
// measures one block, publishes new animation parameters and restarts the
// loop from offset 0. A nil track is a no-op.
func Rebuild(t *Track, items []HeadlineItem, cfg Config) {
	if t == nil {
		return
	}
	cfg = cfg.withDefaults()
	if len(items) == 0 {
		items = []HeadlineItem{{Text: Placeholder}}
	}

	block, spans := buildBlock(items)

	t.items = append([]HeadlineItem(nil), items...)
	t.blocks = [2]string{}
	t.spans = nil

	// Measure with painting suppressed; geometry is unaffected.
	wasHidden := t.hidden
	t.hidden = true
	width := t.measurer.Measure(block)
	t.hidden = wasHidden

	if width < cfg.MinBlockWidth {
		if natural := ansi.StringWidth(block); natural < cfg.MinBlockWidth {
			block += strings.Repeat(" ", cfg.MinBlockWidth-natural)
		}
		width = cfg.MinBlockWidth
	}

	t.blocks = [2]string{block, block}
	t.spans = spans
	t.params = AnimationParams{
		BlockWidth: width,
		Duration:   LoopDuration(width, cfg.Speed, cfg.MinDuration),
	}
	t.restart()
}

func buildBlock(items []HeadlineItem) (string, []span) {
	var b strings.Builder
	spans := make([]span, 0, len(items))
	pos := 0
	sepWidth := ansi.StringWidth(Separator)
	for i, item := range items {
		w := ansi.StringWidth(item.Text)
		spans = append(spans, span{start: pos, end: pos + w, item: i})
		b.WriteString(item.Text)
		b.WriteString(Separator)
		pos += w + sepWidth
	}
	return b.String(), spans
}

// restart stops the loop, resets its clock and starts it again so the next
// frame uses the new parameters from offset 0.
func (t *Track) restart() {
	t.running = false
	t.epoch = t.now()
	t.running = true
	t.restarts++
}

func (t *Track) Params() AnimationParams {
	if t == nil {
		return AnimationParams{}
	}
	return t.params
}

func (t *Track) Items() []HeadlineItem {
	if t == nil {
		return nil
	}
	return append([]HeadlineItem(nil), t.items...)
}

// Blocks returns the two rendered blocks.
func (t *Track) Blocks() [2]string {
	if t == nil {
		return [2]string{}
	}
	return t.blocks
}

// Restarts counts how many times the loop has been restarted.
func (t *Track) Restarts() int {
	if t == nil {
		return 0
	}
	return t.restarts
}

func (t *Track) Running() bool {
	return t != nil && t.running
}

func (t *Track) SetHidden(hidden bool) {
	if t != nil {
		t.hidden = hidden
	}
}

func (t *Track) Hidden() bool {
	return t != nil && t.hidden
}

// Offset is the current translation in columns, in [0, BlockWidth).
func (t *Track) Offset(now time.Time) int {
	if t == nil || !t.running || t.params.BlockWidth <= 0 || t.params.Duration <= 0 {
		return 0
	}
	elapsed := now.Sub(t.epoch)
	if elapsed < 0 {
		return 0
	}
	phase := elapsed % t.params.Duration
	offset := int(float64(phase) / float64(t.params.Duration) * float64(t.params.BlockWidth))
	if offset >= t.params.BlockWidth {
		offset = t.params.BlockWidth - 1
	}
	return offset
}

// Frame renders width columns of the strip as seen at now.
func (t *Track) Frame(now time.Time, width int) string {
	if t == nil || width <= 0 {
		return ""
	}
	if t.hidden || t.blocks[0] == "" {
		return strings.Repeat(" ", width)
	}
	blockWidth := ansi.StringWidth(t.blocks[0])
	if blockWidth <= 0 {
		return strings.Repeat(" ", width)
	}

	offset := t.Offset(now)
	// Two blocks suffice for a view narrower than one block; wider views
	// keep tiling the same block so the seam never shows.
	copies := 2
	for copies*blockWidth < offset+width {
		copies++
	}
	strip := strings.Repeat(t.blocks[0], copies)
	frame := ansi.Cut(strip, offset, offset+width)
	if w := ansi.StringWidth(frame); w < width {
		frame += strings.Repeat(" ", width-w)
	}
	return frame
}

// ItemAt resolves the item under viewport column col at now.
func (t *Track) ItemAt(now time.Time, col int) (HeadlineItem, bool) {
	if t == nil || col < 0 || len(t.spans) == 0 {
		return HeadlineItem{}, false
	}
	blockWidth := ansi.StringWidth(t.blocks[0])
	if blockWidth <= 0 {
		return HeadlineItem{}, false
	}
	pos := (t.Offset(now) + col) % blockWidth
	for _, s := range t.spans {
		if pos >= s.start && pos < s.end {
			return t.items[s.item], true
		}
	}
	return HeadlineItem{}, false
}
