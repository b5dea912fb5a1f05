// Package ticker builds the headline marquee: two identical blocks of joined
// headlines scrolled left by exactly one block width per loop, with a loop
// duration proportional to the measured block width so the apparent speed
// stays constant however long the headlines are.
package ticker

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/headline-cli/internal/news"
)

const (
	Separator   = " • "
	Placeholder = "Stay tuned for the latest news"
)

// HeadlineItem is one entry of the marquee.
type HeadlineItem struct {
	Text   string
	Target string
}

// NewItem trims text and substitutes "Untitled" for an empty one.
func NewItem(text, target string) HeadlineItem {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		text = "Untitled"
	}
	return HeadlineItem{Text: text, Target: strings.TrimSpace(target)}
}

// HeadlinesFrom takes the fixed positional window [start, end) of articles,
// clamped to the collection, and turns it into marquee items.
func HeadlinesFrom(articles []news.Article, start, end int, baseURL string) []HeadlineItem {
	start = max(0, min(start, len(articles)))
	end = max(start, min(end, len(articles)))
	items := make([]HeadlineItem, 0, end-start)
	for _, a := range articles[start:end] {
		items = append(items, NewItem(a.Title, a.URL(baseURL)))
	}
	return items
}

type Config struct {
	// Speed is in measured units (terminal columns by default) per second.
	Speed         float64
	MinDuration   time.Duration
	MinBlockWidth int
}

func DefaultConfig() Config {
	return Config{Speed: 12, MinDuration: 6 * time.Second, MinBlockWidth: 24}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Speed <= 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		c.Speed = def.Speed
	}
	if c.MinDuration <= 0 {
		c.MinDuration = def.MinDuration
	}
	if c.MinBlockWidth < 1 {
		c.MinBlockWidth = 1
	}
	return c
}

// LoopDuration is max(minDuration, round(blockWidth/speed) seconds).
func LoopDuration(blockWidth int, speed float64, minDuration time.Duration) time.Duration {
	if speed <= 0 {
		return minDuration
	}
	secs := math.Round(float64(max(0, blockWidth)) / speed)
	d := time.Duration(secs) * time.Second
	if d < minDuration {
		return minDuration
	}
	return d
}

// Measurer reports the rendered width of one block.
type Measurer interface {
	Measure(block string) int
}

// CellMeasurer measures terminal cells, ignoring escape sequences.
type CellMeasurer struct{}

func (CellMeasurer) Measure(block string) int {
	return ansi.StringWidth(block)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(block string) int

func (f MeasureFunc) Measure(block string) int {
	return f(block)
}
