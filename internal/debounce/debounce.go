// Package debounce coalesces bursts of events into one trailing action on the
// Bubble Tea event loop.
//
// Each Trigger schedules a FiredMsg tagged with a new generation. Only the
// message carrying the latest generation is accepted by Fired, so earlier
// pending firings are effectively canceled and the last event wins.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a debounce delay elapses.
type FiredMsg struct {
	ID  string
	Gen int
}

// Debouncer is a value type; store it in the model and call its pointer
// methods from Update.
type Debouncer struct {
	id    string
	delay time.Duration
	gen   int
}

func New(id string, delay time.Duration) Debouncer {
	return Debouncer{id: id, delay: delay}
}

// Trigger supersedes any pending firing and schedules a new one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.gen++
	msg := FiredMsg{ID: d.id, Gen: d.gen}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel drops any pending firing.
func (d *Debouncer) Cancel() {
	d.gen++
}

// Fired reports whether msg is the current firing of this debouncer.
func (d Debouncer) Fired(msg FiredMsg) bool {
	return msg.ID == d.id && msg.Gen == d.gen
}

// Current is the message that Fired would accept right now.
func (d Debouncer) Current() FiredMsg {
	return FiredMsg{ID: d.id, Gen: d.gen}
}

func (d Debouncer) Delay() time.Duration {
	return d.delay
}
