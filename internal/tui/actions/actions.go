package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/headline-cli/internal/app"
	"github.com/glabrego/headline-cli/internal/news"
	"github.com/glabrego/headline-cli/internal/share"
)

type Service interface {
	Load(ctx context.Context) (app.LoadResult, error)
	ListCached(ctx context.Context) ([]news.Article, error)
}

type LoadSuccessMsg struct {
	Result   app.LoadResult
	Duration time.Duration
	Source   string
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

// LoadBusyMsg reports that a load was requested while one was in flight.
type LoadBusyMsg struct{}

type CacheLoadedMsg struct {
	Articles []news.Article
}

type CacheErrorMsg struct {
	Err error
}

type ActionSuccessMsg struct {
	Status string
}

type ActionErrorMsg struct {
	Err error
}

// LoadCmd fetches the feed through service. source names what triggered the
// load ("startup", "manual") for the status line.
func LoadCmd(service Service, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		result, err := service.Load(ctx)
		if errors.Is(err, app.ErrBusy) {
			return LoadBusyMsg{}
		}
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return LoadSuccessMsg{Result: result, Duration: time.Since(start), Source: source}
	}
}

func LoadCachedCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		articles, err := service.ListCached(ctx)
		if err != nil {
			return CacheErrorMsg{Err: err}
		}
		return CacheLoadedMsg{Articles: articles}
	}
}

type InteractionKind int

const (
	InteractNavigate InteractionKind = iota + 1
	InteractShare
	InteractCopyLink
)

// Interaction is one resolved user activation: a card or ticker item opened,
// shared or copied.
type Interaction struct {
	Kind    InteractionKind
	Target  string
	Title   string
	Network share.Network
}

// Sinks are the side effects an Interaction may reach.
type Sinks struct {
	Open     func(string) error
	Copy     func(string) error
	Encoding share.Encoding
}

// Dispatch runs in against sinks. Failures to open fall back to copying the
// article link; the outcome is reported as a status message.
func Dispatch(in Interaction, sinks Sinks) tea.Cmd {
	return func() tea.Msg {
		if in.Target == "" {
			return ActionErrorMsg{Err: errors.New("article has no link")}
		}
		switch in.Kind {
		case InteractNavigate:
			if sinks.Open != nil {
				if err := sinks.Open(in.Target); err == nil {
					return ActionSuccessMsg{Status: "Opened article in browser"}
				}
			}
			return copyFallback(in.Target, sinks, "Could not open browser, link copied to clipboard")
		case InteractShare:
			intent, err := share.IntentURL(in.Network, in.Title, in.Target, sinks.Encoding)
			if err != nil {
				return ActionErrorMsg{Err: err}
			}
			if sinks.Open != nil {
				if err := sinks.Open(intent); err == nil {
					return ActionSuccessMsg{Status: "Shared on " + in.Network.Label()}
				}
			}
			return copyFallback(in.Target, sinks, "Could not open "+in.Network.Label()+", link copied to clipboard")
		case InteractCopyLink:
			if sinks.Copy != nil {
				if err := sinks.Copy(in.Target); err == nil {
					return ActionSuccessMsg{Status: "Link copied to clipboard"}
				}
			}
			return ActionErrorMsg{Err: fmt.Errorf("could not copy link to clipboard")}
		}
		return ActionErrorMsg{Err: fmt.Errorf("unknown interaction: %d", in.Kind)}
	}
}

func copyFallback(target string, sinks Sinks, status string) tea.Msg {
	if sinks.Copy != nil {
		if err := sinks.Copy(target); err == nil {
			return ActionSuccessMsg{Status: status}
		}
	}
	return ActionErrorMsg{Err: fmt.Errorf("could not open link or copy to clipboard")}
}
