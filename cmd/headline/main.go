package main

import (
	"context"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/glabrego/headline-cli/internal/app"
	"github.com/glabrego/headline-cli/internal/config"
	"github.com/glabrego/headline-cli/internal/logging"
	"github.com/glabrego/headline-cli/internal/news"
	"github.com/glabrego/headline-cli/internal/share"
	"github.com/glabrego/headline-cli/internal/storage"
	"github.com/glabrego/headline-cli/internal/ticker"
	"github.com/glabrego/headline-cli/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("config error", "err", err)
	}

	fs := pflag.NewFlagSet("headline", pflag.ExitOnError)
	cfg.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Fatal("config error", "err", err)
	}

	if err := logging.Init(cfg.LogPath); err != nil {
		log.Warn("logging disabled", "err", err)
	}
	defer logging.Close()

	encoding, err := share.ParseEncoding(cfg.ShareEncoding)
	if err != nil {
		log.Fatal("config error", "err", err)
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatal("storage init error", "err", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatal("storage schema error", "err", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatal("storage write check failed, verify HEADLINE_DB_PATH is writable", "err", err, "path", cfg.DBPath)
	}

	client := news.NewClient(cfg.FeedURL, &http.Client{Timeout: 10 * time.Second})
	service := app.NewService(client, repo)

	logging.Info("starting", "feed", cfg.FeedURL, "db", cfg.DBPath)

	model := tui.NewModel(service, tui.Options{
		BaseURL:     cfg.BaseURL,
		PageSize:    cfg.PageSize,
		TickerStart: cfg.TickerStart,
		TickerEnd:   cfg.TickerEnd,
		Ticker: ticker.Config{
			Speed:         cfg.TickerSpeed,
			MinDuration:   cfg.TickerMinDuration,
			MinBlockWidth: cfg.TickerMinWidth,
		},
		ShareEncoding: encoding,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		logging.Error("tui exited", "err", err)
		log.Fatal("tui error", "err", err)
	}
}
