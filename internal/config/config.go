package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	defaultFeedURL = "https://factpilgrim.github.io/factpilgrim/articles/data/news.json"
	defaultBaseURL = "https://factpilgrim.github.io/factpilgrim/"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	FeedURL string `yaml:"feed_url"`
	BaseURL string `yaml:"base_url"`
	DBPath  string `yaml:"db_path"`
	LogPath string `yaml:"log_path"`

	PageSize int `yaml:"page_size"`

	TickerStart       int           `yaml:"ticker_start"`
	TickerEnd         int           `yaml:"ticker_end"`
	TickerSpeed       float64       `yaml:"ticker_speed"`
	TickerMinDuration time.Duration `yaml:"ticker_min_duration"`
	TickerMinWidth    int           `yaml:"ticker_min_width"`

	ShareEncoding string `yaml:"share_encoding"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		FeedURL:           defaultFeedURL,
		BaseURL:           defaultBaseURL,
		DBPath:            "headline.db",
		LogPath:           "headline.log",
		PageSize:          12,
		TickerStart:       13,
		TickerEnd:         24,
		TickerSpeed:       12,
		TickerMinDuration: 6 * time.Second,
		TickerMinWidth:    24,
		ShareEncoding:     "percent",
	}
}

// LoadFromEnv builds a Config from defaults, the optional YAML file named by
// HEADLINE_CONFIG and HEADLINE_* variables, in that order of precedence.
func LoadFromEnv() (Config, error) {
	cfg := Default()

	if path := os.Getenv("HEADLINE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("HEADLINE_FEED_URL", &c.FeedURL)
	setString("HEADLINE_BASE_URL", &c.BaseURL)
	setString("HEADLINE_DB_PATH", &c.DBPath)
	setString("HEADLINE_LOG_PATH", &c.LogPath)
	setString("HEADLINE_SHARE_ENCODING", &c.ShareEncoding)

	ints := []struct {
		key string
		dst *int
	}{
		{"HEADLINE_PAGE_SIZE", &c.PageSize},
		{"HEADLINE_TICKER_START", &c.TickerStart},
		{"HEADLINE_TICKER_END", &c.TickerEnd},
		{"HEADLINE_TICKER_MIN_WIDTH", &c.TickerMinWidth},
	}
	for _, it := range ints {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %q", it.key, v)
		}
		*it.dst = n
	}

	if v := os.Getenv("HEADLINE_TICKER_SPEED"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("HEADLINE_TICKER_SPEED must be a number: %q", v)
		}
		c.TickerSpeed = f
	}
	if v := os.Getenv("HEADLINE_TICKER_MIN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HEADLINE_TICKER_MIN_DURATION must be a duration: %q", v)
		}
		c.TickerMinDuration = d
	}
	return nil
}

// BindFlags registers command-line overrides backed by the current values.
// Call Normalize and Validate after the flag set is parsed.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.FeedURL, "feed", c.FeedURL, "article feed URL or local JSON path")
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "site root used to build article links")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path of the offline article cache")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file path")
	fs.IntVar(&c.PageSize, "page-size", c.PageSize, "cards added per load-more")
	fs.IntVar(&c.TickerStart, "ticker-start", c.TickerStart, "first article index shown in the ticker")
	fs.IntVar(&c.TickerEnd, "ticker-end", c.TickerEnd, "article index where the ticker slice ends (exclusive)")
	fs.Float64Var(&c.TickerSpeed, "ticker-speed", c.TickerSpeed, "ticker speed in columns per second")
	fs.DurationVar(&c.TickerMinDuration, "ticker-min-duration", c.TickerMinDuration, "shortest allowed ticker loop")
	fs.IntVar(&c.TickerMinWidth, "ticker-min-width", c.TickerMinWidth, "narrowest ticker block in columns")
	fs.StringVar(&c.ShareEncoding, "share-encoding", c.ShareEncoding, "space encoding for share links: percent or plus")
}

// Normalize trims values and gives BaseURL its trailing slash.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	c.ShareEncoding = strings.ToLower(strings.TrimSpace(c.ShareEncoding))
}

func (c Config) Validate() error {
	if c.FeedURL == "" {
		return errors.New("FeedURL is required")
	}
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("BaseURL must be an absolute http(s) URL: %s", c.BaseURL)
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BaseURL must end with '/': %s", c.BaseURL)
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PageSize must be positive: %d", c.PageSize)
	}
	if c.TickerStart < 0 || c.TickerEnd < c.TickerStart {
		return fmt.Errorf("ticker slice [%d:%d] is invalid", c.TickerStart, c.TickerEnd)
	}
	if c.TickerSpeed <= 0 {
		return fmt.Errorf("TickerSpeed must be positive: %v", c.TickerSpeed)
	}
	if c.TickerMinDuration <= 0 {
		return fmt.Errorf("TickerMinDuration must be positive: %s", c.TickerMinDuration)
	}
	if c.TickerMinWidth < 1 {
		return fmt.Errorf("TickerMinWidth must be positive: %d", c.TickerMinWidth)
	}
	if c.ShareEncoding != "percent" && c.ShareEncoding != "plus" {
		return fmt.Errorf("ShareEncoding must be percent or plus: %s", c.ShareEncoding)
	}
	return nil
}
