package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Article is one record of the published feed. Only Title and Filename are
// needed to build a link; every other field may be empty.
type Article struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

func (a *Article) UnmarshalJSON(data []byte) error {
	type plain Article
	var raw struct {
		plain
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Article(raw.plain)
	if a.Filename == "" {
		a.Filename = raw.Slug
	}
	return nil
}

// Client reads the article feed from an HTTP(S) URL or a local JSON file.
type Client struct {
	feedURL string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(feedURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		feedURL: strings.TrimSpace(feedURL),
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	if path, ok := localPath(c.feedURL); ok {
		return c.readFile(path)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for feed rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("feed request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var articles []Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}
	return articles, nil
}

func (c *Client) readFile(path string) ([]Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feed file: %w", err)
	}
	var articles []Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("decode feed file %s: %w", path, err)
	}
	return articles, nil
}

func localPath(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw, true
	}
	switch parsed.Scheme {
	case "http", "https":
		return "", false
	case "file":
		return parsed.Path, true
	default:
		return raw, true
	}
}
