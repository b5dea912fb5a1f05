package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/glabrego/headline-cli/internal/logging"
	"github.com/glabrego/headline-cli/internal/news"
)

// ErrBusy is returned by Load while another load is still in flight.
var ErrBusy = errors.New("article load already in progress")

type FeedClient interface {
	ListArticles(ctx context.Context) ([]news.Article, error)
}

type Repository interface {
	SaveArticles(ctx context.Context, articles []news.Article) error
	ListArticles(ctx context.Context) ([]news.Article, error)
}

// Source names where a LoadResult came from.
type Source string

const (
	SourceFeed  Source = "feed"
	SourceCache Source = "cache"
	SourceEmpty Source = "empty"
)

type LoadResult struct {
	Articles []news.Article
	Source   Source
	// FetchErr is the feed error that forced a fallback, if any.
	FetchErr error
}

type Service struct {
	client  FeedClient
	repo    Repository
	loading atomic.Bool
}

func NewService(client FeedClient, repo Repository) *Service {
	return &Service{client: client, repo: repo}
}

// Load fetches the feed and refreshes the cache. A failed fetch falls back to
// the cached snapshot, then to an empty collection; only ErrBusy is returned
// as an error.
func (s *Service) Load(ctx context.Context) (LoadResult, error) {
	if !s.loading.CompareAndSwap(false, true) {
		return LoadResult{}, ErrBusy
	}
	defer s.loading.Store(false)

	articles, err := s.client.ListArticles(ctx)
	if err == nil {
		if s.repo != nil {
			if saveErr := s.repo.SaveArticles(ctx, articles); saveErr != nil {
				logging.Warn("could not cache articles", "err", saveErr)
			}
		}
		logging.Info("feed loaded", "articles", len(articles))
		return LoadResult{Articles: articles, Source: SourceFeed}, nil
	}

	fetchErr := fmt.Errorf("fetch articles: %w", err)
	logging.Warn("feed unavailable, falling back", "err", err)

	cached, cacheErr := s.ListCached(ctx)
	if cacheErr != nil {
		logging.Warn("cache unavailable", "err", cacheErr)
	}
	if len(cached) > 0 {
		return LoadResult{Articles: cached, Source: SourceCache, FetchErr: fetchErr}, nil
	}
	return LoadResult{Articles: []news.Article{}, Source: SourceEmpty, FetchErr: fetchErr}, nil
}

// Loading reports whether a Load call is in flight.
func (s *Service) Loading() bool {
	return s.loading.Load()
}

func (s *Service) ListCached(ctx context.Context) ([]news.Article, error) {
	if s.repo == nil {
		return nil, nil
	}
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load articles from cache: %w", err)
	}
	return articles, nil
}
