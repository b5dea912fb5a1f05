package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListArticles_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles/data/news.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("unexpected accept header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"title":"Delhi Air Quality Worsens","summary":"Smog returns","category":"india","date":"2025-11-03","image":"delhi.jpg","filename":"delhi-air.html"},
			{"title":"Global Climate Summit Opens","slug":"climate-summit.html"}
		]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/articles/data/news.json", ts.Client())
	articles, err := c.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles returned error: %v", err)
	}

	want := []Article{
		{Title: "Delhi Air Quality Worsens", Summary: "Smog returns", Category: "india", Date: "2025-11-03", Image: "delhi.jpg", Filename: "delhi-air.html"},
		{Title: "Global Climate Summit Opens", Filename: "climate-summit.html"},
	}
	if diff := cmp.Diff(want, articles); diff != "" {
		t.Fatalf("articles mismatch (-want +got):\n%s", diff)
	}
}

func TestListArticles_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.ListArticles(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListArticles_MalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.ListArticles(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestListArticles_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, []byte(`[{"title":"Local"}]`), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}

	for _, feed := range []string{path, "file://" + path} {
		articles, err := NewClient(feed, nil).ListArticles(context.Background())
		if err != nil {
			t.Fatalf("ListArticles(%s) returned error: %v", feed, err)
		}
		if len(articles) != 1 || articles[0].Title != "Local" {
			t.Fatalf("unexpected articles from %s: %+v", feed, articles)
		}
	}
}

func TestListArticles_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(ts.URL, ts.Client()).ListArticles(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestArticleHelpers(t *testing.T) {
	a := Article{Title: "  ", Category: "world", Date: "2025-11-03", Filename: "/summit.html"}
	if got := a.DisplayTitle(); got != "Untitled" {
		t.Fatalf("unexpected title: %q", got)
	}
	if got := a.CategoryLabel(); got != "WORLD" {
		t.Fatalf("unexpected category: %q", got)
	}
	if got := a.DateLabel(); got != "November 3, 2025" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := a.URL("https://example.com/site/"); got != "https://example.com/site/articles/summit.html" {
		t.Fatalf("unexpected URL: %q", got)
	}
	if got := (Article{Date: "someday"}).DateLabel(); got != "someday" {
		t.Fatalf("expected raw date fallback, got %q", got)
	}
	if got := (Article{}).URL("https://example.com/"); got != "" {
		t.Fatalf("expected empty URL without filename, got %q", got)
	}
}
