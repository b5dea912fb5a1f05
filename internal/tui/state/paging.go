package state

import (
	"strings"

	"github.com/glabrego/headline-cli/internal/news"
)

// Mode is Idle when no query is active and Filtered otherwise.
type Mode int

const (
	Idle Mode = iota
	Filtered
)

func (m Mode) String() string {
	if m == Filtered {
		return "filtered"
	}
	return "idle"
}

// Paging holds the filtered article sequence and how many grid pages of it
// are revealed. Index 0 of the filtered sequence is the featured article and
// never appears in the grid.
type Paging struct {
	all      []news.Article
	filtered []news.Article
	query    string
	page     int
	pageSize int
}

func NewPaging(pageSize int) Paging {
	if pageSize < 1 {
		pageSize = 12
	}
	return Paging{page: 1, pageSize: pageSize}
}

// SetArticles replaces the source collection and re-applies the current query.
func (p *Paging) SetArticles(all []news.Article) {
	p.all = append([]news.Article(nil), all...)
	p.Search(p.query)
}

// Search filters by a case-insensitive substring of title, summary or
// category and returns to the first page.
func (p *Paging) Search(query string) {
	p.query = strings.TrimSpace(query)
	if p.query == "" {
		p.filtered = append([]news.Article(nil), p.all...)
	} else {
		p.filtered = Filter(p.all, p.query)
	}
	p.page = 1
}

// Reset clears the query and shows the whole collection from page 1.
func (p *Paging) Reset() {
	p.Search("")
}

// LoadMore reveals one more page while more articles remain.
func (p *Paging) LoadMore() bool {
	if !p.HasMore() {
		return false
	}
	p.page++
	return true
}

func (p *Paging) Collapse() {
	p.page = 1
}

func (p Paging) Mode() Mode {
	if p.query == "" {
		return Idle
	}
	return Filtered
}

func (p Paging) Query() string    { return p.query }
func (p Paging) Page() int        { return p.page }
func (p Paging) PageSize() int    { return p.pageSize }
func (p Paging) Total() int       { return len(p.filtered) }
func (p Paging) SourceTotal() int { return len(p.all) }

// All is the unfiltered collection.
func (p Paging) All() []news.Article {
	return p.all
}

func (p Paging) Featured() (news.Article, bool) {
	if len(p.filtered) == 0 {
		return news.Article{}, false
	}
	return p.filtered[0], true
}

// Window is the half-open range of filtered indices shown in the grid:
// [1, min(1 + page*pageSize, total)).
func (p Paging) Window() (int, int) {
	if len(p.filtered) <= 1 {
		return 1, 1
	}
	end := 1 + p.page*p.pageSize
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	return 1, end
}

// Visible returns the grid articles for the current window.
func (p Paging) Visible() []news.Article {
	start, end := p.Window()
	if start >= end {
		return nil
	}
	return p.filtered[start:end]
}

func (p Paging) HasMore() bool {
	_, end := p.Window()
	return end < len(p.filtered)
}

func (p Paging) CanCollapse() bool {
	return p.page > 1
}

// Filter keeps articles whose title, summary or category contains query,
// ignoring case.
func Filter(articles []news.Article, query string) []news.Article {
	needle := strings.ToLower(query)
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Summary), needle) ||
			strings.Contains(strings.ToLower(a.Category), needle) {
			out = append(out, a)
		}
	}
	return out
}
