package news

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006",
}

// URL is the absolute link of the article page under baseURL, which must end
// with '/'. Articles without a filename have no link.
func (a Article) URL(baseURL string) string {
	name := strings.TrimSpace(a.Filename)
	if name == "" {
		return ""
	}
	return baseURL + "articles/" + strings.TrimLeft(name, "/")
}

// DisplayTitle is the trimmed title, or "Untitled".
func (a Article) DisplayTitle() string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return "Untitled"
}

func (a Article) CategoryLabel() string {
	return strings.ToUpper(strings.TrimSpace(a.Category))
}

// DateLabel renders the date as "January 2, 2006". Unparseable input is
// returned unchanged.
func (a Article) DateLabel() string {
	raw := strings.TrimSpace(a.Date)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}
