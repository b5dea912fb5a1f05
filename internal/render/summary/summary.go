// Package summary turns article summary fragments, which may carry inline
// HTML, into plain text wrapped for a card of a given width.
package summary

import (
	"html"
	"strings"

	"github.com/charmbracelet/x/ansi"
	nethtml "golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "blockquote": true,
	"ul": true, "ol": true, "li": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "figure": true, "figcaption": true,
}

// Text returns the readable text of raw, one paragraph per line.
func Text(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return normalizeInline(raw)
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return normalizeInline(html.UnescapeString(raw))
	}
	body := findBody(doc)
	if body == nil {
		return normalizeInline(html.UnescapeString(raw))
	}
	var b strings.Builder
	collect(body, &b)
	paragraphs := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p = normalizeInline(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

// Lines wraps Text(raw) to width cells. maxLines > 0 caps the result and
// marks the cut with an ellipsis.
func Lines(raw string, width, maxLines int) []string {
	text := Text(raw)
	if text == "" {
		return nil
	}
	lines := Wrap(text, width)
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if ansi.StringWidth(last)+1 > width {
			last = ansi.Truncate(last, max(0, width-1), "")
		}
		lines[maxLines-1] = last + "…"
	}
	return lines
}

// Wrap breaks text on spaces so that no line is wider than width cells.
// Words wider than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for ansi.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, ansi.Cut(word, 0, width))
				word = ansi.Cut(word, width, ansi.StringWidth(word))
			}
			if line == "" {
				line = word
				continue
			}
			if ansi.StringWidth(line)+1+ansi.StringWidth(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func collect(node *nethtml.Node, b *strings.Builder) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case nethtml.TextNode:
			b.WriteString(child.Data)
		case nethtml.ElementNode:
			tag := strings.ToLower(child.Data)
			switch tag {
			case "script", "style", "noscript", "img":
				continue
			case "br":
				b.WriteString("\n")
				continue
			}
			if blockTags[tag] {
				b.WriteString("\n")
			}
			collect(child, b)
			if blockTags[tag] {
				b.WriteString("\n")
			}
		}
	}
}

func normalizeInline(s string) string {
	s = strings.Join(strings.Fields(html.UnescapeString(s)), " ")
	return strings.NewReplacer(
		" .", ".",
		" ,", ",",
		" ;", ";",
		" :", ":",
		" !", "!",
		" ?", "?",
		" )", ")",
		"( ", "(",
	).Replace(s)
}

func findBody(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBody(child); found != nil {
			return found
		}
	}
	return nil
}
