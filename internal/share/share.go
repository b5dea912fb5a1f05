// Package share builds the social sharing links offered on article cards.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

type Network string

const (
	Twitter  Network = "twitter"
	Facebook Network = "facebook"
	WhatsApp Network = "whatsapp"
	Threads  Network = "threads"
)

// Networks lists the supported networks in display order.
var Networks = []Network{Twitter, Facebook, WhatsApp, Threads}

// Encoding selects how spaces are written in query values.
type Encoding string

const (
	// EncodingPercent writes spaces as %20, like encodeURIComponent.
	EncodingPercent Encoding = "percent"
	// EncodingPlus writes spaces as +, like form encoding.
	EncodingPlus Encoding = "plus"
)

func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(s))) {
	case EncodingPercent, "":
		return EncodingPercent, nil
	case EncodingPlus:
		return EncodingPlus, nil
	}
	return "", fmt.Errorf("unknown share encoding: %s", s)
}

func (e Encoding) escape(s string) string {
	escaped := url.QueryEscape(s)
	if e == EncodingPlus {
		return escaped
	}
	return strings.ReplaceAll(escaped, "+", "%20")
}

// IntentURL returns the share page for network with the article title and link.
func IntentURL(network Network, title, articleURL string, enc Encoding) (string, error) {
	switch network {
	case Twitter:
		return "https://twitter.com/intent/tweet?text=" + enc.escape(title) + "&url=" + enc.escape(articleURL), nil
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + enc.escape(articleURL), nil
	case WhatsApp:
		return "https://wa.me/?text=" + enc.escape(title+" - "+articleURL), nil
	case Threads:
		return "https://threads.net/intent/post?text=" + enc.escape(title+" - "+articleURL), nil
	}
	return "", fmt.Errorf("unsupported network: %s", network)
}

func (n Network) Label() string {
	switch n {
	case Twitter:
		return "X"
	case Facebook:
		return "Facebook"
	case WhatsApp:
		return "WhatsApp"
	case Threads:
		return "Threads"
	}
	return string(n)
}
