// Package goquery provides a windfind.TextConverter that flattens whole
// pages to space-separated text. It is the fallback when main-content
// extraction finds nothing usable; sparse business sites often keep
// their facts in markup trafilatura discards.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sailhq/windfind"
)

// Ensure Converter implements windfind.TextConverter at compile time.
var _ windfind.TextConverter = (*Converter)(nil)

// Converter flattens a page to its visible text.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Text returns all visible text joined with single spaces.
func (c *Converter) Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", windfind.Errorf(windfind.EINVALID, "parse HTML: %s", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" {
		return "", windfind.Errorf(windfind.ENOTFOUND, "no visible text")
	}
	return text, nil
}
