// Package trafilatura provides a windfind.TextConverter that extracts a
// page's main text content, dropping navigation, footer and other
// boilerplate before extraction sees it.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/sailhq/windfind"
)

// Ensure Converter implements windfind.TextConverter at compile time.
var _ windfind.TextConverter = (*Converter)(nil)

// Converter wraps go-trafilatura.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Text returns the page's main text content.
func (c *Converter) Text(html string) (string, error) {
	if html == "" {
		return "", windfind.Errorf(windfind.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return "", windfind.Errorf(windfind.EINVALID, "trafilatura extract: %s", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", windfind.Errorf(windfind.ENOTFOUND, "no main content found")
	}
	return text, nil
}
