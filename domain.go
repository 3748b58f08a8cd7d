package windfind

import "net/url"

// Page is a page of a candidate business site, as known from search
// results. Title and Description come from the search provider and are
// the only classification input used before the page is ever fetched.
type Page struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DomainGroup is one candidate domain together with its known pages,
// ordered by URL length ascending (ties keep first-seen order). The
// first page is the domain's canonical, representative page.
type DomainGroup struct {
	Domain string `json:"domain"`
	Pages  []Page `json:"pages"`
}

// Canonical returns the domain's representative page (the shortest URL).
func (g *DomainGroup) Canonical() Page {
	if len(g.Pages) == 0 {
		return Page{}
	}
	return g.Pages[0]
}

// URLs returns the group's page URLs in order.
func (g *DomainGroup) URLs() []string {
	urls := make([]string, len(g.Pages))
	for i, p := range g.Pages {
		urls[i] = p.URL
	}
	return urls
}

// CategoryURLs lists the URLs assigned to one subpage category,
// preserving the group's ascending-length order.
type CategoryURLs struct {
	Category string   `json:"category"`
	URLs     []string `json:"urls"`
}

// CategorizedDomain is the output of subpage categorization for one
// accepted domain. Categories appear in the fixed vocabulary order;
// a URL may appear under several categories.
type CategorizedDomain struct {
	Domain     string         `json:"domain"`
	Categories []CategoryURLs `json:"categories"`
}

// DomainRecord pairs a domain with its consolidated business record.
type DomainRecord struct {
	Domain string `json:"domain"`
	Record *Node  `json:"record"`
}

// DomainOf returns the network-location portion of a URL, or "" if the
// URL cannot be parsed or carries no host.
func DomainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
