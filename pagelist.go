package docgrab

import (
	"context"
	"regexp"
)

// URLFilter filters URLs by regex patterns.
// A URL matches if it matches any Include pattern. An empty filter
// matches everything.
type URLFilter struct {
	Include []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
func (f *URLFilter) Match(url string) bool {
	if f == nil || len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// PageLister discovers page URLs to scrape from a site, typically from
// its sitemap. It is an alternative to supplying page URLs directly;
// the scraper itself never follows links.
type PageLister interface {
	// Discover returns page URLs for the site at baseURL that pass the
	// filter. Returns an empty slice (not nil) when nothing is found.
	Discover(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}
