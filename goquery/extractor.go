// Package goquery provides a goquery-based implementation of
// docgrab.ResourceExtractor for discovering document links in HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docgrab"
)

// Ensure Extractor implements docgrab.ResourceExtractor at compile time.
var _ docgrab.ResourceExtractor = (*Extractor)(nil)

// Extractor finds document links in HTML pages. It scans anchors plus
// embed/object/iframe elements and keeps links whose URL path ends in
// an allow-listed extension.
type Extractor struct {
	exts   map[string]bool
	filter *docgrab.URLFilter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithExtensions sets the extension allowlist (e.g. ".pdf", ".docx").
// Extensions are matched case-insensitively against the URL path.
// Defaults to docgrab.DefaultExtensions() if not specified.
func WithExtensions(exts []string) Option {
	return func(e *Extractor) {
		e.exts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			e.exts[strings.ToLower(ext)] = true
		}
	}
}

// WithFilter sets an additional URL filter applied to resolved resource
// URLs. A nil filter matches everything.
func WithFilter(filter *docgrab.URLFilter) Option {
	return func(e *Extractor) {
		e.filter = filter
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.exts == nil {
		WithExtensions(docgrab.DefaultExtensions())(e)
	}
	return e
}

// ExtractResources parses HTML and returns one resource per matching
// link occurrence, in document order. Anchors are scanned first, then
// embedded viewers (embed, object, iframe). Resources are not
// deduplicated here; the same URL may legitimately appear several times.
func (e *Extractor) ExtractResources(html string, baseURL string) ([]docgrab.Resource, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	var resources []docgrab.Resource

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		resolved := e.resolveResourceURL(base, href)
		if resolved == "" {
			return
		}
		title, _ := sel.Attr("title")
		resources = append(resources, docgrab.Resource{
			URL:     resolved,
			Text:    collapseWhitespace(sel.Text()),
			Title:   strings.TrimSpace(title),
			PageURL: baseURL,
		})
	})

	// Embedded viewers reference documents via src (embed, iframe) or
	// data (object) and have no link text, only title/alt attributes.
	doc.Find("embed, object, iframe").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			src, exists = sel.Attr("data")
			if !exists || src == "" {
				return
			}
		}
		resolved := e.resolveResourceURL(base, src)
		if resolved == "" {
			return
		}
		title, _ := sel.Attr("title")
		if title == "" {
			title, _ = sel.Attr("alt")
		}
		resources = append(resources, docgrab.Resource{
			URL:     resolved,
			Title:   strings.TrimSpace(title),
			PageURL: baseURL,
		})
	})

	return resources, nil
}

// PageTitle returns the page's title for folder naming: the <title>
// element, falling back to the first <h1>, then meta title tags.
// Returns an empty string when no title can be found, including for
// unparseable markup.
func (e *Extractor) PageTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if title := collapseWhitespace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if title := collapseWhitespace(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	for _, sel := range []string{`meta[name="title"]`, `meta[property="og:title"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if title := collapseWhitespace(content); title != "" {
				return title
			}
		}
	}
	return ""
}

// resolveResourceURL resolves href against base and returns the absolute
// URL if it classifies as a resource, or an empty string otherwise.
// Malformed URLs are silently skipped: they cannot be classified.
func (e *Extractor) resolveResourceURL(base *url.URL, href string) string {
	if isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = "" // fragments never change the target document

	// Extension matching looks at the path only, so query strings on
	// download endpoints (e.g. ?download=1) don't break classification.
	if !e.exts[strings.ToLower(pathExt(resolved.Path))] {
		return ""
	}

	result := resolved.String()
	if !e.filter.Match(result) {
		return ""
	}
	return result
}

// pathExt returns the final extension of a URL path, dot included.
func pathExt(path string) string {
	idx := strings.LastIndex(path, "/")
	last := path[idx+1:]
	dot := strings.LastIndex(last, ".")
	if dot < 0 {
		return ""
	}
	return last[dot:]
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// collapseWhitespace trims a string and collapses internal whitespace
// runs to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
