package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.ResourceExtractor = (*ResourceExtractor)(nil)

// ResourceExtractor is a mock implementation of docgrab.ResourceExtractor.
type ResourceExtractor struct {
	ExtractResourcesFn func(html string, baseURL string) ([]docgrab.Resource, error)
	PageTitleFn        func(html string) string
}

func (e *ResourceExtractor) ExtractResources(html string, baseURL string) ([]docgrab.Resource, error) {
	return e.ExtractResourcesFn(html, baseURL)
}

func (e *ResourceExtractor) PageTitle(html string) string {
	if e.PageTitleFn == nil {
		return ""
	}
	return e.PageTitleFn(html)
}
