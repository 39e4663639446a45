package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.PageLister = (*PageLister)(nil)

// PageLister is a mock implementation of docgrab.PageLister.
type PageLister struct {
	DiscoverFn func(ctx context.Context, baseURL string, filter *docgrab.URLFilter) ([]string, error)
}

func (l *PageLister) Discover(ctx context.Context, baseURL string, filter *docgrab.URLFilter) ([]string, error) {
	return l.DiscoverFn(ctx, baseURL, filter)
}
