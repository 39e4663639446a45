package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docgrab"
)

// Ensure LoggingPageLister implements docgrab.PageLister.
var _ docgrab.PageLister = (*LoggingPageLister)(nil)

// LoggingPageLister wraps a PageLister with debug logging.
type LoggingPageLister struct {
	next   docgrab.PageLister
	logger *slog.Logger
}

// NewLoggingPageLister creates a new LoggingPageLister.
func NewLoggingPageLister(next docgrab.PageLister, logger *slog.Logger) *LoggingPageLister {
	return &LoggingPageLister{next: next, logger: logger}
}

// Discover delegates to the wrapped lister and logs the operation.
func (l *LoggingPageLister) Discover(ctx context.Context, baseURL string, filter *docgrab.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("page discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Discover(ctx, baseURL, filter)
}
