// Package scrape orchestrates resource scraping: it drives the
// extractor and path planner across a list of page URLs and, outside
// preview mode, downloads the planned resources with polite delays.
package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/docgrab"
	"github.com/google/uuid"
)

// Scraper coordinates fetching, extraction, planning, and writing.
// Execution is strictly sequential: pages in caller order, resources in
// extraction order. That ordering is what makes collision suffixes and
// dedup decisions reproducible.
//
// The downloaded-URL set lives for the Scraper's lifetime, so repeated
// ScrapePages calls on one Scraper share dedup state.
type Scraper struct {
	Fetcher   docgrab.Fetcher
	Extractor docgrab.ResourceExtractor
	Planner   docgrab.PathPlanner
	Writer    docgrab.FileWriter

	// FileDelay paces resource fetches within a page; PageDelay paces
	// page fetches. Either may be nil for no delay.
	FileDelay docgrab.Limiter
	PageDelay docgrab.Limiter

	// Logger, if set, receives debug output. Nil disables logging.
	Logger *slog.Logger

	downloaded map[string]bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressPageStarted ProgressType = iota
	ProgressPageFailed
	ProgressDownloaded
	ProgressSkipped
	ProgressResourceFailed
	ProgressFinished
)

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Path  string
	Page  int
	Total int
	Err   error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ScrapePages processes the given page URLs in order.
//
// In preview mode the returned report carries the exact plans a
// download run would execute, and no resource is fetched and no file is
// written; only pages are fetched. In download mode each planned
// resource is fetched and written unless its URL was already downloaded
// earlier in the run (first planned path wins; the duplicate is
// reported as skipped).
//
// Page- and resource-level failures are collected in the report, never
// returned as errors: one bad page cannot abort the run. The returned
// error is non-nil only for invalid configuration or context
// cancellation.
func (s *Scraper) ScrapePages(ctx context.Context, urls []string, previewOnly bool, progress ProgressFunc) (*docgrab.Report, error) {
	if s.Fetcher == nil || s.Extractor == nil || s.Planner == nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "scraper requires a fetcher, extractor, and planner")
	}
	if !previewOnly && s.Writer == nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "download mode requires a file writer")
	}
	if s.downloaded == nil {
		s.downloaded = make(map[string]bool)
	}

	report := &docgrab.Report{
		ID:      uuid.New().String(),
		Preview: previewOnly,
	}

	for i, pageURL := range urls {
		if !previewOnly && i > 0 && s.PageDelay != nil {
			if err := s.PageDelay.Wait(ctx); err != nil {
				return nil, err
			}
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressPageStarted, URL: pageURL, Page: i + 1, Total: len(urls)})
		}

		page, err := s.scrapePage(ctx, pageURL, previewOnly, progress)
		if err != nil {
			return nil, err
		}
		report.Pages = append(report.Pages, page)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Total: len(urls)})
	}
	return report, nil
}

// scrapePage handles a single page. The returned error is reserved for
// context cancellation; every other failure lands in the PageResult.
func (s *Scraper) scrapePage(ctx context.Context, pageURL string, previewOnly bool, progress ProgressFunc) (docgrab.PageResult, error) {
	result := docgrab.PageResult{PageURL: pageURL}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Failures = append(result.Failures, docgrab.Failure{
			URL:     pageURL,
			Stage:   docgrab.StageFetchPage,
			Message: err.Error(),
		})
		s.emitFailure(progress, ProgressPageFailed, pageURL, err)
		return result, nil
	}

	result.Title = s.Extractor.PageTitle(html)

	resources, err := s.Extractor.ExtractResources(html, pageURL)
	if err != nil {
		result.Failures = append(result.Failures, docgrab.Failure{
			URL:     pageURL,
			Stage:   docgrab.StageExtract,
			Message: err.Error(),
		})
		s.emitFailure(progress, ProgressPageFailed, pageURL, err)
		return result, nil
	}

	s.logf("page scraped", "url", pageURL, "title", result.Title, "resources", len(resources))

	for _, res := range resources {
		planned := s.Planner.Plan(pageURL, result.Title, res)
		result.Planned = append(result.Planned, planned)

		if previewOnly {
			continue
		}

		if s.downloaded[res.URL] {
			result.Skipped = append(result.Skipped, planned)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, URL: res.URL, Path: planned.Path})
			}
			continue
		}

		if s.FileDelay != nil {
			if err := s.FileDelay.Wait(ctx); err != nil {
				return result, err
			}
		}

		data, err := s.Fetcher.FetchBytes(ctx, res.URL)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.Failures = append(result.Failures, docgrab.Failure{
				URL:     res.URL,
				Stage:   docgrab.StageFetchResource,
				Message: err.Error(),
			})
			s.emitFailure(progress, ProgressResourceFailed, res.URL, err)
			continue
		}

		if err := s.Writer.WriteFile(ctx, planned.Path, data); err != nil {
			result.Failures = append(result.Failures, docgrab.Failure{
				URL:     res.URL,
				Stage:   docgrab.StageWrite,
				Message: err.Error(),
			})
			s.emitFailure(progress, ProgressResourceFailed, res.URL, err)
			continue
		}

		s.downloaded[res.URL] = true
		result.Downloaded = append(result.Downloaded, planned)
		s.logf("downloaded", "url", res.URL, "path", planned.Path, "bytes", len(data))
		if progress != nil {
			progress(ProgressEvent{Type: ProgressDownloaded, URL: res.URL, Path: planned.Path})
		}
	}

	return result, nil
}

func (s *Scraper) emitFailure(progress ProgressFunc, typ ProgressType, url string, err error) {
	s.logf("failure", "url", url, "err", err)
	if progress != nil {
		progress(ProgressEvent{Type: typ, URL: url, Err: err})
	}
}

func (s *Scraper) logf(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}
