package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/fs"
	"github.com/fwojciec/docgrab/goquery"
	dghttp "github.com/fwojciec/docgrab/http"
	"github.com/fwojciec/docgrab/plan"
	"github.com/fwojciec/docgrab/scrape"
	dgslog "github.com/fwojciec/docgrab/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 && c.Sitemap == "" {
		return docgrab.Errorf(docgrab.EINVALID, "no pages to scrape: supply page URLs or --sitemap")
	}

	// Compile filters early so bad patterns fail before any fetch.
	var urlFilter *docgrab.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &docgrab.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return docgrab.Errorf(docgrab.EINVALID, "invalid filter pattern %q: %v", pattern, err)
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	fetcherOpts := []dghttp.Option{dghttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, dghttp.WithUserAgent(c.UserAgent))
	}
	var fetcher docgrab.Fetcher = dghttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()
	if deps.Logger != nil {
		fetcher = dgslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	urls := c.URLs
	if c.Sitemap != "" {
		var lister docgrab.PageLister = dghttp.NewPageLister(nil)
		if deps.Logger != nil {
			lister = dgslog.NewLoggingPageLister(lister, deps.Logger)
		}
		discovered, err := lister.Discover(deps.Ctx, c.Sitemap, urlFilter)
		if err != nil {
			return fmt.Errorf("sitemap discovery: %w", err)
		}
		if len(discovered) == 0 && len(urls) == 0 {
			return docgrab.Errorf(docgrab.ENOTFOUND, "no pages found in sitemap for %s", c.Sitemap)
		}
		fmt.Fprintf(deps.Stdout, "Found %d pages in sitemap\n", len(discovered))
		urls = append(urls, discovered...)
	}

	var extractorOpts []goquery.Option
	var plannerOpts []plan.Option
	if len(c.Ext) > 0 {
		exts := normalizeExtensions(c.Ext)
		extractorOpts = append(extractorOpts, goquery.WithExtensions(exts))
		plannerOpts = append(plannerOpts, plan.WithExtensions(exts))
	}

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(extractorOpts...),
		Planner:   plan.NewPlanner(c.Dir, plannerOpts...),
		Writer:    fs.NewWriter(),
		FileDelay: scrape.NewDelayLimiter(c.FileDelay),
		PageDelay: scrape.NewDelayLimiter(c.PageDelay),
		Logger:    deps.Logger,
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressPageStarted:
			fmt.Fprintf(deps.Stdout, "Page %d/%d: %s\n", event.Page, event.Total, event.URL)
		case scrape.ProgressDownloaded:
			fmt.Fprintf(deps.Stdout, "  saved %s\n", event.Path)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s (already downloaded)\n", event.URL)
		case scrape.ProgressPageFailed, scrape.ProgressResourceFailed:
			fmt.Fprintf(deps.Stderr, "  error %s: %v\n", event.URL, event.Err)
		}
	}

	report, err := scraper.ScrapePages(deps.Ctx, urls, c.Preview, progress)
	if err != nil {
		return err
	}

	if c.Preview {
		printPlan(deps, report)
		fmt.Fprintf(deps.Stdout, "Planned %d downloads (preview, nothing written)\n", report.TotalPlanned())
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Downloaded %d of %d planned files to %s",
		report.TotalDownloaded(), report.TotalPlanned(), c.Dir)
	if n := report.TotalFailures(); n > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failures)", n)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}

// printPlan writes the planned downloads per page, preview-mode style.
func printPlan(deps *Dependencies, report *docgrab.Report) {
	for _, page := range report.Pages {
		for _, planned := range page.Planned {
			fmt.Fprintf(deps.Stdout, "  plan %s <- %s\n", planned.Path, planned.Resource.URL)
		}
		for _, failure := range page.Failures {
			fmt.Fprintf(deps.Stderr, "  error %s (%s): %s\n", failure.URL, failure.Stage, failure.Message)
		}
	}
}

// normalizeExtensions lower-cases extensions and ensures a leading dot,
// so "-e pdf" and "-e .PDF" both work.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
