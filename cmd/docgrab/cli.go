package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared state for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger is non-nil only when --verbose is set.
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape pages and download linked documents"`
	Version VersionCmd `cmd:"" help:"Print the docgrab version"`

	Verbose bool `short:"v" help:"Enable debug logging to stderr"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs []string `arg:"" optional:"" help:"Page URLs to scrape"`

	Dir       string        `short:"d" default:"downloaded_resources" help:"Download root folder"`
	Preview   bool          `short:"p" help:"Report planned downloads without fetching or writing files"`
	Ext       []string      `short:"e" name:"ext" help:"Extension allowlist (default: .pdf, .ppt, .pptx)"`
	PageDelay time.Duration `default:"1s" help:"Delay between page fetches"`
	FileDelay time.Duration `default:"500ms" help:"Delay between resource fetches"`
	Sitemap   string        `help:"Seed page URLs from this site's sitemap"`
	Filter    []string      `short:"F" name:"filter" help:"Filter sitemap page URLs by regex (repeatable)"`
	Timeout   time.Duration `default:"10s" help:"HTTP request timeout"`
	UserAgent string        `help:"Override the User-Agent header"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
