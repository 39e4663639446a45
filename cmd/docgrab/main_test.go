package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docgrab/cmd/docgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSiteServer serves a small site with one page linking two documents.
func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/evangelism/index.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>
			<head><title>Evangelism Resources</title></head>
			<body>
				<a href="/files/peg.pdf">Public Evangelism Guide</a>
				<a href="/files/training.pptx">Training Slides</a>
			</body></html>`))
	})
	mux.HandleFunc("/files/peg.pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-guide"))
	})
	mux.HandleFunc("/files/training.pptx", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("PK-slides"))
	})
	return httptest.NewServer(mux)
}

func TestCmdScrape_Download(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)
	defer srv.Close()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"scrape", srv.URL + "/evangelism/index.html",
		"--dir", dir,
		"--page-delay", "0s",
		"--file-delay", "0s",
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Downloaded 2 of 2 planned files")

	guide, err := os.ReadFile(filepath.Join(dir, "evangelism", "public-evangelism-guide.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-guide"), guide)

	slides, err := os.ReadFile(filepath.Join(dir, "evangelism", "training-slides.pptx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("PK-slides"), slides)
}

func TestCmdScrape_Preview(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)
	defer srv.Close()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"scrape", srv.URL + "/evangelism/index.html",
		"--dir", dir,
		"--preview",
		"--page-delay", "0s",
		"--file-delay", "0s",
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Planned 2 downloads")
	assert.Contains(t, stdout.String(), filepath.Join(dir, "evangelism", "public-evangelism-guide.pdf"))

	// Preview writes nothing.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCmdScrape_ContinuesAfterPageFailure(t *testing.T) {
	t.Parallel()

	srv := newSiteServer(t)
	defer srv.Close()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"scrape",
		srv.URL + "/missing/page.html",
		srv.URL + "/evangelism/index.html",
		"--dir", dir,
		"--page-delay", "0s",
		"--file-delay", "0s",
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "error")
	assert.Contains(t, stdout.String(), "Downloaded 2 of 2 planned files")
}

func TestCmdScrape_SitemapSeeding(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>` + srv.URL + `/evangelism/index.html</loc></url>
</urlset>`))
	})
	mux.HandleFunc("/evangelism/index.html", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<a href="/files/peg.pdf">Guide</a>`))
	})
	mux.HandleFunc("/files/peg.pdf", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-guide"))
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"scrape",
		"--sitemap", srv.URL,
		"--dir", dir,
		"--page-delay", "0s",
		"--file-delay", "0s",
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Found 1 pages in sitemap")
	assert.FileExists(t, filepath.Join(dir, "evangelism", "guide.pdf"))
}

func TestCmdScrape_RequiresPages(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"scrape"}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages to scrape")
}

func TestCmdScrape_RejectsBadFilter(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"scrape", "https://example.com/",
		"--filter", "[invalid",
	}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestCmdVersion(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{"version"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "docgrab")
}

func TestRun_NoArguments(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
