// Package plan derives deterministic, filesystem-safe destination paths
// for discovered resources. Folder paths mirror the source page's URL
// hierarchy and filenames come from link text, so a download tree reads
// like the site it was scraped from.
package plan

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docgrab"
)

// maxSlugLen caps slug length so link paragraphs used as anchors don't
// produce unusable filenames.
const maxSlugLen = 100

// fallbackFolder is used when neither the page URL nor its title yield
// a usable folder name.
const fallbackFolder = "misc"

// FolderFunc derives folder path segments for a page. Implementations
// must return already-slugified segments; an empty result routes the
// page's resources to the fallback folder.
type FolderFunc func(pageURL string, pageTitle string) []string

// Ensure Planner implements docgrab.PathPlanner at compile time.
var _ docgrab.PathPlanner = (*Planner)(nil)

// Planner plans destination paths for resources. It tracks filenames
// assigned per folder for the lifetime of the run, so collisions are
// resolved consistently even when several pages route resources into
// the same folder. Planning order determines suffix numbering.
//
// Planner is not safe for concurrent use; the scraper is sequential.
type Planner struct {
	root    string
	folders FolderFunc
	exts    []string
	extSet  map[string]bool
	used    map[string]map[string]bool
}

// Option configures a Planner.
type Option func(*Planner)

// WithExtensions sets the extension allowlist used to re-validate
// resource extensions. Defaults to docgrab.DefaultExtensions().
func WithExtensions(exts []string) Option {
	return func(p *Planner) {
		p.exts = exts
	}
}

// WithFolderFunc replaces the default URL-derived folder naming.
func WithFolderFunc(fn FolderFunc) Option {
	return func(p *Planner) {
		p.folders = fn
	}
}

// NewPlanner creates a Planner rooted at the given download folder.
func NewPlanner(root string, opts ...Option) *Planner {
	p := &Planner{
		root:    root,
		folders: FolderSegments,
		exts:    docgrab.DefaultExtensions(),
		used:    make(map[string]map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.extSet = make(map[string]bool, len(p.exts))
	for _, ext := range p.exts {
		p.extSet[strings.ToLower(ext)] = true
	}
	return p
}

// Plan derives the destination for a resource. It is total: every
// input, including empty titles and link texts, yields a valid path.
func (p *Planner) Plan(pageURL string, pageTitle string, res docgrab.Resource) docgrab.PlannedDownload {
	dir := p.folders(pageURL, pageTitle)
	if len(dir) == 0 {
		dir = []string{fallbackFolder}
	}

	ext := p.extension(res.URL)
	base := Slugify(res.Text)
	if base == "" {
		base = Slugify(res.Title)
	}
	if base == "" {
		base = Slugify(lastPathSegment(res.URL))
	}
	if base == "" {
		base = "file-" + ShortHash(res.URL)
	}

	name := p.allocName(strings.Join(dir, "/"), base, ext)

	return docgrab.PlannedDownload{
		Resource: res,
		Dir:      dir,
		FileName: name,
		Path:     filepath.Join(append(append([]string{p.root}, dir...), name)...),
	}
}

// allocName reserves a unique filename within a folder, appending _2,
// _3, ... before the extension until the name is free.
func (p *Planner) allocName(folderKey, base, ext string) string {
	names := p.used[folderKey]
	if names == nil {
		names = make(map[string]bool)
		p.used[folderKey] = names
	}

	name := base + ext
	for n := 2; names[name]; n++ {
		name = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	names[name] = true
	return name
}

// extension returns the resource's lower-cased extension, re-validated
// against the allowlist. Unrecognized extensions fall back to the first
// allowed one so the planner stays total.
func (p *Planner) extension(rawURL string) string {
	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		if dot := strings.LastIndex(filepath.Base(u.Path), "."); dot > 0 {
			ext = strings.ToLower(filepath.Base(u.Path)[dot:])
		}
	}
	if !p.extSet[ext] {
		return strings.ToLower(p.exts[0])
	}
	return ext
}

// FolderSegments is the default FolderFunc. It mirrors the page URL's
// path hierarchy, dropping a filename-like final segment (index.html
// and friends) and anything that could escape the download root. When
// the URL yields nothing (site root), the page title is used instead.
func FolderSegments(pageURL string, pageTitle string) []string {
	var segs []string
	if u, err := url.Parse(pageURL); err == nil {
		parts := make([]string, 0, 8)
		for _, part := range strings.Split(u.Path, "/") {
			if part == "" || part == "." || part == ".." {
				continue
			}
			parts = append(parts, part)
		}
		if n := len(parts); n > 0 && strings.Contains(parts[n-1], ".") {
			parts = parts[:n-1]
		}
		for _, part := range parts {
			if s := Slugify(part); s != "" {
				segs = append(segs, s)
			}
		}
	}
	if len(segs) == 0 {
		if s := Slugify(pageTitle); s != "" {
			segs = []string{s}
		}
	}
	return segs
}

// Slugify normalizes a string into a lower-case, hyphen-separated,
// filesystem-safe token. Runs of anything outside [a-z0-9] collapse to
// a single hyphen; leading and trailing hyphens are trimmed; the result
// is capped at 100 characters. URL-encoded input is decoded first so
// "my%20file" and "my file" slugify identically.
func Slugify(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	out := b.String()
	if len(out) > maxSlugLen {
		out = strings.TrimRight(out[:maxSlugLen], "-")
	}
	return out
}

// ShortHash returns a short hex digest of s, used to keep placeholder
// filenames distinguishable.
func ShortHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))[:8]
}

// lastPathSegment returns the final path segment of a URL with its
// extension removed, for use as a filename fallback.
func lastPathSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	seg := filepath.Base(u.Path)
	if seg == "/" || seg == "." {
		return ""
	}
	if dot := strings.LastIndex(seg, "."); dot > 0 {
		seg = seg[:dot]
	}
	return seg
}
