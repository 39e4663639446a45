package docgrab

// DefaultExtensions is the extension allowlist used when none is
// configured: common presentation and document formats.
func DefaultExtensions() []string {
	return []string{".pdf", ".ppt", ".pptx"}
}

// Resource represents a downloadable document link discovered on a page.
// One Resource is produced per occurrence in the markup; deduplication
// happens later, at download time.
type Resource struct {
	// URL is the absolute, fragment-stripped resource URL.
	URL string

	// Text is the link's visible text, trimmed with inner whitespace
	// collapsed. Empty when the element has no usable text.
	Text string

	// Title holds the title (or, for embeds, alt) attribute, used as a
	// secondary naming source when Text is empty.
	Title string

	// PageURL is the URL of the page the resource was discovered on.
	PageURL string
}

// ResourceExtractor finds document links in HTML.
// Implementations are pure: same markup and base URL always yield the
// same resources, in document order.
type ResourceExtractor interface {
	// ExtractResources parses HTML and returns resources whose URL path
	// ends in an allow-listed extension. Malformed or non-HTTP links are
	// silently skipped.
	ExtractResources(html string, baseURL string) ([]Resource, error)

	// PageTitle returns the page's title for folder naming, or an empty
	// string if none can be found.
	PageTitle(html string) string
}
