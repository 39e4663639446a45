package docgrab

// Stage identifies where in the pipeline a failure occurred.
type Stage string

// Failure stages.
const (
	StageFetchPage     Stage = "fetch_page"
	StageExtract       Stage = "extract"
	StageFetchResource Stage = "fetch_resource"
	StageWrite         Stage = "write"
)

// Failure records a page- or resource-level error. Failures are
// collected in the report rather than aborting the run.
type Failure struct {
	URL     string `json:"url"`
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// PageResult holds the outcome of scraping a single page.
//
// Planned always reflects the full plan for the page, in extraction
// order. In download mode Downloaded and Skipped partition the plans
// that were acted on: Skipped plans point at URLs already downloaded
// earlier in the run (the first planned path wins).
type PageResult struct {
	PageURL    string            `json:"pageUrl"`
	Title      string            `json:"title"`
	Planned    []PlannedDownload `json:"planned"`
	Downloaded []PlannedDownload `json:"downloaded"`
	Skipped    []PlannedDownload `json:"skipped"`
	Failures   []Failure         `json:"failures"`
}

// Report is the result of a scrape run.
type Report struct {
	ID      string       `json:"id"`
	Preview bool         `json:"preview"`
	Pages   []PageResult `json:"pages"`
}

// TotalPlanned returns the number of planned downloads across all pages.
func (r *Report) TotalPlanned() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Planned)
	}
	return n
}

// TotalDownloaded returns the number of files written across all pages.
func (r *Report) TotalDownloaded() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Downloaded)
	}
	return n
}

// TotalFailures returns the number of recorded failures across all pages.
func (r *Report) TotalFailures() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Failures)
	}
	return n
}
