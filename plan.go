package docgrab

// PlannedDownload is the planned destination for a discovered resource.
// Within a single run every Path is unique; colliding filenames receive
// a numeric suffix at planning time.
type PlannedDownload struct {
	// Resource is the discovered link this plan was derived from.
	Resource Resource

	// Dir holds the folder path segments below the download root.
	// Segments are slugified and can never escape the root.
	Dir []string

	// FileName is the planned file name, extension included.
	FileName string

	// Path is the full destination path: root joined with Dir and FileName.
	Path string
}

// PathPlanner derives destination paths for resources.
//
// Plan is total: every input, including empty titles and link texts,
// yields a valid non-empty path. Implementations carry the run-scoped
// collision state, so planning order determines suffix numbering.
type PathPlanner interface {
	Plan(pageURL string, pageTitle string, res Resource) PlannedDownload
}
