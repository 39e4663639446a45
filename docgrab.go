// Package docgrab downloads document files (PDF, PPT, PPTX) linked from
// a list of web pages into a folder tree that mirrors the source site.
// It extracts matching links from each page, plans a deterministic,
// filesystem-safe destination path for every resource, deduplicates, and
// fetches the files with polite inter-request delays. A preview mode
// reports the exact plan without fetching or writing anything.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package docgrab
