package mock

import "github.com/fwojciec/docgrab"

var _ docgrab.PathPlanner = (*PathPlanner)(nil)

// PathPlanner is a mock implementation of docgrab.PathPlanner.
type PathPlanner struct {
	PlanFn func(pageURL string, pageTitle string, res docgrab.Resource) docgrab.PlannedDownload
}

func (p *PathPlanner) Plan(pageURL string, pageTitle string, res docgrab.Resource) docgrab.PlannedDownload {
	return p.PlanFn(pageURL, pageTitle, res)
}
