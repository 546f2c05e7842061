package views

import (
	"context"
	"html/template"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/backoffice/internal/backend"
)

type dashboardPage struct {
	Stats      *backend.DashboardStats
	Activities []backend.Activity
}

// LoadDashboard renders the dashboard. The stats and the activity feed are
// fetched concurrently; either failure is fatal for the whole page, which the
// shell turns into its error panel.
func (v *Views) LoadDashboard(ctx context.Context, _ url.Values) (template.HTML, error) {
	var page dashboardPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := v.api.Stats(gctx)
		if err != nil {
			return err
		}
		page.Stats = stats
		return nil
	})
	g.Go(func() error {
		activities, err := v.api.RecentActivities(gctx)
		if err != nil {
			return err
		}
		page.Activities = activities
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return v.render("dashboard", page)
}
