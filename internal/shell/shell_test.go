package shell

import (
	"context"
	"html/template"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
	oerr "github.com/rentdesk/backoffice/internal/errors"
)

type stubNotifier struct {
	notes []backend.Notification
	err   error
}

func (s *stubNotifier) Notifications(ctx context.Context) ([]backend.Notification, error) {
	return s.notes, s.err
}

func newTestShell(t *testing.T, n Notifier) *Shell {
	t.Helper()
	s, err := New(n, zap.NewNop())
	require.NoError(t, err)

	s.Register(Page{ID: "dashboard", Title: "Dashboard", Load: staticLoader("<p>dash</p>")})
	s.Register(Page{ID: "tenants", Title: "Tenants", Load: staticLoader("<p>tenants</p>")})
	return s
}

func staticLoader(html string) Loader {
	return func(ctx context.Context, q url.Values) (template.HTML, error) {
		return template.HTML(html), nil
	}
}

func TestNavigateDefaultsToDashboard(t *testing.T) {
	s := newTestShell(t, nil)

	view, err := s.Navigate(context.Background(), "", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 200, view.Status)
	assert.Contains(t, view.HTML, "<p>dash</p>")
	assert.Contains(t, view.HTML, `data-page="dashboard"`)
}

func TestNavigateUnknownPage(t *testing.T) {
	s := newTestShell(t, nil)

	_, err := s.Navigate(context.Background(), "nonsense", url.Values{})
	require.Error(t, err)
	_, ok := err.(*oerr.NotFoundError)
	assert.True(t, ok)
}

func TestNavigateMarksActiveSidebarItem(t *testing.T) {
	s := newTestShell(t, nil)

	view, err := s.Navigate(context.Background(), "tenants", url.Values{})
	require.NoError(t, err)
	assert.Contains(t, view.HTML, `class="nav-item active" href="/pages/tenants"`)
	assert.Contains(t, view.HTML, `class="nav-item" href="/pages/dashboard"`)
}

func TestLoaderFailureRendersErrorPanel(t *testing.T) {
	s, err := New(nil, zap.NewNop())
	require.NoError(t, err)
	s.Register(Page{ID: "dashboard", Title: "Dashboard", Load: func(ctx context.Context, q url.Values) (template.HTML, error) {
		return "", oerr.NewUpstreamError(500, "stats unavailable")
	}})

	view, err := s.Navigate(context.Background(), "dashboard", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 500, view.Status)
	assert.Contains(t, view.HTML, "Something went wrong")
	assert.Contains(t, view.HTML, "stats unavailable")
	// The layout still renders around the panel.
	assert.Contains(t, view.HTML, "RentDesk")
}

func TestNotificationsBadgeCountsUnread(t *testing.T) {
	n := &stubNotifier{notes: []backend.Notification{
		{ID: 1, Message: "Rent overdue for Unit 4", IsRead: false},
		{ID: 2, Message: "Lease expiring", IsRead: true},
		{ID: 3, Message: "New payment received", IsRead: false},
	}}
	s := newTestShell(t, n)

	view, err := s.Navigate(context.Background(), "dashboard", url.Values{})
	require.NoError(t, err)
	assert.Contains(t, view.HTML, `<span class="bell-badge">2</span>`)
	assert.Contains(t, view.HTML, "Rent overdue for Unit 4")
}

func TestNotificationFailureDoesNotBlockPage(t *testing.T) {
	n := &stubNotifier{err: oerr.NewTransportError(context.DeadlineExceeded)}
	s := newTestShell(t, n)

	view, err := s.Navigate(context.Background(), "dashboard", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 200, view.Status)
	assert.Contains(t, view.HTML, "No notifications")
}
