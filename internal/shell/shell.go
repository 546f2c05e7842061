// Package shell owns page navigation for the back office. Views register a
// loader per page id; the shell renders the active page inside the common
// layout, keeps the sidebar in sync with the current page, and swaps in a
// generic error panel whenever a loader fails.
package shell

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/url"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
	oerr "github.com/rentdesk/backoffice/internal/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultPage is rendered when no page id is given.
const DefaultPage = "dashboard"

// Loader produces the content fragment of one page. The query carries
// page-scoped parameters such as the search term or a status filter.
type Loader func(ctx context.Context, q url.Values) (template.HTML, error)

// Page is one registered sidebar destination.
type Page struct {
	ID    string
	Title string
	Icon  string
	Load  Loader
}

// Notifier feeds the bell in the top bar. Notification failures never block
// a page render.
type Notifier interface {
	Notifications(ctx context.Context) ([]backend.Notification, error)
}

// Shell holds the page registry and the common layout.
type Shell struct {
	pages    map[string]*Page
	order    []string
	notifier Notifier
	log      *zap.Logger
	tmpl     *template.Template
}

// New builds an empty shell. Pages are added with Register in sidebar order.
func New(notifier Notifier, log *zap.Logger) (*Shell, error) {
	tmpl, err := template.New("layout").
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Shell{
		pages:    make(map[string]*Page),
		notifier: notifier,
		log:      log,
		tmpl:     tmpl,
	}, nil
}

// Register adds a page. Registration order is sidebar order.
func (s *Shell) Register(p Page) {
	page := p
	s.pages[p.ID] = &page
	s.order = append(s.order, p.ID)
}

// NavItem is one sidebar entry as the layout sees it.
type NavItem struct {
	ID     string
	Title  string
	Icon   string
	Active bool
}

// View is a fully rendered page plus the HTTP status it should ship with.
type View struct {
	Status int
	HTML   string
}

type layoutData struct {
	Title         string
	PageID        string
	Nav           []NavItem
	Content       template.HTML
	Error         string
	Notifications []backend.Notification
	UnreadCount   int
}

// Navigate renders the page for pageID inside the layout. An empty id falls
// back to the dashboard. A loader failure renders the layout with a generic
// error panel in place of the content; only an unknown page id is a 404.
func (s *Shell) Navigate(ctx context.Context, pageID string, q url.Values) (*View, error) {
	if pageID == "" {
		pageID = DefaultPage
	}
	page, ok := s.pages[pageID]
	if !ok {
		return nil, oerr.NewNotFoundError("page")
	}

	data := layoutData{
		Title:  page.Title,
		PageID: page.ID,
	}
	for _, id := range s.order {
		p := s.pages[id]
		data.Nav = append(data.Nav, NavItem{
			ID:     p.ID,
			Title:  p.Title,
			Icon:   p.Icon,
			Active: p.ID == page.ID,
		})
	}

	status := 200
	content, err := page.Load(ctx, q)
	if err != nil {
		s.log.Error("page load failed",
			zap.String("page", page.ID),
			zap.Error(err))
		status, _ = oerr.ToHTTPError(err)
		data.Error = err.Error()
	} else {
		data.Content = content
	}

	s.attachNotifications(ctx, &data)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return &View{Status: status, HTML: buf.String()}, nil
}

// RenderWith wraps pre-built content in the layout for pageID, bypassing the
// page's own loader. Submit handlers use it to re-render a page with its
// modal still open after a failed form post.
func (s *Shell) RenderWith(ctx context.Context, pageID string, content template.HTML, status int) (*View, error) {
	page, ok := s.pages[pageID]
	if !ok {
		return nil, oerr.NewNotFoundError("page")
	}

	data := layoutData{
		Title:   page.Title,
		PageID:  page.ID,
		Content: content,
	}
	for _, id := range s.order {
		p := s.pages[id]
		data.Nav = append(data.Nav, NavItem{
			ID:     p.ID,
			Title:  p.Title,
			Icon:   p.Icon,
			Active: p.ID == page.ID,
		})
	}
	s.attachNotifications(ctx, &data)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return &View{Status: status, HTML: buf.String()}, nil
}

// attachNotifications fills the bell. A feed failure degrades to an empty
// bell rather than poisoning the page.
func (s *Shell) attachNotifications(ctx context.Context, data *layoutData) {
	if s.notifier == nil {
		return
	}
	notes, err := s.notifier.Notifications(ctx)
	if err != nil {
		s.log.Warn("notification feed unavailable", zap.Error(err))
		return
	}
	data.Notifications = notes
	for _, n := range notes {
		if !n.IsRead {
			data.UnreadCount++
		}
	}
}
