// Package views renders the entity pages of the back office. Each entity has
// one file implementing the shared contract: a page loader, add/edit modal
// state, a submit handler, a confirm-gated delete, row actions, and the
// substring search that hides non-matching rows without removing them.
package views

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/url"
	"strconv"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
	oerr "github.com/rentdesk/backoffice/internal/errors"
	"github.com/rentdesk/backoffice/internal/format"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Views binds every entity page to the shared API client and template set.
type Views struct {
	api  *backend.Client
	log  *zap.Logger
	tmpl *template.Template
}

// New parses the embedded templates with the display helpers attached.
func New(api *backend.Client, log *zap.Logger) (*Views, error) {
	funcs := sprig.FuncMap()
	funcs["currency"] = format.FormatCurrency
	funcs["date"] = format.FormatDate
	funcs["leaseBadge"] = format.LeaseStatusClass
	funcs["paymentBadge"] = format.PaymentStatusClass
	funcs["documentBadge"] = format.DocumentStatusClass
	funcs["occupancyBadge"] = format.OccupancyStatusClass
	funcs["activityBadge"] = format.ActivityStatusClass
	funcs["paymentType"] = format.FormatPaymentType
	funcs["documentType"] = format.FormatDocumentType
	funcs["capfirst"] = format.CapitalizeFirst

	tmpl, err := template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Views{api: api, log: log, tmpl: tmpl}, nil
}

func (v *Views) render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// FormResult is the outcome of a submit or row action. A failed submit keeps
// the form open with the message inline; FieldErrors flags individual inputs,
// as the duplicate-email conflict does on tenant create.
type FormResult struct {
	OK          bool              `json:"ok"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func success(message string) FormResult {
	return FormResult{OK: true, Message: message}
}

func failure(err error) FormResult {
	return FormResult{OK: false, Message: err.Error()}
}

// requireFields checks client-side mandatory inputs before anything is sent
// upstream. The first missing field wins.
func requireFields(form url.Values, fields map[string]string) *FormResult {
	for name, label := range fields {
		if form.Get(name) == "" {
			return &FormResult{
				OK:          false,
				Message:     label + " is required",
				FieldErrors: map[string]string{name: label + " is required"},
			}
		}
	}
	return nil
}

// confirmDelete gates every delete behind an explicit confirmation field.
// Without it the handler refuses before any API call is made.
func confirmDelete(form url.Values) *FormResult {
	if form.Get("confirm") != "true" {
		return &FormResult{OK: false, Message: "deletion not confirmed"}
	}
	return nil
}

// isConflict reports whether an upstream failure was a duplicate (409).
func isConflict(err error) bool {
	var ue *oerr.UpstreamError
	return errors.As(err, &ue) && ue.Upstream == 409
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, oerr.NewBadRequestError("invalid id")
	}
	return id, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return 0, oerr.NewValidationError("amount", "amount must be a positive number")
	}
	return amount, nil
}

// formToMap copies the named form fields into the payload sent upstream.
// Absent fields are omitted rather than sent empty.
func formToMap(form url.Values, fields []string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if v := form.Get(f); v != "" {
			out[f] = v
		}
	}
	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// trimZeros renders an amount for a form input, without display formatting.
func trimZeros(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// markHidden applies the search term to pre-rendered row text. Rows that do
// not match are flagged hidden; they stay in the document so clearing the
// search restores them.
func markHidden(term string, rowText string) bool {
	return !format.MatchesFilter(rowText, term)
}
