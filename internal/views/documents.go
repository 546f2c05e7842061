package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
)

// DocumentType is one generation card on the documents page.
type DocumentType struct {
	ID          string
	Title       string
	Description string
}

// DocumentTypes are the six fixed generation cards.
var DocumentTypes = []DocumentType{
	{ID: "tenancy_agreement", Title: "Tenancy Agreement", Description: "Generate a new tenancy agreement for selected tenant"},
	{ID: "payment_notice", Title: "Payment Notice", Description: "Generate rent payment notice letter"},
	{ID: "payment_reminder", Title: "Payment Reminder", Description: "Generate payment reminder letter"},
	{ID: "quit_notice", Title: "Quit Notice", Description: "Generate quit notice letter"},
	{ID: "possession_notice", Title: "Possession Notice", Description: "Generate notice of owner's intention to recover possession"},
	{ID: "court_process", Title: "Court Process", Description: "Generate court process documentation"},
}

// DocumentRow is one history entry plus its search visibility.
type DocumentRow struct {
	backend.Document
	Hidden bool
}

// DocumentFormState drives the generation modal. The fields come from the
// per-type schema fetched when a card is clicked; generation is the second
// stage once they are filled in.
type DocumentFormState struct {
	Open      bool
	Type      string
	TypeTitle string
	Fields    []backend.FormField
	FieldsErr string
	Values    url.Values
	Result    *FormResult
}

type documentsPage struct {
	Search    string
	Types     []DocumentType
	LoadError string
	Rows      []DocumentRow
	Form      *DocumentFormState
	Generated *backend.GeneratedDocument
}

// LoadDocuments is the documents page loader. A generate=TYPE query opens the
// modal with that type's field schema.
func (v *Views) LoadDocuments(ctx context.Context, q url.Values) (template.HTML, error) {
	var form *DocumentFormState
	if docType := q.Get("generate"); docType != "" {
		form = v.DocumentForm(ctx, docType)
	}
	return v.Documents(ctx, q, form, nil)
}

// DocumentForm fetches the dynamic field schema of one document type and
// builds the modal state around it. A schema failure keeps the modal open
// with an inline error so the user can retry without losing the page. Submit
// handlers reuse it to re-render the modal with its inputs after a failed
// generate.
func (v *Views) DocumentForm(ctx context.Context, docType string) *DocumentFormState {
	state := &DocumentFormState{Open: true, Type: docType, Values: url.Values{}}
	for _, t := range DocumentTypes {
		if t.ID == docType {
			state.TypeTitle = t.Title
		}
	}

	fields, err := v.api.DocumentFormFields(ctx, docType)
	if err != nil {
		v.log.Error("document form fields fetch failed",
			zap.String("type", docType), zap.Error(err))
		state.FieldsErr = "Error loading form fields"
		return state
	}
	state.Fields = fields
	return state
}

// Documents renders the documents page: generation cards, history table and
// the two-stage generation modal.
func (v *Views) Documents(ctx context.Context, q url.Values, form *DocumentFormState, generated *backend.GeneratedDocument) (template.HTML, error) {
	page := documentsPage{
		Search:    q.Get("q"),
		Types:     DocumentTypes,
		Form:      form,
		Generated: generated,
	}

	docs, err := v.api.Documents(ctx)
	if err != nil {
		v.log.Error("document list fetch failed", zap.Error(err))
		page.LoadError = err.Error()
	}
	for _, d := range docs {
		row := DocumentRow{Document: d}
		rowText := strings.Join([]string{d.Type, d.RelatedTo, d.Status}, " ")
		row.Hidden = markHidden(page.Search, rowText)
		page.Rows = append(page.Rows, row)
	}

	return v.render("documents", page)
}

// GenerateDocument validates the filled-in schema values against the schema's
// own required flags and forwards them. On success the caller offers the
// freshly generated document for viewing.
func (v *Views) GenerateDocument(ctx context.Context, docType string, form url.Values) (FormResult, *backend.GeneratedDocument) {
	fields, err := v.api.DocumentFormFields(ctx, docType)
	if err != nil {
		return failure(err), nil
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		value := form.Get(f.ID)
		if f.Required && value == "" {
			return FormResult{
				OK:          false,
				Message:     f.Label + " is required",
				FieldErrors: map[string]string{f.ID: f.Label + " is required"},
			}, nil
		}
		values[f.ID] = value
	}

	gen, err := v.api.GenerateDocument(ctx, docType, values)
	if err != nil {
		return failure(err), nil
	}
	return success("Document generated successfully"), gen
}

// SendDocument delivers one generated document. Failures stay on the row.
func (v *Views) SendDocument(ctx context.Context, form url.Values) FormResult {
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.SendDocument(ctx, id); err != nil {
		return failure(err)
	}
	return success("Document sent successfully")
}

// ViewDocument fetches the PDF of one document for inline display.
func (v *Views) ViewDocument(ctx context.Context, id int64) (*backend.Binary, error) {
	return v.api.ViewDocument(ctx, id)
}

// DownloadDocument fetches the PDF of one document with its filename.
func (v *Views) DownloadDocument(ctx context.Context, id int64) (*backend.Binary, error) {
	return v.api.DownloadDocument(ctx, id)
}
