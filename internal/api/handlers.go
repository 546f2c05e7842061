// Package api wires the back-office pages and form actions onto gin.
package api

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
	oerr "github.com/rentdesk/backoffice/internal/errors"
	"github.com/rentdesk/backoffice/internal/metrics"
	"github.com/rentdesk/backoffice/internal/shell"
	"github.com/rentdesk/backoffice/internal/views"
)

// Handler holds everything the routes need.
type Handler struct {
	shell   *shell.Shell
	views   *views.Views
	api     *backend.Client
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewHandler creates the route handler.
func NewHandler(sh *shell.Shell, v *views.Views, api *backend.Client, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{shell: sh, views: v, api: api, metrics: m, log: log}
}

// Page serves GET / and GET /pages/:id through the shell.
func (h *Handler) Page(c *gin.Context) {
	pageID := c.Param("id")
	if pageID == "" {
		pageID = shell.DefaultPage
	}
	start := time.Now()

	view, err := h.shell.Navigate(c.Request.Context(), pageID, c.Request.URL.Query())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObservePage(pageID, view.Status, time.Since(start))
	}
	c.Data(view.Status, "text/html; charset=utf-8", []byte(view.HTML))
}

// Health reports liveness and pings the property API so a dead upstream is
// visible before anyone loads a page.
func (h *Handler) Health(c *gin.Context) {
	if err := h.api.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"upstream": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SubmitTenant handles the tenant add/edit form, including the optional
// identity-document upload.
func (h *Handler) SubmitTenant(c *gin.Context) {
	form, file := h.multipartForm(c)
	res := h.views.SubmitTenant(c.Request.Context(), form, file)
	if res.OK {
		h.redirect(c, "tenants")
		return
	}

	state := &views.TenantFormState{Open: true, Values: form, Result: &res}
	state.EditingID, _ = strconv.ParseInt(form.Get("id"), 10, 64)
	content, err := h.views.Tenants(c.Request.Context(), url.Values{}, state, nil)
	h.rerender(c, "tenants", content, err)
}

// DeleteTenant handles the confirm-gated tenant delete.
func (h *Handler) DeleteTenant(c *gin.Context) {
	h.action(c, "tenants", h.views.DeleteTenant)
}

// SubmitLease handles lease creation for a tenant without one.
func (h *Handler) SubmitLease(c *gin.Context) {
	form := h.postForm(c)
	res := h.views.SubmitLease(c.Request.Context(), form)
	if res.OK {
		h.redirect(c, "tenants")
		return
	}

	lease := &views.LeaseFormState{Open: true, Values: form, Result: &res}
	lease.TenantID, _ = strconv.ParseInt(form.Get("tenant_id"), 10, 64)
	content, err := h.views.Tenants(c.Request.Context(), url.Values{}, nil, lease)
	h.rerender(c, "tenants", content, err)
}

// SubmitLandlord handles the landlord add/edit form.
func (h *Handler) SubmitLandlord(c *gin.Context) {
	form := h.postForm(c)
	res := h.views.SubmitLandlord(c.Request.Context(), form)
	if res.OK {
		h.redirect(c, "landlords")
		return
	}

	state := &views.LandlordFormState{Open: true, Values: form, Result: &res}
	state.EditingID, _ = strconv.ParseInt(form.Get("id"), 10, 64)
	content, err := h.views.Landlords(c.Request.Context(), url.Values{}, state, nil)
	h.rerender(c, "landlords", content, err)
}

// DeleteLandlord handles the confirm-gated landlord delete.
func (h *Handler) DeleteLandlord(c *gin.Context) {
	h.action(c, "landlords", h.views.DeleteLandlord)
}

// SubmitProperty handles the property add/edit form.
func (h *Handler) SubmitProperty(c *gin.Context) {
	form := h.postForm(c)
	res := h.views.SubmitProperty(c.Request.Context(), form)
	if res.OK {
		h.redirect(c, "properties")
		return
	}

	state := &views.PropertyFormState{Open: true, Values: form, Result: &res}
	state.EditingID, _ = strconv.ParseInt(form.Get("id"), 10, 64)
	content, err := h.views.Properties(c.Request.Context(), url.Values{}, state, nil)
	h.rerender(c, "properties", content, err)
}

// DeleteProperty handles the confirm-gated property delete.
func (h *Handler) DeleteProperty(c *gin.Context) {
	h.action(c, "properties", h.views.DeleteProperty)
}

// SubmitPayment records or updates a payment.
func (h *Handler) SubmitPayment(c *gin.Context) {
	form := h.postForm(c)
	res := h.views.SubmitPayment(c.Request.Context(), form)
	if res.OK {
		h.redirect(c, "payments")
		return
	}

	state := h.views.PaymentForm(c.Request.Context(), form, &res)
	content, err := h.views.Payments(c.Request.Context(), url.Values{}, state, nil)
	h.rerender(c, "payments", content, err)
}

// DeletePayment handles the confirm-gated payment delete.
func (h *Handler) DeletePayment(c *gin.Context) {
	h.action(c, "payments", h.views.DeletePayment)
}

// EmailReceipt mails the receipt of one payment.
func (h *Handler) EmailReceipt(c *gin.Context) {
	h.action(c, "payments", h.views.EmailReceipt)
}

// GenerateDocument runs the second stage of document generation: the filled
// schema values are validated and forwarded, then the page re-renders with an
// offer to view the new document.
func (h *Handler) GenerateDocument(c *gin.Context) {
	docType := c.Param("type")
	form := h.postForm(c)

	res, generated := h.views.GenerateDocument(c.Request.Context(), docType, form)
	if res.OK {
		content, err := h.views.Documents(c.Request.Context(), url.Values{}, nil, generated)
		h.rerender(c, "documents", content, err)
		return
	}

	state := h.views.DocumentForm(c.Request.Context(), docType)
	state.Values = form
	state.Result = &res
	content, err := h.views.Documents(c.Request.Context(), url.Values{}, state, nil)
	h.rerender(c, "documents", content, err)
}

// SendDocument delivers one generated document.
func (h *Handler) SendDocument(c *gin.Context) {
	h.action(c, "documents", h.views.SendDocument)
}

// ViewDocument streams a document PDF inline.
func (h *Handler) ViewDocument(c *gin.Context) {
	h.serveDocument(c, h.views.ViewDocument, "inline")
}

// DownloadDocument streams a document PDF as an attachment, keeping the
// filename the API put in its content-disposition header.
func (h *Handler) DownloadDocument(c *gin.Context) {
	h.serveDocument(c, h.views.DownloadDocument, "attachment")
}

func (h *Handler) serveDocument(c *gin.Context, fetch func(ctx context.Context, id int64) (*backend.Binary, error), disposition string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(c, oerr.NewBadRequestError("invalid document id"))
		return
	}
	bin, err := fetch(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if bin.Filename != "" {
		c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, bin.Filename))
	} else {
		c.Header("Content-Disposition", disposition)
	}
	c.Data(http.StatusOK, bin.ContentType, bin.Data)
}

// action runs a row-scoped form action and redirects back to its page. A
// failure re-renders the page with the message in an inline alert.
func (h *Handler) action(c *gin.Context, pageID string, fn func(ctx context.Context, form url.Values) views.FormResult) {
	form := h.postForm(c)
	res := fn(c.Request.Context(), form)
	if res.OK {
		h.redirect(c, pageID)
		return
	}

	h.log.Warn("action failed",
		zap.String("page", pageID),
		zap.String("message", res.Message))
	view, err := h.shell.RenderWith(c.Request.Context(), pageID,
		template.HTML(`<div class="alert alert-danger" role="alert">`+template.HTMLEscapeString(res.Message)+`</div>`),
		http.StatusOK)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(view.Status, "text/html; charset=utf-8", []byte(view.HTML))
}

func (h *Handler) rerender(c *gin.Context, pageID string, content template.HTML, err error) {
	if err != nil {
		h.renderError(c, err)
		return
	}
	view, err := h.shell.RenderWith(c.Request.Context(), pageID, content, http.StatusOK)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(view.Status, "text/html; charset=utf-8", []byte(view.HTML))
}

func (h *Handler) redirect(c *gin.Context, pageID string) {
	c.Redirect(http.StatusSeeOther, "/pages/"+pageID)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	status, body := oerr.ToHTTPError(err)
	h.log.Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	c.JSON(status, body)
}

func (h *Handler) postForm(c *gin.Context) url.Values {
	if err := c.Request.ParseForm(); err != nil {
		h.log.Warn("form parse failed", zap.Error(err))
	}
	return c.Request.PostForm
}

// multipartForm reads the tenant form plus its optional file part.
func (h *Handler) multipartForm(c *gin.Context) (url.Values, *backend.FileUpload) {
	form := url.Values{}
	mf, err := c.MultipartForm()
	if err != nil {
		// Edits post as a regular form without the file part.
		return h.postForm(c), nil
	}
	for k, vs := range mf.Value {
		for _, v := range vs {
			form.Add(k, v)
		}
	}

	var file *backend.FileUpload
	if fhs := mf.File["id_document"]; len(fhs) > 0 {
		f, err := fhs[0].Open()
		if err != nil {
			h.log.Warn("id document open failed", zap.Error(err))
		} else {
			file = &backend.FileUpload{
				Field:    "id_document",
				Filename: fhs[0].Filename,
				Reader:   f,
			}
		}
	}
	return form, file
}
