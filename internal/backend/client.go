package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/config"
	oerr "github.com/rentdesk/backoffice/internal/errors"
	"github.com/rentdesk/backoffice/internal/metrics"
)

// Client is the shared request pipeline to the property API. It prefixes
// relative paths with the API root, attaches the bearer token read once at
// startup, and logs every request/response pair. There is no retry, no
// backoff and no token refresh: callers catch and render failures at their
// own boundary.
type Client struct {
	baseURL string
	prefix  string
	token   string
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New builds a client from the configuration. The metrics handle may be nil.
func New(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("invalid API base URL %q", cfg.APIBaseURL)
	}

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		prefix:  cfg.APIPrefix,
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
		metrics: m,
	}, nil
}

// resolve rewrites a call path onto the API root. Paths already carrying the
// API prefix and absolute URLs pass through untouched.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	// The prefix must match as a whole path segment, so "/apiaries" still
	// gets prefixed while "/api/tenants" passes through.
	if path != c.prefix && !strings.HasPrefix(path, c.prefix+"/") {
		path = c.prefix + path
	}
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	fullURL := c.resolve(path)
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, oerr.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug("starting request",
		zap.String("request_id", reqID),
		zap.String("method", method),
		zap.String("url", fullURL))

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.log.Error("request failed",
			zap.String("request_id", reqID),
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err))
		if c.metrics != nil {
			c.metrics.ObserveAPICall(method, path, 0, duration)
		}
		return nil, oerr.NewTransportError(err)
	}

	c.log.Debug("response received",
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
	if c.metrics != nil {
		c.metrics.ObserveAPICall(method, path, resp.StatusCode, duration)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, c.upstreamError(resp, reqID)
	}
	return resp, nil
}

// upstreamError turns a non-2xx response into a typed error, preferring the
// {"error": "..."} body the property API uses.
func (c *Client) upstreamError(resp *http.Response, reqID string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := ""
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else {
			message = payload.Message
		}
	}

	c.log.Error("upstream error",
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(raw)))

	return oerr.NewUpstreamError(resp.StatusCode, message)
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeJSON(resp.Body, out)
}

// PostJSON issues a POST with a JSON body. out may be nil.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

// PutJSON issues a PUT with a JSON body. out may be nil.
func (c *Client) PutJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	resp, err := c.do(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	return decodeJSON(resp.Body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// FileUpload is an optional file attached to a multipart form.
type FileUpload struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// PostMultipart issues a POST with multipart form data, as tenant creation
// requires for its identity-document upload. out may be nil.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, file *FileUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("encoding form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("encoding form file: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("copying form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	return decodeJSON(resp.Body, out)
}

// GetBinary issues a GET for a blob (document view/download). The filename
// is read from the content-disposition header when present.
func (c *Client) GetBinary(ctx context.Context, path string) (*Binary, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, oerr.NewTransportError(err)
	}

	bin := &Binary{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}
	if bin.ContentType == "" {
		bin.ContentType = "application/pdf"
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			bin.Filename = params["filename"]
		}
	}
	return bin, nil
}

func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
