package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
	"github.com/rentdesk/backoffice/internal/config"
)

// newTestViews points a Views instance at a fake property API.
func newTestViews(t *testing.T, mux *http.ServeMux) *Views {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIBaseURL: srv.URL,
		APIPrefix:  "/api",
		APIToken:   "test-token",
	}
	client, err := backend.New(cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	v, err := New(client, zap.NewNop())
	require.NoError(t, err)
	return v
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func failingHandler(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"error": "` + message + `"}`))
	}
}
