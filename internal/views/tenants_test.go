package views

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tenantListJSON = `[
  {"id": 1, "first_name": "John", "last_name": "Doe", "email": "john@example.com",
   "phone": "0801", "property": {"name": "Sunrise Court", "address": "12 Main St"},
   "lease_status": "Active", "monthly_rent": 250000},
  {"id": 2, "first_name": "Jane", "last_name": "Okafor", "email": "jane@example.com",
   "phone": "0802", "lease_status": "No Lease", "monthly_rent": 0}
]`

func tenantsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenants", jsonHandler(tenantListJSON))
	mux.HandleFunc("GET /api/properties", jsonHandler(`[]`))
	return mux
}

func TestTenantsPageRendersRows(t *testing.T) {
	v := newTestViews(t, tenantsMux())

	html, err := v.LoadTenants(context.Background(), url.Values{})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Jane Okafor")
	assert.Contains(t, out, "Sunrise Court")
	assert.Contains(t, out, "badge-success")
	assert.Contains(t, out, "badge-secondary")
	assert.Contains(t, out, "₦250,000.00")
	// A tenant without a lease gets the create-lease action.
	assert.Contains(t, out, "Create Lease")
}

func TestTenantsSearchHidesNonMatchingRows(t *testing.T) {
	v := newTestViews(t, tenantsMux())

	html, err := v.LoadTenants(context.Background(), url.Values{"q": {"jane"}})
	require.NoError(t, err)

	out := string(html)
	// Both rows stay in the document; only the non-matching one is hidden.
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Jane Okafor")
	assert.Equal(t, 1, strings.Count(out, "<tr hidden>"))
}

func TestTenantsEmptyList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenants", jsonHandler(`[]`))
	mux.HandleFunc("GET /api/properties", jsonHandler(`[]`))
	v := newTestViews(t, mux)

	html, err := v.LoadTenants(context.Background(), url.Values{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "No tenants found")
}

func TestTenantsListFailureRendersInlineError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tenants", failingHandler(500, "database exploded"))
	mux.HandleFunc("GET /api/properties", jsonHandler(`[]`))
	v := newTestViews(t, mux)

	html, err := v.LoadTenants(context.Background(), url.Values{})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Error loading tenants")
	assert.Contains(t, out, "database exploded")
	// The page skeleton survives; the add button is still there.
	assert.Contains(t, out, "Add Tenant")
}

func TestSubmitTenantCreatePostsExactlyOnce(t *testing.T) {
	var createCalls int
	mux := tenantsMux()
	mux.HandleFunc("POST /api/tenants", func(w http.ResponseWriter, r *http.Request) {
		createCalls++
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ada", r.FormValue("first_name"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	form := url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"phone":      {"0803"},
	}
	res := v.SubmitTenant(context.Background(), form, nil)
	assert.True(t, res.OK)
	assert.Equal(t, 1, createCalls)
}

func TestSubmitTenantMissingRequiredFieldMakesNoCall(t *testing.T) {
	var calls int
	mux := tenantsMux()
	mux.HandleFunc("POST /api/tenants", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	form := url.Values{"first_name": {"Ada"}, "last_name": {"Lovelace"}, "phone": {"0803"}}
	res := v.SubmitTenant(context.Background(), form, nil)
	assert.False(t, res.OK)
	assert.Contains(t, res.FieldErrors, "email")
	assert.Zero(t, calls)
}

func TestSubmitTenantDuplicateEmailFlagsField(t *testing.T) {
	mux := tenantsMux()
	mux.HandleFunc("POST /api/tenants", failingHandler(409, "duplicate email"))
	v := newTestViews(t, mux)

	form := url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"taken@example.com"},
		"phone":      {"0803"},
	}
	res := v.SubmitTenant(context.Background(), form, nil)
	assert.False(t, res.OK)
	assert.Equal(t, "A tenant with this email already exists", res.FieldErrors["email"])
}

func TestSubmitTenantWithIDUsesPut(t *testing.T) {
	var gotMethod, gotPath string
	mux := tenantsMux()
	mux.HandleFunc("/api/tenants/5", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	form := url.Values{
		"id":         {"5"},
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"phone":      {"0803"},
	}
	res := v.SubmitTenant(context.Background(), form, nil)
	assert.True(t, res.OK)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/tenants/5", gotPath)
}

func TestDeleteTenantRequiresConfirmation(t *testing.T) {
	var calls int
	mux := tenantsMux()
	mux.HandleFunc("DELETE /api/tenants/1", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	res := v.DeleteTenant(context.Background(), url.Values{"id": {"1"}})
	assert.False(t, res.OK)
	assert.Zero(t, calls)

	res = v.DeleteTenant(context.Background(), url.Values{"id": {"1"}, "confirm": {"true"}})
	assert.True(t, res.OK)
	assert.Equal(t, 1, calls)
}

func TestSubmitLease(t *testing.T) {
	var gotBody string
	mux := tenantsMux()
	mux.HandleFunc("POST /api/lease-agreements", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	form := url.Values{
		"tenant_id":   {"2"},
		"rent_amount": {"150000"},
		"start_date":  {"2026-09-01"},
		"end_date":    {"2027-08-31"},
	}
	res := v.SubmitLease(context.Background(), form)
	assert.True(t, res.OK)
	assert.Contains(t, gotBody, `"tenant_id":2`)
	assert.Contains(t, gotBody, `"rent_amount":150000`)
}
