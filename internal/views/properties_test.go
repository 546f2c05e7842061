package views

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertiesMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/properties", jsonHandler(`[
	  {"id": 3, "name": "Sunrise Court", "address": "12 Main St", "type": "apartment",
	   "landlord": {"first_name": "Emeka", "last_name": "Obi"}, "status": "occupied"},
	  {"id": 4, "name": "Palm Villa", "address": "8 Beach Rd", "type": "house",
	   "status": "vacant"}
	]`))
	mux.HandleFunc("GET /api/landlords", jsonHandler(`[
	  {"id": 1, "first_name": "Emeka", "last_name": "Obi"}
	]`))
	return mux
}

func TestPropertiesPageRendersRows(t *testing.T) {
	v := newTestViews(t, propertiesMux())

	html, err := v.LoadProperties(context.Background(), url.Values{})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Sunrise Court")
	assert.Contains(t, out, "Emeka Obi")
	assert.Contains(t, out, "badge-success")
	assert.Contains(t, out, "badge-warning")
	assert.Contains(t, out, "Apartment")
}

func TestPropertiesSearchHidesRows(t *testing.T) {
	v := newTestViews(t, propertiesMux())

	html, err := v.LoadProperties(context.Background(), url.Values{"q": {"palm"}})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Palm Villa")
	assert.Contains(t, out, "Sunrise Court")
	assert.Contains(t, out, "<tr hidden>")
}

func TestPropertyDetailsModalWithTenantHistory(t *testing.T) {
	mux := propertiesMux()
	mux.HandleFunc("GET /api/properties/3/details", jsonHandler(`{
	  "id": 3, "name": "Sunrise Court", "address": "12 Main St", "type": "apartment",
	  "tenant_count": 2, "total_revenue": 500000,
	  "tenant_history": [
	    {"tenant_name": "John Doe", "start_date": "2025-01-01", "end_date": "", "status": "active"},
	    {"tenant_name": "Old Tenant", "start_date": "2023-01-01", "end_date": "2024-12-31", "status": "expired"}
	  ]
	}`))
	v := newTestViews(t, mux)

	html, err := v.LoadProperties(context.Background(), url.Values{"details": {"3"}})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "propertyDetailsModal")
	assert.Contains(t, out, "Old Tenant")
	assert.Contains(t, out, "31 Dec 2024")
	assert.Contains(t, out, "badge-danger")
}

func TestPropertyTypeOptions(t *testing.T) {
	v := newTestViews(t, propertiesMux())

	html, err := v.LoadProperties(context.Background(), url.Values{"add": {"1"}})
	require.NoError(t, err)

	out := string(html)
	for _, pt := range []string{"apartment", "house", "commercial", "land"} {
		assert.Contains(t, out, `value="`+pt+`"`)
	}
	assert.NotContains(t, out, `value="duplex"`)
}

func TestSubmitPropertyValidation(t *testing.T) {
	var calls int
	mux := propertiesMux()
	mux.HandleFunc("POST /api/properties", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	res := v.SubmitProperty(context.Background(), url.Values{"name": {"Palm Villa"}})
	assert.False(t, res.OK)
	assert.Zero(t, calls)

	res = v.SubmitProperty(context.Background(), url.Values{
		"name":        {"Palm Villa"},
		"address":     {"8 Beach Rd"},
		"type":        {"house"},
		"landlord_id": {"1"},
	})
	assert.True(t, res.OK)
	assert.Equal(t, 1, calls)
}
