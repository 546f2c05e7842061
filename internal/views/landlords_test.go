package views

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landlordsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/landlords", jsonHandler(`[
	  {"id": 1, "first_name": "Emeka", "last_name": "Obi", "email": "emeka@example.com",
	   "phone": "0901", "properties": [{"id": 3, "name": "Sunrise Court"}],
	   "occupied_properties": 1, "total_revenue": 3000000}
	]`))
	return mux
}

func TestLandlordsPageRendersRows(t *testing.T) {
	v := newTestViews(t, landlordsMux())

	html, err := v.LoadLandlords(context.Background(), url.Values{})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Emeka Obi")
	assert.Contains(t, out, "₦3,000,000.00")
	assert.Contains(t, out, "View Details")
}

func TestLandlordDetailsModal(t *testing.T) {
	mux := landlordsMux()
	mux.HandleFunc("GET /api/landlords/1/details", jsonHandler(`{
	  "id": 1, "first_name": "Emeka", "last_name": "Obi", "email": "emeka@example.com",
	  "phone": "0901", "address": "5 Broad St", "total_revenue": 3000000,
	  "properties": [
	    {"id": 3, "name": "Sunrise Court", "address": "12 Main St", "status": "occupied",
	     "current_tenant": "John Doe", "monthly_revenue": 250000}
	  ]
	}`))
	v := newTestViews(t, mux)

	html, err := v.LoadLandlords(context.Background(), url.Values{"details": {"1"}})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "landlordDetailsModal")
	assert.Contains(t, out, "Sunrise Court")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "badge-success")
}

func TestSubmitLandlordCreateAndUpdate(t *testing.T) {
	var gotMethods []string
	mux := landlordsMux()
	mux.HandleFunc("POST /api/landlords", func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, "POST")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("PUT /api/landlords/1", func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, "PUT")
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	form := url.Values{
		"first_name": {"Emeka"},
		"last_name":  {"Obi"},
		"email":      {"emeka@example.com"},
		"phone":      {"0901"},
	}
	res := v.SubmitLandlord(context.Background(), form)
	assert.True(t, res.OK)

	form.Set("id", "1")
	res = v.SubmitLandlord(context.Background(), form)
	assert.True(t, res.OK)

	assert.Equal(t, []string{"POST", "PUT"}, gotMethods)
}

func TestDeleteLandlordRequiresConfirmation(t *testing.T) {
	var calls int
	mux := landlordsMux()
	mux.HandleFunc("DELETE /api/landlords/1", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	})
	v := newTestViews(t, mux)

	res := v.DeleteLandlord(context.Background(), url.Values{"id": {"1"}})
	assert.False(t, res.OK)
	assert.Zero(t, calls)
}
