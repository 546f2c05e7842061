package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
)

var landlordFields = []string{
	"first_name", "last_name", "email", "phone", "address",
}

var landlordRequired = map[string]string{
	"first_name": "First name",
	"last_name":  "Last name",
	"email":      "Email",
	"phone":      "Phone",
}

// LandlordRow is one rendered landlord plus its search visibility.
type LandlordRow struct {
	backend.Landlord
	PropertyCount int
	Hidden        bool
}

// LandlordFormState drives the add/edit modal.
type LandlordFormState struct {
	Open      bool
	EditingID int64
	Values    url.Values
	Result    *FormResult
}

type landlordsPage struct {
	Search    string
	LoadError string
	Rows      []LandlordRow
	Form      *LandlordFormState
	Details   *backend.Landlord
}

// LoadLandlords is the landlords page loader. The details modal is opened by
// a details=ID query, the add/edit modal by add=1 or edit=ID.
func (v *Views) LoadLandlords(ctx context.Context, q url.Values) (template.HTML, error) {
	var form *LandlordFormState
	if q.Get("add") == "1" {
		form = &LandlordFormState{Open: true, Values: url.Values{}}
	} else if raw := q.Get("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		landlord, err := v.api.Landlord(ctx, id)
		if err != nil {
			return "", err
		}
		form = &LandlordFormState{Open: true, EditingID: id, Values: landlordValues(landlord)}
	}

	var details *backend.Landlord
	if raw := q.Get("details"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		// A failed detail fetch is a row-level problem; the list still renders.
		d, err := v.api.LandlordDetails(ctx, id)
		if err != nil {
			v.log.Error("landlord details fetch failed", zap.Int64("id", id), zap.Error(err))
		} else {
			details = d
		}
	}

	return v.Landlords(ctx, q, form, details)
}

// Landlords renders the landlords page.
func (v *Views) Landlords(ctx context.Context, q url.Values, form *LandlordFormState, details *backend.Landlord) (template.HTML, error) {
	page := landlordsPage{Search: q.Get("q"), Form: form, Details: details}

	landlords, err := v.api.Landlords(ctx)
	if err != nil {
		v.log.Error("landlord list fetch failed", zap.Error(err))
		page.LoadError = err.Error()
	}
	for _, l := range landlords {
		row := LandlordRow{Landlord: l, PropertyCount: len(l.Properties)}
		rowText := strings.Join([]string{l.FirstName, l.LastName, l.Email, l.Phone}, " ")
		row.Hidden = markHidden(page.Search, rowText)
		page.Rows = append(page.Rows, row)
	}

	return v.render("landlords", page)
}

// SubmitLandlord validates and forwards the add/edit form.
func (v *Views) SubmitLandlord(ctx context.Context, form url.Values) FormResult {
	if res := requireFields(form, landlordRequired); res != nil {
		return *res
	}

	if raw := form.Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return failure(err)
		}
		if err := v.api.UpdateLandlord(ctx, id, formToMap(form, landlordFields)); err != nil {
			return failure(err)
		}
		return success("Landlord updated")
	}

	if err := v.api.CreateLandlord(ctx, formToMap(form, landlordFields)); err != nil {
		return failure(err)
	}
	return success("Landlord created")
}

// DeleteLandlord removes a landlord once confirmed.
func (v *Views) DeleteLandlord(ctx context.Context, form url.Values) FormResult {
	if res := confirmDelete(form); res != nil {
		return *res
	}
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.DeleteLandlord(ctx, id); err != nil {
		return failure(err)
	}
	return success("Landlord deleted")
}

func landlordValues(l *backend.Landlord) url.Values {
	vals := url.Values{}
	vals.Set("first_name", l.FirstName)
	vals.Set("last_name", l.LastName)
	vals.Set("email", l.Email)
	vals.Set("phone", l.Phone)
	vals.Set("address", l.Address)
	return vals
}
