package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
)

var propertyFields = []string{
	"name", "address", "type", "landlord_id", "status", "description",
}

var propertyRequired = map[string]string{
	"name":        "Name",
	"address":     "Address",
	"type":        "Type",
	"landlord_id": "Landlord",
}

// PropertyRow is one rendered property plus its search visibility.
type PropertyRow struct {
	backend.Property
	LandlordName string
	Hidden       bool
}

// PropertyFormState drives the add/edit modal.
type PropertyFormState struct {
	Open      bool
	EditingID int64
	Values    url.Values
	Result    *FormResult
}

type propertiesPage struct {
	Search    string
	LoadError string
	Rows      []PropertyRow
	Landlords []backend.Landlord
	Form      *PropertyFormState
	Details   *backend.PropertyDetails
}

// LoadProperties is the properties page loader.
func (v *Views) LoadProperties(ctx context.Context, q url.Values) (template.HTML, error) {
	var form *PropertyFormState
	if q.Get("add") == "1" {
		form = &PropertyFormState{Open: true, Values: url.Values{}}
	} else if raw := q.Get("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		prop, err := v.api.Property(ctx, id)
		if err != nil {
			return "", err
		}
		form = &PropertyFormState{Open: true, EditingID: id, Values: propertyValues(prop)}
	}

	var details *backend.PropertyDetails
	if raw := q.Get("details"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		d, err := v.api.PropertyDetails(ctx, id)
		if err != nil {
			v.log.Error("property details fetch failed", zap.Int64("id", id), zap.Error(err))
		} else {
			details = d
		}
	}

	return v.Properties(ctx, q, form, details)
}

// Properties renders the properties page.
func (v *Views) Properties(ctx context.Context, q url.Values, form *PropertyFormState, details *backend.PropertyDetails) (template.HTML, error) {
	page := propertiesPage{Search: q.Get("q"), Form: form, Details: details}

	properties, err := v.api.Properties(ctx)
	if err != nil {
		v.log.Error("property list fetch failed", zap.Error(err))
		page.LoadError = err.Error()
	}
	for _, p := range properties {
		row := PropertyRow{Property: p}
		if p.Landlord != nil {
			row.LandlordName = p.Landlord.FirstName + " " + p.Landlord.LastName
		}
		rowText := strings.Join([]string{p.Name, p.Address, p.Type, row.LandlordName, p.Status}, " ")
		row.Hidden = markHidden(page.Search, rowText)
		page.Rows = append(page.Rows, row)
	}

	// Landlord select for the add/edit modal.
	if landlords, err := v.api.Landlords(ctx); err != nil {
		v.log.Warn("landlord select fetch failed", zap.Error(err))
	} else {
		page.Landlords = landlords
	}

	return v.render("properties", page)
}

// SubmitProperty validates and forwards the add/edit form.
func (v *Views) SubmitProperty(ctx context.Context, form url.Values) FormResult {
	if res := requireFields(form, propertyRequired); res != nil {
		return *res
	}

	if raw := form.Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return failure(err)
		}
		if err := v.api.UpdateProperty(ctx, id, formToMap(form, propertyFields)); err != nil {
			return failure(err)
		}
		return success("Property updated")
	}

	if err := v.api.CreateProperty(ctx, formToMap(form, propertyFields)); err != nil {
		return failure(err)
	}
	return success("Property created")
}

// DeleteProperty removes a property once confirmed.
func (v *Views) DeleteProperty(ctx context.Context, form url.Values) FormResult {
	if res := confirmDelete(form); res != nil {
		return *res
	}
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.DeleteProperty(ctx, id); err != nil {
		return failure(err)
	}
	return success("Property deleted")
}

func propertyValues(p *backend.Property) url.Values {
	vals := url.Values{}
	vals.Set("name", p.Name)
	vals.Set("address", p.Address)
	vals.Set("type", p.Type)
	vals.Set("status", p.Status)
	vals.Set("description", p.Description)
	if p.LandlordID > 0 {
		vals.Set("landlord_id", itoa(p.LandlordID))
	}
	return vals
}
