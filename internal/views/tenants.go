package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
)

var tenantFields = []string{
	"first_name", "last_name", "email", "phone", "address",
	"work_place", "work_address", "next_of_kin_name", "next_of_kin_phone",
	"property_id", "monthly_rent", "start_date", "duration_months",
}

var tenantRequired = map[string]string{
	"first_name": "First name",
	"last_name":  "Last name",
	"email":      "Email",
	"phone":      "Phone",
}

// TenantRow is one rendered tenant plus its search visibility.
type TenantRow struct {
	backend.Tenant
	PropertyName string
	Hidden       bool
}

// TenantFormState drives the add/edit modal. The modal is always reset and
// then populated, so stale values from a previous edit never leak through.
type TenantFormState struct {
	Open      bool
	EditingID int64
	Values    url.Values
	Result    *FormResult
}

// LeaseFormState drives the create-lease modal offered on "No Lease" rows.
type LeaseFormState struct {
	Open     bool
	TenantID int64
	Values   url.Values
	Result   *FormResult
}

type tenantsPage struct {
	Search     string
	LoadError  string
	Rows       []TenantRow
	Properties []backend.Property
	Form       *TenantFormState
	Lease      *LeaseFormState
}

// LoadTenants is the tenants page loader. Modal state is recovered from the
// query so a page render can arrive with the add or edit form already open.
func (v *Views) LoadTenants(ctx context.Context, q url.Values) (template.HTML, error) {
	var form *TenantFormState
	if q.Get("add") == "1" {
		form = &TenantFormState{Open: true, Values: url.Values{}}
	} else if raw := q.Get("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		tenant, err := v.api.Tenant(ctx, id)
		if err != nil {
			return "", err
		}
		form = &TenantFormState{Open: true, EditingID: id, Values: tenantValues(tenant)}
	}

	var lease *LeaseFormState
	if raw := q.Get("lease"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		lease = &LeaseFormState{Open: true, TenantID: id, Values: url.Values{}}
	}

	return v.Tenants(ctx, q, form, lease)
}

// Tenants renders the tenants page. A list failure becomes an inline error in
// place of the table; the toolbar and modals stay usable.
func (v *Views) Tenants(ctx context.Context, q url.Values, form *TenantFormState, lease *LeaseFormState) (template.HTML, error) {
	page := tenantsPage{Search: q.Get("q"), Form: form, Lease: lease}

	tenants, err := v.api.Tenants(ctx)
	if err != nil {
		v.log.Error("tenant list fetch failed", zap.Error(err))
		page.LoadError = err.Error()
	}
	for _, t := range tenants {
		row := TenantRow{Tenant: t}
		if t.Property != nil {
			row.PropertyName = t.Property.Name
		}
		rowText := strings.Join([]string{
			t.FirstName, t.LastName, t.Email, t.Phone, row.PropertyName, t.LeaseStatus,
		}, " ")
		row.Hidden = markHidden(page.Search, rowText)
		page.Rows = append(page.Rows, row)
	}

	// Property select for the add/edit modal. A failure here leaves the
	// select empty rather than blocking the page.
	if props, err := v.api.Properties(ctx); err != nil {
		v.log.Warn("property select fetch failed", zap.Error(err))
	} else {
		page.Properties = props
	}

	return v.render("tenants", page)
}

// SubmitTenant validates and forwards the add/edit form. A bound id means
// update (PUT); otherwise the tenant is created with a multipart request so
// the identity document can ride along. A duplicate-email conflict flags the
// email field instead of failing generically.
func (v *Views) SubmitTenant(ctx context.Context, form url.Values, file *backend.FileUpload) FormResult {
	if res := requireFields(form, tenantRequired); res != nil {
		return *res
	}

	if raw := form.Get("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return failure(err)
		}
		if err := v.api.UpdateTenant(ctx, id, formToMap(form, tenantFields)); err != nil {
			return failure(err)
		}
		return success("Tenant updated")
	}

	if err := v.api.CreateTenant(ctx, formToMap(form, tenantFields), file); err != nil {
		if isConflict(err) {
			return FormResult{
				OK:          false,
				Message:     "A tenant with this email already exists",
				FieldErrors: map[string]string{"email": "A tenant with this email already exists"},
			}
		}
		return failure(err)
	}
	return success("Tenant created")
}

// DeleteTenant removes a tenant once the confirmation field is present.
func (v *Views) DeleteTenant(ctx context.Context, form url.Values) FormResult {
	if res := confirmDelete(form); res != nil {
		return *res
	}
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.DeleteTenant(ctx, id); err != nil {
		return failure(err)
	}
	return success("Tenant deleted")
}

// SubmitLease creates a lease agreement for a tenant without one.
func (v *Views) SubmitLease(ctx context.Context, form url.Values) FormResult {
	if res := requireFields(form, map[string]string{
		"tenant_id":   "Tenant",
		"rent_amount": "Rent amount",
		"start_date":  "Start date",
		"end_date":    "End date",
	}); res != nil {
		return *res
	}
	tenantID, err := parseID(form.Get("tenant_id"))
	if err != nil {
		return failure(err)
	}
	rent, err := parseAmount(form.Get("rent_amount"))
	if err != nil {
		return failure(err)
	}

	lease := backend.LeaseAgreement{
		TenantID:         tenantID,
		RentAmount:       rent,
		StartDate:        form.Get("start_date"),
		EndDate:          form.Get("end_date"),
		PaymentFrequency: form.Get("payment_frequency"),
	}
	if raw := form.Get("security_deposit"); raw != "" {
		deposit, err := parseAmount(raw)
		if err != nil {
			return failure(err)
		}
		lease.SecurityDeposit = deposit
	}
	if err := v.api.CreateLease(ctx, lease); err != nil {
		return failure(err)
	}
	return success("Lease agreement created")
}

func tenantValues(t *backend.Tenant) url.Values {
	vals := url.Values{}
	vals.Set("first_name", t.FirstName)
	vals.Set("last_name", t.LastName)
	vals.Set("email", t.Email)
	vals.Set("phone", t.Phone)
	vals.Set("address", t.Address)
	vals.Set("work_place", t.WorkPlace)
	vals.Set("work_address", t.WorkAddress)
	vals.Set("next_of_kin_name", t.NextOfKinName)
	vals.Set("next_of_kin_phone", t.NextOfKinPhone)
	if t.PropertyID > 0 {
		vals.Set("property_id", itoa(t.PropertyID))
	}
	return vals
}
