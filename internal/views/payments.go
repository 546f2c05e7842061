package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/backend"
)

// leasePrerequisiteMessage is shown verbatim when the chosen tenant has no
// active lease; the submit button stays disabled until one exists.
const leasePrerequisiteMessage = "Unable to create lease agreement. Please ensure tenant has rent amount and start date set."

// PaymentStatuses are the options of the list filter select.
var PaymentStatuses = []string{"all", "completed", "pending", "overdue"}

// PaymentTypes are the options of the payment-type select.
var PaymentTypes = []string{"cash", "bank_transfer", "check", "online"}

// PaymentRow is one rendered payment plus its search visibility.
type PaymentRow struct {
	backend.Payment
	Hidden bool
}

// PaymentFormState drives the record/edit modal. Choosing a tenant triggers
// the dependent lease lookup; without an active lease the submit stays
// disabled and the prerequisite message is shown in the modal.
type PaymentFormState struct {
	Open            bool
	EditingID       int64
	Values          url.Values
	Result          *FormResult
	Tenants         []backend.Tenant
	SelectedTenant  int64
	Info            *backend.PaymentInfo
	Disabled        bool
	DisabledMessage string
}

type paymentsPage struct {
	Search    string
	Status    string
	Statuses  []string
	Types     []string
	LoadError string
	Rows      []PaymentRow
	Stats     *backend.PaymentStatistics
	Form      *PaymentFormState
	Receipt   *backend.Receipt
}

// LoadPayments is the payments page loader. The status filter, the record
// modal, the dependent tenant lookup and the receipt modal are all driven by
// query parameters.
func (v *Views) LoadPayments(ctx context.Context, q url.Values) (template.HTML, error) {
	var form *PaymentFormState
	if q.Get("add") == "1" {
		state, err := v.paymentFormState(ctx, q.Get("tenant"))
		if err != nil {
			return "", err
		}
		form = state
	} else if raw := q.Get("edit"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		payment, err := v.api.Payment(ctx, id)
		if err != nil {
			return "", err
		}
		form = &PaymentFormState{Open: true, EditingID: id, Values: paymentValues(payment)}
	}

	var receipt *backend.Receipt
	if raw := q.Get("receipt"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return "", err
		}
		r, err := v.api.Receipt(ctx, id)
		if err != nil {
			v.log.Error("receipt fetch failed", zap.Int64("payment_id", id), zap.Error(err))
		} else {
			receipt = r
		}
	}

	return v.Payments(ctx, q, form, receipt)
}

// paymentFormState assembles the record-payment modal, including the
// dependent lease lookup once a tenant is chosen.
func (v *Views) paymentFormState(ctx context.Context, rawTenant string) (*PaymentFormState, error) {
	state := &PaymentFormState{Open: true, Values: url.Values{}}

	tenants, err := v.api.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	state.Tenants = tenants

	if rawTenant == "" {
		return state, nil
	}
	tenantID, err := parseID(rawTenant)
	if err != nil {
		return nil, err
	}
	state.SelectedTenant = tenantID

	info, err := v.api.TenantPaymentInfo(ctx, tenantID)
	if err != nil {
		v.log.Error("payment info fetch failed", zap.Int64("tenant_id", tenantID), zap.Error(err))
		state.Disabled = true
		state.DisabledMessage = err.Error()
		return state, nil
	}
	state.Info = info
	if !info.HasActiveLease || info.LeaseID == nil {
		state.Disabled = true
		state.DisabledMessage = leasePrerequisiteMessage
		return state, nil
	}
	state.Values.Set("lease_agreement_id", itoa(*info.LeaseID))
	state.Values.Set("amount", trimZeros(info.MonthlyRent))
	return state, nil
}

// Payments renders the payments page: statistics cards, filterable list,
// record/edit modal and receipt modal.
func (v *Views) Payments(ctx context.Context, q url.Values, form *PaymentFormState, receipt *backend.Receipt) (template.HTML, error) {
	page := paymentsPage{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Statuses: PaymentStatuses,
		Types:    PaymentTypes,
		Form:     form,
		Receipt:  receipt,
	}
	if page.Status == "" {
		page.Status = "all"
	}

	payments, err := v.api.Payments(ctx, page.Status)
	if err != nil {
		v.log.Error("payment list fetch failed", zap.Error(err))
		page.LoadError = err.Error()
	}
	for _, p := range payments {
		row := PaymentRow{Payment: p}
		rowText := strings.Join([]string{
			p.TenantName, p.PropertyName, p.PaymentType, p.Reference, p.Status,
		}, " ")
		row.Hidden = markHidden(page.Search, rowText)
		page.Rows = append(page.Rows, row)
	}

	// Statistics cards degrade to empty rather than blocking the list.
	if stats, err := v.api.PaymentStatistics(ctx); err != nil {
		v.log.Warn("payment statistics fetch failed", zap.Error(err))
	} else {
		page.Stats = stats
	}

	return v.render("payments", page)
}

// SubmitPayment records or updates a payment. Records go against the lease
// agreement bound by the dependent lookup, never against the tenant directly.
func (v *Views) SubmitPayment(ctx context.Context, form url.Values) FormResult {
	editing := form.Get("id") != ""
	if !editing && form.Get("lease_agreement_id") == "" {
		return FormResult{OK: false, Message: leasePrerequisiteMessage}
	}
	if res := requireFields(form, map[string]string{
		"amount":       "Amount",
		"payment_type": "Payment type",
	}); res != nil {
		return *res
	}

	amount, err := parseAmount(form.Get("amount"))
	if err != nil {
		return failure(err)
	}
	rec := backend.PaymentRecord{
		Amount:      amount,
		PaymentType: form.Get("payment_type"),
		PaymentDate: form.Get("payment_date"),
		Reference:   form.Get("reference"),
		Notes:       form.Get("notes"),
	}

	if editing {
		id, err := parseID(form.Get("id"))
		if err != nil {
			return failure(err)
		}
		if err := v.api.UpdatePayment(ctx, id, rec); err != nil {
			return failure(err)
		}
		return success("Payment updated")
	}

	leaseID, err := parseID(form.Get("lease_agreement_id"))
	if err != nil {
		return failure(err)
	}
	rec.LeaseAgreementID = leaseID
	if err := v.api.RecordPayment(ctx, rec); err != nil {
		return failure(err)
	}
	return success("Payment recorded")
}

// PaymentForm rebuilds the record/edit modal around a failed submit so the
// posted values and the tenant select survive the round trip.
func (v *Views) PaymentForm(ctx context.Context, form url.Values, res *FormResult) *PaymentFormState {
	state := &PaymentFormState{Open: true, Values: form, Result: res}
	if raw := form.Get("id"); raw != "" {
		if id, err := parseID(raw); err == nil {
			state.EditingID = id
		}
		return state
	}
	tenants, err := v.api.Tenants(ctx)
	if err != nil {
		v.log.Warn("tenant select fetch failed", zap.Error(err))
		return state
	}
	state.Tenants = tenants
	return state
}

// DeletePayment removes a payment once confirmed.
func (v *Views) DeletePayment(ctx context.Context, form url.Values) FormResult {
	if res := confirmDelete(form); res != nil {
		return *res
	}
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.DeletePayment(ctx, id); err != nil {
		return failure(err)
	}
	return success("Payment deleted")
}

// EmailReceipt asks the API to mail the receipt of one payment. Failures stay
// isolated to this action.
func (v *Views) EmailReceipt(ctx context.Context, form url.Values) FormResult {
	id, err := parseID(form.Get("id"))
	if err != nil {
		return failure(err)
	}
	if err := v.api.EmailReceipt(ctx, id); err != nil {
		return failure(err)
	}
	return success("Receipt sent")
}

func paymentValues(p *backend.Payment) url.Values {
	vals := url.Values{}
	vals.Set("amount", trimZeros(p.Amount))
	vals.Set("payment_type", p.PaymentType)
	vals.Set("payment_date", p.PaymentDate)
	vals.Set("reference", p.Reference)
	vals.Set("notes", p.Notes)
	return vals
}
