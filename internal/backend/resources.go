package backend

import (
	"context"
	"fmt"
	"net/url"
)

// Tenants fetches the full tenant collection.
func (c *Client) Tenants(ctx context.Context) ([]Tenant, error) {
	var out []Tenant
	if err := c.GetJSON(ctx, "/tenants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Tenant fetches a single tenant.
func (c *Client) Tenant(ctx context.Context, id int64) (*Tenant, error) {
	var out Tenant
	if err := c.GetJSON(ctx, fmt.Sprintf("/tenants/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTenant posts a multipart tenant payload, optionally with an
// identity-document file.
func (c *Client) CreateTenant(ctx context.Context, fields map[string]string, file *FileUpload) error {
	return c.PostMultipart(ctx, "/tenants", fields, file, nil)
}

// UpdateTenant updates an existing tenant.
func (c *Client) UpdateTenant(ctx context.Context, id int64, fields map[string]string) error {
	return c.PutJSON(ctx, fmt.Sprintf("/tenants/%d", id), fields, nil)
}

// DeleteTenant removes a tenant.
func (c *Client) DeleteTenant(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/tenants/%d", id))
}

// TenantPaymentInfo looks up the lease and rent for the payment form.
func (c *Client) TenantPaymentInfo(ctx context.Context, id int64) (*PaymentInfo, error) {
	var out PaymentInfo
	if err := c.GetJSON(ctx, fmt.Sprintf("/tenants/%d/payment-info", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLease creates a lease agreement for a tenant.
func (c *Client) CreateLease(ctx context.Context, lease LeaseAgreement) error {
	return c.PostJSON(ctx, "/lease-agreements", lease, nil)
}

// Landlords fetches the landlord collection.
func (c *Client) Landlords(ctx context.Context) ([]Landlord, error) {
	var out []Landlord
	if err := c.GetJSON(ctx, "/landlords", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Landlord fetches a single landlord.
func (c *Client) Landlord(ctx context.Context, id int64) (*Landlord, error) {
	var out Landlord
	if err := c.GetJSON(ctx, fmt.Sprintf("/landlords/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandlordDetails fetches the aggregate detail view of a landlord.
func (c *Client) LandlordDetails(ctx context.Context, id int64) (*Landlord, error) {
	var out Landlord
	if err := c.GetJSON(ctx, fmt.Sprintf("/landlords/%d/details", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLandlord creates a landlord.
func (c *Client) CreateLandlord(ctx context.Context, fields map[string]string) error {
	return c.PostJSON(ctx, "/landlords", fields, nil)
}

// UpdateLandlord updates a landlord.
func (c *Client) UpdateLandlord(ctx context.Context, id int64, fields map[string]string) error {
	return c.PutJSON(ctx, fmt.Sprintf("/landlords/%d", id), fields, nil)
}

// DeleteLandlord removes a landlord.
func (c *Client) DeleteLandlord(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/landlords/%d", id))
}

// Properties fetches the property collection.
func (c *Client) Properties(ctx context.Context) ([]Property, error) {
	var out []Property
	if err := c.GetJSON(ctx, "/properties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Property fetches a single property.
func (c *Client) Property(ctx context.Context, id int64) (*Property, error) {
	var out Property
	if err := c.GetJSON(ctx, fmt.Sprintf("/properties/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PropertyDetails fetches the aggregate detail view of a property.
func (c *Client) PropertyDetails(ctx context.Context, id int64) (*PropertyDetails, error) {
	var out PropertyDetails
	if err := c.GetJSON(ctx, fmt.Sprintf("/properties/%d/details", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty creates a property.
func (c *Client) CreateProperty(ctx context.Context, fields map[string]string) error {
	return c.PostJSON(ctx, "/properties", fields, nil)
}

// UpdateProperty updates a property.
func (c *Client) UpdateProperty(ctx context.Context, id int64, fields map[string]string) error {
	return c.PutJSON(ctx, fmt.Sprintf("/properties/%d", id), fields, nil)
}

// DeleteProperty removes a property.
func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/properties/%d", id))
}

// Payments fetches the payment collection, optionally filtered by status.
func (c *Client) Payments(ctx context.Context, status string) ([]Payment, error) {
	path := "/payments"
	if status != "" && status != "all" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []Payment
	if err := c.GetJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Payment fetches a single payment.
func (c *Client) Payment(ctx context.Context, id int64) (*Payment, error) {
	var out Payment
	if err := c.GetJSON(ctx, fmt.Sprintf("/payments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordPayment records a payment against a lease agreement.
func (c *Client) RecordPayment(ctx context.Context, rec PaymentRecord) error {
	return c.PostJSON(ctx, "/payments/record", rec, nil)
}

// UpdatePayment updates an existing payment.
func (c *Client) UpdatePayment(ctx context.Context, id int64, rec PaymentRecord) error {
	return c.PutJSON(ctx, fmt.Sprintf("/payments/%d", id), rec, nil)
}

// DeletePayment removes a payment.
func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/payments/%d", id))
}

// PaymentStatistics fetches the payment aggregates.
func (c *Client) PaymentStatistics(ctx context.Context) (*PaymentStatistics, error) {
	var out PaymentStatistics
	if err := c.GetJSON(ctx, "/payments/statistics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Receipt fetches the receipt of a payment.
func (c *Client) Receipt(ctx context.Context, paymentID int64) (*Receipt, error) {
	var out Receipt
	if err := c.GetJSON(ctx, fmt.Sprintf("/payments/%d/receipt", paymentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmailReceipt asks the API to mail a payment receipt to the tenant.
func (c *Client) EmailReceipt(ctx context.Context, paymentID int64) error {
	return c.PostJSON(ctx, fmt.Sprintf("/payments/%d/email-receipt", paymentID), nil, nil)
}

// Documents fetches the document history.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	var out []Document
	if err := c.GetJSON(ctx, "/documents", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentFormFields fetches the dynamic field schema of a document type.
func (c *Client) DocumentFormFields(ctx context.Context, docType string) ([]FormField, error) {
	var out []FormField
	if err := c.GetJSON(ctx, "/documents/form-fields/"+url.PathEscape(docType), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateDocument generates a document of the given type from filled-in
// schema values.
func (c *Client) GenerateDocument(ctx context.Context, docType string, values map[string]string) (*GeneratedDocument, error) {
	var out GeneratedDocument
	if err := c.PostJSON(ctx, "/documents/generate/"+url.PathEscape(docType), values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendDocument asks the API to deliver a generated document.
func (c *Client) SendDocument(ctx context.Context, id int64) error {
	return c.PostJSON(ctx, fmt.Sprintf("/documents/%d/send", id), nil, nil)
}

// ViewDocument fetches a document's PDF for inline viewing.
func (c *Client) ViewDocument(ctx context.Context, id int64) (*Binary, error) {
	return c.GetBinary(ctx, fmt.Sprintf("/documents/%d/view", id))
}

// DownloadDocument fetches a document's PDF with its download filename.
func (c *Client) DownloadDocument(ctx context.Context, id int64) (*Binary, error) {
	return c.GetBinary(ctx, fmt.Sprintf("/documents/%d/download", id))
}

// Stats fetches the dashboard aggregates.
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.GetJSON(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentActivities fetches the recent-activity feed.
func (c *Client) RecentActivities(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := c.GetJSON(ctx, "/activities/recent", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Notifications fetches the notification feed.
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.GetJSON(ctx, "/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks upstream reachability for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var out map[string]any
	return c.GetJSON(ctx, "/ping", &out)
}
