// Package backend is the typed client for the external property API.
// Every record here is a transient, request-scoped copy; the API owns the
// entity lifecycle and nothing is cached across page loads.
package backend

// PropertyRef is the denormalized property attached to a tenant row.
type PropertyRef struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LandlordRef is the denormalized landlord attached to a property row.
type LandlordRef struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Tenant as consumed by the tenants view.
type Tenant struct {
	ID             int64        `json:"id"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	WorkPlace      string       `json:"work_place"`
	WorkAddress    string       `json:"work_address"`
	NextOfKinName  string       `json:"next_of_kin_name"`
	NextOfKinPhone string       `json:"next_of_kin_phone"`
	Property       *PropertyRef `json:"property"`
	PropertyID     int64        `json:"property_id"`
	LeaseStatus    string       `json:"lease_status"`
	MonthlyRent    float64      `json:"monthly_rent"`
	StartDate      string       `json:"start_date"`
	DurationMonths int          `json:"duration_months"`
	IDDocument     string       `json:"id_document,omitempty"`
}

// Landlord as consumed by the landlords view.
type Landlord struct {
	ID                 int64              `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Address            string             `json:"address"`
	Properties         []LandlordProperty `json:"properties"`
	OccupiedProperties int                `json:"occupied_properties"`
	TotalRevenue       float64            `json:"total_revenue"`
}

// LandlordProperty is one owned property inside a landlord detail view.
type LandlordProperty struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Status         string  `json:"status"`
	CurrentTenant  string  `json:"current_tenant"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// Property as consumed by the properties view.
type Property struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Type        string       `json:"type"`
	Landlord    *LandlordRef `json:"landlord"`
	LandlordID  int64        `json:"landlord_id"`
	Status      string       `json:"status"`
	Description string       `json:"description"`
}

// PropertyDetails is the aggregate detail view of one property.
type PropertyDetails struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Address       string               `json:"address"`
	Type          string               `json:"type"`
	TenantCount   int                  `json:"tenant_count"`
	TotalRevenue  float64              `json:"total_revenue"`
	TenantHistory []TenantHistoryEntry `json:"tenant_history"`
}

// TenantHistoryEntry is one past occupancy record of a property.
type TenantHistoryEntry struct {
	TenantName string `json:"tenant_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

// Payment as consumed by the payments view. Payments are recorded against a
// lease agreement, not directly against tenant or property; the names here
// are display labels resolved by the API.
type Payment struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	PaymentDate  string  `json:"payment_date"`
	PaymentType  string  `json:"payment_type"`
	Reference    string  `json:"reference"`
	Notes        string  `json:"notes"`
	TenantID     int64   `json:"tenant_id"`
	TenantName   string  `json:"tenant_name"`
	PropertyName string  `json:"property_name"`
	Status       string  `json:"status"`
}

// PaymentStatistics is the aggregate block above the payments table.
type PaymentStatistics struct {
	TotalCollections    float64 `json:"total_collections"`
	YearlyTotal         float64 `json:"yearly_total"`
	OutstandingPayments float64 `json:"outstanding_payments"`
	PaidTenants         int     `json:"paid_tenants"`
	UnpaidTenants       int     `json:"unpaid_tenants"`
}

// PaymentInfo is the lease/rent lookup made when a tenant is chosen in the
// add-payment form.
type PaymentInfo struct {
	Property       string  `json:"property"`
	MonthlyRent    float64 `json:"monthly_rent"`
	LeaseID        *int64  `json:"lease_id"`
	HasActiveLease bool    `json:"has_active_lease"`
}

// PaymentRecord is the payload for recording a payment.
type PaymentRecord struct {
	LeaseAgreementID int64   `json:"lease_agreement_id"`
	Amount           float64 `json:"amount"`
	PaymentType      string  `json:"payment_type"`
	PaymentDate      string  `json:"payment_date,omitempty"`
	Reference        string  `json:"reference"`
	Notes            string  `json:"notes,omitempty"`
}

// Receipt is the rendered receipt of one payment.
type Receipt struct {
	PaymentID     int64   `json:"payment_id"`
	ReceiptNumber string  `json:"receipt_number"`
	PaymentDate   string  `json:"payment_date"`
	TenantName    string  `json:"tenant_name"`
	PropertyName  string  `json:"property_name"`
	Amount        float64 `json:"amount"`
	PaymentType   string  `json:"payment_type"`
	Reference     string  `json:"reference"`
}

// LeaseAgreement is the payload for creating a lease.
type LeaseAgreement struct {
	TenantID         int64   `json:"tenant_id"`
	RentAmount       float64 `json:"rent_amount"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	PaymentFrequency string  `json:"payment_frequency,omitempty"`
	SecurityDeposit  float64 `json:"security_deposit,omitempty"`
}

// Document as consumed by the documents view.
type Document struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	RelatedTo string `json:"related_to"`
	Status    string `json:"status"`
}

// FormField is one entry of a document type's dynamic field schema.
type FormField struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Type     string        `json:"type"`
	Required bool          `json:"required"`
	Options  []FieldOption `json:"options,omitempty"`
}

// FieldOption is one choice of a select-kind form field.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GeneratedDocument is the response to a document generation request.
type GeneratedDocument struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}

// DashboardStats is the read-only aggregate behind the dashboard cards.
type DashboardStats struct {
	TenantStats struct {
		TotalTenants int `json:"total_tenants"`
		ActiveLeases int `json:"active_leases"`
		ExpiringSoon int `json:"expiring_soon"`
	} `json:"tenant_stats"`
	PaymentStats struct {
		TotalCollected     float64 `json:"total_collected"`
		TotalOutstanding   float64 `json:"total_outstanding"`
		TenantsOutstanding int     `json:"tenants_outstanding"`
	} `json:"payment_stats"`
	PropertyStats struct {
		TotalProperties int `json:"total_properties"`
		OccupiedUnits   int `json:"occupied_units"`
		VacantUnits     int `json:"vacant_units"`
	} `json:"property_stats"`
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	Date        string `json:"date"`
	TenantName  string `json:"tenant_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Type        string `json:"type"`
}

// Notification is one entry of the polled notification feed.
type Notification struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	SentDate string `json:"sent_date"`
	IsRead   bool   `json:"is_read"`
}

// Binary is a PDF (or other blob) streamed back from the API. Filename is
// taken from the content-disposition header on downloads.
type Binary struct {
	ContentType string
	Filename    string
	Data        []byte
}
