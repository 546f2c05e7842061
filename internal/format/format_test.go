package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₦1,234,567.89", FormatCurrency(1234567.89))
	assert.Equal(t, "₦0.00", FormatCurrency(0))
	assert.Equal(t, "₦950,000.00", FormatCurrency(950000))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Mar 2025", FormatDate("2025-03-15"))
	assert.Equal(t, "15 Mar 2025", FormatDate("2025-03-15T10:30:00"))
	assert.Equal(t, "15 Mar 2025", FormatDate("2025-03-15T10:30:00Z"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "", FormatDate(""))
}

func TestStatusClasses(t *testing.T) {
	assert.Equal(t, "badge-success", LeaseStatusClass("Active"))
	assert.Equal(t, "badge-danger", LeaseStatusClass("expired"))
	assert.Equal(t, "badge-warning", LeaseStatusClass("Pending"))
	assert.Equal(t, "badge-secondary", LeaseStatusClass("No Lease"))

	assert.Equal(t, "badge-success", PaymentStatusClass("completed"))
	assert.Equal(t, "badge-danger", PaymentStatusClass("overdue"))

	assert.Equal(t, "badge-info", DocumentStatusClass("Sent"))
	assert.Equal(t, "badge-success", DocumentStatusClass("generated"))

	assert.Equal(t, "badge-success", OccupancyStatusClass("occupied"))
	assert.Equal(t, "badge-warning", OccupancyStatusClass("vacant"))

	assert.Equal(t, "badge-danger", ActivityStatusClass("failed"))
}

func TestStatusClassesUnknownDefaultsToSecondary(t *testing.T) {
	for _, fn := range []func(string) string{
		LeaseStatusClass,
		PaymentStatusClass,
		DocumentStatusClass,
		OccupancyStatusClass,
		ActivityStatusClass,
	} {
		assert.Equal(t, "badge-secondary", fn("something-new"))
		assert.Equal(t, "badge-secondary", fn(""))
	}
}

func TestFormatTypes(t *testing.T) {
	assert.Equal(t, "Bank Transfer", FormatPaymentType("bank_transfer"))
	assert.Equal(t, "Rent", FormatPaymentType("rent"))
	assert.Equal(t, "Tenancy Agreement", FormatDocumentType("tenancy_agreement"))
	assert.Equal(t, "Quit Notice", FormatDocumentType("quit_notice"))
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Vacant", CapitalizeFirst("vacant"))
	assert.Equal(t, "", CapitalizeFirst(""))
	assert.Equal(t, "X", CapitalizeFirst("x"))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("John Doe john@example.com Active", "john"))
	assert.True(t, MatchesFilter("John Doe", "JOHN"))
	assert.False(t, MatchesFilter("John Doe", "jane"))
	// Empty term matches everything so clearing the search restores rows.
	assert.True(t, MatchesFilter("anything at all", ""))
	assert.True(t, MatchesFilter("", ""))
}
