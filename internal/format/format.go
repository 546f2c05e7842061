// Package format holds the display formatting shared by every view module.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All money in the office is naira; the printer groups digits the way the
// original listings did (₦1,234,567.89).
var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as a fixed-currency naira string.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("₦%.2f", amount)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an API timestamp as "02 Jan 2006". Unparseable input
// is passed through untouched so a bad record never blanks a cell.
func FormatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return value
}

// LeaseStatusClass maps a tenant lease status to its badge class.
func LeaseStatusClass(status string) string {
	switch strings.ToLower(status) {
	case "active":
		return "badge-success"
	case "expired":
		return "badge-danger"
	case "pending":
		return "badge-warning"
	case "no lease":
		return "badge-secondary"
	default:
		return "badge-secondary"
	}
}

// PaymentStatusClass maps a payment status to its badge class.
func PaymentStatusClass(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return "badge-success"
	case "pending":
		return "badge-warning"
	case "overdue":
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// DocumentStatusClass maps a document status to its badge class.
func DocumentStatusClass(status string) string {
	switch strings.ToLower(status) {
	case "generated":
		return "badge-success"
	case "pending":
		return "badge-warning"
	case "sent":
		return "badge-info"
	case "expired":
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// OccupancyStatusClass maps a property status to its badge class.
func OccupancyStatusClass(status string) string {
	switch strings.ToLower(status) {
	case "occupied":
		return "badge-success"
	case "vacant":
		return "badge-warning"
	case "maintenance":
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// ActivityStatusClass maps a recent-activity status to its badge class.
func ActivityStatusClass(status string) string {
	switch strings.ToLower(status) {
	case "completed":
		return "badge-success"
	case "pending":
		return "badge-warning"
	case "failed":
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// FormatPaymentType turns "bank_transfer" into "Bank Transfer".
func FormatPaymentType(t string) string {
	return titleUnderscores(t)
}

// FormatDocumentType turns "tenancy_agreement" into "Tenancy Agreement".
func FormatDocumentType(t string) string {
	return titleUnderscores(t)
}

// CapitalizeFirst upper-cases the first byte of a value for display.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MatchesFilter reports whether a rendered row's text contains the search
// term, case-insensitively. An empty term matches everything, which is what
// restores all rows when the search box is cleared.
func MatchesFilter(rowText, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rowText), strings.ToLower(term))
}

func titleUnderscores(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = CapitalizeFirst(w)
	}
	return strings.Join(words, " ")
}
