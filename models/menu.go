package models

// PaymentURLParams are the query parameters of the hosted payment menu.
// Empty optional fields are left out of the URL.
type PaymentURLParams struct {
	ClientLanguage    string
	PaymentClusterKey string

	// Return pages. Success and canceled are mandatory in the back office.
	SuccessURL  string
	CanceledURL string
	PendingURL  string
	ErrorURL    string

	// DefaultPaymentMethod preselects a payment method in the menu.
	DefaultPaymentMethod string

	// DefaultAct sends the shopper straight to the default method.
	// Only honored for IDEAL and PAYPAL.
	DefaultAct bool

	// IdealIssuerID preselects the bank (e.g. "RABONL2U"). Only honored for IDEAL.
	IdealIssuerID string
}
