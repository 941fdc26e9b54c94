package models

// PaymentPreferences selects the payment profile configured in the Docdata back office.
type PaymentPreferences struct {
	Profile           string       `xml:"profile"`
	NumberOfDaysToPay int          `xml:"numberOfDaysToPay"`
	Exhortation       *Exhortation `xml:"exhortation,omitempty"`
}

// Exhortation configures up to two reminder periods for unpaid orders.
type Exhortation struct {
	Period1 *ExhortationPeriod `xml:"period1,omitempty"`
	Period2 *ExhortationPeriod `xml:"period2,omitempty"`
}

type ExhortationPeriod struct {
	NumberOfDays int    `xml:"numberOfDays"`
	Profile      string `xml:"profile,omitempty"`
}

// DefaultPaymentPreferences is sent on create when the caller supplies none.
func DefaultPaymentPreferences() PaymentPreferences {
	return PaymentPreferences{
		Profile:           "standard",
		NumberOfDaysToPay: 14,
	}
}

// MenuPreferences customizes the hosted payment menu.
type MenuPreferences struct {
	CSS *CSS `xml:"css,omitempty"`
}

// CSS references a stylesheet uploaded to the Docdata back office.
type CSS struct {
	ID string `xml:"id,attr"`
}
