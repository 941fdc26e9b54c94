package models

// Invoice carries line-item information, shown as a shopping cart in the payment menu.
type Invoice struct {
	TotalNetAmount        Amount       `xml:"totalNetAmount"`
	TotalVatAmounts       []VatAmount  `xml:"totalVatAmount"`
	Items                 []Item       `xml:"item"`
	ShipTo                *Destination `xml:"shipTo,omitempty"`
	AdditionalDescription string       `xml:"additionalDescription,omitempty"`
}

// VatAmount is the VAT total for one rate.
type VatAmount struct {
	Value    int64  `xml:",chardata"`
	Currency string `xml:"currency,attr"`
	Rate     string `xml:"rate,attr"`
}

// Item is one invoice line.
type Item struct {
	Number           string   `xml:"number,attr"`
	Name             string   `xml:"name"`
	Code             string   `xml:"code"`
	Quantity         Quantity `xml:"quantity"`
	Description      string   `xml:"description"`
	Image            string   `xml:"image,omitempty"`
	NetAmount        Amount   `xml:"netAmount"`
	GrossAmount      Amount   `xml:"grossAmount"`
	Vat              Vat      `xml:"vat"`
	TotalNetAmount   Amount   `xml:"totalNetAmount"`
	TotalGrossAmount Amount   `xml:"totalGrossAmount"`
	TotalVat         Vat      `xml:"totalVat"`
}

// Quantity is a count with a unit of measure.
type Quantity struct {
	Value         int    `xml:",chardata"`
	UnitOfMeasure string `xml:"unitOfMeasure,attr"`
}

// NewQuantity returns a quantity counted in pieces.
func NewQuantity(n int) Quantity {
	return Quantity{Value: n, UnitOfMeasure: "PCS"}
}

type Vat struct {
	Rate   string `xml:"rate"`
	Amount Amount `xml:"amount"`
}
