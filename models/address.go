package models

// Address is a postal address. Street and house number are kept apart, as
// Docdata requires them to be as specific as possible.
type Address struct {
	Company             string  `xml:"company,omitempty"`
	Street              string  `xml:"street"`
	HouseNumber         string  `xml:"houseNumber"`
	HouseNumberAddition string  `xml:"houseNumberAddition,omitempty"`
	PostalCode          string  `xml:"postalCode"`
	City                string  `xml:"city"`
	State               string  `xml:"state,omitempty"`
	Country             Country `xml:"country"`
}

// Destination is a named address, used for bill-to and ship-to.
type Destination struct {
	Name    Name    `xml:"name"`
	Address Address `xml:"address"`
}

// SepaBankAccount is the account a refund is paid out to.
type SepaBankAccount struct {
	HolderName    string   `xml:"holderName"`
	HolderCity    string   `xml:"holderCity,omitempty"`
	HolderCountry *Country `xml:"holderCountry,omitempty"`
	BIC           string   `xml:"bic,omitempty"`
	IBAN          string   `xml:"iban"`
}
