package models

// Gender codes accepted by Docdata.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "U"
)

// Name is a person name as used for shoppers and destinations.
type Name struct {
	Prefix   string `xml:"prefix,omitempty"`
	Initials string `xml:"initials,omitempty"`
	First    string `xml:"first"`
	Middle   string `xml:"middle,omitempty"`
	Last     string `xml:"last"`
	Suffix   string `xml:"suffix,omitempty"`
}

// Language is an ISO 639-1 language code, e.g. "nl".
type Language struct {
	Code string `xml:"code,attr"`
}

// Country is an ISO 3166-1 alpha-2 country code, e.g. "NL".
type Country struct {
	Code string `xml:"code,attr"`
}

// Shopper describes the person placing the order.
type Shopper struct {
	// ID is the merchant's own shopper identifier.
	ID       string   `xml:"id,attr"`
	Name     Name     `xml:"name"`
	Email    string   `xml:"email"`
	Language Language `xml:"language"`
	Gender   string   `xml:"gender"`

	// DateOfBirth in YYYY-MM-DD form.
	DateOfBirth       string `xml:"dateOfBirth,omitempty"`
	PhoneNumber       string `xml:"phoneNumber,omitempty"`
	MobilePhoneNumber string `xml:"mobilePhoneNumber,omitempty"`
	IPAddress         string `xml:"ipAddress,omitempty"`
}
