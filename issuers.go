package docdata_soap

import (
	"sort"
	"strings"
)

// IdealIssuer is a bank that can be preselected for iDEAL payments.
type IdealIssuer struct {
	ID   string
	Name string
}

var idealIssuers = map[string]string{
	"ABNANL2A": "ABN AMRO",
	"ASNBNL21": "ASN Bank",
	"BUNQNL2A": "bunq",
	"HANDNL2A": "Handelsbanken",
	"INGBNL2A": "ING",
	"KNABNL2H": "Knab",
	"RABONL2U": "Rabobank",
	"RBRBNL21": "RegioBank",
	"REVOLT21": "Revolut",
	"SNSBNL2A": "SNS",
	"TRIONL2U": "Triodos Bank",
	"FVLBNL22": "Van Lanschot",
}

// IdealIssuers lists the iDEAL issuers, sorted by name. The ID is the value
// expected for PaymentURLParams.IdealIssuerID and IdealPaymentInfo.IssuerID.
func IdealIssuers() []IdealIssuer {
	out := make([]IdealIssuer, 0, len(idealIssuers))
	for id, name := range idealIssuers {
		out = append(out, IdealIssuer{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out
}

// IsIdealIssuer reports whether id is a known iDEAL issuer.
func IsIdealIssuer(id string) bool {
	_, ok := idealIssuers[id]
	return ok
}
