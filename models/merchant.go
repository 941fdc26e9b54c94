package models

import "golang.org/x/exp/slog"

// Merchant identifies the Docdata merchant account. It is sent as
// <merchant name="..." password="..."/> on every request.
type Merchant struct {
	Name     string `xml:"name,attr"`
	Password string `xml:"password,attr"`
}

// LogValue keeps the password out of structured logs.
func (m Merchant) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", m.Name),
		slog.String("password", "[REDACTED]"),
	)
}
