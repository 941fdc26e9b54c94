package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents) with an ISO 4217 currency code.
// It is transmitted as <amount currency="EUR">1050</amount>.
type Amount struct {
	Value    int64  `xml:",chardata"`
	Currency string `xml:"currency,attr"`
}

// NewAmount returns an Amount of value minor units.
func NewAmount(value int64, currency string) Amount {
	return Amount{Value: value, Currency: strings.ToUpper(currency)}
}

// ParseAmount converts a major-unit decimal string (e.g. "10.50") into an Amount
// expressed in minor units. At most two decimals are accepted.
func ParseAmount(s, currency string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("amount %q is negative", s)
	}
	minor := d.Shift(2)
	if !minor.IsInteger() {
		return Amount{}, fmt.Errorf("amount %q has more than two decimals", s)
	}
	return NewAmount(minor.IntPart(), currency), nil
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.Value, -2)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2) + " " + a.Currency
}
