package docdata_soap

import (
	"fmt"
	"strings"

	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

// DetectCardBrand returns the Docdata payment method for a card number (BIN/IIN).
// Returns VISA, MASTERCARD, AMEX, MAESTRO, or "" if unknown.
func DetectCardBrand(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) < 2 {
		return ""
	}

	// Visa: starts with 4
	if number[0] == '4' {
		return models.PaymentMethodVisa
	}

	p2 := number[:2]

	// Amex: starts with 34 or 37
	if p2 == "34" || p2 == "37" {
		return models.PaymentMethodAmex
	}

	// Mastercard: 51-55 or 2221-2720
	if p2 >= "51" && p2 <= "55" {
		return models.PaymentMethodMasterCard
	}
	if len(number) >= 4 {
		p4 := number[:4]
		if p4 >= "2221" && p4 <= "2720" {
			return models.PaymentMethodMasterCard
		}
		// Maestro: 6304, 6759, 6761-6763
		if p4 == "6304" || p4 == "6759" || (p4 >= "6761" && p4 <= "6763") {
			return models.PaymentMethodMaestro
		}
	}

	// Maestro: 50, 56-58
	if p2 == "50" || (p2 >= "56" && p2 <= "58") {
		return models.PaymentMethodMaestro
	}

	return ""
}

// CardPaymentInput builds the payment input for Start from raw card details,
// choosing the payment method from the card number.
func CardPaymentInput(card models.Card) (models.PaymentRequestInput, error) {
	number := strings.ReplaceAll(card.Number, " ", "")
	method := DetectCardBrand(number)
	expiry, err := cardExpiry(card.ExpiryMonth, card.ExpiryYear)
	if err != nil {
		return models.PaymentRequestInput{}, err
	}

	in := models.PaymentRequestInput{PaymentMethod: method}
	switch method {
	case models.PaymentMethodVisa:
		in.Visa = &models.VisaPaymentInfo{
			CreditCardNumber: number,
			ExpiryDate:       expiry,
			CVV2:             card.SecurityCode,
			CardHolder:       card.Holder,
			EmailAddress:     card.Email,
		}
	case models.PaymentMethodMasterCard:
		in.MasterCard = &models.MasterCardPaymentInfo{
			CreditCardNumber: number,
			ExpiryDate:       expiry,
			CVC2:             card.SecurityCode,
			CardHolder:       card.Holder,
			EmailAddress:     card.Email,
		}
	case models.PaymentMethodAmex:
		in.Amex = &models.AmexPaymentInfo{
			CreditCardNumber: number,
			ExpiryDate:       expiry,
			CID:              card.SecurityCode,
			CardHolder:       card.Holder,
			EmailAddress:     card.Email,
		}
	case models.PaymentMethodMaestro:
		in.Maestro = &models.MaestroPaymentInfo{
			CardNumber:   number,
			ExpiryDate:   expiry,
			CVC2:         card.SecurityCode,
			CardHolder:   card.Holder,
			EmailAddress: card.Email,
		}
	default:
		return models.PaymentRequestInput{}, fmt.Errorf("docdata_soap: unsupported card number")
	}
	return in, nil
}

// cardExpiry formats the expiry date as MM/YY.
func cardExpiry(month, year string) (string, error) {
	if len(month) == 1 {
		month = "0" + month
	}
	if len(month) != 2 || !isDigits(month) || month < "01" || month > "12" {
		return "", fmt.Errorf("docdata_soap: invalid card expiry month %q", month)
	}
	switch len(year) {
	case 2:
	case 4:
		year = year[2:]
	default:
		return "", fmt.Errorf("docdata_soap: invalid card expiry year %q", year)
	}
	if !isDigits(year) {
		return "", fmt.Errorf("docdata_soap: invalid card expiry year %q", year)
	}
	return month + "/" + year, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
