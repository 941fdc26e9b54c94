package models

import "strings"

// APIResponse wraps the decoded outcome of an operation together with the raw
// SOAP payloads. It is returned alongside errors as well, so the payloads stay
// available for reconciliation with Docdata.
type APIResponse[T any] struct {
	// HTTPStatus is the HTTP status code returned by Docdata (0 if no response arrived).
	HTTPStatus int

	// RawRequest is the SOAP XML request as sent.
	RawRequest []byte

	// RawResponse is the SOAP XML response body.
	RawResponse []byte

	// Data is the decoded success payload. Zero when an error is returned.
	Data T
}

// SuccessCode is the code Docdata reports on successful operations.
const SuccessCode = "SUCCESS"

// Success is the <success code="SUCCESS">Operation successful.</success> block.
type Success struct {
	Code    string `xml:"code,attr"`
	Message string `xml:",chardata"`
}

// Error is the error detail embedded in every error outcome.
// Docdata sends the explanation either as element text or as an
// <explanation> child; Explanation returns whichever is present.
type Error struct {
	Code        string `xml:"code,attr"`
	Text        string `xml:",chardata"`
	Description string `xml:"explanation"`
}

func (e Error) Explanation() string {
	if e.Description != "" {
		return e.Description
	}
	return strings.TrimSpace(e.Text)
}

type CreateSuccess struct {
	Success Success `xml:"success"`

	// Key is the payment order key used by all follow-up operations.
	Key string `xml:"key"`
}

type StartSuccess struct {
	Success         Success         `xml:"success"`
	PaymentResponse PaymentResponse `xml:"paymentResponse"`
}

type PaymentResponse struct {
	PaymentSuccess *PaymentSuccess `xml:"paymentSuccess"`
}

type PaymentSuccess struct {
	Status string `xml:"status"`
	ID     string `xml:"id"`
}

type CancelSuccess struct {
	Success Success `xml:"success"`
	Result  string  `xml:"result"`
}

type CaptureSuccess struct {
	Success Success `xml:"success"`
}

type RefundSuccess struct {
	Success Success `xml:"success"`
}

type StatusSuccess struct {
	Success *Success      `xml:"success"`
	Report  *StatusReport `xml:"report"`
}

// StatusReport describes the current state of an order, its payments,
// and their captures, refunds and chargebacks.
type StatusReport struct {
	APIInformation    *APIInformation    `xml:"apiInformation"`
	ApproximateTotals *ApproximateTotals `xml:"approximateTotals"`
	Payments          []Payment          `xml:"payment"`
	ConsideredSafe    *ConsideredSafe    `xml:"consideredSafe"`
}

type APIInformation struct {
	ConversionApplied bool   `xml:"conversionApplied"`
	Version           string `xml:"version"`
}

// ApproximateTotals aggregates the order's settlement progress in minor units
// of ExchangedTo.
type ApproximateTotals struct {
	ExchangedTo      string `xml:"exchangedTo,attr"`
	ExchangeRateDate string `xml:"exchangeRateDate,attr"`

	TotalRegistered       int64 `xml:"totalRegistered"`
	TotalShopperPending   int64 `xml:"totalShopperPending"`
	TotalAcquirerPending  int64 `xml:"totalAcquirerPending"`
	TotalAcquirerApproved int64 `xml:"totalAcquirerApproved"`
	TotalCaptured         int64 `xml:"totalCaptured"`
	TotalRefunded         int64 `xml:"totalRefunded"`
	TotalChargedback      int64 `xml:"totalChargedback"`
	TotalReversed         int64 `xml:"totalReversed"`
}

type Payment struct {
	ID            string        `xml:"id"`
	PaymentMethod string        `xml:"paymentMethod"`
	Authorization Authorization `xml:"authorization"`
}

type Authorization struct {
	Status          string       `xml:"status"`
	Amount          Amount       `xml:"amount"`
	ConfidenceLevel string       `xml:"confidenceLevel"`
	Captures        []Capture    `xml:"capture"`
	Refunds         []Refund     `xml:"refund"`
	Chargebacks     []Chargeback `xml:"chargeback"`
}

type Capture struct {
	Status string `xml:"status"`
	Amount Amount `xml:"amount"`
	Reason string `xml:"reason"`
}

type Refund struct {
	Status string `xml:"status"`
	Amount Amount `xml:"amount"`
	Reason string `xml:"reason"`
}

type Chargeback struct {
	ChargebackID string `xml:"chargebackId"`
	Amount       Amount `xml:"amount"`
	Reason       string `xml:"reason"`
	Category     string `xml:"category"`
}

type ConsideredSafe struct {
	Value  bool   `xml:"value"`
	Level  string `xml:"level"`
	Date   string `xml:"date"`
	Reason string `xml:"reason"`
}
