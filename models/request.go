package models

import (
	"time"

	"golang.org/x/exp/slog"
)

// CreateRequest is the input for creating a payment order.
// Pointer fields are optional and are left out of the request when nil.
type CreateRequest struct {
	// MerchantOrderReference is the merchant's unique reference for the order.
	MerchantOrderReference string

	Shopper          Shopper
	TotalGrossAmount Amount
	BillTo           Destination

	// PaymentPreferences defaults to DefaultPaymentPreferences when nil.
	PaymentPreferences *PaymentPreferences

	Description     *string
	ReceiptText     *string
	MenuPreferences *MenuPreferences
	PaymentRequest  *PaymentRequest
	Invoice         *Invoice
	IncludeCosts    *bool
}

// StartRequest starts a payment on an existing order. Payment and
// RecurringPaymentRequest are forwarded as given; Docdata decides which
// combinations are valid.
type StartRequest struct {
	PaymentOrderKey         string
	Payment                 *PaymentRequestInput
	RecurringPaymentRequest *PaymentRequest
}

// LogValue keeps card data out of structured logs.
func (r StartRequest) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("payment_order_key", r.PaymentOrderKey),
		slog.Bool("recurring", r.RecurringPaymentRequest != nil),
	}
	if r.Payment != nil {
		attrs = append(attrs, slog.String("payment_method", r.Payment.PaymentMethod))
	}
	return slog.GroupValue(attrs...)
}

// CaptureRequest claims (part of) an authorized payment.
type CaptureRequest struct {
	PaymentID string

	MerchantCaptureReference *string
	Amount                   *Amount
	ItemCode                 *string
	Description              *string
	FinalCapture             *bool
	CancelReserved           *bool
	RequiredCaptureDate      *time.Time
}

// RefundRequest returns (part of) a captured payment to the shopper.
type RefundRequest struct {
	PaymentID string

	MerchantRefundReference *string
	Amount                  *Amount
	ItemCode                *string
	Description             *string
	CancelReserved          *bool
	RequiredRefundDate      *time.Time
	RefundBankAccount       *SepaBankAccount
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }

// Time returns a pointer to t, for optional request fields.
func Time(t time.Time) *time.Time { return &t }
