package models

// Payment method identifiers used by Docdata.
const (
	PaymentMethodIdeal        = "IDEAL"
	PaymentMethodPaypal       = "PAYPAL"
	PaymentMethodVisa         = "VISA"
	PaymentMethodMasterCard   = "MASTERCARD"
	PaymentMethodAmex         = "AMEX"
	PaymentMethodMaestro      = "MAESTRO"
	PaymentMethodMisterCash   = "MISTERCASH"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodGiftCard     = "GIFT_CARD"
)

// PaymentRequest asks Docdata to charge a payment method used earlier
// (recurring payments). It identifies the initial payment by exactly one
// reference.
type PaymentRequest struct {
	InitialPaymentReference PaymentReference `xml:"initialPaymentReference"`
}

type PaymentReference struct {
	LinkID            string `xml:"linkId,omitempty"`
	PaymentID         string `xml:"paymentId,omitempty"`
	MerchantReference string `xml:"merchantReference,omitempty"`
}

// PaymentRequestInput carries the payment details for an immediate payment
// started through the API. Set PaymentMethod and the matching input block.
type PaymentRequestInput struct {
	PaymentMethod string  `xml:"paymentMethod"`
	PaymentAmount *Amount `xml:"paymentAmount,omitempty"`

	IDeal        *IdealPaymentInfo        `xml:"iDealPaymentInput,omitempty"`
	Amex         *AmexPaymentInfo         `xml:"amexPaymentInput,omitempty"`
	MasterCard   *MasterCardPaymentInfo   `xml:"masterCardPaymentInput,omitempty"`
	Visa         *VisaPaymentInfo         `xml:"visaPaymentInput,omitempty"`
	Maestro      *MaestroPaymentInfo      `xml:"maestroPaymentInput,omitempty"`
	MisterCash   *MisterCashPaymentInfo   `xml:"misterCashPaymentInput,omitempty"`
	BankTransfer *BankTransferPaymentInfo `xml:"bankTransferPaymentInput,omitempty"`
	GiftCard     *GiftCardPaymentInfo     `xml:"giftCardPaymentInput,omitempty"`
}

type IdealPaymentInfo struct {
	IssuerID string `xml:"issuerId"`
}

type AmexPaymentInfo struct {
	CreditCardNumber string `xml:"creditCardNumber"`
	ExpiryDate       string `xml:"expiryDate"`
	CID              string `xml:"cid"`
	CardHolder       string `xml:"cardHolder"`
	EmailAddress     string `xml:"emailAddress,omitempty"`
}

type MasterCardPaymentInfo struct {
	CreditCardNumber string `xml:"creditCardNumber"`
	ExpiryDate       string `xml:"expiryDate"`
	CVC2             string `xml:"cvc2"`
	CardHolder       string `xml:"cardHolder"`
	EmailAddress     string `xml:"emailAddress,omitempty"`
}

type VisaPaymentInfo struct {
	CreditCardNumber string `xml:"creditCardNumber"`
	ExpiryDate       string `xml:"expiryDate"`
	CVV2             string `xml:"cvv2"`
	CardHolder       string `xml:"cardHolder"`
	EmailAddress     string `xml:"emailAddress,omitempty"`
}

type MaestroPaymentInfo struct {
	CardNumber   string `xml:"cardNumber"`
	ExpiryDate   string `xml:"expiryDate"`
	CVC2         string `xml:"cvc2,omitempty"`
	CardHolder   string `xml:"cardHolder"`
	EmailAddress string `xml:"emailAddress,omitempty"`
}

type MisterCashPaymentInfo struct {
	CardNumber   string `xml:"cardNumber"`
	ExpiryDate   string `xml:"expiryDate"`
	CardHolder   string `xml:"cardHolder"`
	EmailAddress string `xml:"emailAddress,omitempty"`
}

type BankTransferPaymentInfo struct {
	EmailAddress string `xml:"emailAddress,omitempty"`
}

type GiftCardPaymentInfo struct {
	CardNumber string `xml:"cardNumber"`
	PIN        string `xml:"pin"`
}

// Card contains payment card details used to build a card payment input.
type Card struct {
	// Number is the full card number (PAN).
	Number string

	// ExpiryMonth is the two-digit expiry month (e.g. "12").
	ExpiryMonth string

	// ExpiryYear is the two- or four-digit expiry year (e.g. "27" or "2027").
	ExpiryYear string

	// SecurityCode is the CVC2/CVV2/CID printed on the card.
	SecurityCode string

	Holder string
	Email  string
}
