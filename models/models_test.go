package models

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"10.50", 1050, false},
		{"10", 1000, false},
		{" 0.01 ", 1, false},
		{"1234.5", 123450, false},
		{"1.005", 0, true},
		{"-1.00", 0, true},
		{"abc", 0, true},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in, "eur")
		if c.wantErr {
			require.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got.Value, c.in)
		require.Equal(t, "EUR", got.Currency)
	}
}

func TestAmount_String(t *testing.T) {
	require.Equal(t, "10.50 EUR", NewAmount(1050, "EUR").String())
	require.Equal(t, "0.05 EUR", NewAmount(5, "EUR").String())
}

func TestAmount_XML(t *testing.T) {
	out, err := xml.Marshal(struct {
		XMLName xml.Name `xml:"wrapper"`
		Amount  Amount   `xml:"amount"`
	}{Amount: NewAmount(1000, "EUR")})
	require.NoError(t, err)
	require.Equal(t, `<wrapper><amount currency="EUR">1000</amount></wrapper>`, string(out))
}

func TestError_Explanation(t *testing.T) {
	var e Error
	require.NoError(t, xml.Unmarshal([]byte(`<error code="REQUEST_DATA_INCORRECT"> Order reference already used. </error>`), &e))
	require.Equal(t, "REQUEST_DATA_INCORRECT", e.Code)
	require.Equal(t, "Order reference already used.", e.Explanation())

	e = Error{}
	require.NoError(t, xml.Unmarshal([]byte(`<error code="X"><explanation>Unknown key</explanation></error>`), &e))
	require.Equal(t, "Unknown key", e.Explanation())
}

func TestPaidLevel(t *testing.T) {
	require.Equal(t, "SafeRoute", PaidLevelSafeRoute.String())
	require.Equal(t, "NotPaid", PaidLevelNotPaid.String())
	require.True(t, PaidLevelQuickRoute.IsPaid())
	require.False(t, PaidLevelNotPaid.IsPaid())
	require.Less(t, PaidLevelBalancedRoute, PaidLevelSafeRoute)
}

func TestLogValues_HideSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("x",
		slog.Any("merchant", Merchant{Name: "shop", Password: "s3cret"}),
		slog.Any("request", StartRequest{
			PaymentOrderKey: "KEY",
			Payment: &PaymentRequestInput{
				PaymentMethod: PaymentMethodVisa,
				Visa:          &VisaPaymentInfo{CreditCardNumber: "4111111111111111", CVV2: "123"},
			},
		}),
	)

	out := buf.String()
	require.NotContains(t, out, "s3cret")
	require.NotContains(t, out, "4111111111111111")
	require.Contains(t, out, `"payment_method":"VISA"`)
	require.Contains(t, out, `"name":"shop"`)
}
