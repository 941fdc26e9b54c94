package docdata_soap_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	docdata "github.com/hugochinchilla79/docdata_soap_sdk"
	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

func newMenuClient(t *testing.T, test bool) *docdata.Client {
	t.Helper()
	client, err := docdata.NewClient(docdata.Config{MerchantName: "shop", MerchantPassword: "pw", Test: test})
	require.NoError(t, err)
	return client
}

func TestPaymentURL(t *testing.T) {
	client := newMenuClient(t, true)

	got := client.PaymentURL(models.PaymentURLParams{
		ClientLanguage:       "nl",
		PaymentClusterKey:    "KEY-1",
		SuccessURL:           "https://shop.example/ok?order=1",
		CanceledURL:          "https://shop.example/cancel",
		DefaultPaymentMethod: "ideal",
		DefaultAct:           true,
		IdealIssuerID:        "RABONL2U",
	})

	require.Equal(t, "https://test.docdatapayments.com/ps/menu?"+
		"command=show_payment_cluster&merchant_name=shop&client_language=nl&payment_cluster_key=KEY-1"+
		"&return_url_success=https%3A%2F%2Fshop.example%2Fok%3Forder%3D1"+
		"&return_url_canceled=https%3A%2F%2Fshop.example%2Fcancel"+
		"&default_pm=IDEAL&default_act=yes&ideal_issuer_id=RABONL2U", got)
}

func TestPaymentURL_DefaultMethodRules(t *testing.T) {
	client := newMenuClient(t, false)

	cases := []struct {
		name   string
		params models.PaymentURLParams
		has    []string
		hasNot []string
	}{
		{
			name:   "ideal with issuer and act",
			params: models.PaymentURLParams{DefaultPaymentMethod: models.PaymentMethodIdeal, DefaultAct: true, IdealIssuerID: "RABONL2U"},
			has:    []string{"default_pm=IDEAL&default_act=yes&ideal_issuer_id=RABONL2U"},
		},
		{
			name:   "mastercard never activates",
			params: models.PaymentURLParams{DefaultPaymentMethod: models.PaymentMethodMasterCard, DefaultAct: true},
			has:    []string{"default_pm=MASTERCARD"},
			hasNot: []string{"default_act"},
		},
		{
			name:   "paypal activates",
			params: models.PaymentURLParams{DefaultPaymentMethod: models.PaymentMethodPaypal, DefaultAct: true, IdealIssuerID: "RABONL2U"},
			has:    []string{"default_pm=PAYPAL&default_act=yes"},
			hasNot: []string{"ideal_issuer_id"},
		},
		{
			name:   "act flag off",
			params: models.PaymentURLParams{DefaultPaymentMethod: models.PaymentMethodIdeal},
			has:    []string{"default_pm=IDEAL"},
			hasNot: []string{"default_act", "ideal_issuer_id"},
		},
		{
			name:   "no default method",
			params: models.PaymentURLParams{DefaultAct: true, IdealIssuerID: "RABONL2U"},
			hasNot: []string{"default_pm", "default_act", "ideal_issuer_id", "return_url_"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.params.ClientLanguage = "en"
			c.params.PaymentClusterKey = "KEY-1"
			got := client.PaymentURL(c.params)

			require.Contains(t, got, "https://secure.docdatapayments.com/ps/menu?command=show_payment_cluster&merchant_name=shop")
			for _, s := range c.has {
				require.Contains(t, got, s)
			}
			for _, s := range c.hasNot {
				require.NotContains(t, got, s)
			}
		})
	}
}

func TestRedirectToPaymentURL(t *testing.T) {
	client := newMenuClient(t, true)
	params := models.PaymentURLParams{ClientLanguage: "nl", PaymentClusterKey: "KEY-1"}

	rec := httptest.NewRecorder()
	client.RedirectToPaymentURL(rec, httptest.NewRequest(http.MethodGet, "/checkout", nil), params)

	require.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "test.docdatapayments.com", location.Host)
	require.Equal(t, "/ps/menu", location.Path)
	require.Equal(t, "KEY-1", location.Query().Get("payment_cluster_key"))
	require.Equal(t, client.PaymentURL(params), rec.Header().Get("Location"))
}
