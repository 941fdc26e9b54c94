package docdata_soap

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

// PaymentURL returns the address of the hosted payment menu for an order.
// Parameters keep a fixed order so URLs are stable across calls.
func (c *Client) PaymentURL(p models.PaymentURLParams) string {
	var q queryBuilder
	q.add("command", "show_payment_cluster")
	q.add("merchant_name", c.merchant.Name)
	q.add("client_language", p.ClientLanguage)
	q.add("payment_cluster_key", p.PaymentClusterKey)
	q.addOptional("return_url_success", p.SuccessURL)
	q.addOptional("return_url_canceled", p.CanceledURL)
	q.addOptional("return_url_pending", p.PendingURL)
	q.addOptional("return_url_error", p.ErrorURL)

	if p.DefaultPaymentMethod != "" {
		method := strings.ToUpper(p.DefaultPaymentMethod)
		q.add("default_pm", method)

		if p.DefaultAct && (method == models.PaymentMethodIdeal || method == models.PaymentMethodPaypal) {
			q.add("default_act", "yes")
		}
		if method == models.PaymentMethodIdeal {
			q.addOptional("ideal_issuer_id", p.IdealIssuerID)
		}
	}

	return c.cfg.MenuURL() + "?" + q.encode()
}

// RedirectToPaymentURL sends the shopper to the hosted payment menu.
func (c *Client) RedirectToPaymentURL(w http.ResponseWriter, r *http.Request, p models.PaymentURLParams) {
	target := c.PaymentURL(p)
	c.logger.Info("redirect to docdata", slog.String("url", target))
	http.Redirect(w, r, target, http.StatusFound)
}

// queryBuilder encodes parameters in insertion order; url.Values sorts keys.
type queryBuilder struct {
	parts []string
}

func (q *queryBuilder) add(key, value string) {
	q.parts = append(q.parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q *queryBuilder) addOptional(key, value string) {
	if value != "" {
		q.add(key, value)
	}
}

func (q *queryBuilder) encode() string {
	return strings.Join(q.parts, "&")
}
