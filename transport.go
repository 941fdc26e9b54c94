package docdata_soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

//go:generate mockgen -source=transport.go -destination=mocks/transport_mock.go -package=mocks

// Transport delivers an operation request to Docdata and decodes the answer
// into response. The returned Exchange records the raw payloads and is
// non-nil whenever the request could be serialized, including on error.
type Transport interface {
	Call(ctx context.Context, op Operation, request, response any) (*Exchange, error)
}

// Exchange is the diagnostic record of one remote call.
type Exchange struct {
	// CallID correlates the log lines of one call.
	CallID    string
	Operation Operation
	URL       string

	HTTPStatus int
	Request    []byte
	Response   []byte

	// RequestDigest is the base64 SHA-256 of the canonicalized operation element.
	RequestDigest string

	Duration time.Duration
}

// soapTransport posts SOAP envelopes over one shared HTTP client.
type soapTransport struct {
	url        string
	userAgent  string
	httpClient *http.Client
	clock      clockwork.Clock
}

func newSOAPTransport(cfg Config, clock clockwork.Clock) (*soapTransport, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	tlsConfig, err := clientTLSConfig(cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("docdata_soap: failed to load P12 certificate: %w", err)
	}
	if tlsConfig != nil {
		httpTransport.TLSClientConfig = tlsConfig
	}

	return &soapTransport{
		url:       cfg.ServiceURL(),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout:   cfg.EffectiveTimeout(),
			Transport: httpTransport,
		},
		clock: clock,
	}, nil
}

func (t *soapTransport) Call(ctx context.Context, op Operation, request, response any) (*Exchange, error) {
	ex := &Exchange{
		CallID:    uuid.NewString(),
		Operation: op,
		URL:       t.url,
	}
	start := t.clock.Now()
	defer func() { ex.Duration = t.clock.Now().Sub(start) }()

	envelope := soapEnvelope{
		SoapNS: soapNS,
		Body:   soapBody{Request: request},
	}
	xmlData, err := xml.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal SOAP request: %w", err)
	}
	ex.Request = []byte(xml.Header + string(xmlData))

	if digest, err := payloadDigest(ex.Request); err == nil {
		ex.RequestDigest = digest
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(ex.Request))
	if err != nil {
		return ex, fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", string(op))
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return ex, fmt.Errorf("send SOAP request: %w", err)
	}
	defer resp.Body.Close()
	ex.HTTPStatus = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	ex.Response = respBody
	if err != nil {
		return ex, fmt.Errorf("read response: %w", err)
	}

	httpErr := func() error {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
			Headers:    resp.Header,
		}
	}

	var soapResp soapResponseEnvelope
	if err := xml.Unmarshal(respBody, &soapResp); err != nil {
		if resp.StatusCode/100 != 2 {
			return ex, httpErr()
		}
		return ex, fmt.Errorf("parse SOAP response (HTTP %d): %w", resp.StatusCode, err)
	}

	// Check for SOAP fault
	if soapResp.Body.Fault != nil {
		return ex, &SOAPFault{
			FaultCode:   soapResp.Body.Fault.FaultCode,
			FaultString: strings.TrimSpace(soapResp.Body.Fault.FaultString),
			RawBody:     respBody,
		}
	}
	if resp.StatusCode/100 != 2 {
		return ex, httpErr()
	}

	if err := xml.Unmarshal(soapResp.Body.Content, response); err != nil {
		return ex, fmt.Errorf("decode %s response: %w", op, err)
	}
	return ex, nil
}
