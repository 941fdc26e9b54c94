package docdata_soap

import (
	"context"
	"errors"
	"io"

	"github.com/jonboulle/clockwork"
	"golang.org/x/exp/slog"

	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

// Client interacts with the Docdata Payments Order API over SOAP.
// One Client represents one merchant account and is safe for concurrent use.
type Client struct {
	cfg       Config
	merchant  models.Merchant
	transport Transport
	clock     clockwork.Clock
	logger    *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the structured logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTransport replaces the SOAP-over-HTTP transport, e.g. with a test double.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithClock sets the clock used to time calls of the default transport.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// NewClient creates a new Docdata client.
// It validates the configuration and prepares the HTTP transport up front,
// loading the optional client certificate.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg: cfg,
		merchant: models.Merchant{
			Name:     cfg.MerchantName,
			Password: cfg.MerchantPassword,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		t, err := newSOAPTransport(cfg, c.clock)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}
	c.logger = c.logger.With(slog.Any("merchant", c.merchant), slog.Bool("test", cfg.Test))

	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Create creates a payment order. Creating an order is always the first step:
// payments are made on it afterwards, through the hosted payment menu or Start.
func (c *Client) Create(ctx context.Context, req models.CreateRequest) (models.APIResponse[models.CreateSuccess], error) {
	return call[models.CreateSuccess](ctx, c, OpCreate, req.MerchantOrderReference, req, c.buildCreateRequest(req))
}

// Start starts a payment on an existing order.
func (c *Client) Start(ctx context.Context, req models.StartRequest) (models.APIResponse[models.StartSuccess], error) {
	return call[models.StartSuccess](ctx, c, OpStart, req.PaymentOrderKey, req, c.buildStartRequest(req))
}

// Cancel cancels an order. Docdata only accepts this for payments with
// status NEW, STARTED or AUTHORIZED.
func (c *Client) Cancel(ctx context.Context, paymentOrderKey string) (models.APIResponse[models.CancelSuccess], error) {
	return call[models.CancelSuccess](ctx, c, OpCancel, paymentOrderKey, paymentOrderKey, c.buildCancelRequest(paymentOrderKey))
}

// Capture requests a capture on an authorized payment. It overrides the
// default capture when one is configured in the back office.
func (c *Client) Capture(ctx context.Context, req models.CaptureRequest) (models.APIResponse[models.CaptureSuccess], error) {
	return call[models.CaptureSuccess](ctx, c, OpCapture, req.PaymentID, req, c.buildCaptureRequest(req))
}

// Refund requests a refund on a successfully captured payment.
func (c *Client) Refund(ctx context.Context, req models.RefundRequest) (models.APIResponse[models.RefundSuccess], error) {
	return call[models.RefundSuccess](ctx, c, OpRefund, req.PaymentID, req, c.buildRefundRequest(req))
}

// Status reports on an order, its payments and their captures and refunds.
func (c *Client) Status(ctx context.Context, paymentOrderKey string) (models.APIResponse[models.StatusSuccess], error) {
	return call[models.StatusSuccess](ctx, c, OpStatus, paymentOrderKey, paymentOrderKey, c.buildStatusRequest(paymentOrderKey))
}

// StatusPaid fetches the order status and derives its paid level.
func (c *Client) StatusPaid(ctx context.Context, paymentOrderKey string) (models.PaidLevel, error) {
	resp, err := c.Status(ctx, paymentOrderKey)
	if err != nil {
		return models.PaidLevelNotPaid, err
	}
	return PaidLevelOf(&resp.Data), nil
}

// call sends one operation and classifies the answer. Raw payloads are
// logged and returned on every path.
func call[S any](ctx context.Context, c *Client, op Operation, reference string, input, request any) (models.APIResponse[S], error) {
	var result models.APIResponse[S]
	logger := c.logger.With(slog.String("operation", string(op)), slog.String("reference", reference))

	logger.Info("docdata request", slog.Any("request", input))

	response, err := newOutcome[S](op)
	if err != nil {
		return result, err
	}

	ex, err := c.transport.Call(ctx, op, request, response)
	if ex != nil {
		result.HTTPStatus = ex.HTTPStatus
		result.RawRequest = redactPayload(ex.Request)
		result.RawResponse = ex.Response

		logger = logger.With(slog.String("call_id", ex.CallID))
		logger.Info("docdata soap request",
			slog.String("request", string(result.RawRequest)),
			slog.String("payload_digest", ex.RequestDigest),
		)
		logger.Info("docdata soap response",
			slog.String("response", string(ex.Response)),
			slog.Int("http_status", ex.HTTPStatus),
			slog.Duration("duration", ex.Duration),
		)
	}

	if err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			te = &TransportError{Op: op, Err: err}
		}
		logger.Error("docdata transport failed", slog.String("error", err.Error()))
		return result, te
	}

	data, err := classify[S](op, response)
	if err != nil {
		var oe *OperationError
		if errors.As(err, &oe) {
			logger.Error("docdata operation failed",
				slog.String("error", oe.Explanation),
				slog.String("code", oe.Code),
			)
		} else {
			logger.Error("docdata response malformed", slog.String("error", err.Error()))
		}
		return result, err
	}

	result.Data = *data
	return result, nil
}

// classify returns the success payload, or an *OperationError when the error
// outcome is present. The error outcome is checked first.
func classify[S any](op Operation, response successOutcome[S]) (*S, error) {
	if detail := response.failure(); detail != nil {
		return nil, &OperationError{
			Op:          op,
			Code:        detail.Code,
			Explanation: detail.Explanation(),
		}
	}

	data := response.success()
	if data == nil {
		return nil, &TransportError{Op: op, Err: errors.New("response carries neither a success nor an error outcome")}
	}
	return data, nil
}
