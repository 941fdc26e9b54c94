// Command docdata runs single Docdata Payments operations from the shell.
//
//	docdata status  -key KEY
//	docdata paid    -key KEY
//	docdata cancel  -key KEY
//	docdata capture -payment ID [-amount 10.50 -currency EUR] [-final]
//	docdata refund  -payment ID [-amount 10.50 -currency EUR] [-description TEXT]
//	docdata url     -key KEY [-lang nl] [-method IDEAL -act -issuer RABONL2U]
//	docdata issuers
//
// Configuration comes from DOCDATA_* environment variables or a .env file.
// Logs are written to stderr as JSON, results to stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	docdata "github.com/hugochinchilla79/docdata_soap_sdk"
	"github.com/hugochinchilla79/docdata_soap_sdk/models"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("docdata command failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: docdata <status|paid|cancel|capture|refund|url|issuers> [flags]")

func run(ctx context.Context, args []string, stdout io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]

	if command == "issuers" {
		return writeJSON(stdout, docdata.IdealIssuers())
	}

	cfg, err := docdata.LoadConfigFromDotEnv()
	if err != nil {
		return err
	}
	client, err := docdata.NewClient(cfg, docdata.WithLogger(logger))
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch command {
	case "status", "paid", "cancel":
		key := fs.String("key", "", "payment order key")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *key == "" {
			return fmt.Errorf("%s: -key is required", command)
		}
		switch command {
		case "status":
			resp, err := client.Status(ctx, *key)
			if err != nil {
				return err
			}
			return writeJSON(stdout, resp.Data)
		case "paid":
			level, err := client.StatusPaid(ctx, *key)
			if err != nil {
				return err
			}
			return writeJSON(stdout, map[string]any{"paid_level": level.String(), "paid": level.IsPaid()})
		default:
			resp, err := client.Cancel(ctx, *key)
			if err != nil {
				return err
			}
			return writeJSON(stdout, resp.Data)
		}

	case "capture", "refund":
		paymentID := fs.String("payment", "", "payment id")
		amount := fs.String("amount", "", "amount in major units, e.g. 10.50")
		currency := fs.String("currency", "EUR", "ISO 4217 currency code")
		reference := fs.String("reference", "", "merchant reference, generated when empty")
		description := fs.String("description", "", "description")
		final := fs.Bool("final", false, "final capture")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *paymentID == "" {
			return fmt.Errorf("%s: -payment is required", command)
		}
		if *reference == "" {
			*reference = uuid.NewString()
		}

		var amt *models.Amount
		if *amount != "" {
			a, err := models.ParseAmount(*amount, *currency)
			if err != nil {
				return err
			}
			amt = &a
		}
		var desc *string
		if *description != "" {
			desc = models.String(*description)
		}

		if command == "capture" {
			req := models.CaptureRequest{
				PaymentID:                *paymentID,
				MerchantCaptureReference: reference,
				Amount:                   amt,
				Description:              desc,
			}
			if *final {
				req.FinalCapture = models.Bool(true)
			}
			resp, err := client.Capture(ctx, req)
			if err != nil {
				return err
			}
			return writeJSON(stdout, resp.Data)
		}

		resp, err := client.Refund(ctx, models.RefundRequest{
			PaymentID:               *paymentID,
			MerchantRefundReference: reference,
			Amount:                  amt,
			Description:             desc,
		})
		if err != nil {
			return err
		}
		return writeJSON(stdout, resp.Data)

	case "url":
		var p models.PaymentURLParams
		fs.StringVar(&p.PaymentClusterKey, "key", "", "payment order key")
		fs.StringVar(&p.ClientLanguage, "lang", "en", "menu language")
		fs.StringVar(&p.DefaultPaymentMethod, "method", "", "default payment method")
		fs.BoolVar(&p.DefaultAct, "act", false, "skip the menu and go straight to the default method")
		fs.StringVar(&p.IdealIssuerID, "issuer", "", "iDEAL issuer BIC")
		fs.StringVar(&p.SuccessURL, "success-url", "", "return URL on success")
		fs.StringVar(&p.CanceledURL, "canceled-url", "", "return URL on cancel")
		fs.StringVar(&p.PendingURL, "pending-url", "", "return URL while pending")
		fs.StringVar(&p.ErrorURL, "error-url", "", "return URL on error")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if p.PaymentClusterKey == "" {
			return errors.New("url: -key is required")
		}
		if p.IdealIssuerID != "" && !docdata.IsIdealIssuer(p.IdealIssuerID) {
			logger.Warn("unknown iDEAL issuer", slog.String("issuer", p.IdealIssuerID))
		}
		return writeJSON(stdout, map[string]string{"url": client.PaymentURL(p)})
	}

	return errUsage
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
